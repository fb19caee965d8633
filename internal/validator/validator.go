// internal/validator/validator.go
package validator

import (
	"reflect"
	"regexp"
	"time"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/recurring"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var Validate *validator.Validate

var nonBlank = regexp.MustCompile(`\S`)

func init() {
	Validate = validator.New()

	// decimal.Decimal сравнивается как число: работают gt, gte, lte и т.д.
	Validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	// Месяц: "2024-12"
	_ = Validate.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})

	// Дата: "2024-12-31"
	_ = Validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})

	// Строка не пустая и не только пробелы
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})

	_ = Validate.RegisterValidation("bucket", func(fl validator.FieldLevel) bool {
		return domain.Bucket(fl.Field().String()).Valid()
	})

	_ = Validate.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		return domain.TransactionType(fl.Field().String()).Valid()
	})

	_ = Validate.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
		return recurring.ValidFrequency(domain.Frequency(fl.Field().String()))
	})
}

// PercentSumEpsilon is how far from 100 a stored split may drift.
var PercentSumEpsilon = decimal.RequireFromString("0.01")

// SumsTo100 reports whether the three percentages add up to 100 within
// PercentSumEpsilon.
func SumsTo100(needs, wants, future decimal.Decimal) bool {
	diff := needs.Add(wants).Add(future).Sub(decimal.NewFromInt(100)).Abs()
	return diff.LessThan(PercentSumEpsilon)
}
