package allocation

import (
	"time"

	"budget-tracker/internal/domain"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// MonthRange parses "YYYY-MM" into the half-open range [first day, first
// day of the next month). December rolls over into January of the next year.
func MonthRange(month string) (start, end domain.Date, err error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return domain.Date{}, domain.Date{}, ErrInvalidMonth
	}
	start = domain.NewDate(t.Year(), t.Month(), 1)
	end = domain.Date{Time: start.AddDate(0, 1, 0)}
	return start, end, nil
}

// TrailingStart returns the first day of a trailing window ending today.
// The window is not aligned to calendar weeks or months. An empty period
// means a month.
func TrailingStart(period string, now time.Time) (domain.Date, error) {
	today := domain.DateOf(now)
	switch period {
	case PeriodWeek:
		return today.AddDays(-7), nil
	case PeriodMonth, "":
		return domain.Date{Time: today.AddDate(0, -1, 0)}, nil
	case PeriodYear:
		return domain.Date{Time: today.AddDate(-1, 0, 0)}, nil
	}
	return domain.Date{}, ErrInvalidPeriod
}
