// internal/handler/request.go
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/middleware"

	val "budget-tracker/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// === DTO ===

type CreateProfileRequest struct {
	MonthlyIncomeTarget decimal.Decimal  `json:"monthly_income_target" validate:"required,gt=0,lte=1000000000"`
	NeedsPercentage     *decimal.Decimal `json:"needs_percentage" validate:"omitempty,gte=0,lte=100"`
	WantsPercentage     *decimal.Decimal `json:"wants_percentage" validate:"omitempty,gte=0,lte=100"`
	FuturePercentage    *decimal.Decimal `json:"future_percentage" validate:"omitempty,gte=0,lte=100"`
}

// percentages подставляет 50/30/20 для пропущенных полей.
func (r CreateProfileRequest) percentages() (needs, wants, future decimal.Decimal) {
	needs, wants, future = allocation.DefaultSplit.Percentages()
	if r.NeedsPercentage != nil {
		needs = *r.NeedsPercentage
	}
	if r.WantsPercentage != nil {
		wants = *r.WantsPercentage
	}
	if r.FuturePercentage != nil {
		future = *r.FuturePercentage
	}
	return needs, wants, future
}

type UpdateProfileRequest struct {
	MonthlyIncomeTarget *decimal.Decimal `json:"monthly_income_target" validate:"omitempty,gt=0,lte=1000000000"`
	NeedsPercentage     *decimal.Decimal `json:"needs_percentage" validate:"omitempty,gte=0,lte=100"`
	WantsPercentage     *decimal.Decimal `json:"wants_percentage" validate:"omitempty,gte=0,lte=100"`
	FuturePercentage    *decimal.Decimal `json:"future_percentage" validate:"omitempty,gte=0,lte=100"`
}

type RebalanceRequest struct {
	Bucket string            `json:"bucket" validate:"required,bucket"`
	Value  *int              `json:"value"`
	Delta  *int              `json:"delta"`
	Split  *allocation.Split `json:"split"`
	Save   bool              `json:"save"`
}

type CreateCategoryRequest struct {
	Name             string  `json:"name" validate:"required,notblank,max=100"`
	Type             string  `json:"type" validate:"required,txtype"`
	AllocationBucket *string `json:"allocation_bucket" validate:"omitempty,bucket"`
	Icon             *string `json:"icon" validate:"omitempty,max=50"`
}

type UpdateCategoryRequest struct {
	Name             *string `json:"name" validate:"omitempty,notblank,max=100"`
	Type             *string `json:"type" validate:"omitempty,txtype"`
	AllocationBucket *string `json:"allocation_bucket" validate:"omitempty,bucket"`
	ClearBucket      bool    `json:"clear_allocation_bucket"`
	Icon             *string `json:"icon" validate:"omitempty,max=50"`
}

type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0,lte=1000000000"`
	Type        string          `json:"type" validate:"required,txtype"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
	Date        string          `json:"date" validate:"required,isodate"`
}

type UpdateTransactionRequest struct {
	Amount        *decimal.Decimal `json:"amount" validate:"omitempty,gt=0,lte=1000000000"`
	Type          *string          `json:"type" validate:"omitempty,txtype"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	ClearCategory bool             `json:"clear_category"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	Date          *string          `json:"date" validate:"omitempty,isodate"`
}

type ListTransactionsQuery struct {
	Type       string `form:"type" validate:"omitempty,txtype"`
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	From       string `form:"from" validate:"omitempty,isodate"`
	To         string `form:"to" validate:"omitempty,isodate"`
	Limit      int    `form:"limit,default=50" validate:"gte=1,lte=500"`
	Offset     int    `form:"offset" validate:"gte=0"`
	OrderBy    string `form:"order_by" validate:"omitempty,oneof=date_desc date_asc amount_desc amount_asc"`
}

type CreateBudgetRequest struct {
	CategoryID uuid.UUID       `json:"category_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required,gt=0,lte=1000000000"`
	Period     string          `json:"period" validate:"required,oneof=monthly weekly"`
	StartDate  string          `json:"start_date" validate:"omitempty,isodate"`
}

type UpdateBudgetRequest struct {
	CategoryID *uuid.UUID       `json:"category_id"`
	Amount     *decimal.Decimal `json:"amount" validate:"omitempty,gt=0,lte=1000000000"`
	Period     *string          `json:"period" validate:"omitempty,oneof=monthly weekly"`
	StartDate  *string          `json:"start_date" validate:"omitempty,isodate"`
}

type CreateRecurringRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0,lte=100000000"`
	Type        string          `json:"type" validate:"required,txtype"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Description *string         `json:"description" validate:"omitempty,max=255"`
	Frequency   string          `json:"frequency" validate:"required,frequency"`
	StartDate   string          `json:"start_date" validate:"required,isodate"`
	EndDate     *string         `json:"end_date" validate:"omitempty,isodate"`
}

type UpdateRecurringRequest struct {
	Amount        *decimal.Decimal `json:"amount" validate:"omitempty,gt=0,lte=100000000"`
	Type          *string          `json:"type" validate:"omitempty,txtype"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	ClearCategory bool             `json:"clear_category"`
	Description   *string          `json:"description" validate:"omitempty,max=255"`
	Frequency     *string          `json:"frequency" validate:"omitempty,frequency"`
	StartDate     *string          `json:"start_date" validate:"omitempty,isodate"`
	EndDate       *string          `json:"end_date" validate:"omitempty,isodate"`
	ClearEndDate  bool             `json:"clear_end_date"`
	IsActive      *bool            `json:"is_active"`
}

func init() {
	val.Validate.RegisterStructValidation(validateCreateProfile, CreateProfileRequest{})
	val.Validate.RegisterStructValidation(validateUpdateProfile, UpdateProfileRequest{})
}

func validateCreateProfile(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateProfileRequest)
	needs, wants, future := req.percentages()
	if !val.SumsTo100(needs, wants, future) {
		sl.ReportError(req.NeedsPercentage, "Percentages", "percentages", "percentsum", "")
	}
}

// Проценты в PATCH передаются либо все три, либо ни одного.
func validateUpdateProfile(sl validator.StructLevel) {
	req := sl.Current().Interface().(UpdateProfileRequest)
	given := 0
	for _, p := range []*decimal.Decimal{req.NeedsPercentage, req.WantsPercentage, req.FuturePercentage} {
		if p != nil {
			given++
		}
	}
	switch given {
	case 0:
	case 3:
		if !val.SumsTo100(*req.NeedsPercentage, *req.WantsPercentage, *req.FuturePercentage) {
			sl.ReportError(req.NeedsPercentage, "Percentages", "percentages", "percentsum", "")
		}
	default:
		sl.ReportError(req.NeedsPercentage, "Percentages", "percentages", "percentall", "")
	}
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid input: %w", err)
		}
		var errs []string
		for _, e := range verrs {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "yearmonth":
		return fmt.Sprintf("%s must be in YYYY-MM format", e.Field())
	case "isodate":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "bucket":
		return fmt.Sprintf("%s must be one of needs, wants, future", e.Field())
	case "txtype":
		return fmt.Sprintf("%s must be expense or income", e.Field())
	case "frequency":
		return fmt.Sprintf("%s must be one of daily, weekly, biweekly, monthly, quarterly, yearly", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a UUID", e.Field())
	case "percentsum":
		return "Percentages must sum to exactly 100%"
	case "percentall":
		return "needs_percentage, wants_percentage and future_percentage must be provided together"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// userID достаёт id пользователя, положенный middleware.
func userID(c *gin.Context) (int64, bool) {
	userIDVal, ok := c.Get(middleware.UserIDKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return 0, false
	}
	id, ok := userIDVal.(int64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "invalid user_id"})
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON разбирает тело запроса и прогоняет валидацию; при ошибке сам отвечает 400.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return false
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseDatePtr(s *string) *domain.Date {
	if s == nil {
		return nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}
