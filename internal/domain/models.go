// internal/domain/models.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

func (t TransactionType) Valid() bool {
	return t == TransactionExpense || t == TransactionIncome
}

type Category struct {
	ID               uuid.UUID       `json:"id"`
	UserID           int64           `json:"-"`
	Name             string          `json:"name"`
	Type             TransactionType `json:"type"`
	AllocationBucket *Bucket         `json:"allocation_bucket"`
	Icon             *string         `json:"icon"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type CategoryUpdate struct {
	Name             *string
	Type             *TransactionType
	AllocationBucket *Bucket
	ClearBucket      bool
	Icon             *string
}

// Transaction: одна запись о доходе или расходе. Category заполняется
// при чтении, если у транзакции есть категория.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int64           `json:"-"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description *string         `json:"description"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	Category    *Category       `json:"category,omitempty"`
}

// Bucket resolves the allocation bucket through the transaction's category.
func (t Transaction) Bucket() (Bucket, bool) {
	if t.Category == nil || t.Category.AllocationBucket == nil {
		return "", false
	}
	return *t.Category.AllocationBucket, true
}

type TransactionUpdate struct {
	Amount        *decimal.Decimal
	Type          *TransactionType
	Description   *string
	Date          *Date
	CategoryID    *uuid.UUID
	ClearCategory bool
}

type TransactionOrder string

const (
	OrderDateDesc   TransactionOrder = "date_desc"
	OrderDateAsc    TransactionOrder = "date_asc"
	OrderAmountDesc TransactionOrder = "amount_desc"
	OrderAmountAsc  TransactionOrder = "amount_asc"
)

// TransactionFilter: параметры выборки. Нулевые значения означают "без фильтра",
// Limit == 0 значит без ограничения.
type TransactionFilter struct {
	Type       TransactionType
	CategoryID *uuid.UUID
	From       *Date
	To         *Date // exclusive
	Limit      int
	Offset     int
	OrderBy    TransactionOrder
}

type Profile struct {
	UserID              int64           `json:"-"`
	MonthlyIncomeTarget decimal.Decimal `json:"monthly_income_target"`
	NeedsPercentage     decimal.Decimal `json:"needs_percentage"`
	WantsPercentage     decimal.Decimal `json:"wants_percentage"`
	FuturePercentage    decimal.Decimal `json:"future_percentage"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Percentage returns the configured share of the given bucket.
func (p Profile) Percentage(b Bucket) decimal.Decimal {
	switch b {
	case BucketNeeds:
		return p.NeedsPercentage
	case BucketWants:
		return p.WantsPercentage
	case BucketFuture:
		return p.FuturePercentage
	}
	return decimal.Zero
}

type ProfileUpdate struct {
	MonthlyIncomeTarget *decimal.Decimal
	NeedsPercentage     *decimal.Decimal
	WantsPercentage     *decimal.Decimal
	FuturePercentage    *decimal.Decimal
}

func (u ProfileUpdate) Empty() bool {
	return u.MonthlyIncomeTarget == nil && u.NeedsPercentage == nil &&
		u.WantsPercentage == nil && u.FuturePercentage == nil
}

type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetWeekly  BudgetPeriod = "weekly"
)

type Budget struct {
	ID         uuid.UUID       `json:"id"`
	UserID     int64           `json:"-"`
	CategoryID uuid.UUID       `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  Date            `json:"start_date"`
	CreatedAt  time.Time       `json:"created_at"`
	Category   *Category       `json:"category,omitempty"`
}

type BudgetUpdate struct {
	CategoryID *uuid.UUID
	Amount     *decimal.Decimal
	Period     *BudgetPeriod
	StartDate  *Date
}

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

type RecurringTransaction struct {
	ID                uuid.UUID       `json:"id"`
	UserID            int64           `json:"-"`
	CategoryID        *uuid.UUID      `json:"category_id"`
	Amount            decimal.Decimal `json:"amount"`
	Type              TransactionType `json:"type"`
	Description       *string         `json:"description"`
	Frequency         Frequency       `json:"frequency"`
	StartDate         Date            `json:"start_date"`
	EndDate           *Date           `json:"end_date"`
	NextDueDate       Date            `json:"next_due_date"`
	LastGeneratedDate *Date           `json:"last_generated_date"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Category          *Category       `json:"category,omitempty"`
}

type RecurringUpdate struct {
	Amount        *decimal.Decimal
	Type          *TransactionType
	Description   *string
	Frequency     *Frequency
	StartDate     *Date
	EndDate       *Date
	ClearEndDate  bool
	NextDueDate   *Date
	IsActive      *bool
	CategoryID    *uuid.UUID
	ClearCategory bool
}
