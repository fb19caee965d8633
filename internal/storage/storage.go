// internal/storage/storage.go
package storage

import (
	"budget-tracker/internal/domain"
	"context"

	"github.com/google/uuid"
)

// Все методы Get*/Update*/Delete* возвращают nil, nil, если запись не найдена
// или принадлежит другому пользователю.

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks -source=storage.go

type ProfileStorage interface {
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	CreateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.Profile, error)
}

type CategoryStorage interface {
	ListCategories(ctx context.Context, userID int64, txType domain.TransactionType) ([]domain.Category, error)
	GetCategory(ctx context.Context, userID int64, id uuid.UUID) (*domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, userID int64, id uuid.UUID, upd domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID int64, id uuid.UUID) (*domain.Category, error)
	SeedDefaultCategories(ctx context.Context, userID int64) error
}

type TransactionStorage interface {
	ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, userID int64, id uuid.UUID) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, t domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID int64, id uuid.UUID, upd domain.TransactionUpdate) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID int64, id uuid.UUID) (*domain.Transaction, error)
}

type BudgetStorage interface {
	ListBudgets(ctx context.Context, userID int64) ([]domain.Budget, error)
	GetBudget(ctx context.Context, userID int64, id uuid.UUID) (*domain.Budget, error)
	CreateBudget(ctx context.Context, b domain.Budget) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, userID int64, id uuid.UUID, upd domain.BudgetUpdate) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID int64, id uuid.UUID) (*domain.Budget, error)
}

type RecurringStorage interface {
	ListRecurring(ctx context.Context, userID int64) ([]domain.RecurringTransaction, error)
	GetRecurring(ctx context.Context, userID int64, id uuid.UUID) (*domain.RecurringTransaction, error)
	CreateRecurring(ctx context.Context, r domain.RecurringTransaction) (*domain.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, userID int64, id uuid.UUID, upd domain.RecurringUpdate) (*domain.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, userID int64, id uuid.UUID) (*domain.RecurringTransaction, error)
	// ListDueRecurring returns active rules with next_due_date <= asOf; userID 0 means every user.
	ListDueRecurring(ctx context.Context, userID int64, asOf domain.Date) ([]domain.RecurringTransaction, error)
	// PostOccurrences inserts one transaction per date and advances the rule atomically.
	PostOccurrences(ctx context.Context, r domain.RecurringTransaction, dates []domain.Date, next domain.Date, active bool) error
}
