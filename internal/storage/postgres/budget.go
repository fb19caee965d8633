// internal/storage/postgres/budget.go
package postgres

import (
	"budget-tracker/internal/domain"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const budgetSelect = `
	SELECT b.id, b.user_id, b.category_id, b.amount, b.period, b.start_date, b.created_at,
	       c.name, c.type, c.allocation_bucket, c.icon, c.created_at, c.updated_at
	FROM budgets b
	LEFT JOIN categories c ON c.id = b.category_id`

func scanBudget(row rowScanner) (*domain.Budget, error) {
	var (
		b     domain.Budget
		start time.Time
		cat   joinedCategory
	)
	dest := append([]any{&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &start, &b.CreatedAt}, cat.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.StartDate = domain.DateOf(start)
	b.Category = cat.category(&b.CategoryID, b.UserID)
	return &b, nil
}

func (s *Storage) ListBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	rows, err := s.db.Query(ctx, budgetSelect+` WHERE b.user_id = $1 ORDER BY b.created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

func (s *Storage) GetBudget(ctx context.Context, userID int64, id uuid.UUID) (*domain.Budget, error) {
	b, err := scanBudget(s.db.QueryRow(ctx, budgetSelect+` WHERE b.user_id = $1 AND b.id = $2`, userID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get budget: %w", err)
	}
	return b, nil
}

func (s *Storage) CreateBudget(ctx context.Context, b domain.Budget) (*domain.Budget, error) {
	var id uuid.UUID
	err := s.db.QueryRow(ctx, `
		INSERT INTO budgets (user_id, category_id, amount, period, start_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		b.UserID, b.CategoryID, b.Amount, b.Period, b.StartDate.Time,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}
	return s.GetBudget(ctx, b.UserID, id)
}

func (s *Storage) UpdateBudget(ctx context.Context, userID int64, id uuid.UUID, upd domain.BudgetUpdate) (*domain.Budget, error) {
	var set updateSet
	if upd.CategoryID != nil {
		set.add("category_id", *upd.CategoryID)
	}
	if upd.Amount != nil {
		set.add("amount", *upd.Amount)
	}
	if upd.Period != nil {
		set.add("period", *upd.Period)
	}
	if upd.StartDate != nil {
		set.add("start_date", upd.StartDate.Time)
	}
	if set.empty() {
		return s.GetBudget(ctx, userID, id)
	}

	found, err := set.exec(ctx, s.db, "budgets", userID, id)
	if err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.GetBudget(ctx, userID, id)
}

func (s *Storage) DeleteBudget(ctx context.Context, userID int64, id uuid.UUID) (*domain.Budget, error) {
	b, err := s.GetBudget(ctx, userID, id)
	if err != nil || b == nil {
		return nil, err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND id = $2`, userID, id); err != nil {
		return nil, fmt.Errorf("delete budget: %w", err)
	}
	return b, nil
}
