// internal/storage/postgres/recurring.go
package postgres

import (
	"budget-tracker/internal/domain"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const recurringSelect = `
	SELECT r.id, r.user_id, r.category_id, r.amount, r.type, r.description, r.frequency,
	       r.start_date, r.end_date, r.next_due_date, r.last_generated_date, r.is_active,
	       r.created_at, r.updated_at,
	       c.name, c.type, c.allocation_bucket, c.icon, c.created_at, c.updated_at
	FROM recurring_transactions r
	LEFT JOIN categories c ON c.id = r.category_id`

func scanRecurring(row rowScanner) (*domain.RecurringTransaction, error) {
	var (
		r             domain.RecurringTransaction
		start, next   time.Time
		end, lastDate *time.Time
		cat           joinedCategory
	)
	dest := append([]any{
		&r.ID, &r.UserID, &r.CategoryID, &r.Amount, &r.Type, &r.Description, &r.Frequency,
		&start, &end, &next, &lastDate, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	}, cat.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	r.StartDate = domain.DateOf(start)
	r.EndDate = datePtr(end)
	r.NextDueDate = domain.DateOf(next)
	r.LastGeneratedDate = datePtr(lastDate)
	r.Category = cat.category(r.CategoryID, r.UserID)
	return &r, nil
}

func (s *Storage) queryRecurring(ctx context.Context, sql string, args ...any) ([]domain.RecurringTransaction, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []domain.RecurringTransaction{}
	for rows.Next() {
		r, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recurring: %w", err)
		}
		rules = append(rules, *r)
	}
	return rules, rows.Err()
}

func (s *Storage) ListRecurring(ctx context.Context, userID int64) ([]domain.RecurringTransaction, error) {
	rules, err := s.queryRecurring(ctx, recurringSelect+` WHERE r.user_id = $1 ORDER BY r.next_due_date, r.created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring: %w", err)
	}
	return rules, nil
}

func (s *Storage) ListDueRecurring(ctx context.Context, userID int64, asOf domain.Date) ([]domain.RecurringTransaction, error) {
	rules, err := s.queryRecurring(ctx, recurringSelect+`
		WHERE r.is_active AND r.next_due_date <= $1 AND ($2::bigint = 0 OR r.user_id = $2)
		ORDER BY r.next_due_date`, asOf.Time, userID)
	if err != nil {
		return nil, fmt.Errorf("list due recurring: %w", err)
	}
	return rules, nil
}

func (s *Storage) GetRecurring(ctx context.Context, userID int64, id uuid.UUID) (*domain.RecurringTransaction, error) {
	r, err := scanRecurring(s.db.QueryRow(ctx, recurringSelect+` WHERE r.user_id = $1 AND r.id = $2`, userID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recurring: %w", err)
	}
	return r, nil
}

func (s *Storage) CreateRecurring(ctx context.Context, r domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	var id uuid.UUID
	err := s.db.QueryRow(ctx, `
		INSERT INTO recurring_transactions
			(user_id, category_id, amount, type, description, frequency, start_date, end_date, next_due_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		r.UserID, r.CategoryID, r.Amount, r.Type, sanitizePtr(r.Description), r.Frequency,
		r.StartDate.Time, dateArg(r.EndDate), r.NextDueDate.Time, r.IsActive,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create recurring: %w", err)
	}
	return s.GetRecurring(ctx, r.UserID, id)
}

func (s *Storage) UpdateRecurring(ctx context.Context, userID int64, id uuid.UUID, upd domain.RecurringUpdate) (*domain.RecurringTransaction, error) {
	var set updateSet
	if upd.Amount != nil {
		set.add("amount", *upd.Amount)
	}
	if upd.Type != nil {
		set.add("type", *upd.Type)
	}
	if upd.Description != nil {
		set.add("description", sanitizeString(*upd.Description))
	}
	if upd.Frequency != nil {
		set.add("frequency", *upd.Frequency)
	}
	if upd.StartDate != nil {
		set.add("start_date", upd.StartDate.Time)
	}
	if upd.ClearEndDate {
		set.add("end_date", nil)
	} else if upd.EndDate != nil {
		set.add("end_date", upd.EndDate.Time)
	}
	if upd.NextDueDate != nil {
		set.add("next_due_date", upd.NextDueDate.Time)
	}
	if upd.IsActive != nil {
		set.add("is_active", *upd.IsActive)
	}
	if upd.ClearCategory {
		set.add("category_id", nil)
	} else if upd.CategoryID != nil {
		set.add("category_id", *upd.CategoryID)
	}
	if set.empty() {
		return s.GetRecurring(ctx, userID, id)
	}
	set.cols = append(set.cols, "updated_at = now()")

	found, err := set.exec(ctx, s.db, "recurring_transactions", userID, id)
	if err != nil {
		return nil, fmt.Errorf("update recurring: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.GetRecurring(ctx, userID, id)
}

func (s *Storage) DeleteRecurring(ctx context.Context, userID int64, id uuid.UUID) (*domain.RecurringTransaction, error) {
	r, err := s.GetRecurring(ctx, userID, id)
	if err != nil || r == nil {
		return nil, err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM recurring_transactions WHERE user_id = $1 AND id = $2`, userID, id); err != nil {
		return nil, fmt.Errorf("delete recurring: %w", err)
	}
	return r, nil
}

// PostOccurrences создаёт транзакции за каждую дату и сдвигает правило в одной транзакции БД.
func (s *Storage) PostOccurrences(ctx context.Context, r domain.RecurringTransaction, dates []domain.Date, next domain.Date, active bool) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, d := range dates {
		_, err := insertTransaction(ctx, tx, domain.Transaction{
			UserID:      r.UserID,
			CategoryID:  r.CategoryID,
			Amount:      r.Amount,
			Type:        r.Type,
			Description: r.Description,
			Date:        d,
		})
		if err != nil {
			return fmt.Errorf("insert occurrence %s: %w", d, err)
		}
	}

	var last *domain.Date
	if len(dates) > 0 {
		last = &dates[len(dates)-1]
	} else {
		last = r.LastGeneratedDate
	}

	_, err = tx.Exec(ctx, `
		UPDATE recurring_transactions
		SET next_due_date = $1, last_generated_date = $2, is_active = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5`,
		next.Time, dateArg(last), active, r.ID, r.UserID)
	if err != nil {
		return fmt.Errorf("advance recurring: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	slog.Debug("Recurring occurrences posted", "rule_id", r.ID, "count", len(dates), "next_due", next.String())
	return nil
}
