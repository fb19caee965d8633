// internal/storage/postgres/transaction.go
package postgres

import (
	"budget-tracker/internal/domain"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionSelect = `
	SELECT t.id, t.user_id, t.category_id, t.amount, t.type, t.description, t.date, t.created_at,
	       c.name, c.type, c.allocation_bucket, c.icon, c.created_at, c.updated_at
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id`

// joinedCategory holds the nullable columns of a LEFT JOIN on categories.
type joinedCategory struct {
	name      *string
	txType    *domain.TransactionType
	bucket    *domain.Bucket
	icon      *string
	createdAt *time.Time
	updatedAt *time.Time
}

func (j *joinedCategory) dest() []any {
	return []any{&j.name, &j.txType, &j.bucket, &j.icon, &j.createdAt, &j.updatedAt}
}

func (j *joinedCategory) category(id *uuid.UUID, userID int64) *domain.Category {
	if id == nil || j.name == nil {
		return nil
	}
	c := &domain.Category{
		ID:               *id,
		UserID:           userID,
		Name:             *j.name,
		AllocationBucket: j.bucket,
		Icon:             j.icon,
	}
	if j.txType != nil {
		c.Type = *j.txType
	}
	if j.createdAt != nil {
		c.CreatedAt = *j.createdAt
	}
	if j.updatedAt != nil {
		c.UpdatedAt = *j.updatedAt
	}
	return c
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		t    domain.Transaction
		date time.Time
		cat  joinedCategory
	)
	dest := append([]any{&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Type, &t.Description, &date, &t.CreatedAt}, cat.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	t.Date = domain.DateOf(date)
	t.Category = cat.category(t.CategoryID, t.UserID)
	return &t, nil
}

var transactionOrder = map[domain.TransactionOrder]string{
	domain.OrderDateDesc:   "t.date DESC, t.created_at DESC",
	domain.OrderDateAsc:    "t.date ASC, t.created_at ASC",
	domain.OrderAmountDesc: "t.amount DESC, t.date DESC",
	domain.OrderAmountAsc:  "t.amount ASC, t.date DESC",
}

func (s *Storage) ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	conds := []string{"t.user_id = $1"}
	args := []any{userID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != "" {
		conds = append(conds, "t.type = "+arg(filter.Type))
	}
	if filter.CategoryID != nil {
		conds = append(conds, "t.category_id = "+arg(*filter.CategoryID))
	}
	if filter.From != nil {
		conds = append(conds, "t.date >= "+arg(filter.From.Time))
	}
	if filter.To != nil {
		conds = append(conds, "t.date < "+arg(filter.To.Time))
	}

	order, ok := transactionOrder[filter.OrderBy]
	if !ok {
		order = transactionOrder[domain.OrderDateDesc]
	}

	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	sb.WriteString(" ORDER BY " + order)
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(filter.Limit))
	}
	if filter.Offset > 0 {
		sb.WriteString(" OFFSET " + arg(filter.Offset))
	}

	rows, err := s.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, *t)
	}
	return txs, rows.Err()
}

func (s *Storage) GetTransaction(ctx context.Context, userID int64, id uuid.UUID) (*domain.Transaction, error) {
	return getTransaction(ctx, s.db, userID, id)
}

func getTransaction(ctx context.Context, q querier, userID int64, id uuid.UUID) (*domain.Transaction, error) {
	t, err := scanTransaction(q.QueryRow(ctx, transactionSelect+` WHERE t.user_id = $1 AND t.id = $2`, userID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func insertTransaction(ctx context.Context, q querier, t domain.Transaction) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, `
		INSERT INTO transactions (user_id, category_id, amount, type, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		t.UserID, t.CategoryID, t.Amount, t.Type, sanitizePtr(t.Description), t.Date.Time,
	).Scan(&id)
	return id, err
}

func (s *Storage) CreateTransaction(ctx context.Context, t domain.Transaction) (*domain.Transaction, error) {
	id, err := insertTransaction(ctx, s.db, t)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return s.GetTransaction(ctx, t.UserID, id)
}

func (s *Storage) UpdateTransaction(ctx context.Context, userID int64, id uuid.UUID, upd domain.TransactionUpdate) (*domain.Transaction, error) {
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
	if upd.Date != nil {
		set.add("date", upd.Date.Time)
	}
	if upd.ClearCategory {
		set.add("category_id", nil)
	} else if upd.CategoryID != nil {
		set.add("category_id", *upd.CategoryID)
	}
	if set.empty() {
		return s.GetTransaction(ctx, userID, id)
	}

	found, err := set.exec(ctx, s.db, "transactions", userID, id)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.GetTransaction(ctx, userID, id)
}

func (s *Storage) DeleteTransaction(ctx context.Context, userID int64, id uuid.UUID) (*domain.Transaction, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	t, err := getTransaction(ctx, tx, userID, id)
	if err != nil || t == nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND id = $2`, userID, id); err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return t, nil
}
