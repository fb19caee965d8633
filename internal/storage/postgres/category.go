// internal/storage/postgres/category.go
package postgres

import (
	"budget-tracker/internal/domain"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id, user_id, name, type, allocation_bucket, icon, created_at, updated_at`

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.AllocationBucket, &c.Icon, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListCategories(ctx context.Context, userID int64, txType domain.TransactionType) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE user_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY type, name`, userID, string(txType))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (s *Storage) GetCategory(ctx context.Context, userID int64, id uuid.UUID) (*domain.Category, error) {
	c, err := scanCategory(s.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 AND id = $2`, userID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (s *Storage) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	created, err := scanCategory(s.db.QueryRow(ctx, `
		INSERT INTO categories (user_id, name, type, allocation_bucket, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+categoryColumns,
		c.UserID, sanitizeString(c.Name), c.Type, c.AllocationBucket, c.Icon))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, userID int64, id uuid.UUID, upd domain.CategoryUpdate) (*domain.Category, error) {
	var set updateSet
	if upd.Name != nil {
		set.add("name", sanitizeString(*upd.Name))
	}
	if upd.Type != nil {
		set.add("type", *upd.Type)
	}
	if upd.ClearBucket {
		set.add("allocation_bucket", nil)
	} else if upd.AllocationBucket != nil {
		set.add("allocation_bucket", *upd.AllocationBucket)
	}
	if upd.Icon != nil {
		set.add("icon", *upd.Icon)
	}
	if set.empty() {
		return s.GetCategory(ctx, userID, id)
	}
	set.cols = append(set.cols, "updated_at = now()")

	found, err := set.exec(ctx, s.db, "categories", userID, id)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.GetCategory(ctx, userID, id)
}

func (s *Storage) DeleteCategory(ctx context.Context, userID int64, id uuid.UUID) (*domain.Category, error) {
	c, err := scanCategory(s.db.QueryRow(ctx,
		`DELETE FROM categories WHERE user_id = $1 AND id = $2 RETURNING `+categoryColumns, userID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return c, nil
}

// SeedDefaultCategories создаёт стандартный набор категорий, если у пользователя их ещё нет.
func (s *Storage) SeedDefaultCategories(ctx context.Context, userID int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM categories WHERE user_id = $1`, userID).Scan(&existing); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if existing > 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, dc := range domain.DefaultCategories {
		var bucket *domain.Bucket
		if dc.Bucket != "" {
			b := dc.Bucket
			bucket = &b
		}
		batch.Queue(`INSERT INTO categories (user_id, name, type, allocation_bucket, icon) VALUES ($1, $2, $3, $4, $5)`,
			userID, dc.Name, dc.Type, bucket, dc.Icon)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert default categories: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	slog.Info("Default categories seeded", "user_id", userID, "count", len(domain.DefaultCategories))
	return nil
}
