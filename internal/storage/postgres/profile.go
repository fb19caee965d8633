// internal/storage/postgres/profile.go
package postgres

import (
	"budget-tracker/internal/domain"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const profileColumns = `user_id, monthly_income_target, needs_percentage, wants_percentage,
	future_percentage, created_at, updated_at`

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.UserID, &p.MonthlyIncomeTarget, &p.NeedsPercentage, &p.WantsPercentage,
		&p.FuturePercentage, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := scanProfile(s.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM financial_profiles WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// CreateProfile returns nil, nil when the user already has a profile.
func (s *Storage) CreateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	created, err := scanProfile(s.db.QueryRow(ctx, `
		INSERT INTO financial_profiles (user_id, monthly_income_target, needs_percentage, wants_percentage, future_percentage)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING `+profileColumns,
		p.UserID, p.MonthlyIncomeTarget, p.NeedsPercentage, p.WantsPercentage, p.FuturePercentage))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return created, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.Profile, error) {
	var set updateSet
	if upd.MonthlyIncomeTarget != nil {
		set.add("monthly_income_target", *upd.MonthlyIncomeTarget)
	}
	if upd.NeedsPercentage != nil {
		set.add("needs_percentage", *upd.NeedsPercentage)
	}
	if upd.WantsPercentage != nil {
		set.add("wants_percentage", *upd.WantsPercentage)
	}
	if upd.FuturePercentage != nil {
		set.add("future_percentage", *upd.FuturePercentage)
	}
	if set.empty() {
		return s.GetProfile(ctx, userID)
	}
	set.cols = append(set.cols, "updated_at = now()")

	found, err := set.exec(ctx, s.db, "financial_profiles", userID, nil)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.GetProfile(ctx, userID)
}
