package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"
)

type Processor struct {
	store storage.RecurringStorage
	now   func() time.Time
}

func NewProcessor(store storage.RecurringStorage) *Processor {
	return &Processor{store: store, now: time.Now}
}

// Result summarises one run.
type Result struct {
	Rules       int `json:"rules"`
	Posted      int `json:"posted"`
	Deactivated int `json:"deactivated"`
}

// Run posts every due occurrence. userID 0 processes all users.
func (p *Processor) Run(ctx context.Context, userID int64) (Result, error) {
	today := domain.DateOf(p.now())

	due, err := p.store.ListDueRecurring(ctx, userID, today)
	if err != nil {
		return Result{}, fmt.Errorf("list due recurring: %w", err)
	}

	var res Result
	for _, r := range due {
		plan, err := PlanDue(r, today)
		if err != nil {
			slog.Error("Recurring plan failed", "error", err, "recurring_id", r.ID, "user_id", r.UserID)
			continue
		}
		if len(plan.Dates) == 0 && plan.Active == r.IsActive {
			continue
		}

		if err := p.store.PostOccurrences(ctx, r, plan.Dates, plan.NextDueDate, plan.Active); err != nil {
			return res, fmt.Errorf("post occurrences for %s: %w", r.ID, err)
		}

		res.Rules++
		res.Posted += len(plan.Dates)
		if r.IsActive && !plan.Active {
			res.Deactivated++
		}
		slog.Debug("Recurring processed", "recurring_id", r.ID, "user_id", r.UserID, "posted", len(plan.Dates), "next_due", plan.NextDueDate)
	}
	return res, nil
}

// Start runs the processor for all users every interval until ctx is done.
func (p *Processor) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			if res, err := p.Run(ctx, 0); err != nil {
				slog.Error("Recurring run failed", "error", err)
			} else if res.Posted > 0 {
				slog.Info("Recurring run completed", "rules", res.Rules, "posted", res.Posted, "deactivated", res.Deactivated)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
