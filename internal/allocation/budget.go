package allocation

import (
	"time"

	"budget-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetProgress struct {
	Budget      domain.Budget   `json:"budget"`
	PeriodStart domain.Date     `json:"period_start"`
	PeriodEnd   domain.Date     `json:"period_end"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Progress    int             `json:"progress"`
}

type BucketBudgets struct {
	Bucket  domain.Bucket    `json:"bucket"`
	Target  decimal.Decimal  `json:"target"`
	Spent   decimal.Decimal  `json:"spent"`
	Budgets []BudgetProgress `json:"budgets"`
}

// BudgetWindow returns the period of b that contains now. Monthly budgets
// follow calendar months; weekly ones run in 7-day steps from the start date.
func BudgetWindow(b domain.Budget, now time.Time) (start, end domain.Date) {
	today := domain.DateOf(now)
	if b.Period == domain.BudgetWeekly {
		anchor := b.StartDate
		days := int(today.Sub(anchor.Time).Hours() / 24)
		weeks := days / 7
		if days < 0 && days%7 != 0 {
			weeks--
		}
		start = anchor.AddDays(weeks * 7)
		return start, start.AddDays(7)
	}
	start = domain.NewDate(today.Year(), today.Month(), 1)
	return start, domain.Date{Time: start.AddDate(0, 1, 0)}
}

// TrackBudgets measures every budget against the real expense total of its
// category inside the budget's current window.
func TrackBudgets(budgets []domain.Budget, txs []domain.Transaction, now time.Time) []BudgetProgress {
	out := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		start, end := BudgetWindow(b, now)
		spent := categorySpend(txs, b.CategoryID, start, end)

		remaining := b.Amount.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		progress := 0
		if b.Amount.IsPositive() {
			progress = int(spent.Div(b.Amount).Mul(hundred).Round(0).IntPart())
			if progress > 100 {
				progress = 100
			}
		}

		out = append(out, BudgetProgress{
			Budget:      b,
			PeriodStart: start,
			PeriodEnd:   end,
			Spent:       spent,
			Remaining:   remaining,
			Progress:    progress,
		})
	}
	return out
}

// GroupByBucket arranges budget progress under the bucket of each budget's
// category, with the bucket target from the profile when there is one.
// Budgets of categories without a bucket are dropped.
func GroupByBucket(progress []BudgetProgress, profile *domain.Profile) []BucketBudgets {
	var targets BucketAmounts
	if profile != nil {
		targets = Targets(*profile)
	}

	groups := make([]BucketBudgets, 0, len(domain.BucketOrder))
	for _, bucket := range domain.BucketOrder {
		g := BucketBudgets{
			Bucket:  bucket,
			Target:  targets.Get(bucket),
			Spent:   decimal.Zero,
			Budgets: make([]BudgetProgress, 0),
		}
		for _, p := range progress {
			c := p.Budget.Category
			if c == nil || c.AllocationBucket == nil || *c.AllocationBucket != bucket {
				continue
			}
			g.Budgets = append(g.Budgets, p)
			g.Spent = g.Spent.Add(p.Spent)
		}
		groups = append(groups, g)
	}
	return groups
}

func categorySpend(txs []domain.Transaction, categoryID uuid.UUID, start, end domain.Date) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.Type != domain.TransactionExpense || t.CategoryID == nil || *t.CategoryID != categoryID {
			continue
		}
		if t.Date.Before(start.Time) || !t.Date.Before(end.Time) {
			continue
		}
		sum = sum.Add(t.Amount)
	}
	return sum
}
