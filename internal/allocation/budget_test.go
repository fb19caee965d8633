package allocation_test

import (
	"testing"
	"time"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetWindow(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		budget    domain.Budget
		wantStart string
		wantEnd   string
	}{
		{
			name:      "monthly follows the calendar month",
			budget:    domain.Budget{Period: domain.BudgetMonthly, StartDate: domain.NewDate(2024, 11, 17)},
			wantStart: "2025-03-01",
			wantEnd:   "2025-04-01",
		},
		{
			name:      "weekly steps from the start date",
			budget:    domain.Budget{Period: domain.BudgetWeekly, StartDate: domain.NewDate(2025, 3, 3)},
			wantStart: "2025-03-17",
			wantEnd:   "2025-03-24",
		},
		{
			name:      "weekly window starting today",
			budget:    domain.Budget{Period: domain.BudgetWeekly, StartDate: domain.NewDate(2025, 3, 13)},
			wantStart: "2025-03-20",
			wantEnd:   "2025-03-27",
		},
		{
			name:      "weekly budget starting in the future",
			budget:    domain.Budget{Period: domain.BudgetWeekly, StartDate: domain.NewDate(2025, 3, 22)},
			wantStart: "2025-03-15",
			wantEnd:   "2025-03-22",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := allocation.BudgetWindow(tt.budget, now)
			assert.Equal(t, tt.wantStart, start.String())
			assert.Equal(t, tt.wantEnd, end.String())
		})
	}
}

func TestTrackBudgets(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	groceries := category("Groceries", domain.TransactionExpense, bucketPtr(domain.BucketNeeds))
	dining := category("Dining Out", domain.TransactionExpense, bucketPtr(domain.BucketWants))

	budgets := []domain.Budget{
		{ID: uuid.New(), CategoryID: groceries.ID, Amount: dec("400"), Period: domain.BudgetMonthly, StartDate: domain.NewDate(2025, 1, 1), Category: groceries},
		{ID: uuid.New(), CategoryID: dining.ID, Amount: dec("100"), Period: domain.BudgetMonthly, StartDate: domain.NewDate(2025, 1, 1), Category: dining},
	}
	txs := []domain.Transaction{
		tx("150", domain.TransactionExpense, domain.NewDate(2025, 3, 2), groceries),
		tx("50", domain.TransactionExpense, domain.NewDate(2025, 3, 19), groceries),
		tx("80", domain.TransactionExpense, domain.NewDate(2025, 2, 27), groceries),
		tx("130", domain.TransactionExpense, domain.NewDate(2025, 3, 5), dining),
		tx("20", domain.TransactionIncome, domain.NewDate(2025, 3, 5), dining),
	}

	got := allocation.TrackBudgets(budgets, txs, now)
	require.Len(t, got, 2)

	assertDecimal(t, "200", got[0].Spent)
	assertDecimal(t, "200", got[0].Remaining)
	assert.Equal(t, 50, got[0].Progress)

	assertDecimal(t, "130", got[1].Spent)
	assertDecimal(t, "0", got[1].Remaining)
	assert.Equal(t, 100, got[1].Progress)

	groups := allocation.GroupByBucket(got, testProfile())
	require.Len(t, groups, 3)
	assert.Equal(t, domain.BucketNeeds, groups[0].Bucket)
	assertDecimal(t, "2000", groups[0].Target)
	assertDecimal(t, "200", groups[0].Spent)
	require.Len(t, groups[1].Budgets, 1)
	assertDecimal(t, "130", groups[1].Spent)
	assert.Empty(t, groups[2].Budgets)
}

func TestGroupByBucket_NoProfile(t *testing.T) {
	groups := allocation.GroupByBucket(nil, nil)
	require.Len(t, groups, 3)
	for _, g := range groups {
		assertDecimal(t, "0", g.Target)
		assert.NotNil(t, g.Budgets)
	}
}
