package allocation_test

import (
	"testing"
	"time"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bucketPtr(b domain.Bucket) *domain.Bucket {
	return &b
}

func category(name string, typ domain.TransactionType, bucket *domain.Bucket) *domain.Category {
	return &domain.Category{ID: uuid.New(), Name: name, Type: typ, AllocationBucket: bucket}
}

func tx(amount string, typ domain.TransactionType, date domain.Date, c *domain.Category) domain.Transaction {
	t := domain.Transaction{
		ID:       uuid.New(),
		Amount:   dec(amount),
		Type:     typ,
		Date:     date,
		Category: c,
	}
	if c != nil {
		id := c.ID
		t.CategoryID = &id
	}
	return t
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		UserID:              1,
		MonthlyIncomeTarget: dec("4000"),
		NeedsPercentage:     dec("50"),
		WantsPercentage:     dec("30"),
		FuturePercentage:    dec("20"),
	}
}

func TestSummarizeAllocation(t *testing.T) {
	rent := category("Rent", domain.TransactionExpense, bucketPtr(domain.BucketNeeds))
	dining := category("Dining Out", domain.TransactionExpense, bucketPtr(domain.BucketWants))
	savings := category("Savings", domain.TransactionExpense, bucketPtr(domain.BucketFuture))
	misc := category("Misc", domain.TransactionExpense, nil)
	salary := category("Salary", domain.TransactionIncome, nil)

	start, end, err := allocation.MonthRange("2025-03")
	require.NoError(t, err)

	txs := []domain.Transaction{
		tx("1500", domain.TransactionExpense, domain.NewDate(2025, 3, 1), rent),
		tx("120.50", domain.TransactionExpense, domain.NewDate(2025, 3, 10), dining),
		tx("79.50", domain.TransactionExpense, domain.NewDate(2025, 3, 31), dining),
		tx("500", domain.TransactionExpense, domain.NewDate(2025, 3, 15), savings),
		tx("42", domain.TransactionExpense, domain.NewDate(2025, 3, 15), misc),
		tx("13", domain.TransactionExpense, domain.NewDate(2025, 3, 16), nil),
		tx("3800", domain.TransactionIncome, domain.NewDate(2025, 3, 1), salary),
		// вне периода
		tx("999", domain.TransactionExpense, domain.NewDate(2025, 2, 28), rent),
		tx("999", domain.TransactionExpense, domain.NewDate(2025, 4, 1), rent),
		tx("999", domain.TransactionIncome, domain.NewDate(2025, 4, 1), salary),
	}

	got, err := allocation.SummarizeAllocation(txs, testProfile(), start, end)
	require.NoError(t, err)

	assertDecimal(t, "3800", got.Income)
	assertDecimal(t, "2000", got.Targets.Needs)
	assertDecimal(t, "1200", got.Targets.Wants)
	assertDecimal(t, "800", got.Targets.Future)
	assertDecimal(t, "1500", got.Actual.Needs)
	assertDecimal(t, "200", got.Actual.Wants)
	assertDecimal(t, "500", got.Actual.Future)
}

func TestSummarizeAllocation_IncomeFallsBackToTarget(t *testing.T) {
	start, end, err := allocation.MonthRange("2025-03")
	require.NoError(t, err)

	got, err := allocation.SummarizeAllocation(nil, testProfile(), start, end)
	require.NoError(t, err)

	assertDecimal(t, "4000", got.Income)
	assertDecimal(t, "0", got.Actual.Needs)
	assertDecimal(t, "0", got.Actual.Wants)
	assertDecimal(t, "0", got.Actual.Future)
}

func TestSummarizeAllocation_NullBucketExcluded(t *testing.T) {
	start, end, err := allocation.MonthRange("2025-03")
	require.NoError(t, err)

	txs := []domain.Transaction{
		tx("250", domain.TransactionExpense, domain.NewDate(2025, 3, 5), category("Gift", domain.TransactionExpense, nil)),
	}
	got, err := allocation.SummarizeAllocation(txs, testProfile(), start, end)
	require.NoError(t, err)

	assertDecimal(t, "0", got.Actual.Needs.Add(got.Actual.Wants).Add(got.Actual.Future))
}

func TestSummarizeAllocation_MissingProfile(t *testing.T) {
	start, end, err := allocation.MonthRange("2025-03")
	require.NoError(t, err)

	_, err = allocation.SummarizeAllocation(nil, nil, start, end)
	assert.ErrorIs(t, err, allocation.ErrMissingProfile)
}

func TestSummarizeAllocation_DecemberRange(t *testing.T) {
	start, end, err := allocation.MonthRange("2024-12")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", start.String())
	assert.Equal(t, "2025-01-01", end.String())

	needs := category("Rent", domain.TransactionExpense, bucketPtr(domain.BucketNeeds))
	txs := []domain.Transaction{
		tx("10", domain.TransactionExpense, domain.NewDate(2024, 12, 31), needs),
		tx("20", domain.TransactionExpense, domain.NewDate(2025, 1, 1), needs),
	}
	got, err := allocation.SummarizeAllocation(txs, testProfile(), start, end)
	require.NoError(t, err)
	assertDecimal(t, "10", got.Actual.Needs)
}

func TestMonthRange_Invalid(t *testing.T) {
	for _, m := range []string{"", "2025", "2025-13", "03-2025", "2025/03"} {
		_, _, err := allocation.MonthRange(m)
		assert.ErrorIs(t, err, allocation.ErrInvalidMonth, m)
	}
}

func TestComplianceOf(t *testing.T) {
	s := allocation.Summary{
		Targets: allocation.BucketAmounts{Needs: dec("2000"), Wants: dec("1200"), Future: dec("0")},
		Actual:  allocation.BucketAmounts{Needs: dec("1500"), Wants: dec("1500"), Future: dec("100")},
	}
	got := allocation.ComplianceOf(s)

	assert.Equal(t, allocation.BucketCompliance{Percent: 75}, got.Needs)
	assert.Equal(t, allocation.BucketCompliance{Percent: 125, Over: true}, got.Wants)
	assert.Equal(t, allocation.BucketCompliance{}, got.Future)
}

func TestSummarizeInsights_Empty(t *testing.T) {
	got := allocation.SummarizeInsights(nil, domain.NewDate(2025, 1, 1))

	assertDecimal(t, "0", got.TotalExpenses)
	assertDecimal(t, "0", got.TotalIncome)
	assertDecimal(t, "0", got.Balance)
	assert.Equal(t, 0, got.TransactionCount)
	assert.NotNil(t, got.SpendingByCategory)
	assert.Empty(t, got.SpendingByCategory)
	assertDecimal(t, "0", allocation.SavingsRate(got))
}

func TestSummarizeInsights(t *testing.T) {
	groceries := category("Groceries", domain.TransactionExpense, bucketPtr(domain.BucketNeeds))
	dining := category("Dining Out", domain.TransactionExpense, bucketPtr(domain.BucketWants))
	cinema := category("Cinema", domain.TransactionExpense, bucketPtr(domain.BucketWants))
	salary := category("Salary", domain.TransactionIncome, nil)

	start := domain.NewDate(2025, 3, 1)
	txs := []domain.Transaction{
		tx("100", domain.TransactionExpense, domain.NewDate(2025, 3, 2), dining),
		tx("300", domain.TransactionExpense, domain.NewDate(2025, 3, 3), groceries),
		tx("100", domain.TransactionExpense, domain.NewDate(2025, 3, 4), cinema),
		tx("200", domain.TransactionExpense, domain.NewDate(2025, 3, 5), nil),
		tx("50", domain.TransactionExpense, domain.NewDate(2025, 3, 6), groceries),
		tx("1000", domain.TransactionIncome, domain.NewDate(2025, 3, 1), salary),
		tx("5000", domain.TransactionIncome, domain.NewDate(2025, 2, 28), salary),
		tx("5000", domain.TransactionExpense, domain.NewDate(2025, 2, 28), groceries),
	}

	got := allocation.SummarizeInsights(txs, start)

	assertDecimal(t, "750", got.TotalExpenses)
	assertDecimal(t, "1000", got.TotalIncome)
	assertDecimal(t, "250", got.Balance)
	assert.Equal(t, 6, got.TransactionCount)
	assertDecimal(t, "25", allocation.SavingsRate(got))

	names := make([]string, 0, len(got.SpendingByCategory))
	for _, c := range got.SpendingByCategory {
		names = append(names, c.Name)
	}
	// Dining Out и Cinema равны, порядок первого появления
	assert.Equal(t, []string{"Groceries", allocation.UncategorizedLabel, "Dining Out", "Cinema"}, names)
	assertDecimal(t, "350", got.SpendingByCategory[0].Value)

	require.Len(t, got.IncomeByCategory, 1)
	assert.Equal(t, "Salary", got.IncomeByCategory[0].Name)
}

func TestSummarizeInsights_IncomeAndExpenseSameName(t *testing.T) {
	refund := category("Other", domain.TransactionExpense, nil)
	other := category("Other", domain.TransactionIncome, nil)
	start := domain.NewDate(2025, 3, 1)

	got := allocation.SummarizeInsights([]domain.Transaction{
		tx("10", domain.TransactionExpense, start, refund),
		tx("30", domain.TransactionIncome, start, other),
	}, start)

	require.Len(t, got.SpendingByCategory, 1)
	assertDecimal(t, "10", got.SpendingByCategory[0].Value)
	require.Len(t, got.IncomeByCategory, 1)
	assertDecimal(t, "30", got.IncomeByCategory[0].Value)
}

func TestSavingsRate(t *testing.T) {
	assertDecimal(t, "0", allocation.SavingsRate(allocation.Insights{TotalExpenses: dec("10")}))
	assertDecimal(t, "-50", allocation.SavingsRate(allocation.Insights{TotalIncome: dec("100"), TotalExpenses: dec("150")}))
}

func TestTrailingStart(t *testing.T) {
	now := time.Date(2025, 3, 31, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		period  string
		want    string
		wantErr error
	}{
		{period: "week", want: "2025-03-24"},
		{period: "month", want: "2025-03-03"},
		{period: "", want: "2025-03-03"},
		{period: "year", want: "2024-03-31"},
		{period: "decade", wantErr: allocation.ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, err := allocation.TrailingStart(tt.period, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
