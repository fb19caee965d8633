package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var insightsNow = time.Date(2025, 3, 20, 9, 30, 0, 0, time.UTC)

func insightsRouter(store *mockStore) *gin.Engine {
	return newTestRouter(func(rg *gin.RouterGroup) {
		h := NewInsightsHandler(store)
		h.now = func() time.Time { return insightsNow }
		rg.GET("/insights", h.GetInsights)
		rg.GET("/insights/allocation-summary", h.GetAllocationSummary)
	})
}

func TestGetInsights(t *testing.T) {
	store := newMockStore(t)
	salary := testCategory("Salary", domain.TransactionIncome, "")
	groceries := testCategory("Groceries", domain.TransactionExpense, domain.BucketNeeds)
	dining := testCategory("Dining Out", domain.TransactionExpense, domain.BucketWants)

	store.MockTransactionStorage.EXPECT().ListTransactions(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, f domain.TransactionFilter) ([]domain.Transaction, error) {
			require.NotNil(t, f.From)
			assert.Equal(t, "2025-03-13", f.From.String())
			assert.Nil(t, f.To)
			return []domain.Transaction{
				testTx("1000", domain.TransactionIncome, domain.NewDate(2025, 3, 14), salary),
				testTx("100", domain.TransactionExpense, domain.NewDate(2025, 3, 15), dining),
				testTx("300", domain.TransactionExpense, domain.NewDate(2025, 3, 16), groceries),
				testTx("25", domain.TransactionExpense, domain.NewDate(2025, 3, 17), nil),
			}, nil
		})

	rr := doRequest(insightsRouter(store), http.MethodGet, "/api/v1/insights?period=week", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got insightsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "week", got.Period)
	assert.Equal(t, "2025-03-13", got.StartDate.String())
	assert.Equal(t, 4, got.TransactionCount)
	assertDecimal(t, "425", got.TotalExpenses)
	assertDecimal(t, "1000", got.TotalIncome)
	assertDecimal(t, "575", got.Balance)
	assertDecimal(t, "57.5", got.SavingsRate)

	require.Len(t, got.SpendingByCategory, 3)
	assert.Equal(t, "Groceries", got.SpendingByCategory[0].Name)
	assert.Equal(t, "Dining Out", got.SpendingByCategory[1].Name)
	assert.Equal(t, allocation.UncategorizedLabel, got.SpendingByCategory[2].Name)
	require.Len(t, got.IncomeByCategory, 1)
	assert.Equal(t, "Salary", got.IncomeByCategory[0].Name)
}

func TestGetInsights_EmptyLedger(t *testing.T) {
	store := newMockStore(t)
	store.MockTransactionStorage.EXPECT().ListTransactions(gomock.Any(), testUserID, gomock.Any()).
		Return([]domain.Transaction{}, nil)

	rr := doRequest(insightsRouter(store), http.MethodGet, "/api/v1/insights", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got insightsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "month", got.Period)
	assert.Equal(t, "2025-02-20", got.StartDate.String())
	assert.Equal(t, 0, got.TransactionCount)
	assertDecimal(t, "0", got.SavingsRate)
	assert.NotNil(t, got.SpendingByCategory)
	assert.Empty(t, got.SpendingByCategory)
}

func TestGetInsights_BadPeriod(t *testing.T) {
	store := newMockStore(t)
	rr := doRequest(insightsRouter(store), http.MethodGet, "/api/v1/insights?period=fortnight", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAllocationSummary(t *testing.T) {
	store := newMockStore(t)
	rent := testCategory("Rent", domain.TransactionExpense, domain.BucketNeeds)
	dining := testCategory("Dining Out", domain.TransactionExpense, domain.BucketWants)
	savings := testCategory("Savings", domain.TransactionExpense, domain.BucketFuture)

	store.MockProfileStorage.EXPECT().GetProfile(gomock.Any(), testUserID).Return(testProfile(), nil)
	store.MockTransactionStorage.EXPECT().ListTransactions(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, f domain.TransactionFilter) ([]domain.Transaction, error) {
			assert.Equal(t, "2024-12-01", f.From.String())
			assert.Equal(t, "2025-01-01", f.To.String())
			return []domain.Transaction{
				testTx("2000", domain.TransactionExpense, domain.NewDate(2024, 12, 1), rent),
				testTx("1800", domain.TransactionExpense, domain.NewDate(2024, 12, 12), dining),
				testTx("500", domain.TransactionExpense, domain.NewDate(2024, 12, 31), savings),
			}, nil
		})

	rr := doRequest(insightsRouter(store), http.MethodGet, "/api/v1/insights/allocation-summary?month=2024-12", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got allocationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "2024-12", got.Month)
	assertDecimal(t, "5000", got.Income)
	assertDecimal(t, "2500", got.Targets.Needs)
	assertDecimal(t, "1500", got.Targets.Wants)
	assertDecimal(t, "1000", got.Targets.Future)
	assertDecimal(t, "2000", got.Actual.Needs)
	assertDecimal(t, "1800", got.Actual.Wants)
	assertDecimal(t, "500", got.Actual.Future)
	assert.Equal(t, allocation.Compliance{
		Needs:  allocation.BucketCompliance{Percent: 80},
		Wants:  allocation.BucketCompliance{Percent: 120, Over: true},
		Future: allocation.BucketCompliance{Percent: 50},
	}, got.Compliance)
}

func TestGetAllocationSummary_MissingProfile(t *testing.T) {
	store := newMockStore(t)
	store.MockProfileStorage.EXPECT().GetProfile(gomock.Any(), testUserID).Return(nil, nil)

	rr := doRequest(insightsRouter(store), http.MethodGet, "/api/v1/insights/allocation-summary", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Profile not found. Set up your budget first"}`, rr.Body.String())
}

func TestGetAllocationSummary_BadMonth(t *testing.T) {
	store := newMockStore(t)
	rr := doRequest(insightsRouter(store), http.MethodGet, "/api/v1/insights/allocation-summary?month=2024-13", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
