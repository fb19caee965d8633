// internal/handler/insights.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InsightsStore interface {
	storage.ProfileStorage
	storage.TransactionStorage
}

type InsightsHandler struct {
	store InsightsStore
	now   func() time.Time
}

func NewInsightsHandler(store InsightsStore) *InsightsHandler {
	return &InsightsHandler{store: store, now: time.Now}
}

type insightsResponse struct {
	Period    string      `json:"period"`
	StartDate domain.Date `json:"start_date"`
	allocation.Insights
	SavingsRate decimal.Decimal `json:"savings_rate"`
}

type allocationResponse struct {
	Month string `json:"month"`
	allocation.Summary
	Compliance allocation.Compliance `json:"compliance"`
}

// GetInsights godoc
// @Summary Spending and income totals for a trailing window
// @Tags insights
// @Param period query string false "week, month or year (default month)"
// @Success 200 {object} insightsResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	period := c.DefaultQuery("period", allocation.PeriodMonth)
	start, err := allocation.TrailingStart(period, h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be week, month or year"})
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	txs, err := h.store.ListTransactions(c.Request.Context(), userID, domain.TransactionFilter{From: &start})
	if err != nil {
		slog.Error("GetInsights failed", "error", err, "user_id", userID, "period", period)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	insights := allocation.SummarizeInsights(txs, start)
	c.JSON(http.StatusOK, insightsResponse{
		Period:      period,
		StartDate:   start,
		Insights:    insights,
		SavingsRate: allocation.SavingsRate(insights).Round(2),
	})
}

// GetAllocationSummary godoc
// @Summary Actual spend per bucket against the profile targets for a month
// @Tags insights
// @Param month query string false "Month in YYYY-MM format (default current)"
// @Success 200 {object} allocationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/insights/allocation-summary [get]
func (h *InsightsHandler) GetAllocationSummary(c *gin.Context) {
	month := c.DefaultQuery("month", h.now().Format("2006-01"))
	start, end, err := allocation.MonthRange(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be in YYYY-MM format"})
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), userID)
	if err != nil {
		slog.Error("GetAllocationSummary: GetProfile failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errSetUpBudget})
		return
	}

	txs, err := h.store.ListTransactions(c.Request.Context(), userID, domain.TransactionFilter{From: &start, To: &end})
	if err != nil {
		slog.Error("GetAllocationSummary: ListTransactions failed", "error", err, "user_id", userID, "month", month)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	summary, err := allocation.SummarizeAllocation(txs, profile, start, end)
	if errors.Is(err, allocation.ErrMissingProfile) {
		c.JSON(http.StatusNotFound, gin.H{"error": errSetUpBudget})
		return
	}
	if err != nil {
		slog.Error("SummarizeAllocation failed", "error", err, "user_id", userID, "month", month)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, allocationResponse{
		Month:      month,
		Summary:    summary,
		Compliance: allocation.ComplianceOf(summary),
	})
}
