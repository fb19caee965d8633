// internal/handler/budget.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"

	"github.com/gin-gonic/gin"
)

type BudgetStore interface {
	storage.BudgetStorage
	storage.CategoryStorage
	storage.TransactionStorage
	storage.ProfileStorage
}

type BudgetHandler struct {
	store BudgetStore
	now   func() time.Time
}

func NewBudgetHandler(store BudgetStore) *BudgetHandler {
	return &BudgetHandler{store: store, now: time.Now}
}

// ListBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Success 200 {array} domain.Budget
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, ok := userID(c)
	if !ok {
		return
	}

	budgets, err := h.store.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		slog.Error("ListBudgets failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// GetBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 200 {object} domain.Budget
// @Failure 404 {object} map[string]string
// @Router /api/v1/budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	b, err := h.store.GetBudget(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("GetBudget failed", "error", err, "user_id", userID, "budget_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBudget godoc
// @Summary Create a category budget
// @Tags budgets
// @Accept json
// @Param request body CreateBudgetRequest true "Budget"
// @Success 201 {object} domain.Budget
// @Failure 400 {object} map[string]string
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}
	if !checkCategory(c, h.store, userID, &req.CategoryID) {
		return
	}

	start := domain.DateOf(h.now())
	if req.StartDate != "" {
		start, _ = domain.ParseDate(req.StartDate)
	}

	b, err := h.store.CreateBudget(c.Request.Context(), domain.Budget{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     domain.BudgetPeriod(req.Period),
		StartDate:  start,
	})
	if err != nil {
		slog.Error("CreateBudget failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Param id path string true "Budget ID"
// @Param request body UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} domain.Budget
// @Failure 404 {object} map[string]string
// @Router /api/v1/budgets/{id} [patch]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateBudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}
	if !checkCategory(c, h.store, userID, req.CategoryID) {
		return
	}

	upd := domain.BudgetUpdate{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		StartDate:  parseDatePtr(req.StartDate),
	}
	if req.Period != nil {
		p := domain.BudgetPeriod(*req.Period)
		upd.Period = &p
	}

	b, err := h.store.UpdateBudget(c.Request.Context(), userID, id, upd)
	if err != nil {
		slog.Error("UpdateBudget failed", "error", err, "user_id", userID, "budget_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	b, err := h.store.DeleteBudget(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("DeleteBudget failed", "error", err, "user_id", userID, "budget_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProgress godoc
// @Summary Spending progress of every budget in its current period
// @Tags budgets
// @Success 200 {object} map[string]any
// @Router /api/v1/budgets/progress [get]
func (h *BudgetHandler) GetProgress(c *gin.Context) {
	userID, ok := userID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	now := h.now()

	budgets, err := h.store.ListBudgets(ctx, userID)
	if err != nil {
		slog.Error("GetProgress: ListBudgets failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	profile, err := h.store.GetProfile(ctx, userID)
	if err != nil {
		slog.Error("GetProgress: GetProfile failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	var txs []domain.Transaction
	if len(budgets) > 0 {
		// Одна выборка расходов, покрывающая окна всех бюджетов.
		from, to := allocation.BudgetWindow(budgets[0], now)
		for _, b := range budgets[1:] {
			start, end := allocation.BudgetWindow(b, now)
			if start.Before(from.Time) {
				from = start
			}
			if end.After(to.Time) {
				to = end
			}
		}
		txs, err = h.store.ListTransactions(ctx, userID, domain.TransactionFilter{
			Type: domain.TransactionExpense,
			From: &from,
			To:   &to,
		})
		if err != nil {
			slog.Error("GetProgress: ListTransactions failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}
	}

	progress := allocation.TrackBudgets(budgets, txs, now)
	c.JSON(http.StatusOK, gin.H{
		"budgets": progress,
		"buckets": allocation.GroupByBucket(progress, profile),
	})
}
