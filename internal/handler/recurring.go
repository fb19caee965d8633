// internal/handler/recurring.go
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/recurring"
	"budget-tracker/internal/storage"

	"github.com/gin-gonic/gin"
)

type RecurringStore interface {
	storage.RecurringStorage
	storage.CategoryStorage
}

// RecurringRunner posts due occurrences; *recurring.Processor implements it.
type RecurringRunner interface {
	Run(ctx context.Context, userID int64) (recurring.Result, error)
}

type RecurringHandler struct {
	store  RecurringStore
	runner RecurringRunner
}

func NewRecurringHandler(store RecurringStore, runner RecurringRunner) *RecurringHandler {
	return &RecurringHandler{store: store, runner: runner}
}

// ListRecurring godoc
// @Summary List recurring transactions
// @Tags recurring
// @Success 200 {array} domain.RecurringTransaction
// @Router /api/v1/recurring [get]
func (h *RecurringHandler) ListRecurring(c *gin.Context) {
	userID, ok := userID(c)
	if !ok {
		return
	}

	rules, err := h.store.ListRecurring(c.Request.Context(), userID)
	if err != nil {
		slog.Error("ListRecurring failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// GetRecurring godoc
// @Summary Get a recurring transaction
// @Tags recurring
// @Param id path string true "Recurring ID"
// @Success 200 {object} domain.RecurringTransaction
// @Failure 404 {object} map[string]string
// @Router /api/v1/recurring/{id} [get]
func (h *RecurringHandler) GetRecurring(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	r, err := h.store.GetRecurring(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("GetRecurring failed", "error", err, "user_id", userID, "recurring_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateRecurring godoc
// @Summary Create a recurring transaction
// @Description The first occurrence is due on the start date
// @Tags recurring
// @Accept json
// @Param request body CreateRecurringRequest true "Rule"
// @Success 201 {object} domain.RecurringTransaction
// @Failure 400 {object} map[string]string
// @Router /api/v1/recurring [post]
func (h *RecurringHandler) CreateRecurring(c *gin.Context) {
	var req CreateRecurringRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	start, _ := domain.ParseDate(req.StartDate)
	end := parseDatePtr(req.EndDate)
	if end != nil && end.Before(start.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}
	if !checkCategory(c, h.store, userID, req.CategoryID) {
		return
	}

	r, err := h.store.CreateRecurring(c.Request.Context(), domain.RecurringTransaction{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Type:        domain.TransactionType(req.Type),
		Description: req.Description,
		Frequency:   domain.Frequency(req.Frequency),
		StartDate:   start,
		EndDate:     end,
		NextDueDate: start,
		IsActive:    true,
	})
	if err != nil {
		slog.Error("CreateRecurring failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recurring transaction"})
		return
	}

	slog.Info("Recurring transaction created", "user_id", userID, "recurring_id", r.ID, "frequency", r.Frequency)
	c.JSON(http.StatusCreated, r)
}

// UpdateRecurring godoc
// @Summary Update a recurring transaction
// @Tags recurring
// @Accept json
// @Param id path string true "Recurring ID"
// @Param request body UpdateRecurringRequest true "Fields to change"
// @Success 200 {object} domain.RecurringTransaction
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recurring/{id} [patch]
func (h *RecurringHandler) UpdateRecurring(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateRecurringRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	current, err := h.store.GetRecurring(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("UpdateRecurring: GetRecurring failed", "error", err, "user_id", userID, "recurring_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		return
	}

	upd := domain.RecurringUpdate{
		Amount:        req.Amount,
		Description:   req.Description,
		StartDate:     parseDatePtr(req.StartDate),
		EndDate:       parseDatePtr(req.EndDate),
		ClearEndDate:  req.ClearEndDate,
		IsActive:      req.IsActive,
		CategoryID:    req.CategoryID,
		ClearCategory: req.ClearCategory,
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		upd.Type = &t
	}
	if req.Frequency != nil {
		f := domain.Frequency(*req.Frequency)
		upd.Frequency = &f
	}

	start := current.StartDate
	if upd.StartDate != nil {
		start = *upd.StartDate
		// Пока ничего не сгенерировано, расписание начинается заново.
		if current.LastGeneratedDate == nil {
			upd.NextDueDate = upd.StartDate
		}
	}
	end := current.EndDate
	if upd.ClearEndDate {
		end = nil
	} else if upd.EndDate != nil {
		end = upd.EndDate
	}
	if end != nil && end.Before(start.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}
	if !req.ClearCategory && !checkCategory(c, h.store, userID, req.CategoryID) {
		return
	}

	r, err := h.store.UpdateRecurring(c.Request.Context(), userID, id, upd)
	if err != nil {
		slog.Error("UpdateRecurring failed", "error", err, "user_id", userID, "recurring_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recurring transaction"})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteRecurring godoc
// @Summary Delete a recurring transaction
// @Description Already posted transactions are kept
// @Tags recurring
// @Param id path string true "Recurring ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	r, err := h.store.DeleteRecurring(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("DeleteRecurring failed", "error", err, "user_id", userID, "recurring_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RunRecurring godoc
// @Summary Post every due occurrence of the caller's recurring transactions
// @Tags recurring
// @Success 200 {object} recurring.Result
// @Router /api/v1/recurring/run [post]
func (h *RecurringHandler) RunRecurring(c *gin.Context) {
	userID, ok := userID(c)
	if !ok {
		return
	}

	res, err := h.runner.Run(c.Request.Context(), userID)
	if err != nil {
		slog.Error("RunRecurring failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process recurring transactions"})
		return
	}

	slog.Info("Recurring run completed", "user_id", userID, "rules", res.Rules, "posted", res.Posted)
	c.JSON(http.StatusOK, res)
}
