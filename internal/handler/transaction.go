// internal/handler/transaction.go
package handler

import (
	"log/slog"
	"net/http"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionStore interface {
	storage.TransactionStorage
	storage.CategoryStorage
}

type TransactionHandler struct {
	store TransactionStore
}

func NewTransactionHandler(store TransactionStore) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// checkCategory отвечает 400, если категория не принадлежит пользователю.
func checkCategory(c *gin.Context, store storage.CategoryStorage, userID int64, id *uuid.UUID) bool {
	if id == nil {
		return true
	}
	category, err := store.GetCategory(c.Request.Context(), userID, *id)
	if err != nil {
		slog.Error("GetCategory failed", "error", err, "user_id", userID, "category_id", *id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return false
	}
	if category == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return false
	}
	return true
}

// ListTransactions godoc
// @Summary List transactions
// @Tags transactions
// @Param type query string false "expense or income"
// @Param category_id query string false "Category ID"
// @Param from query string false "From date, inclusive (YYYY-MM-DD)"
// @Param to query string false "To date, inclusive (YYYY-MM-DD)"
// @Param limit query int false "Page size (1..500, default 50)"
// @Param offset query int false "Offset"
// @Param order_by query string false "date_desc, date_asc, amount_desc, amount_asc"
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}
	if err := validateStruct(q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	filter := domain.TransactionFilter{
		Type:    domain.TransactionType(q.Type),
		Limit:   q.Limit,
		Offset:  q.Offset,
		OrderBy: domain.TransactionOrder(q.OrderBy),
	}
	if q.CategoryID != "" {
		id := uuid.MustParse(q.CategoryID)
		filter.CategoryID = &id
	}
	if q.From != "" {
		filter.From = parseDatePtr(&q.From)
	}
	// to приходит включительно, в фильтре граница исключающая
	if q.To != "" {
		to := parseDatePtr(&q.To).AddDays(1)
		filter.To = &to
	}

	txs, err := h.store.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		slog.Error("ListTransactions failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, txs)
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	t, err := h.store.GetTransaction(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("GetTransaction failed", "error", err, "user_id", userID, "transaction_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTransaction godoc
// @Summary Record an expense or income
// @Tags transactions
// @Accept json
// @Param request body CreateTransactionRequest true "Transaction"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
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

	date, _ := domain.ParseDate(req.Date)
	t, err := h.store.CreateTransaction(c.Request.Context(), domain.Transaction{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Type:        domain.TransactionType(req.Type),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		slog.Error("CreateTransaction failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	slog.Info("Transaction created", "user_id", userID, "transaction_id", t.ID, "type", t.Type, "amount", t.Amount.String())
	c.JSON(http.StatusCreated, t)
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} domain.Transaction
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}
	if !req.ClearCategory && !checkCategory(c, h.store, userID, req.CategoryID) {
		return
	}

	upd := domain.TransactionUpdate{
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          parseDatePtr(req.Date),
		CategoryID:    req.CategoryID,
		ClearCategory: req.ClearCategory,
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		upd.Type = &t
	}

	t, err := h.store.UpdateTransaction(c.Request.Context(), userID, id, upd)
	if err != nil {
		slog.Error("UpdateTransaction failed", "error", err, "user_id", userID, "transaction_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	t, err := h.store.DeleteTransaction(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("DeleteTransaction failed", "error", err, "user_id", userID, "transaction_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
