// internal/handler/category.go
package handler

import (
	"log/slog"
	"net/http"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	store storage.CategoryStorage
}

func NewCategoryHandler(store storage.CategoryStorage) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Param type query string false "expense or income"
// @Success 200 {array} domain.Category
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	txType := domain.TransactionType(c.Query("type"))
	if txType != "" && !txType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be expense or income"})
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	categories, err := h.store.ListCategories(c.Request.Context(), userID, txType)
	if err != nil {
		slog.Error("ListCategories failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	category, err := h.store.GetCategory(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("GetCategory failed", "error", err, "user_id", userID, "category_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	category := domain.Category{
		UserID: userID,
		Name:   req.Name,
		Type:   domain.TransactionType(req.Type),
		Icon:   req.Icon,
	}
	if req.AllocationBucket != nil {
		b := domain.Bucket(*req.AllocationBucket)
		category.AllocationBucket = &b
	}

	created, err := h.store.CreateCategory(c.Request.Context(), category)
	if err != nil {
		slog.Error("CreateCategory failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} domain.Category
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	upd := domain.CategoryUpdate{
		Name:        req.Name,
		ClearBucket: req.ClearBucket,
		Icon:        req.Icon,
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		upd.Type = &t
	}
	if req.AllocationBucket != nil {
		b := domain.Bucket(*req.AllocationBucket)
		upd.AllocationBucket = &b
	}

	category, err := h.store.UpdateCategory(c.Request.Context(), userID, id, upd)
	if err != nil {
		slog.Error("UpdateCategory failed", "error", err, "user_id", userID, "category_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Transactions keep existing and become uncategorized
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteCategory(c.Request.Context(), userID, id)
	if err != nil {
		slog.Error("DeleteCategory failed", "error", err, "user_id", userID, "category_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if deleted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
