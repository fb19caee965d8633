// internal/handler/profile.go
package handler

import (
	"log/slog"
	"net/http"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"

	"github.com/gin-gonic/gin"
)

const errSetUpBudget = "Profile not found. Set up your budget first"

type ProfileStore interface {
	storage.ProfileStorage
	storage.CategoryStorage
}

type ProfileHandler struct {
	store ProfileStore
}

func NewProfileHandler(store ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// GetProfile godoc
// @Summary Get the caller's allocation profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := userID(c)
	if !ok {
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), userID)
	if err != nil {
		slog.Error("GetProfile failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errSetUpBudget})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfile godoc
// @Summary Create the allocation profile and seed default categories
// @Tags profile
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Profile"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	needs, wants, future := req.percentages()
	profile, err := h.store.CreateProfile(c.Request.Context(), domain.Profile{
		UserID:              userID,
		MonthlyIncomeTarget: req.MonthlyIncomeTarget,
		NeedsPercentage:     needs,
		WantsPercentage:     wants,
		FuturePercentage:    future,
	})
	if err != nil {
		slog.Error("CreateProfile failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Profile already exists"})
		return
	}

	if err := h.store.SeedDefaultCategories(c.Request.Context(), userID); err != nil {
		slog.Error("Seeding default categories failed", "error", err, "user_id", userID)
	}

	slog.Info("Profile created", "user_id", userID)
	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile godoc
// @Summary Partially update the allocation profile
// @Description Percentages must be sent together and sum to 100
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	upd := domain.ProfileUpdate{
		MonthlyIncomeTarget: req.MonthlyIncomeTarget,
		NeedsPercentage:     req.NeedsPercentage,
		WantsPercentage:     req.WantsPercentage,
		FuturePercentage:    req.FuturePercentage,
	}
	if upd.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	profile, err := h.store.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		slog.Error("UpdateProfile failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errSetUpBudget})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Rebalance godoc
// @Summary Pin or nudge one bucket and redistribute the others
// @Tags profile
// @Accept json
// @Produce json
// @Param request body RebalanceRequest true "Bucket change"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/profile/rebalance [post]
func (h *ProfileHandler) Rebalance(c *gin.Context) {
	var req RebalanceRequest
	if !bindJSON(c, &req) {
		return
	}
	if (req.Value == nil) == (req.Delta == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of value or delta is required"})
		return
	}
	userID, ok := userID(c)
	if !ok {
		return
	}

	var split allocation.Split
	if req.Split != nil {
		split = *req.Split
		if split.Total() != 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "split must sum to 100"})
			return
		}
	} else {
		profile, err := h.store.GetProfile(c.Request.Context(), userID)
		if err != nil {
			slog.Error("Rebalance: GetProfile failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}
		if profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": errSetUpBudget})
			return
		}
		split = allocation.SplitOf(*profile)
	}

	bucket := domain.Bucket(req.Bucket)
	if req.Value != nil {
		split = allocation.SetBucket(split, bucket, *req.Value)
	} else {
		split = allocation.AdjustBucket(split, bucket, *req.Delta)
	}

	if !req.Save {
		c.JSON(http.StatusOK, gin.H{"split": split, "saved": false})
		return
	}

	needs, wants, future := split.Percentages()
	profile, err := h.store.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		NeedsPercentage:  &needs,
		WantsPercentage:  &wants,
		FuturePercentage: &future,
	})
	if err != nil {
		slog.Error("Rebalance: UpdateProfile failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errSetUpBudget})
		return
	}

	slog.Info("Profile rebalanced", "user_id", userID, "bucket", bucket, "needs", split.Needs, "wants", split.Wants, "future", split.Future)
	c.JSON(http.StatusOK, gin.H{"split": split, "saved": true, "profile": profile})
}
