package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func profileRouter(store *mockStore) *gin.Engine {
	return newTestRouter(func(rg *gin.RouterGroup) {
		h := NewProfileHandler(store)
		rg.GET("/profile", h.GetProfile)
		rg.POST("/profile", h.CreateProfile)
		rg.PATCH("/profile", h.UpdateProfile)
		rg.POST("/profile/rebalance", h.Rebalance)
	})
}

func TestGetProfile_NotFound(t *testing.T) {
	store := newMockStore(t)
	store.MockProfileStorage.EXPECT().GetProfile(gomock.Any(), testUserID).Return(nil, nil)

	rr := doRequest(profileRouter(store), http.MethodGet, "/api/v1/profile", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Profile not found. Set up your budget first"}`, rr.Body.String())
}

func TestCreateProfile_DefaultsAndSeeds(t *testing.T) {
	store := newMockStore(t)
	gomock.InOrder(
		store.MockProfileStorage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p domain.Profile) (*domain.Profile, error) {
				assert.Equal(t, testUserID, p.UserID)
				assertDecimal(t, "5000", p.MonthlyIncomeTarget)
				assertDecimal(t, "50", p.NeedsPercentage)
				assertDecimal(t, "30", p.WantsPercentage)
				assertDecimal(t, "20", p.FuturePercentage)
				return &p, nil
			}),
		store.MockCategoryStorage.EXPECT().SeedDefaultCategories(gomock.Any(), testUserID).Return(nil),
	)

	rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile", `{"monthly_income_target": 5000}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var got domain.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assertDecimal(t, "5000", got.MonthlyIncomeTarget)
}

func TestCreateProfile_SeedFailureStillCreates(t *testing.T) {
	store := newMockStore(t)
	store.MockProfileStorage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(testProfile(), nil)
	store.MockCategoryStorage.EXPECT().SeedDefaultCategories(gomock.Any(), testUserID).Return(errors.New("boom"))

	rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile", `{"monthly_income_target": 5000}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateProfile_Conflict(t *testing.T) {
	store := newMockStore(t)
	store.MockProfileStorage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, nil)

	rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile", `{"monthly_income_target": 5000}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"Profile already exists"}`, rr.Body.String())
}

func TestCreateProfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "percentages off by more than epsilon",
			body:    `{"monthly_income_target": 5000, "needs_percentage": 33.33, "wants_percentage": 33.33, "future_percentage": 33.33}`,
			wantErr: "Percentages must sum to exactly 100%",
		},
		{
			name:    "partial percentages sum wrong with defaults",
			body:    `{"monthly_income_target": 5000, "needs_percentage": 60}`,
			wantErr: "Percentages must sum to exactly 100%",
		},
		{
			name:    "missing target",
			body:    `{"needs_percentage": 50}`,
			wantErr: "MonthlyIncomeTarget is required",
		},
		{
			name:    "negative target",
			body:    `{"monthly_income_target": -1}`,
			wantErr: "MonthlyIncomeTarget must be greater than 0",
		},
		{
			name:    "percentage above 100",
			body:    `{"monthly_income_target": 5000, "needs_percentage": 120, "wants_percentage": -10, "future_percentage": -10}`,
			wantErr: "NeedsPercentage is out of range",
		},
		{
			name:    "broken json",
			body:    `{"monthly_income_target":`,
			wantErr: "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore(t)
			rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantErr)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Run("zero bucket allowed", func(t *testing.T) {
		store := newMockStore(t)
		store.MockProfileStorage.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, upd domain.ProfileUpdate) (*domain.Profile, error) {
				require.NotNil(t, upd.NeedsPercentage)
				assert.True(t, upd.NeedsPercentage.IsZero())
				assert.Nil(t, upd.MonthlyIncomeTarget)
				return testProfile(), nil
			})

		rr := doRequest(profileRouter(store), http.MethodPatch, "/api/v1/profile",
			`{"needs_percentage": 0, "wants_percentage": 80, "future_percentage": 20}`)
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("percentages must come together", func(t *testing.T) {
		store := newMockStore(t)
		rr := doRequest(profileRouter(store), http.MethodPatch, "/api/v1/profile", `{"needs_percentage": 40}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "must be provided together")
	})

	t.Run("empty body", func(t *testing.T) {
		store := newMockStore(t)
		rr := doRequest(profileRouter(store), http.MethodPatch, "/api/v1/profile", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing profile", func(t *testing.T) {
		store := newMockStore(t)
		store.MockProfileStorage.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).Return(nil, nil)

		rr := doRequest(profileRouter(store), http.MethodPatch, "/api/v1/profile", `{"monthly_income_target": 6000}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRebalance(t *testing.T) {
	t.Run("set from stored profile", func(t *testing.T) {
		store := newMockStore(t)
		store.MockProfileStorage.EXPECT().GetProfile(gomock.Any(), testUserID).Return(testProfile(), nil)

		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "needs", "value": 60}`)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.JSONEq(t, `{"split":{"needs":60,"wants":24,"future":16},"saved":false}`, rr.Body.String())
	})

	t.Run("adjust supplied split", func(t *testing.T) {
		store := newMockStore(t)

		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "future", "delta": -20, "split": {"needs": 0, "wants": 0, "future": 100}}`)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.JSONEq(t, `{"split":{"needs":10,"wants":10,"future":80},"saved":false}`, rr.Body.String())
	})

	t.Run("save persists whole percentages", func(t *testing.T) {
		store := newMockStore(t)
		store.MockProfileStorage.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, upd domain.ProfileUpdate) (*domain.Profile, error) {
				assertDecimal(t, "34", *upd.NeedsPercentage)
				assertDecimal(t, "33", *upd.WantsPercentage)
				assertDecimal(t, "33", *upd.FuturePercentage)
				return testProfile(), nil
			})

		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "needs", "value": 34, "split": {"needs": 100, "wants": 0, "future": 0}, "save": true}`)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var body struct {
			Split allocation.Split `json:"split"`
			Saved bool             `json:"saved"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, allocation.Split{Needs: 34, Wants: 33, Future: 33}, body.Split)
		assert.True(t, body.Saved)
	})

	t.Run("out of range value clamps", func(t *testing.T) {
		store := newMockStore(t)

		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "needs", "value": 120, "split": {"needs": 50, "wants": 30, "future": 20}}`)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.JSONEq(t, `{"split":{"needs":100,"wants":0,"future":0},"saved":false}`, rr.Body.String())
	})

	t.Run("out of range delta clamps", func(t *testing.T) {
		store := newMockStore(t)
		store.MockProfileStorage.EXPECT().GetProfile(gomock.Any(), testUserID).Return(testProfile(), nil)

		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "needs", "delta": -300}`)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.JSONEq(t, `{"split":{"needs":0,"wants":60,"future":40},"saved":false}`, rr.Body.String())
	})

	t.Run("value and delta together", func(t *testing.T) {
		store := newMockStore(t)
		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "needs", "value": 60, "delta": 5}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown bucket", func(t *testing.T) {
		store := newMockStore(t)
		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "fun", "value": 60}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Bucket must be one of needs, wants, future")
	})

	t.Run("no profile and no split", func(t *testing.T) {
		store := newMockStore(t)
		store.MockProfileStorage.EXPECT().GetProfile(gomock.Any(), testUserID).Return(nil, nil)

		rr := doRequest(profileRouter(store), http.MethodPost, "/api/v1/profile/rebalance",
			`{"bucket": "wants", "delta": 5}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
