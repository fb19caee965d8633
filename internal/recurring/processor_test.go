package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProcessor_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecurringStorage(ctrl)

	today := domain.NewDate(2025, 3, 16)
	endDate := domain.NewDate(2025, 3, 10)

	weekly := domain.RecurringTransaction{
		ID:          uuid.New(),
		UserID:      7,
		Amount:      decimal.NewFromInt(25),
		Type:        domain.TransactionExpense,
		Frequency:   domain.FrequencyWeekly,
		StartDate:   domain.NewDate(2025, 3, 1),
		NextDueDate: domain.NewDate(2025, 3, 8),
		IsActive:    true,
	}
	ending := domain.RecurringTransaction{
		ID:          uuid.New(),
		UserID:      7,
		Amount:      decimal.NewFromInt(10),
		Type:        domain.TransactionExpense,
		Frequency:   domain.FrequencyMonthly,
		StartDate:   domain.NewDate(2025, 2, 9),
		NextDueDate: domain.NewDate(2025, 3, 9),
		EndDate:     &endDate,
		IsActive:    true,
	}

	store.EXPECT().ListDueRecurring(gomock.Any(), int64(7), today).
		Return([]domain.RecurringTransaction{weekly, ending}, nil)
	store.EXPECT().PostOccurrences(gomock.Any(), weekly,
		[]domain.Date{domain.NewDate(2025, 3, 8), domain.NewDate(2025, 3, 15)},
		domain.NewDate(2025, 3, 22), true).Return(nil)
	store.EXPECT().PostOccurrences(gomock.Any(), ending,
		[]domain.Date{domain.NewDate(2025, 3, 9)},
		domain.NewDate(2025, 4, 9), false).Return(nil)

	p := NewProcessor(store)
	p.now = func() time.Time { return time.Date(2025, 3, 16, 22, 15, 0, 0, time.UTC) }

	res, err := p.Run(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, Result{Rules: 2, Posted: 3, Deactivated: 1}, res)
}

func TestProcessor_Run_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecurringStorage(ctrl)

	store.EXPECT().ListDueRecurring(gomock.Any(), int64(0), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := NewProcessor(store).Run(context.Background(), 0)
	assert.ErrorContains(t, err, "connection refused")
}

func TestProcessor_Run_PostError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecurringStorage(ctrl)

	rule := domain.RecurringTransaction{
		ID:          uuid.New(),
		Frequency:   domain.FrequencyDaily,
		StartDate:   domain.NewDate(2025, 3, 1),
		NextDueDate: domain.NewDate(2025, 3, 1),
		IsActive:    true,
	}
	store.EXPECT().ListDueRecurring(gomock.Any(), int64(0), gomock.Any()).Return([]domain.RecurringTransaction{rule}, nil)
	store.EXPECT().PostOccurrences(gomock.Any(), rule, gomock.Any(), gomock.Any(), true).Return(errors.New("deadlock"))

	p := NewProcessor(store)
	p.now = func() time.Time { return time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC) }

	_, err := p.Run(context.Background(), 0)
	assert.ErrorContains(t, err, "deadlock")
}
