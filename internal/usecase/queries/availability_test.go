//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/queries"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_ListProviderSlots(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	providerID := uuid.New()

	t.Run("passes the clock time for phase filtering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockAvailabilityViewRepo(ctrl)
		filters := queries.AvailabilityFilters{Phase: queries.PhaseUpcoming}
		views := []*queries.ProviderSlotView{{SlotID: uuid.New()}}
		repo.EXPECT().FindProviderSlots(ctx, providerID, filters, now, int32(50)).Return(views, nil)

		q := queries.NewAvailabilityQueries(repo, clock.NewMockClock(now))
		got, err := q.ListProviderSlots(ctx, providerID, filters, 0)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockAvailabilityViewRepo(ctrl)
		repo.EXPECT().FindOpenSlots(ctx, providerID, queries.AvailabilityFilters{}, now, int32(50)).Return(nil, nil)

		q := queries.NewAvailabilityQueries(repo, clock.NewMockClock(now))
		_, err := q.ListOpenSlots(ctx, providerID, queries.AvailabilityFilters{}, 500)
		require.NoError(t, err)
	})
}

func TestPhase_IsValid(t *testing.T) {
	assert.True(t, queries.PhaseAny.IsValid())
	assert.True(t, queries.PhaseUpcoming.IsValid())
	assert.True(t, queries.PhasePast.IsValid())
	assert.False(t, queries.Phase("sideways").IsValid())
}
