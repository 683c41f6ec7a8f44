//go:build unit

package queries_test

import (
	"context"
	"testing"

	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/queries"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	requesterID := uuid.New()
	providerID := uuid.New()

	view := &queries.BookingView{
		ID:          bookingID,
		RequesterID: requesterID,
		ProviderID:  providerID,
	}

	testCases := []struct {
		name    string
		actor   queries.Actor
		visible bool
	}{
		{name: "requester sees own booking", actor: queries.Actor{ID: requesterID, Role: user.RoleRequester}, visible: true},
		{name: "provider sees received booking", actor: queries.Actor{ID: providerID, Role: user.RoleProvider}, visible: true},
		{name: "admin sees any booking", actor: queries.Actor{ID: uuid.New(), Role: user.RoleAdmin}, visible: true},
		{name: "outsider gets not found, not forbidden", actor: queries.Actor{ID: uuid.New(), Role: user.RoleRequester}, visible: false},
		{name: "foreign provider gets not found", actor: queries.Actor{ID: uuid.New(), Role: user.RoleProvider}, visible: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockBookingViewRepo(ctrl)
			repo.EXPECT().FindByID(ctx, bookingID).Return(view, nil)

			got, err := queries.NewBookingQueries(repo).GetByID(ctx, tc.actor, bookingID)
			if tc.visible {
				require.NoError(t, err)
				require.Equal(t, view, got)
			} else {
				require.Nil(t, got)
				require.ErrorIs(t, err, errs.ErrBookingNotFound)
			}
		})
	}
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("admin may list across actors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		items := []*queries.BookingListItem{{ID: uuid.New()}}
		repo.EXPECT().Find(ctx, queries.BookingFilters{}, int32(50)).Return(items, nil)

		got, err := queries.NewBookingQueries(repo).List(ctx, queries.Actor{Role: user.RoleAdmin}, queries.BookingFilters{}, 0)
		require.NoError(t, err)
		require.Equal(t, items, got)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockBookingViewRepo(ctrl)

		_, err := queries.NewBookingQueries(repo).List(ctx, queries.Actor{Role: user.RoleProvider}, queries.BookingFilters{}, 0)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestBookingQueries_LimitClamp(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()

	testCases := []struct {
		name     string
		limit    int
		expected int32
	}{
		{name: "zero falls back to default", limit: 0, expected: 50},
		{name: "negative falls back to default", limit: -1, expected: 50},
		{name: "oversized falls back to default", limit: 201, expected: 50},
		{name: "in-range passes through", limit: 200, expected: 200},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockBookingViewRepo(ctrl)
			repo.EXPECT().FindByRequesterID(ctx, requesterID, tc.expected).Return(nil, nil)

			_, err := queries.NewBookingQueries(repo).ListByRequester(ctx, requesterID, tc.limit)
			require.NoError(t, err)
		})
	}
}
