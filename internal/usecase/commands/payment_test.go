//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/shared"
	"clinic-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPayment_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	ref := "txn_" + uuid.NewString()

	newUseCase := func(m *uowMocks) commands.PaymentCommands {
		return commands.NewPaymentUseCase(m.uow, clock.NewMockClock(now))
	}

	obligationFor := func(bookingID uuid.UUID) *shared.ObligationSnapshot {
		return &shared.ObligationSnapshot{
			ID:             uuid.New(),
			BookingID:      bookingID,
			AmountCents:    5000,
			TransactionRef: ref,
			Status:         "UNPAID",
		}
	}

	t.Run("success: first delivery confirms and marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bookingID := uuid.New()
		obligation := obligationFor(bookingID)

		m.reads.EXPECT().ObligationByRef(ctx, ref).Return(obligation, nil)
		m.bookings.EXPECT().ConfirmIfPending(ctx, bookingID, now).Return(true, nil)
		m.obligations.EXPECT().MarkPaid(ctx, obligation.ID, now).Return(true, nil)

		result, err := newUseCase(m).ConfirmPayment(ctx, ref, commands.OutcomeSucceeded)
		require.NoError(t, err)
		assert.False(t, result.AlreadyApplied)
	})

	t.Run("success: replayed delivery is acknowledged without re-applying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bookingID := uuid.New()

		m.reads.EXPECT().ObligationByRef(ctx, ref).Return(obligationFor(bookingID), nil)
		m.bookings.EXPECT().ConfirmIfPending(ctx, bookingID, now).Return(false, nil)
		// No MarkPaid on a replay.

		result, err := newUseCase(m).ConfirmPayment(ctx, ref, commands.OutcomeSucceeded)
		require.NoError(t, err)
		assert.True(t, result.AlreadyApplied)
	})

	t.Run("success: failed outcome cancels and releases the slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder()

		m.reads.EXPECT().ObligationByRef(ctx, ref).Return(obligationFor(bb.ID), nil)
		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(bb.BuildSnapshot(), nil)
		m.bookings.EXPECT().CancelIfPending(ctx, bb.ID, now).Return(true, nil)
		m.providerSlots.EXPECT().Release(ctx, bb.ProviderID, bb.SlotID).Return(true, nil)

		result, err := newUseCase(m).ConfirmPayment(ctx, ref, commands.OutcomeFailed)
		require.NoError(t, err)
		assert.False(t, result.AlreadyApplied)
	})

	t.Run("success: failed outcome after confirmation leaves the booking alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder().Confirmed()

		m.reads.EXPECT().ObligationByRef(ctx, ref).Return(obligationFor(bb.ID), nil)
		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(bb.BuildSnapshot(), nil)
		m.bookings.EXPECT().CancelIfPending(ctx, bb.ID, now).Return(false, nil)

		result, err := newUseCase(m).ConfirmPayment(ctx, ref, commands.OutcomeFailed)
		require.NoError(t, err)
		assert.True(t, result.AlreadyApplied)
	})

	t.Run("error: unknown transaction ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)

		m.reads.EXPECT().ObligationByRef(ctx, ref).Return(nil, notFoundErr("payment obligation not found"))

		_, err := newUseCase(m).ConfirmPayment(ctx, ref, commands.OutcomeSucceeded)
		require.ErrorIs(t, err, errs.ErrObligationNotFound)
	})

	t.Run("error: unknown outcome is rejected before any read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)

		_, err := newUseCase(m).ConfirmPayment(ctx, ref, commands.PaymentOutcome("refunded"))
		require.ErrorIs(t, err, errs.ErrInvalidOutcome)
	})
}
