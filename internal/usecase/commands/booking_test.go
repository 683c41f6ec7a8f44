//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/shared"
	"clinic-booking/tests/common/builder"
	commandsmock "clinic-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCurrency = "JPY"

func TestBooking_Claim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	requesterID := uuid.New()
	providerID := uuid.New()
	slotID := uuid.New()

	requester := &shared.RequesterSnapshot{ID: requesterID, Email: "requester@example.com", Name: "Requester"}
	activeProvider := &shared.ProviderSnapshot{ID: providerID, Email: "dr@example.com", Name: "Dr. Example", FeeCents: 5000, IsActive: true}
	futureSlot := &shared.ProviderSlotSnapshot{
		ProviderID: providerID,
		SlotID:     slotID,
		SlotStart:  now.Add(2 * time.Hour),
		SlotEnd:    now.Add(2*time.Hour + 30*time.Minute),
	}

	newUseCase := func(m *uowMocks, gateway *commandsmock.MockPaymentGateway) commands.BookingCommands {
		return commands.NewBookingUseCase(m.uow, gateway, clock.NewMockClock(now), testCurrency)
	}

	t.Run("success: winner claims slot and gets a payment URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(requester, nil)
		m.reads.EXPECT().ProviderByID(ctx, providerID).Return(activeProvider, nil)
		m.reads.EXPECT().ProviderSlot(ctx, providerID, slotID).Return(futureSlot, nil)
		m.providerSlots.EXPECT().Claim(ctx, providerID, slotID).Return(true, nil)

		var createdBookingID uuid.UUID
		m.bookings.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b *booking.Booking) error {
				createdBookingID = b.ID()
				assert.Equal(t, booking.StatusPending, b.Status())
				assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
				return nil
			})
		m.obligations.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, params shared.ObligationParams) error {
				assert.Equal(t, int64(5000), params.AmountCents)
				assert.NotEmpty(t, params.TransactionRef)
				return nil
			})
		gateway.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req commands.SessionRequest) (*commands.SessionResult, error) {
				assert.Equal(t, int64(5000), req.AmountCents)
				assert.Equal(t, testCurrency, req.Currency)
				assert.Equal(t, "requester@example.com", req.CustomerEmail)
				return &commands.SessionResult{SessionID: "sess_1", RedirectURL: "https://pay.example.com/sess_1"}, nil
			})

		result, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, createdBookingID, result.BookingID)
		assert.Equal(t, "https://pay.example.com/sess_1", result.PaymentURL)
	})

	t.Run("error: loser of the claim race gets slot already booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(requester, nil)
		m.reads.EXPECT().ProviderByID(ctx, providerID).Return(activeProvider, nil)
		m.reads.EXPECT().ProviderSlot(ctx, providerID, slotID).Return(futureSlot, nil)
		m.providerSlots.EXPECT().Claim(ctx, providerID, slotID).Return(false, nil)
		// No booking, no obligation, no checkout session for the loser.

		result, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrSlotAlreadyBooked)
	})

	t.Run("error: gateway failure triggers compensation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(requester, nil)
		m.reads.EXPECT().ProviderByID(ctx, providerID).Return(activeProvider, nil)
		m.reads.EXPECT().ProviderSlot(ctx, providerID, slotID).Return(futureSlot, nil)
		m.providerSlots.EXPECT().Claim(ctx, providerID, slotID).Return(true, nil)
		m.bookings.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.obligations.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		gateway.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil, errors.New("processor unavailable"))

		// Compensation: cancel the pending booking and free the slot.
		m.bookings.EXPECT().CancelIfPending(ctx, gomock.Any(), now).Return(true, nil)
		m.providerSlots.EXPECT().Release(ctx, providerID, slotID).Return(true, nil)

		result, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrPaymentGateway)
	})

	t.Run("error: compensation yields to a webhook that confirmed first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(requester, nil)
		m.reads.EXPECT().ProviderByID(ctx, providerID).Return(activeProvider, nil)
		m.reads.EXPECT().ProviderSlot(ctx, providerID, slotID).Return(futureSlot, nil)
		m.providerSlots.EXPECT().Claim(ctx, providerID, slotID).Return(true, nil)
		m.bookings.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.obligations.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		gateway.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

		// The booking is no longer PENDING, so nothing is released.
		m.bookings.EXPECT().CancelIfPending(ctx, gomock.Any(), now).Return(false, nil)

		_, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.ErrorIs(t, err, errs.ErrPaymentGateway)
	})

	t.Run("error: slot already started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		pastSlot := &shared.ProviderSlotSnapshot{
			ProviderID: providerID,
			SlotID:     slotID,
			SlotStart:  now.Add(-time.Hour),
			SlotEnd:    now.Add(-30 * time.Minute),
		}
		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(requester, nil)
		m.reads.EXPECT().ProviderByID(ctx, providerID).Return(activeProvider, nil)
		m.reads.EXPECT().ProviderSlot(ctx, providerID, slotID).Return(pastSlot, nil)

		_, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.ErrorIs(t, err, errs.ErrSlotInPast)
	})

	t.Run("error: deactivated provider is treated as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		inactive := &shared.ProviderSnapshot{ID: providerID, FeeCents: 5000, IsActive: false}
		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(requester, nil)
		m.reads.EXPECT().ProviderByID(ctx, providerID).Return(inactive, nil)

		_, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.ErrorIs(t, err, errs.ErrProviderNotFound)
	})

	t.Run("error: unknown requester", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(nil, notFoundErr("requester not found"))

		_, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.ErrorIs(t, err, errs.ErrRequesterNotFound)
	})

	t.Run("error: unknown slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)

		m.reads.EXPECT().RequesterByID(ctx, requesterID).Return(requester, nil)
		m.reads.EXPECT().ProviderByID(ctx, providerID).Return(activeProvider, nil)
		m.reads.EXPECT().ProviderSlot(ctx, providerID, slotID).Return(nil, notFoundErr("provider slot not found"))

		_, err := newUseCase(m, gateway).Claim(ctx, requesterID, providerID, slotID)
		require.ErrorIs(t, err, errs.ErrSlotNotFound)
	})
}

func TestBooking_Cancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	newUseCase := func(m *uowMocks) commands.BookingCommands {
		return commands.NewBookingUseCase(m.uow, nil, clock.NewMockClock(now), testCurrency)
	}

	t.Run("success: owning provider cancels an unpaid booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder()
		snap := bb.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(snap, nil)
		m.bookings.EXPECT().CancelIfActive(ctx, bb.ID, now).Return(true, nil)
		m.obligations.EXPECT().MarkRefunded(ctx, bb.ID, now).Return(false, nil)
		m.providerSlots.EXPECT().Release(ctx, bb.ProviderID, bb.SlotID).Return(true, nil)

		require.NoError(t, newUseCase(m).Cancel(ctx, bb.ProviderID, user.RoleProvider, bb.ID))
	})

	t.Run("success: paid booking is refunded on cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder().Confirmed()
		snap := bb.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(snap, nil)
		m.bookings.EXPECT().CancelIfActive(ctx, bb.ID, now).Return(true, nil)
		m.obligations.EXPECT().MarkRefunded(ctx, bb.ID, now).Return(true, nil)
		m.providerSlots.EXPECT().Release(ctx, bb.ProviderID, bb.SlotID).Return(true, nil)

		require.NoError(t, newUseCase(m).Cancel(ctx, bb.ProviderID, user.RoleProvider, bb.ID))
	})

	t.Run("success: admin may cancel any booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder()
		snap := bb.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(snap, nil)
		m.bookings.EXPECT().CancelIfActive(ctx, bb.ID, now).Return(true, nil)
		m.obligations.EXPECT().MarkRefunded(ctx, bb.ID, now).Return(false, nil)
		m.providerSlots.EXPECT().Release(ctx, bb.ProviderID, bb.SlotID).Return(true, nil)

		require.NoError(t, newUseCase(m).Cancel(ctx, uuid.New(), user.RoleAdmin, bb.ID))
	})

	t.Run("success: refund applies when a webhook pays between snapshot and cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder()
		// The snapshot still says PENDING/UNPAID, but by the time the
		// transaction runs the webhook has confirmed and MarkPaid committed.
		staleSnap := bb.BuildSnapshot()
		require.Equal(t, booking.PaymentUnpaid, staleSnap.PaymentStatus)

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(staleSnap, nil)
		m.bookings.EXPECT().CancelIfActive(ctx, bb.ID, now).Return(true, nil)
		m.obligations.EXPECT().MarkRefunded(ctx, bb.ID, now).Return(true, nil).Times(1)
		m.providerSlots.EXPECT().Release(ctx, bb.ProviderID, bb.SlotID).Return(true, nil)

		require.NoError(t, newUseCase(m).Cancel(ctx, bb.ProviderID, user.RoleProvider, bb.ID))
	})

	t.Run("error: foreign provider is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(bb.BuildSnapshot(), nil)

		err := newUseCase(m).Cancel(ctx, uuid.New(), user.RoleProvider, bb.ID)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: canceled booking cannot cancel again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder().Canceled()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(bb.BuildSnapshot(), nil)
		m.bookings.EXPECT().CancelIfActive(ctx, bb.ID, now).Return(false, nil)

		err := newUseCase(m).Cancel(ctx, bb.ProviderID, user.RoleProvider, bb.ID)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		id := uuid.New()

		m.reads.EXPECT().BookingByID(ctx, id).Return(nil, notFoundErr("booking not found"))

		err := newUseCase(m).Cancel(ctx, uuid.New(), user.RoleAdmin, id)
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestBooking_Complete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	newUseCase := func(m *uowMocks) commands.BookingCommands {
		return commands.NewBookingUseCase(m.uow, nil, clock.NewMockClock(now), testCurrency)
	}

	t.Run("success: owning provider completes a confirmed booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder().Confirmed()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(bb.BuildSnapshot(), nil)
		m.bookings.EXPECT().CompleteIfConfirmed(ctx, bb.ID, now).Return(true, nil)

		require.NoError(t, newUseCase(m).Complete(ctx, bb.ProviderID, bb.ID))
	})

	t.Run("error: foreign provider is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder().Confirmed()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(bb.BuildSnapshot(), nil)

		err := newUseCase(m).Complete(ctx, uuid.New(), bb.ID)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: pending booking cannot complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUowMocks(ctrl)
		bb := builder.NewBookingBuilder()

		m.reads.EXPECT().BookingByID(ctx, bb.ID).Return(bb.BuildSnapshot(), nil)
		m.bookings.EXPECT().CompleteIfConfirmed(ctx, bb.ID, now).Return(false, nil)

		err := newUseCase(m).Complete(ctx, bb.ProviderID, bb.ID)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
