//go:build unit

package booking_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionCase struct {
	name    string
	mutate  func(*builder.BookingBuilder)
	act     func(*booking.Booking, time.Time) error
	errIs   error
	status  booking.Status
	payment booking.PaymentStatus
}

func TestNewBooking(t *testing.T) {
	requesterID := uuid.New()
	providerID := uuid.New()
	slotID := uuid.New()
	now := time.Now()

	b := booking.NewBooking(requesterID, providerID, slotID, now)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.NotEqual(t, uuid.Nil, b.CorrelationID())
	assert.Equal(t, requesterID, b.RequesterID())
	assert.Equal(t, providerID, b.ProviderID())
	assert.Equal(t, slotID, b.SlotID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
	assert.Equal(t, now, b.CreatedAt())
	assert.Equal(t, now, b.UpdatedAt())

	b2 := booking.NewBooking(requesterID, providerID, slotID, now)
	assert.NotEqual(t, b.ID(), b2.ID())
	assert.NotEqual(t, b.CorrelationID(), b2.CorrelationID())
}

func TestBookingTransitions(t *testing.T) {
	t.Run("confirm payment", func(t *testing.T) {
		runTransitions(t, []transitionCase{
			{
				name:    "pending unpaid confirms",
				act:     (*booking.Booking).ConfirmPayment,
				status:  booking.StatusConfirmed,
				payment: booking.PaymentPaid,
			},
			{
				name:   "confirmed booking rejects a replay",
				mutate: func(b *builder.BookingBuilder) { b.Confirmed() },
				act:    (*booking.Booking).ConfirmPayment,
				errIs:  booking.ErrNotPending,
			},
			{
				name:   "canceled booking rejects confirmation",
				mutate: func(b *builder.BookingBuilder) { b.Canceled() },
				act:    (*booking.Booking).ConfirmPayment,
				errIs:  booking.ErrNotPending,
			},
			{
				name:   "completed booking rejects confirmation",
				mutate: func(b *builder.BookingBuilder) { b.Completed() },
				act:    (*booking.Booking).ConfirmPayment,
				errIs:  booking.ErrNotPending,
			},
		})
	})

	t.Run("cancel", func(t *testing.T) {
		runTransitions(t, []transitionCase{
			{
				name:    "pending unpaid cancels without refund",
				act:     (*booking.Booking).Cancel,
				status:  booking.StatusCanceled,
				payment: booking.PaymentUnpaid,
			},
			{
				name:    "confirmed paid cancels into refunded",
				mutate:  func(b *builder.BookingBuilder) { b.Confirmed() },
				act:     (*booking.Booking).Cancel,
				status:  booking.StatusCanceled,
				payment: booking.PaymentRefunded,
			},
			{
				name:   "canceled booking cannot cancel again",
				mutate: func(b *builder.BookingBuilder) { b.Canceled() },
				act:    (*booking.Booking).Cancel,
				errIs:  booking.ErrAlreadyCanceled,
			},
			{
				name:   "completed booking cannot cancel",
				mutate: func(b *builder.BookingBuilder) { b.Completed() },
				act:    (*booking.Booking).Cancel,
				errIs:  booking.ErrAlreadyFinal,
			},
		})
	})
}

func TestBookingComplete(t *testing.T) {
	now := time.Now()

	t.Run("owning provider completes a confirmed booking", func(t *testing.T) {
		bb := builder.NewBookingBuilder().Confirmed()
		b := bb.BuildDomain()

		require.NoError(t, b.Complete(bb.ProviderID, now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
	})

	t.Run("foreign provider is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().Confirmed().BuildDomain()

		require.ErrorIs(t, b.Complete(uuid.New(), now), booking.ErrNotOwner)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("pending booking cannot complete", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		require.ErrorIs(t, b.Complete(bb.ProviderID, now), booking.ErrNotConfirmed)
	})

	t.Run("canceled booking cannot complete", func(t *testing.T) {
		bb := builder.NewBookingBuilder().Canceled()
		b := bb.BuildDomain()

		require.ErrorIs(t, b.Complete(bb.ProviderID, now), booking.ErrNotConfirmed)
	})
}

func TestBookingExpired(t *testing.T) {
	ttl := 15 * time.Minute
	created := time.Now()

	t.Run("pending unpaid past the deadline", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.CreatedAt = created
		b := bb.BuildDomain()

		assert.False(t, b.Expired(created.Add(ttl), ttl))
		assert.True(t, b.Expired(created.Add(ttl+time.Second), ttl))
	})

	t.Run("confirmed booking never expires", func(t *testing.T) {
		bb := builder.NewBookingBuilder().Confirmed()
		bb.CreatedAt = created
		b := bb.BuildDomain()

		assert.False(t, b.Expired(created.Add(24*time.Hour), ttl))
	})
}

func runTransitions(t *testing.T, cases []transitionCase) {
	t.Helper()
	now := time.Now()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bb := builder.NewBookingBuilder()
			if c.mutate != nil {
				c.mutate(bb)
			}
			b := bb.BuildDomain()

			err := c.act(b, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.status, b.Status())
			assert.Equal(t, c.payment, b.PaymentStatus())
			assert.Equal(t, now, b.UpdatedAt())
		})
	}
}
