package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a requester's reservation of one provider slot. Status and
// payment status always move together: a booking never confirms without
// payment and never refunds without canceling.
type Booking struct {
	id            uuid.UUID
	requesterID   uuid.UUID
	providerID    uuid.UUID
	slotID        uuid.UUID
	status        Status
	paymentStatus PaymentStatus
	correlationID uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a pending, unpaid booking with a fresh correlation ID
// tying the external payment session back to this booking.
func NewBooking(requesterID, providerID, slotID uuid.UUID, now time.Time) *Booking {
	return &Booking{
		id:            uuid.New(),
		requesterID:   requesterID,
		providerID:    providerID,
		slotID:        slotID,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		correlationID: uuid.New(),
		createdAt:     now,
		updatedAt:     now,
	}
}

func Reconstruct(
	id, requesterID, providerID, slotID uuid.UUID,
	status Status,
	paymentStatus PaymentStatus,
	correlationID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		requesterID:   requesterID,
		providerID:    providerID,
		slotID:        slotID,
		status:        status,
		paymentStatus: paymentStatus,
		correlationID: correlationID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ConfirmPayment applies the payment-confirmation transition
// PENDING(UNPAID) -> CONFIRMED(PAID).
func (b *Booking) ConfirmPayment(now time.Time) error {
	if b.status != StatusPending || b.paymentStatus != PaymentUnpaid {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	b.paymentStatus = PaymentPaid
	b.updatedAt = now
	return nil
}

// Cancel moves a live booking to CANCELED. A paid booking becomes REFUNDED so
// downstream subsystems can read the settlement state; actually moving money
// is outside this core. The caller must release the provider slot in the same
// atomic unit.
func (b *Booking) Cancel(now time.Time) error {
	switch b.status {
	case StatusCanceled:
		return ErrAlreadyCanceled
	case StatusCompleted:
		return ErrAlreadyFinal
	}
	b.status = StatusCanceled
	if b.paymentStatus == PaymentPaid {
		b.paymentStatus = PaymentRefunded
	}
	b.updatedAt = now
	return nil
}

// Complete marks a confirmed booking as rendered. Only the owning provider
// may do this.
func (b *Booking) Complete(actorProviderID uuid.UUID, now time.Time) error {
	if b.providerID != actorProviderID {
		return ErrNotOwner
	}
	if b.status != StatusConfirmed || b.paymentStatus != PaymentPaid {
		return ErrNotConfirmed
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

// Expired reports whether an unpaid booking has outlived its payment deadline.
func (b *Booking) Expired(now time.Time, ttl time.Duration) bool {
	return b.status == StatusPending &&
		b.paymentStatus == PaymentUnpaid &&
		b.createdAt.Add(ttl).Before(now)
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) RequesterID() uuid.UUID       { return b.requesterID }
func (b *Booking) ProviderID() uuid.UUID        { return b.providerID }
func (b *Booking) SlotID() uuid.UUID            { return b.slotID }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CorrelationID() uuid.UUID     { return b.correlationID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
