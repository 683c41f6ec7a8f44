package shared

import (
	"time"

	"clinic-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. They carry exactly what the
// write paths need to decide, nothing view-shaped.

type ProviderSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	FeeCents int64
	IsActive bool
}

type RequesterSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
}

type ProviderSlotSnapshot struct {
	ProviderID uuid.UUID
	SlotID     uuid.UUID
	Claimed    bool
	SlotStart  time.Time
	SlotEnd    time.Time
}

type BookingSnapshot struct {
	ID            uuid.UUID
	RequesterID   uuid.UUID
	ProviderID    uuid.UUID
	SlotID        uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	CorrelationID uuid.UUID
	CreatedAt     time.Time
}

type ObligationSnapshot struct {
	ID             uuid.UUID
	BookingID      uuid.UUID
	AmountCents    int64
	TransactionRef string
	Status         string
}

// ExpiredBooking is one sweep candidate: enough to cancel the booking and
// release its slot.
type ExpiredBooking struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	SlotID     uuid.UUID
	CreatedAt  time.Time
}

// SlotReferences counts what still points at a slot; the slot may be deleted
// only when both counts are zero.
type SlotReferences struct {
	ProviderSlots int64
	Bookings      int64
}
