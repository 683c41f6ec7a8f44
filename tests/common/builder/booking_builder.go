//go:build unit || e2e

package builder

import (
	"time"

	dombooking "clinic-booking/internal/domain/booking"
	reqdto "clinic-booking/internal/handler/dto/request"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	RequesterID   uuid.UUID
	ProviderID    uuid.UUID
	SlotID        uuid.UUID
	Status        dombooking.Status
	PaymentStatus dombooking.PaymentStatus
	CorrelationID uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            uuid.New(),
		RequesterID:   uuid.New(),
		ProviderID:    uuid.New(),
		SlotID:        uuid.New(),
		Status:        dombooking.StatusPending,
		PaymentStatus: dombooking.PaymentUnpaid,
		CorrelationID: uuid.New(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Confirmed() *BookingBuilder {
	b.Status = dombooking.StatusConfirmed
	b.PaymentStatus = dombooking.PaymentPaid
	return b
}

func (b *BookingBuilder) Canceled() *BookingBuilder {
	b.Status = dombooking.StatusCanceled
	return b
}

func (b *BookingBuilder) Completed() *BookingBuilder {
	b.Status = dombooking.StatusCompleted
	b.PaymentStatus = dombooking.PaymentPaid
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.Reconstruct(
		b.ID, b.RequesterID, b.ProviderID, b.SlotID,
		b.Status, b.PaymentStatus,
		b.CorrelationID,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            b.ID,
		RequesterID:   b.RequesterID,
		ProviderID:    b.ProviderID,
		SlotID:        b.SlotID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CorrelationID: b.CorrelationID,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildExpired() *shared.ExpiredBooking {
	return &shared.ExpiredBooking{
		ID:         b.ID,
		ProviderID: b.ProviderID,
		SlotID:     b.SlotID,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildClaimRequestDTO() reqdto.ClaimSlotRequest {
	return reqdto.ClaimSlotRequest{
		ProviderID: b.ProviderID,
		SlotID:     b.SlotID,
	}
}
