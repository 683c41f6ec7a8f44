package repository

import (
	"context"
	"time"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const q = `
		INSERT INTO bookings (id, requester_id, provider_id, slot_id, status, payment_status, correlation_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	_, err := r.db.Exec(ctx, q,
		b.ID(), b.RequesterID(), b.ProviderID(), b.SlotID(),
		b.Status().String(), b.PaymentStatus().String(), b.CorrelationID(), b.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// All status updates below are conditional; the returned bool is the
// affected-row count gating the caller's next step. A false result is not an
// error, it means another writer got there first.

func (r *BookingRepository) ConfirmIfPending(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	const q = `
		UPDATE bookings
		SET status = 'CONFIRMED', payment_status = 'PAID', updated_at = $2
		WHERE id = $1 AND status = 'PENDING' AND payment_status = 'UNPAID'`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm booking", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) CancelIfPending(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	const q = `
		UPDATE bookings
		SET status = 'CANCELED', updated_at = $2
		WHERE id = $1 AND status = 'PENDING' AND payment_status = 'UNPAID'`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel pending booking", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) CancelIfActive(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	const q = `
		UPDATE bookings
		SET status = 'CANCELED',
		    payment_status = CASE WHEN payment_status = 'PAID' THEN 'REFUNDED' ELSE payment_status END,
		    updated_at = $2
		WHERE id = $1 AND status IN ('PENDING', 'CONFIRMED')`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) CompleteIfConfirmed(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	const q = `
		UPDATE bookings
		SET status = 'COMPLETED', updated_at = $2
		WHERE id = $1 AND status = 'CONFIRMED' AND payment_status = 'PAID'`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete booking", err)
	}
	return tag.RowsAffected() == 1, nil
}
