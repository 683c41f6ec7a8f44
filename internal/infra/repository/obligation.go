package repository

import (
	"context"
	"time"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ObligationRepository struct {
	db db.DBTX
}

func NewObligationRepository(dbtx db.DBTX) *ObligationRepository {
	return &ObligationRepository{db: dbtx}
}

func (r *ObligationRepository) Create(ctx context.Context, params shared.ObligationParams) error {
	const q = `
		INSERT INTO payment_obligations (id, booking_id, amount_cents, transaction_ref, status)
		VALUES ($1, $2, $3, $4, 'UNPAID')`

	_, err := r.db.Exec(ctx, q, params.ID, params.BookingID, params.AmountCents, params.TransactionRef)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment obligation", err)
	}
	return nil
}

func (r *ObligationRepository) MarkPaid(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	const q = `
		UPDATE payment_obligations
		SET status = 'PAID', updated_at = $2
		WHERE id = $1 AND status = 'UNPAID'`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark obligation paid", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ObligationRepository) MarkRefunded(ctx context.Context, bookingID uuid.UUID, now time.Time) (bool, error) {
	const q = `
		UPDATE payment_obligations
		SET status = 'REFUNDED', updated_at = $2
		WHERE booking_id = $1 AND status = 'PAID'`

	tag, err := r.db.Exec(ctx, q, bookingID, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark obligation refunded", err)
	}
	return tag.RowsAffected() == 1, nil
}
