package readstore

import (
	"context"
	"time"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the write paths: targeted single-row lookups and the
// sweep candidate scan, all against whatever DBTX the caller is running on.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) ProviderByID(ctx context.Context, id uuid.UUID) (*shared.ProviderSnapshot, error) {
	const q = `
		SELECT id, email, name, fee_cents, is_active
		FROM providers
		WHERE id = $1`

	var snap shared.ProviderSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Email, &snap.Name, &snap.FeeCents, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider", err)
	}
	return &snap, nil
}

func (r *CommandReads) RequesterByID(ctx context.Context, id uuid.UUID) (*shared.RequesterSnapshot, error) {
	const q = `
		SELECT id, email, name
		FROM requesters
		WHERE id = $1`

	var snap shared.RequesterSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Email, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("requester not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find requester", err)
	}
	return &snap, nil
}

func (r *CommandReads) ProviderSlot(ctx context.Context, providerID, slotID uuid.UUID) (*shared.ProviderSlotSnapshot, error) {
	const q = `
		SELECT ps.provider_id, ps.slot_id, ps.claimed, s.start_time, s.end_time
		FROM provider_slots ps
		JOIN slots s ON s.id = ps.slot_id
		WHERE ps.provider_id = $1 AND ps.slot_id = $2`

	var snap shared.ProviderSlotSnapshot
	err := r.db.QueryRow(ctx, q, providerID, slotID).
		Scan(&snap.ProviderID, &snap.SlotID, &snap.Claimed, &snap.SlotStart, &snap.SlotEnd)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider slot", err)
	}
	return &snap, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const q = `
		SELECT id, requester_id, provider_id, slot_id, status, payment_status, correlation_id, created_at
		FROM bookings
		WHERE id = $1`

	var snap shared.BookingSnapshot
	var status, paymentStatus string
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.RequesterID, &snap.ProviderID, &snap.SlotID,
		&status, &paymentStatus, &snap.CorrelationID, &snap.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	snap.Status = booking.Status(status)
	snap.PaymentStatus = booking.PaymentStatus(paymentStatus)
	return &snap, nil
}

func (r *CommandReads) ObligationByRef(ctx context.Context, transactionRef string) (*shared.ObligationSnapshot, error) {
	const q = `
		SELECT id, booking_id, amount_cents, transaction_ref, status
		FROM payment_obligations
		WHERE transaction_ref = $1`

	var snap shared.ObligationSnapshot
	err := r.db.QueryRow(ctx, q, transactionRef).
		Scan(&snap.ID, &snap.BookingID, &snap.AmountCents, &snap.TransactionRef, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment obligation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment obligation", err)
	}
	return &snap, nil
}

func (r *CommandReads) ExpiredPendingBookings(ctx context.Context, cutoff time.Time) ([]*shared.ExpiredBooking, error) {
	const q = `
		SELECT id, provider_id, slot_id, created_at
		FROM bookings
		WHERE status = 'PENDING' AND payment_status = 'UNPAID' AND created_at < $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan expired bookings", err)
	}
	defer rows.Close()

	var result []*shared.ExpiredBooking
	for rows.Next() {
		var eb shared.ExpiredBooking
		if err := rows.Scan(&eb.ID, &eb.ProviderID, &eb.SlotID, &eb.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired booking row", err)
		}
		result = append(result, &eb)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired bookings", err)
	}
	return result, nil
}

func (r *CommandReads) SlotReferences(ctx context.Context, slotID uuid.UUID) (*shared.SlotReferences, error) {
	const q = `
		SELECT
			(SELECT count(*) FROM provider_slots WHERE slot_id = $1),
			(SELECT count(*) FROM bookings WHERE slot_id = $1)`

	var refs shared.SlotReferences
	if err := r.db.QueryRow(ctx, q, slotID).Scan(&refs.ProviderSlots, &refs.Bookings); err != nil {
		return nil, infra.WrapRepoErr("failed to count slot references", err)
	}
	return &refs, nil
}
