package readstore

import (
	"context"
	"fmt"
	"strings"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT b.id, b.requester_id, rq.email, b.provider_id, p.name,
		       b.slot_id, s.start_time, s.end_time,
		       b.status, b.payment_status,
		       po.amount_cents, po.transaction_ref,
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN requesters rq ON rq.id = b.requester_id
		JOIN providers p ON p.id = b.provider_id
		JOIN slots s ON s.id = b.slot_id
		JOIN payment_obligations po ON po.booking_id = b.id
		WHERE b.id = $1`

	var v queries.BookingView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.RequesterID, &v.RequesterEmail, &v.ProviderID, &v.ProviderName,
		&v.SlotID, &v.SlotStart, &v.SlotEnd,
		&v.Status, &v.PaymentStatus,
		&v.AmountCents, &v.TransactionRef,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingListSelect = `
	SELECT b.id, b.provider_id, p.name,
	       s.start_time, s.end_time,
	       b.status, b.payment_status,
	       po.amount_cents, b.created_at
	FROM bookings b
	JOIN providers p ON p.id = b.provider_id
	JOIN slots s ON s.id = b.slot_id
	JOIN payment_obligations po ON po.booking_id = b.id`

func (r *BookingReadStore) FindByRequesterID(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	q := bookingListSelect + `
	WHERE b.requester_id = $1
	ORDER BY b.created_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, q, requesterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by requester", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	q := bookingListSelect + `
	WHERE b.provider_id = $1
	ORDER BY b.created_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, q, providerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by provider", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) Find(ctx context.Context, filters queries.BookingFilters, limit int32) ([]*queries.BookingListItem, error) {
	var sb strings.Builder
	sb.WriteString(bookingListSelect)
	sb.WriteString(" WHERE 1=1")
	var args []any

	if filters.Status != nil {
		args = append(args, *filters.Status)
		fmt.Fprintf(&sb, " AND b.status = $%d", len(args))
	}
	if filters.PaymentStatus != nil {
		args = append(args, *filters.PaymentStatus)
		fmt.Fprintf(&sb, " AND b.payment_status = $%d", len(args))
	}
	if filters.ProviderID != nil {
		args = append(args, *filters.ProviderID)
		fmt.Fprintf(&sb, " AND b.provider_id = $%d", len(args))
	}
	if filters.RequesterID != nil {
		args = append(args, *filters.RequesterID)
		fmt.Fprintf(&sb, " AND b.requester_id = $%d", len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY b.created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.ProviderID, &item.ProviderName,
			&item.SlotStart, &item.SlotEnd,
			&item.Status, &item.PaymentStatus,
			&item.AmountCents, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}
