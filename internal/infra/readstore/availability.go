package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) FindProviderSlots(ctx context.Context, providerID uuid.UUID, filters queries.AvailabilityFilters, now time.Time, limit int32) ([]*queries.ProviderSlotView, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ps.slot_id, s.start_time, s.end_time, ps.claimed
		FROM provider_slots ps
		JOIN slots s ON s.id = ps.slot_id
		WHERE ps.provider_id = $1`)
	args := []any{providerID}

	if filters.Claimed != nil {
		args = append(args, *filters.Claimed)
		fmt.Fprintf(&sb, " AND ps.claimed = $%d", len(args))
	}
	appendWindowFilters(&sb, &args, filters, now)

	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY s.start_time LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider slots", err)
	}
	defer rows.Close()

	var result []*queries.ProviderSlotView
	for rows.Next() {
		var v queries.ProviderSlotView
		if err := rows.Scan(&v.SlotID, &v.StartTime, &v.EndTime, &v.Claimed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan provider slot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read provider slots", err)
	}
	return result, nil
}

// FindOpenSlots lists pool slots the provider has not offered yet, so the
// scheduling UI can show what is left to pick up.
func (r *AvailabilityReadStore) FindOpenSlots(ctx context.Context, providerID uuid.UUID, filters queries.AvailabilityFilters, now time.Time, limit int32) ([]*queries.OpenSlotView, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT s.id, s.start_time, s.end_time
		FROM slots s
		WHERE NOT EXISTS (
			SELECT 1 FROM provider_slots ps
			WHERE ps.slot_id = s.id AND ps.provider_id = $1
		)`)
	args := []any{providerID}

	appendWindowFilters(&sb, &args, filters, now)

	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY s.start_time LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open slots", err)
	}
	defer rows.Close()

	var result []*queries.OpenSlotView
	for rows.Next() {
		var v queries.OpenSlotView
		if err := rows.Scan(&v.SlotID, &v.StartTime, &v.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan open slot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read open slots", err)
	}
	return result, nil
}

func (r *AvailabilityReadStore) FindProviderByID(ctx context.Context, providerID uuid.UUID) (*queries.ProviderView, error) {
	const q = `
		SELECT id, email, name, fee_cents, is_active
		FROM providers
		WHERE id = $1`

	var v queries.ProviderView
	err := r.db.QueryRow(ctx, q, providerID).Scan(&v.ID, &v.Email, &v.Name, &v.FeeCents, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider", err)
	}
	return &v, nil
}

func appendWindowFilters(sb *strings.Builder, args *[]any, filters queries.AvailabilityFilters, now time.Time) {
	if filters.From != nil {
		*args = append(*args, *filters.From)
		fmt.Fprintf(sb, " AND s.start_time >= $%d", len(*args))
	}
	if filters.To != nil {
		*args = append(*args, *filters.To)
		fmt.Fprintf(sb, " AND s.start_time <= $%d", len(*args))
	}
	switch filters.Phase {
	case queries.PhaseUpcoming:
		*args = append(*args, now)
		fmt.Fprintf(sb, " AND s.start_time > $%d", len(*args))
	case queries.PhasePast:
		*args = append(*args, now)
		fmt.Fprintf(sb, " AND s.end_time <= $%d", len(*args))
	}
}
