package repository

import (
	"context"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ProviderSlotRepository struct {
	db db.DBTX
}

func NewProviderSlotRepository(dbtx db.DBTX) *ProviderSlotRepository {
	return &ProviderSlotRepository{db: dbtx}
}

func (r *ProviderSlotRepository) OfferMany(ctx context.Context, providerID uuid.UUID, slotIDs []uuid.UUID) (int64, error) {
	if len(slotIDs) == 0 {
		return 0, nil
	}

	const q = `
		INSERT INTO provider_slots (provider_id, slot_id, claimed)
		SELECT $1, s, FALSE
		FROM unnest($2::uuid[]) AS t(s)
		ON CONFLICT (provider_id, slot_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, q, providerID, slotIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to offer slots", err)
	}
	return tag.RowsAffected(), nil
}

// Claim is the mutual-exclusion gate of the whole booking protocol: the
// WHERE claimed=FALSE guard makes concurrent claimants race on a single row
// update, so exactly one of them sees RowsAffected()==1.
func (r *ProviderSlotRepository) Claim(ctx context.Context, providerID, slotID uuid.UUID) (bool, error) {
	const q = `
		UPDATE provider_slots
		SET claimed = TRUE
		WHERE provider_id = $1 AND slot_id = $2 AND claimed = FALSE`

	tag, err := r.db.Exec(ctx, q, providerID, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim provider slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ProviderSlotRepository) Release(ctx context.Context, providerID, slotID uuid.UUID) (bool, error) {
	const q = `
		UPDATE provider_slots
		SET claimed = FALSE
		WHERE provider_id = $1 AND slot_id = $2 AND claimed = TRUE`

	tag, err := r.db.Exec(ctx, q, providerID, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release provider slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ProviderSlotRepository) DeleteUnclaimed(ctx context.Context, providerID, slotID uuid.UUID) (bool, error) {
	const q = `
		DELETE FROM provider_slots
		WHERE provider_id = $1 AND slot_id = $2 AND claimed = FALSE`

	tag, err := r.db.Exec(ctx, q, providerID, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete provider slot", err)
	}
	return tag.RowsAffected() == 1, nil
}
