package commands

import (
	"context"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityCommands interface {
	Offer(ctx context.Context, providerID uuid.UUID, slotIDs []uuid.UUID) (int64, error)
	Withdraw(ctx context.Context, providerID, slotID uuid.UUID) error
}

type availabilityUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityUseCase(uow shared.UnitOfWork, clock clock.Clock) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow, clock: clock}
}

func (a *availabilityUseCaseImpl) Offer(ctx context.Context, providerID uuid.UUID, slotIDs []uuid.UUID) (int64, error) {
	if len(slotIDs) == 0 {
		return 0, errs.Mark(errs.New("no slot IDs supplied"), errs.ErrNothingToOffer)
	}

	if _, err := a.uow.CommandReads().ProviderByID(ctx, providerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrProviderNotFound)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var created int64
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.ProviderSlots().OfferMany(ctx, providerID, slotIDs)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrSlotNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// Withdraw removes an unclaimed offer and garbage-collects the pool slot when
// nothing else references it. Claimed or already-started slots stay put.
func (a *availabilityUseCaseImpl) Withdraw(ctx context.Context, providerID, slotID uuid.UUID) error {
	now := a.clock.Now()

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ProviderSlot(ctx, providerID, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrOfferNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Claimed {
			return errs.Mark(errs.New("slot is claimed by a booking"), errs.ErrSlotClaimed)
		}
		if !snap.SlotStart.After(now) {
			return errs.Mark(errs.New("slot start already passed"), errs.ErrSlotInPast)
		}

		deleted, err := tx.ProviderSlots().DeleteUnclaimed(ctx, providerID, slotID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !deleted {
			// Claimed between the read and the delete.
			return errs.Mark(errs.New("slot claimed concurrently"), errs.ErrSlotClaimed)
		}

		refs, err := tx.Reads().SlotReferences(ctx, slotID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if refs.ProviderSlots == 0 && refs.Bookings == 0 {
			if err := tx.Slots().Delete(ctx, slotID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
