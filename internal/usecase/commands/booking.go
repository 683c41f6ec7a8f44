package commands

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClaimResult struct {
	BookingID  uuid.UUID
	PaymentURL string
}

type BookingCommands interface {
	Claim(ctx context.Context, requesterID, providerID, slotID uuid.UUID) (*ClaimResult, error)
	Cancel(ctx context.Context, actorID uuid.UUID, role user.Role, bookingID uuid.UUID) error
	Complete(ctx context.Context, actorProviderID, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	clock    clock.Clock
	currency string
}

func NewBookingUseCase(uow shared.UnitOfWork, gateway PaymentGateway, clock clock.Clock, currency string) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		clock:    clock,
		currency: currency,
	}
}

// Claim runs in two phases. Phase 1 commits the claimed slot, the PENDING
// booking and its payment obligation in one transaction, so the conditional
// update on provider_slots is the only arbiter between racing claimants.
// Phase 2 opens the checkout session outside the transaction; if the gateway
// fails, a compensating transaction puts everything back.
func (b *bookingUseCaseImpl) Claim(ctx context.Context, requesterID, providerID, slotID uuid.UUID) (*ClaimResult, error) {
	reads := b.uow.CommandReads()

	requester, err := reads.RequesterByID(ctx, requesterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequesterNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	provider, err := reads.ProviderByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProviderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !provider.IsActive {
		return nil, errs.Mark(errs.New("provider is deactivated"), errs.ErrProviderNotFound)
	}

	now := b.clock.Now()
	newBooking := booking.NewBooking(requesterID, providerID, slotID, now)
	obligationID := uuid.New()
	transactionRef := uuid.NewString()

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ProviderSlot(ctx, providerID, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrSlotNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !snap.SlotStart.After(now) {
			return errs.Mark(errs.New("slot start already passed"), errs.ErrSlotInPast)
		}

		claimed, err := tx.ProviderSlots().Claim(ctx, providerID, slotID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !claimed {
			return errs.Mark(errs.New("slot already claimed"), errs.ErrSlotAlreadyBooked)
		}

		if err := tx.Bookings().Create(ctx, newBooking); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		params := shared.ObligationParams{
			ID:             obligationID,
			BookingID:      newBooking.ID(),
			AmountCents:    provider.FeeCents,
			TransactionRef: transactionRef,
		}
		if err := tx.Obligations().Create(ctx, params); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	session, err := b.gateway.CreateSession(ctx, SessionRequest{
		AmountCents:    provider.FeeCents,
		Currency:       b.currency,
		TransactionRef: transactionRef,
		BookingID:      newBooking.ID(),
		ObligationID:   obligationID,
		CustomerEmail:  requester.Email,
	})
	if err != nil {
		b.compensateClaim(ctx, newBooking.ID(), providerID, slotID)
		return nil, errs.Mark(errs.Wrap(err, "checkout session creation failed"), errs.ErrPaymentGateway)
	}

	return &ClaimResult{
		BookingID:  newBooking.ID(),
		PaymentURL: session.RedirectURL,
	}, nil
}

// compensateClaim undoes a committed claim after a gateway failure. The
// cancel is guarded on PENDING so a webhook that landed in the meantime wins.
func (b *bookingUseCaseImpl) compensateClaim(ctx context.Context, bookingID, providerID, slotID uuid.UUID) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		canceled, err := tx.Bookings().CancelIfPending(ctx, bookingID, b.clock.Now())
		if err != nil {
			return err
		}
		if !canceled {
			return nil
		}
		_, err = tx.ProviderSlots().Release(ctx, providerID, slotID)
		return err
	})
	if err != nil {
		// The sweeper picks the booking up once it exceeds the unpaid TTL.
		slog.Error("claim compensation failed",
			"booking_id", bookingID,
			"slot_id", slotID,
			"error", err.Error())
	}
}

func (b *bookingUseCaseImpl) Cancel(ctx context.Context, actorID uuid.UUID, role user.Role, bookingID uuid.UUID) error {
	snap, err := b.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if role != user.RoleAdmin && snap.ProviderID != actorID {
		return errs.Mark(errs.New("actor does not own this booking"), errs.ErrForbidden)
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		canceled, err := tx.Bookings().CancelIfActive(ctx, bookingID, b.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !canceled {
			return errs.Mark(errs.New("booking is not active"), errs.ErrInvalidTransition)
		}

		// MarkRefunded is guarded on status='PAID', so it no-ops for an unpaid
		// booking. Deciding from the pre-transaction snapshot would miss a
		// webhook that confirmed payment between the read and this tx.
		if _, err := tx.Obligations().MarkRefunded(ctx, bookingID, b.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := tx.ProviderSlots().Release(ctx, snap.ProviderID, snap.SlotID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *bookingUseCaseImpl) Complete(ctx context.Context, actorProviderID, bookingID uuid.UUID) error {
	snap, err := b.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if snap.ProviderID != actorProviderID {
		return errs.Mark(errs.New("only the owning provider can complete"), errs.ErrForbidden)
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		completed, err := tx.Bookings().CompleteIfConfirmed(ctx, bookingID, b.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !completed {
			return errs.Mark(errs.New("booking is not confirmed"), errs.ErrInvalidTransition)
		}
		return nil
	})
}
