package commands

import (
	"context"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"
)

// PaymentOutcome is the terminal result the processor reports for a session.
type PaymentOutcome string

const (
	OutcomeSucceeded PaymentOutcome = "succeeded"
	OutcomeFailed    PaymentOutcome = "failed"
)

func (o PaymentOutcome) IsValid() bool {
	return o == OutcomeSucceeded || o == OutcomeFailed
}

type ConfirmResult struct {
	// AlreadyApplied is true when a replayed delivery found the booking past
	// PENDING. Replays are acknowledged, never re-applied.
	AlreadyApplied bool
}

type PaymentCommands interface {
	ConfirmPayment(ctx context.Context, transactionRef string, outcome PaymentOutcome) (*ConfirmResult, error)
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, clock clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, clock: clock}
}

// ConfirmPayment applies a webhook delivery. Both branches hinge on
// conditional updates guarded by the PENDING status, which is what makes the
// endpoint idempotent without a delivery ledger.
func (p *paymentUseCaseImpl) ConfirmPayment(ctx context.Context, transactionRef string, outcome PaymentOutcome) (*ConfirmResult, error) {
	if !outcome.IsValid() {
		return nil, errs.Mark(errs.New("unknown payment outcome"), errs.ErrInvalidOutcome)
	}

	result := &ConfirmResult{}
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		obligation, err := tx.Reads().ObligationByRef(ctx, transactionRef)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrObligationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		now := p.clock.Now()

		switch outcome {
		case OutcomeSucceeded:
			confirmed, err := tx.Bookings().ConfirmIfPending(ctx, obligation.BookingID, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if !confirmed {
				result.AlreadyApplied = true
				return nil
			}
			if _, err := tx.Obligations().MarkPaid(ctx, obligation.ID, now); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

		case OutcomeFailed:
			booking, err := tx.Reads().BookingByID(ctx, obligation.BookingID)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			canceled, err := tx.Bookings().CancelIfPending(ctx, obligation.BookingID, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if !canceled {
				result.AlreadyApplied = true
				return nil
			}
			if _, err := tx.ProviderSlots().Release(ctx, booking.ProviderID, booking.SlotID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
