package commands

import (
	"context"
	"log/slog"
	"time"

	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"
)

type SweepReport struct {
	Scanned  int
	Canceled int
	Skipped  int
	Failed   int
}

type SweeperCommands interface {
	SweepOnce(ctx context.Context) (*SweepReport, error)
}

type sweeperUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	unpaidTTL time.Duration
}

func NewSweeperUseCase(uow shared.UnitOfWork, clock clock.Clock, unpaidTTL time.Duration) SweeperCommands {
	return &sweeperUseCaseImpl{
		uow:       uow,
		clock:     clock,
		unpaidTTL: unpaidTTL,
	}
}

// SweepOnce cancels unpaid bookings older than the TTL and releases their
// slots. Each booking gets its own transaction with a cancel guarded on
// PENDING+UNPAID, so a payment confirmed after the scan always wins and a
// second sweeper running concurrently just sees zero affected rows.
func (s *sweeperUseCaseImpl) SweepOnce(ctx context.Context) (*SweepReport, error) {
	cutoff := s.clock.Now().Add(-s.unpaidTTL)

	candidates, err := s.uow.CommandReads().ExpiredPendingBookings(ctx, cutoff)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to scan expired bookings"), errs.ErrDatabaseOperationFailed)
	}

	report := &SweepReport{Scanned: len(candidates)}

	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		var canceled bool
		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			canceled, err = tx.Bookings().CancelIfPending(ctx, candidate.ID, s.clock.Now())
			if err != nil {
				return err
			}
			if !canceled {
				return nil
			}
			_, err = tx.ProviderSlots().Release(ctx, candidate.ProviderID, candidate.SlotID)
			return err
		})
		switch {
		case err == nil && canceled:
			report.Canceled++
		case err == nil:
			report.Skipped++
		}
		if err != nil {
			// One bad booking must not abort the rest of the run.
			report.Failed++
			slog.Error("failed to sweep booking",
				"booking_id", candidate.ID,
				"error", err.Error())
		}
	}

	return report, nil
}
