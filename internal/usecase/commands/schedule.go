package commands

import (
	"context"
	"errors"
	"time"

	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"
)

type GenerateSlotsInput struct {
	RangeStart time.Time
	RangeEnd   time.Time
	DailyStart schedule.DayTime
	DailyEnd   schedule.DayTime
	SlotLength time.Duration
}

type GenerateResult struct {
	Requested int
	Created   []shared.SlotRecord
}

type ScheduleCommands interface {
	Generate(ctx context.Context, input GenerateSlotsInput) (*GenerateResult, error)
}

type scheduleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleUseCase(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow}
}

func (s *scheduleUseCaseImpl) Generate(ctx context.Context, input GenerateSlotsInput) (*GenerateResult, error) {
	slotLength := input.SlotLength
	if slotLength == 0 {
		slotLength = schedule.DefaultSlotLength
	}

	windows, err := schedule.Expand(input.RangeStart, input.RangeEnd, input.DailyStart, input.DailyEnd, slotLength)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidRange) || errors.Is(err, schedule.ErrInvalidWindow) || errors.Is(err, schedule.ErrSlotLength) {
			return nil, errs.Mark(err, errs.ErrInvalidRange)
		}
		return nil, errs.Wrap(err, "failed to expand slot windows")
	}

	result := &GenerateResult{Requested: len(windows)}
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Slots().CreateMany(ctx, windows)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result.Created = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
