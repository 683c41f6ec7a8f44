package components

import (
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewTokenValidator,
		commands.NewScheduleUseCase,
		commands.NewAvailabilityUseCase,
		NewBookingCommands,
		commands.NewPaymentUseCase,
		NewSweeperCommands,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

func NewBookingCommands(uow shared.UnitOfWork, gateway commands.PaymentGateway, clk clock.Clock, cfg config.Config) commands.BookingCommands {
	return commands.NewBookingUseCase(uow, gateway, clk, cfg.Payment.Currency)
}

func NewSweeperCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.SweeperCommands {
	return commands.NewSweeperUseCase(uow, clk, cfg.Sweep.UnpaidTTL)
}
