package bootstrap

import (
	"context"

	"clinic-booking/internal/infra/sweeper"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweepRunner,
	),
	fx.Invoke(registerSweepRunner),
)

func NewSweepRunner(cfg config.Config, sweeperCommands commands.SweeperCommands) *sweeper.Runner {
	return sweeper.NewRunner(sweeperCommands, cfg.Sweep.Interval)
}

func registerSweepRunner(lc fx.Lifecycle, runner *sweeper.Runner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			runner.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
}
