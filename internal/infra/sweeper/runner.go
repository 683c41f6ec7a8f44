package sweeper

import (
	"context"
	"log/slog"
	"time"

	"clinic-booking/internal/usecase/commands"
)

// Runner drives the unpaid-booking sweep on a fixed interval. Lifecycle is
// owned by the caller (fx hooks in production, the test directly otherwise).
type Runner struct {
	sweeper  commands.SweeperCommands
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(sweeper commands.SweeperCommands, interval time.Duration) *Runner {
	return &Runner{
		sweeper:  sweeper,
		interval: interval,
	}
}

func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.loop(ctx)
}

// Stop signals the loop and waits for the in-flight sweep to finish.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := r.sweeper.SweepOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Error("sweep run failed", "error", err.Error())
				continue
			}
			if report.Scanned > 0 {
				slog.Info("sweep run finished",
					"scanned", report.Scanned,
					"canceled", report.Canceled,
					"skipped", report.Skipped,
					"failed", report.Failed)
			}
		}
	}
}
