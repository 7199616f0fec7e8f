package components

import (
	"context"
	"log/slog"

	"ticketline/internal/pkg/clock"
	"ticketline/internal/pkg/config"
	"ticketline/internal/usecase/commands"
	"ticketline/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(startSweeper),
)

func NewSweeper(sweep commands.SweepCommands, cfg config.Config, clk clock.Clock, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(sweep, cfg.Sweeper, clk, logger)
}

func startSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
