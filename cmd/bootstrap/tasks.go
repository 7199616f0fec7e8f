package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"ticketline/internal/pkg/tasks"
	"ticketline/internal/usecase/commands"

	"go.uber.org/fx"
)

var TasksModule = fx.Module("tasks",
	fx.Provide(
		fx.Annotate(
			NewTaskRunner,
			fx.As(new(commands.TaskScheduler)),
		),
	),
)

func NewTaskRunner(lc fx.Lifecycle, logger *slog.Logger) *tasks.Runner {
	runner := tasks.NewRunner(logger, 10*time.Second)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			runner.Stop()
			return nil
		},
	})

	return runner
}
