package components

import (
	"log/slog"

	"ticketline/internal/pkg/clock"
	"ticketline/internal/pkg/config"
	"ticketline/internal/pkg/mailer"
	"ticketline/internal/usecase/commands"
	"ticketline/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.CheckoutConfig {
		return cfg.Checkout
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewCheckoutUseCase,
		commands.NewFulfillmentUseCase,
		commands.NewReminderUseCase,
		commands.NewSweepUseCase,
		func(sender mailer.Sender, retryRepo commands.EmailRetryRepository, cfg config.Config, logger *slog.Logger) commands.NotificationCommands {
			return commands.NewNotificationUseCase(sender, retryRepo, cfg.Mail.SendTimeout, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewOrderQueries,
		queries.NewOpsQueries,
	),
)
