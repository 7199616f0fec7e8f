package components

import (
	repo_impl "ticketline/internal/infra/repository"
	"ticketline/internal/usecase/commands"
	"ticketline/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewInventoryRepository,
			fx.As(new(commands.InventoryLedger)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReader)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReader)),
		),
		fx.Annotate(
			repo_impl.NewEmailRetryRepository,
			fx.As(new(commands.EmailRetryRepository)),
			fx.As(new(queries.EmailRetryReader)),
		),
		fx.Annotate(
			repo_impl.NewReminderRepository,
			fx.As(new(commands.ReminderRepository)),
		),
	),
)
