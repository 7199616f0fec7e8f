package components

import (
	"ticketline/internal/handler"
	"ticketline/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewWebhookHandler,
		api.NewOrderHandler,
		api.NewOpsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
