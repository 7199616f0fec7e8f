package bootstrap

import (
	"log/slog"

	"ticketline/internal/pkg/config"
	"ticketline/internal/pkg/mailer"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewSender,
			fx.As(new(mailer.Sender)),
		),
	),
)

func NewSender(cfg config.Config, logger *slog.Logger) *mailer.LogSender {
	return mailer.NewLogSender(logger, cfg.Mail.FromAddress)
}
