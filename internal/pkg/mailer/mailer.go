package mailer

import (
	"context"
	"log/slog"
)

// Confirmation is the narrow contract with the messaging collaborator.
// Content rendering and delivery live outside this service.
type Confirmation struct {
	Recipient     string
	RecipientName string
	SessionID     string
	AmountCents   int64
	TicketCount   int
}

type Sender interface {
	Send(ctx context.Context, msg Confirmation) error
}

// LogSender is the default sender wired when no messaging backend is
// configured. It records the send and reports success.
type LogSender struct {
	logger *slog.Logger
	from   string
}

func NewLogSender(logger *slog.Logger, from string) *LogSender {
	return &LogSender{logger: logger, from: from}
}

func (s *LogSender) Send(_ context.Context, msg Confirmation) error {
	s.logger.Info("confirmation dispatched",
		"from", s.from,
		"recipient", msg.Recipient,
		"session_id", msg.SessionID,
		"ticket_count", msg.TicketCount,
	)
	return nil
}
