package commands

import (
	"context"
	"log/slog"
	"time"

	"ticketline/internal/pkg/mailer"
	"ticketline/internal/usecase/queries"
	"ticketline/internal/usecase/shared"
)

const confirmationMessageType = "order_confirmation"

// NotificationCommands dispatches the confirmation message. Failures are
// parked in the retry queue for an out-of-band worker; they never reach
// the checkout caller.
type NotificationCommands interface {
	SendConfirmation(ctx context.Context, view *queries.OrderView)
}

type notificationUseCaseImpl struct {
	sender      mailer.Sender
	retryRepo   EmailRetryRepository
	sendTimeout time.Duration
	logger      *slog.Logger
}

func NewNotificationUseCase(sender mailer.Sender, retryRepo EmailRetryRepository, sendTimeout time.Duration, logger *slog.Logger) NotificationCommands {
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	return &notificationUseCaseImpl{
		sender:      sender,
		retryRepo:   retryRepo,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

func (u *notificationUseCaseImpl) SendConfirmation(ctx context.Context, view *queries.OrderView) {
	sendCtx, cancel := context.WithTimeout(ctx, u.sendTimeout)
	defer cancel()

	err := u.sender.Send(sendCtx, mailer.Confirmation{
		Recipient:     view.CustomerEmail,
		RecipientName: view.CustomerName,
		SessionID:     view.SessionID,
		AmountCents:   view.AmountCents,
		TicketCount:   len(view.Tickets),
	})
	if err == nil {
		return
	}

	u.logger.Warn("confirmation send failed, queueing retry",
		"recipient", view.CustomerEmail,
		"session_id", view.SessionID,
		"error", err.Error(),
	)

	entry := shared.EmailRetryEntry{
		Recipient:   view.CustomerEmail,
		MessageType: confirmationMessageType,
		LastError:   err.Error(),
	}
	if qErr := u.retryRepo.Enqueue(ctx, entry); qErr != nil {
		u.logger.Error("failed to enqueue email retry",
			"recipient", view.CustomerEmail,
			"session_id", view.SessionID,
			"error", qErr.Error(),
		)
	}
}
