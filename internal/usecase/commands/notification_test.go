//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ticketline/internal/pkg/errs"
	"ticketline/internal/pkg/mailer"
	"ticketline/internal/usecase/commands"
	"ticketline/internal/usecase/queries"
	"ticketline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func orderViewFixture() *queries.OrderView {
	return &queries.OrderView{
		TransactionID: uuid.New(),
		SessionID:     "cs_mail",
		CustomerEmail: "ada@example.com",
		CustomerName:  "Ada",
		AmountCents:   25000,
		Status:        "completed",
		Tickets:       []queries.TicketView{{ID: uuid.New()}, {ID: uuid.New()}},
	}
}

func TestSendConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers the confirmation once", func(t *testing.T) {
		sender := new(MockSender)
		retryRepo := new(MockEmailRetryRepo)
		uc := commands.NewNotificationUseCase(sender, retryRepo, 5*time.Second, slog.Default())

		view := orderViewFixture()
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Confirmation) bool {
			return msg.Recipient == "ada@example.com" && msg.SessionID == "cs_mail" && msg.TicketCount == 2
		})).Return(nil).Once()

		uc.SendConfirmation(ctx, view)

		sender.AssertExpectations(t)
		retryRepo.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
	})

	t.Run("send failure parks exactly one retry entry", func(t *testing.T) {
		sender := new(MockSender)
		retryRepo := new(MockEmailRetryRepo)
		uc := commands.NewNotificationUseCase(sender, retryRepo, 5*time.Second, slog.Default())

		sendErr := errs.New("smtp refused")
		sender.On("Send", mock.Anything, mock.Anything).Return(sendErr).Once()
		retryRepo.On("Enqueue", mock.Anything, mock.MatchedBy(func(entry shared.EmailRetryEntry) bool {
			return entry.Recipient == "ada@example.com" &&
				entry.MessageType == "order_confirmation" &&
				entry.LastError == sendErr.Error()
		})).Return(nil).Once()

		uc.SendConfirmation(ctx, orderViewFixture())

		retryRepo.AssertNumberOfCalls(t, "Enqueue", 1)
		retryRepo.AssertExpectations(t)
	})

	t.Run("enqueue failure is swallowed", func(t *testing.T) {
		sender := new(MockSender)
		retryRepo := new(MockEmailRetryRepo)
		uc := commands.NewNotificationUseCase(sender, retryRepo, 5*time.Second, slog.Default())

		sender.On("Send", mock.Anything, mock.Anything).Return(errs.New("smtp refused")).Once()
		retryRepo.On("Enqueue", mock.Anything, mock.Anything).Return(errs.New("queue down")).Once()

		assert.NotPanics(t, func() {
			uc.SendConfirmation(ctx, orderViewFixture())
		})
	})

	t.Run("send runs under its own deadline", func(t *testing.T) {
		sender := new(MockSender)
		retryRepo := new(MockEmailRetryRepo)
		uc := commands.NewNotificationUseCase(sender, retryRepo, 50*time.Millisecond, slog.Default())

		var sawDeadline bool
		sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			_, sawDeadline = args.Get(0).(context.Context).Deadline()
		}).Return(nil).Once()

		uc.SendConfirmation(ctx, orderViewFixture())

		assert.True(t, sawDeadline)
	})
}
