package commands

import (
	"context"
	"log/slog"

	"ticketline/internal/infra"

	"github.com/google/uuid"
)

// FulfillmentCommands marks a reservation consumed once its payment has
// materialized. Best effort: the checkout response is long gone, so
// nothing here may fail loudly.
type FulfillmentCommands interface {
	FulfillReservation(ctx context.Context, sessionID string, transactionID uuid.UUID)
}

type fulfillmentUseCaseImpl struct {
	ledger          InventoryLedger
	reservationRepo ReservationRepository
	logger          *slog.Logger
}

func NewFulfillmentUseCase(ledger InventoryLedger, reservationRepo ReservationRepository, logger *slog.Logger) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{
		ledger:          ledger,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

func (u *fulfillmentUseCaseImpl) FulfillReservation(ctx context.Context, sessionID string, transactionID uuid.UUID) {
	res, err := u.reservationRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Payment arrived without a prior hold. Valid path: the sale
			// was materialized directly, there is nothing to consume.
			u.logger.Debug("no reservation to fulfill", "session_id", sessionID)
			return
		}
		u.logger.Error("fulfillment lookup failed",
			"session_id", sessionID,
			"transaction_id", transactionID,
			"error", err.Error(),
		)
		return
	}

	if !res.Pending() {
		u.logger.Debug("reservation already settled",
			"session_id", sessionID,
			"status", string(res.Status()),
		)
		return
	}

	won, err := u.reservationRepo.MarkFulfilled(ctx, sessionID)
	if err != nil {
		u.logger.Error("failed to mark reservation fulfilled",
			"session_id", sessionID,
			"error", err.Error(),
		)
		return
	}
	if !won {
		// Raced with the sweeper or another fulfillment attempt.
		return
	}

	for _, line := range res.Lines() {
		if err := u.ledger.CommitSale(ctx, line.TicketTypeID, line.Quantity); err != nil {
			u.logger.Error("failed to commit sale for reserved line",
				"session_id", sessionID,
				"ticket_type_id", line.TicketTypeID,
				"quantity", line.Quantity,
				"error", err.Error(),
			)
		}
	}
}
