package commands

import (
	"context"
	"log/slog"
	"time"

	"ticketline/internal/pkg/errs"
)

// SweepCommands reclaims inventory from reservations whose checkout never
// completed. Driven by the time-based reclaim scheduler.
type SweepCommands interface {
	ReleaseExpired(ctx context.Context, now time.Time, limit int) (int, error)
}

type sweepUseCaseImpl struct {
	ledger          InventoryLedger
	reservationRepo ReservationRepository
	logger          *slog.Logger
}

func NewSweepUseCase(ledger InventoryLedger, reservationRepo ReservationRepository, logger *slog.Logger) SweepCommands {
	return &sweepUseCaseImpl{
		ledger:          ledger,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ReleaseExpired claims up to limit expired holds and hands their units
// back to the ledger. Release is clamp-at-zero idempotent, so a crash
// between claiming and releasing at worst leaves units to a later log
// inspection rather than corrupting counters.
func (u *sweepUseCaseImpl) ReleaseExpired(ctx context.Context, now time.Time, limit int) (int, error) {
	swept, err := u.reservationRepo.SweepExpired(ctx, now, limit)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, res := range swept {
		for _, line := range res.Lines() {
			if err := u.ledger.Release(ctx, line.TicketTypeID, line.Quantity); err != nil {
				u.logger.Error("failed to release expired hold",
					"session_id", res.SessionID(),
					"ticket_type_id", line.TicketTypeID,
					"quantity", line.Quantity,
					"error", err.Error(),
				)
			}
		}
		u.logger.Info("reservation expired and released",
			"session_id", res.SessionID(),
			"units", res.TotalQuantity(),
		)
	}

	return len(swept), nil
}
