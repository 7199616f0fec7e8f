package commands

import (
	"context"
	"time"

	"ticketline/internal/domain/inventory"
	"ticketline/internal/domain/order"
	"ticketline/internal/domain/reservation"
	"ticketline/internal/usecase/shared"

	"github.com/google/uuid"
)

// InventoryLedger is the atomic counter store over ticket_types. TryReserve
// reporting ok=false means insufficient inventory, never a system fault.
type InventoryLedger interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*inventory.TicketType, error)
	TryReserve(ctx context.Context, ticketTypeID uuid.UUID, qty int) (ok bool, remaining int, err error)
	CommitSale(ctx context.Context, ticketTypeID uuid.UUID, qty int) error
	Release(ctx context.Context, ticketTypeID uuid.UUID, qty int) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindBySessionID(ctx context.Context, sessionID string) (*reservation.Reservation, error)
	MarkFulfilled(ctx context.Context, sessionID string) (bool, error)
	MarkReleased(ctx context.Context, sessionID string) error
	SweepExpired(ctx context.Context, now time.Time, limit int) ([]*reservation.Reservation, error)
}

type OrderRepository interface {
	FindBySessionID(ctx context.Context, sessionID string) (*order.Transaction, error)
	FindTicketsByTransactionID(ctx context.Context, txID uuid.UUID) ([]*order.Ticket, error)
	CreateWithTickets(ctx context.Context, tx *order.Transaction, tickets []*order.Ticket) error
}

type EmailRetryRepository interface {
	Enqueue(ctx context.Context, entry shared.EmailRetryEntry) error
}

type ReminderRepository interface {
	CreateBatch(ctx context.Context, reminders []shared.ReminderEvent) error
}

// TaskScheduler detaches side-effect work from the request that produced
// it. Implementations must not propagate the caller's cancellation.
type TaskScheduler interface {
	Go(name string, fn func(ctx context.Context) error)
}
