package commands

import (
	"context"
	"time"

	"ticketline/internal/domain/order"
	"ticketline/internal/infra"
	"ticketline/internal/pkg/clock"
	"ticketline/internal/pkg/errs"
	"ticketline/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUnknownTicketType  = errs.New("unknown ticket type")
	ErrInactiveTicketType = errs.New("inactive ticket type")
	ErrInvalidPayment     = errs.New("invalid payment event")
)

type LineItem struct {
	TicketTypeID uuid.UUID
	Quantity     int
}

// ConfirmedPaymentEvent is the already-verified record delivered by the
// payment processor collaborator. SessionID is the idempotency key.
type ConfirmedPaymentEvent struct {
	SessionID     string
	CustomerEmail string
	CustomerName  string
	AmountCents   int64
	Items         []LineItem
}

type CheckoutResult struct {
	Order       *queries.OrderView
	Created     bool
	TicketCount int
}

type CheckoutCommands interface {
	CreateOrRetrieveTickets(ctx context.Context, event ConfirmedPaymentEvent) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	ledger       InventoryLedger
	orderRepo    OrderRepository
	fulfillment  FulfillmentCommands
	notification NotificationCommands
	reminders    ReminderCommands
	scheduler    TaskScheduler
	clock        clock.Clock
}

func NewCheckoutUseCase(
	ledger InventoryLedger,
	orderRepo OrderRepository,
	fulfillment FulfillmentCommands,
	notification NotificationCommands,
	reminders ReminderCommands,
	scheduler TaskScheduler,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		ledger:       ledger,
		orderRepo:    orderRepo,
		fulfillment:  fulfillment,
		notification: notification,
		reminders:    reminders,
		scheduler:    scheduler,
		clock:        clk,
	}
}

// CreateOrRetrieveTickets is the idempotency boundary of the pipeline.
// The processor may deliver the same confirmation any number of times;
// exactly one delivery materializes rows, every other one reads them back.
func (u *checkoutUseCaseImpl) CreateOrRetrieveTickets(ctx context.Context, event ConfirmedPaymentEvent) (*CheckoutResult, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	if result, err := u.retrieveExisting(ctx, event.SessionID); err != nil {
		return nil, err
	} else if result != nil {
		return result, nil
	}

	types, eventDate, err := u.validateLineItems(ctx, event.Items)
	if err != nil {
		return nil, err
	}

	tx, err := order.NewTransaction(event.SessionID, event.CustomerEmail, event.CustomerName, event.AmountCents, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPayment)
	}

	tickets, err := buildTickets(tx.ID(), event.Items, types)
	if err != nil {
		return nil, err
	}

	if err := u.orderRepo.CreateWithTickets(ctx, tx, tickets); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost the insert race for this session: the winner's rows are
			// the canonical result.
			if result, retryErr := u.retrieveExisting(ctx, event.SessionID); retryErr != nil {
				return nil, retryErr
			} else if result != nil {
				return result, nil
			}
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view := queries.OrderToView(tx, tickets)

	// Side effects run detached; the checkout response never waits on them.
	u.scheduler.Go("fulfillment", func(taskCtx context.Context) error {
		u.fulfillment.FulfillReservation(taskCtx, event.SessionID, tx.ID())
		return nil
	})
	u.scheduler.Go("notification", func(taskCtx context.Context) error {
		u.notification.SendConfirmation(taskCtx, view)
		return nil
	})
	u.scheduler.Go("reminders", func(taskCtx context.Context) error {
		u.reminders.ScheduleReminders(taskCtx, tx.ID(), eventDate)
		return nil
	})

	return &CheckoutResult{Order: view, Created: true, TicketCount: len(tickets)}, nil
}

// retrieveExisting implements the read path: a completed transaction for
// this session short-circuits the whole operation with Created=false.
func (u *checkoutUseCaseImpl) retrieveExisting(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	tx, err := u.orderRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tickets, err := u.orderRepo.FindTicketsByTransactionID(ctx, tx.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CheckoutResult{
		Order:       queries.OrderToView(tx, tickets),
		Created:     false,
		TicketCount: len(tickets),
	}, nil
}

// validateLineItems resolves all distinct ticket types in one batch query
// and rejects the whole event on any unknown or unsellable type. It also
// reports the earliest event date for reminder scheduling.
func (u *checkoutUseCaseImpl) validateLineItems(ctx context.Context, items []LineItem) (map[uuid.UUID]*ticketTypeRef, time.Time, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.TicketTypeID]; !dup {
			seen[it.TicketTypeID] = struct{}{}
			ids = append(ids, it.TicketTypeID)
		}
	}

	types, err := u.ledger.FindByIDs(ctx, ids)
	if err != nil {
		return nil, time.Time{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	refs := make(map[uuid.UUID]*ticketTypeRef, len(types))
	var eventDate time.Time
	for _, id := range ids {
		tt, found := types[id]
		if !found {
			return nil, time.Time{}, errs.Mark(errs.Newf("ticket type %s does not exist", id), ErrUnknownTicketType)
		}
		if !tt.Sellable() {
			return nil, time.Time{}, errs.Mark(errs.Newf("ticket type %s is not on sale", id), ErrInactiveTicketType)
		}
		refs[id] = &ticketTypeRef{priceCents: tt.PriceCents(), eventDate: tt.EventDate()}
		if eventDate.IsZero() || tt.EventDate().Before(eventDate) {
			eventDate = tt.EventDate()
		}
	}

	return refs, eventDate, nil
}

type ticketTypeRef struct {
	priceCents int64
	eventDate  time.Time
}

func buildTickets(txID uuid.UUID, items []LineItem, types map[uuid.UUID]*ticketTypeRef) ([]*order.Ticket, error) {
	var tickets []*order.Ticket
	for _, it := range items {
		ref := types[it.TicketTypeID]
		for range it.Quantity {
			tk, err := order.NewTicket(txID, it.TicketTypeID, ref.priceCents, 1)
			if err != nil {
				return nil, errs.Mark(err, ErrInvalidPayment)
			}
			tickets = append(tickets, tk)
		}
	}
	return tickets, nil
}

func validateEvent(event ConfirmedPaymentEvent) error {
	if event.SessionID == "" || event.CustomerEmail == "" {
		return errs.Mark(errs.New("missing session id or customer contact"), ErrInvalidPayment)
	}
	if event.AmountCents < 0 {
		return errs.Mark(errs.New("negative amount"), ErrInvalidPayment)
	}
	if len(event.Items) == 0 {
		return errs.Mark(errs.New("no line items"), ErrInvalidPayment)
	}
	for _, it := range event.Items {
		if it.TicketTypeID == uuid.Nil || it.Quantity <= 0 {
			return errs.Mark(errs.New("malformed line item"), ErrInvalidPayment)
		}
	}
	return nil
}
