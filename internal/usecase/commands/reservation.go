package commands

import (
	"context"
	"log/slog"

	"ticketline/internal/domain/inventory"
	"ticketline/internal/domain/reservation"
	"ticketline/internal/infra"
	"ticketline/internal/pkg/clock"
	"ticketline/internal/pkg/config"
	"ticketline/internal/pkg/errs"
	"ticketline/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmptyReservation        = errs.New("reservation has no items")
	ErrInvalidReservationItem  = errs.New("invalid reservation item")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type FailureReason string

const (
	FailureNotFound     FailureReason = "not_found"
	FailureInactive     FailureReason = "inactive"
	FailureInsufficient FailureReason = "insufficient_inventory"
)

type ReserveItem struct {
	TicketTypeID uuid.UUID
	Quantity     int
}

// ItemFailure explains why one requested item could not be held.
type ItemFailure struct {
	TicketTypeID uuid.UUID     `json:"ticket_type_id"`
	Reason       FailureReason `json:"reason"`
	Remaining    int           `json:"remaining"`
}

type ReserveResult struct {
	Reservation *queries.ReservationView
	Failures    []ItemFailure
	Replayed    bool
}

func (r *ReserveResult) Success() bool {
	return len(r.Failures) == 0
}

type ReservationCommands interface {
	ReserveTickets(ctx context.Context, sessionID string, items []ReserveItem) (*ReserveResult, error)
}

type reservationUseCaseImpl struct {
	ledger          InventoryLedger
	reservationRepo ReservationRepository
	cfg             config.CheckoutConfig
	clock           clock.Clock
	logger          *slog.Logger
}

func NewReservationUseCase(
	ledger InventoryLedger,
	reservationRepo ReservationRepository,
	cfg config.CheckoutConfig,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		ledger:          ledger,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		clock:           clk,
		logger:          logger,
	}
}

// ReserveTickets holds inventory for a checkout session. Either every
// item is granted and a pending reservation exists, or nothing is held
// and the failures list says why, item by item.
func (r *reservationUseCaseImpl) ReserveTickets(ctx context.Context, sessionID string, items []ReserveItem) (*ReserveResult, error) {
	lines, err := toLines(items)
	if err != nil {
		return nil, err
	}

	// A session that already holds a pending reservation is a replay of
	// the same checkout, not a second hold.
	if existing, err := r.reservationRepo.FindBySessionID(ctx, sessionID); err == nil {
		if existing.Pending() {
			return &ReserveResult{Reservation: queries.ReservationToView(existing), Replayed: true}, nil
		}
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Resolve every distinct ticket type in one batch lookup.
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.TicketTypeID)
	}
	types, err := r.ledger.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var failures []ItemFailure
	for _, l := range lines {
		tt, found := types[l.TicketTypeID]
		switch {
		case !found:
			failures = append(failures, ItemFailure{TicketTypeID: l.TicketTypeID, Reason: FailureNotFound})
		case !tt.Sellable():
			failures = append(failures, ItemFailure{TicketTypeID: l.TicketTypeID, Reason: FailureInactive})
		}
	}
	if len(failures) > 0 {
		return &ReserveResult{Failures: failures}, nil
	}

	granted, failures, err := r.holdAll(ctx, lines, types)
	if err != nil {
		return nil, err
	}
	if len(failures) > 0 {
		return &ReserveResult{Failures: failures}, nil
	}

	res, err := reservation.NewReservation(sessionID, lines, r.clock.Now(), r.cfg.ReservationTTL)
	if err != nil {
		r.releaseAll(ctx, granted)
		return nil, errs.Mark(err, ErrInvalidReservationItem)
	}

	if err := r.reservationRepo.Create(ctx, res); err != nil {
		// A concurrent call for the same session won the insert. Hand the
		// held units back and return the winner's state.
		r.releaseAll(ctx, granted)
		if infra.IsKind(err, infra.KindConflict) {
			existing, findErr := r.reservationRepo.FindBySessionID(ctx, sessionID)
			if findErr != nil {
				return nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
			}
			return &ReserveResult{Reservation: queries.ReservationToView(existing), Replayed: true}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ReserveResult{Reservation: queries.ReservationToView(res)}, nil
}

// holdAll attempts every line in order. On the first refusal it releases
// the lines already granted and reports the refusal; on an infrastructure
// error it releases and propagates.
func (r *reservationUseCaseImpl) holdAll(
	ctx context.Context,
	lines []reservation.Line,
	types map[uuid.UUID]*inventory.TicketType,
) ([]reservation.Line, []ItemFailure, error) {
	granted := make([]reservation.Line, 0, len(lines))
	for _, l := range lines {
		ok, _, err := r.ledger.TryReserve(ctx, l.TicketTypeID, l.Quantity)
		if err != nil {
			r.releaseAll(ctx, granted)
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !ok {
			r.releaseAll(ctx, granted)
			remaining := 0
			if tt := types[l.TicketTypeID]; tt != nil {
				remaining = tt.Remaining()
			}
			return nil, []ItemFailure{{
				TicketTypeID: l.TicketTypeID,
				Reason:       FailureInsufficient,
				Remaining:    remaining,
			}}, nil
		}
		granted = append(granted, l)
	}
	return granted, nil, nil
}

func (r *reservationUseCaseImpl) releaseAll(ctx context.Context, granted []reservation.Line) {
	for _, l := range granted {
		if err := r.ledger.Release(ctx, l.TicketTypeID, l.Quantity); err != nil {
			r.logger.Error("compensating release failed",
				"ticket_type_id", l.TicketTypeID,
				"quantity", l.Quantity,
				"error", err.Error(),
			)
		}
	}
}

// toLines validates the request shape and merges duplicate ticket types
// so the ledger sees one conditional update per type.
func toLines(items []ReserveItem) ([]reservation.Line, error) {
	if len(items) == 0 {
		return nil, ErrEmptyReservation
	}
	merged := make(map[uuid.UUID]int, len(items))
	ordered := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 || it.TicketTypeID == uuid.Nil {
			return nil, ErrInvalidReservationItem
		}
		if _, seen := merged[it.TicketTypeID]; !seen {
			ordered = append(ordered, it.TicketTypeID)
		}
		merged[it.TicketTypeID] += it.Quantity
	}

	lines := make([]reservation.Line, 0, len(ordered))
	for _, id := range ordered {
		lines = append(lines, reservation.Line{TicketTypeID: id, Quantity: merged[id]})
	}
	return lines, nil
}
