package queries

import (
	"context"
	"time"

	"ticketline/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID        uuid.UUID             `json:"id"`
	SessionID string                `json:"session_id"`
	Status    string                `json:"status"`
	Lines     []ReservationLineView `json:"lines"`
	CreatedAt time.Time             `json:"created_at"`
	ExpiresAt time.Time             `json:"expires_at"`
}

type ReservationLineView struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	Quantity     int       `json:"quantity"`
}

type ReservationQueries interface {
	GetBySessionID(ctx context.Context, sessionID string) (*ReservationView, error)
}

type ReservationReader interface {
	FindBySessionID(ctx context.Context, sessionID string) (*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	reader ReservationReader
}

func NewReservationQueries(reader ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reader: reader}
}

func (q *reservationQueriesImpl) GetBySessionID(ctx context.Context, sessionID string) (*ReservationView, error) {
	res, err := q.reader.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ReservationToView(res), nil
}

func ReservationToView(res *reservation.Reservation) *ReservationView {
	lines := make([]ReservationLineView, 0, len(res.Lines()))
	for _, l := range res.Lines() {
		lines = append(lines, ReservationLineView{TicketTypeID: l.TicketTypeID, Quantity: l.Quantity})
	}
	return &ReservationView{
		ID:        res.ID(),
		SessionID: res.SessionID(),
		Status:    string(res.Status()),
		Lines:     lines,
		CreatedAt: res.CreatedAt(),
		ExpiresAt: res.ExpiresAt(),
	}
}
