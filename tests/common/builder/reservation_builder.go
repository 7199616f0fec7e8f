//go:build unit || e2e

package builder

import (
	"time"

	domreservation "ticketline/internal/domain/reservation"
	reqdto "ticketline/internal/handler/dto/request"
	"ticketline/internal/usecase/commands"
	"ticketline/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	SessionID    string
	TicketTypeID uuid.UUID
	Quantity     int
	TTL          time.Duration
	Now          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		SessionID:    "cs_" + uuid.NewString()[:8],
		TicketTypeID: uuid.New(),
		Quantity:     2,
		TTL:          15 * time.Minute,
		Now:          time.Now().UTC().Truncate(time.Second),
	}
}

func (b *ReservationBuilder) WithSessionID(sessionID string) *ReservationBuilder {
	b.SessionID = sessionID
	return b
}

func (b *ReservationBuilder) WithTicketTypeID(id uuid.UUID) *ReservationBuilder {
	b.TicketTypeID = id
	return b
}

func (b *ReservationBuilder) WithQuantity(qty int) *ReservationBuilder {
	b.Quantity = qty
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(
		b.SessionID,
		[]domreservation.Line{{TicketTypeID: b.TicketTypeID, Quantity: b.Quantity}},
		b.Now,
		b.TTL,
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		SessionID: b.SessionID,
		Items: []reqdto.ReservationItem{
			{TicketTypeID: b.TicketTypeID, Quantity: b.Quantity},
		},
	}
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        uuid.New(),
		SessionID: b.SessionID,
		Status:    string(domreservation.StatusPending),
		Lines: []queries.ReservationLineView{
			{TicketTypeID: b.TicketTypeID, Quantity: b.Quantity},
		},
		CreatedAt: b.Now,
		ExpiresAt: b.Now.Add(b.TTL),
	}
}

func (b *ReservationBuilder) BuildReserveResult() *commands.ReserveResult {
	return &commands.ReserveResult{Reservation: b.BuildViewQuery()}
}

func (b *ReservationBuilder) BuildInsufficientResult() *commands.ReserveResult {
	return &commands.ReserveResult{
		Failures: []commands.ItemFailure{
			{TicketTypeID: b.TicketTypeID, Reason: commands.FailureInsufficient, Remaining: 0},
		},
	}
}
