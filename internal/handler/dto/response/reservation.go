package response

import (
	"time"

	"ticketline/internal/usecase/commands"
	"ticketline/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationLineResponse struct {
	TicketTypeID uuid.UUID `json:"ticketTypeId"`
	Quantity     int       `json:"quantity"`
}

type ReservationResponse struct {
	ID        uuid.UUID                 `json:"id"`
	SessionID string                    `json:"sessionId"`
	Status    string                    `json:"status"`
	Lines     []ReservationLineResponse `json:"lines"`
	CreatedAt time.Time                 `json:"createdAt"`
	ExpiresAt time.Time                 `json:"expiresAt"`
	Replayed  bool                      `json:"replayed"`
}

type ItemFailureResponse struct {
	TicketTypeID uuid.UUID `json:"ticketTypeId"`
	Reason       string    `json:"reason"`
	Remaining    int       `json:"remaining"`
}

type ReservationFailedResponse struct {
	Failures []ItemFailureResponse `json:"failures"`
}

func FromReservationView(rm *queries.ReservationView, replayed bool) *ReservationResponse {
	lines := make([]ReservationLineResponse, 0, len(rm.Lines))
	for _, l := range rm.Lines {
		lines = append(lines, ReservationLineResponse{
			TicketTypeID: l.TicketTypeID,
			Quantity:     l.Quantity,
		})
	}
	return &ReservationResponse{
		ID:        rm.ID,
		SessionID: rm.SessionID,
		Status:    rm.Status,
		Lines:     lines,
		CreatedAt: rm.CreatedAt,
		ExpiresAt: rm.ExpiresAt,
		Replayed:  replayed,
	}
}

func FromItemFailures(failures []commands.ItemFailure) *ReservationFailedResponse {
	out := make([]ItemFailureResponse, 0, len(failures))
	for _, f := range failures {
		out = append(out, ItemFailureResponse{
			TicketTypeID: f.TicketTypeID,
			Reason:       string(f.Reason),
			Remaining:    f.Remaining,
		})
	}
	return &ReservationFailedResponse{Failures: out}
}
