package request

import (
	"strings"

	"ticketline/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationItem struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,gt=0"`
}

type CreateReservationRequest struct {
	SessionID string            `json:"session_id" binding:"required"`
	Items     []ReservationItem `json:"items" binding:"required,min=1,dive"`
}

func (r CreateReservationRequest) GetSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

func (r CreateReservationRequest) ToCommand() []commands.ReserveItem {
	items := make([]commands.ReserveItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.ReserveItem{
			TicketTypeID: it.TicketTypeID,
			Quantity:     it.Quantity,
		})
	}
	return items
}
