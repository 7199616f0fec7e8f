package request

import (
	"strings"

	"ticketline/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentLineItem struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,gt=0"`
}

// PaymentWebhookRequest is the confirmation payload the payment processor
// posts after a charge succeeds. Signature verification happens upstream.
type PaymentWebhookRequest struct {
	SessionID     string            `json:"session_id" binding:"required"`
	CustomerEmail string            `json:"customer_email" binding:"required,email"`
	CustomerName  string            `json:"customer_name"`
	AmountCents   int64             `json:"amount_cents" binding:"gte=0"`
	Items         []PaymentLineItem `json:"items" binding:"required,min=1,dive"`
}

func (r PaymentWebhookRequest) ToEvent() commands.ConfirmedPaymentEvent {
	items := make([]commands.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.LineItem{
			TicketTypeID: it.TicketTypeID,
			Quantity:     it.Quantity,
		})
	}
	return commands.ConfirmedPaymentEvent{
		SessionID:     strings.TrimSpace(r.SessionID),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		AmountCents:   r.AmountCents,
		Items:         items,
	}
}
