//go:build unit || e2e

package builder

import (
	"time"

	domorder "ticketline/internal/domain/order"
	reqdto "ticketline/internal/handler/dto/request"
	"ticketline/internal/usecase/commands"
	"ticketline/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	SessionID     string
	CustomerEmail string
	CustomerName  string
	AmountCents   int64
	TicketTypeID  uuid.UUID
	Quantity      int
	PriceCents    int64
	Now           time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		SessionID:     "cs_" + uuid.NewString()[:8],
		CustomerEmail: "customer@example.com",
		CustomerName:  "Test Customer",
		AmountCents:   10000,
		TicketTypeID:  uuid.New(),
		Quantity:      2,
		PriceCents:    5000,
		Now:           time.Now().UTC().Truncate(time.Second),
	}
}

func (b *PaymentBuilder) WithSessionID(sessionID string) *PaymentBuilder {
	b.SessionID = sessionID
	return b
}

func (b *PaymentBuilder) WithTicketTypeID(id uuid.UUID) *PaymentBuilder {
	b.TicketTypeID = id
	return b
}

func (b *PaymentBuilder) WithQuantity(qty int) *PaymentBuilder {
	b.Quantity = qty
	return b
}

func (b *PaymentBuilder) WithAmountCents(amount int64) *PaymentBuilder {
	b.AmountCents = amount
	return b
}

func (b *PaymentBuilder) BuildWebhookRequestDTO() reqdto.PaymentWebhookRequest {
	return reqdto.PaymentWebhookRequest{
		SessionID:     b.SessionID,
		CustomerEmail: b.CustomerEmail,
		CustomerName:  b.CustomerName,
		AmountCents:   b.AmountCents,
		Items: []reqdto.PaymentLineItem{
			{TicketTypeID: b.TicketTypeID, Quantity: b.Quantity},
		},
	}
}

func (b *PaymentBuilder) BuildEvent() commands.ConfirmedPaymentEvent {
	return commands.ConfirmedPaymentEvent{
		SessionID:     b.SessionID,
		CustomerEmail: b.CustomerEmail,
		CustomerName:  b.CustomerName,
		AmountCents:   b.AmountCents,
		Items: []commands.LineItem{
			{TicketTypeID: b.TicketTypeID, Quantity: b.Quantity},
		},
	}
}

func (b *PaymentBuilder) BuildOrderView() *queries.OrderView {
	txID := uuid.New()
	tickets := make([]queries.TicketView, 0, b.Quantity)
	for range b.Quantity {
		tickets = append(tickets, queries.TicketView{
			ID:           uuid.New(),
			TicketTypeID: b.TicketTypeID,
			PriceCents:   b.PriceCents,
			Status:       string(domorder.TicketValid),
			ScanCount:    0,
			MaxScanCount: 1,
		})
	}
	return &queries.OrderView{
		TransactionID: txID,
		SessionID:     b.SessionID,
		CustomerEmail: b.CustomerEmail,
		CustomerName:  b.CustomerName,
		AmountCents:   b.AmountCents,
		Status:        string(domorder.TransactionCompleted),
		CreatedAt:     b.Now,
		Tickets:       tickets,
	}
}

func (b *PaymentBuilder) BuildCheckoutResult(created bool) *commands.CheckoutResult {
	view := b.BuildOrderView()
	return &commands.CheckoutResult{
		Order:       view,
		Created:     created,
		TicketCount: len(view.Tickets),
	}
}
