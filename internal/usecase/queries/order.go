package queries

import (
	"context"
	"time"

	"ticketline/internal/domain/order"

	"github.com/google/uuid"
)

type OrderView struct {
	TransactionID uuid.UUID    `json:"transaction_id"`
	SessionID     string       `json:"session_id"`
	CustomerEmail string       `json:"customer_email"`
	CustomerName  string       `json:"customer_name"`
	AmountCents   int64        `json:"amount_cents"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	Tickets       []TicketView `json:"tickets"`
}

type TicketView struct {
	ID           uuid.UUID `json:"id"`
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	PriceCents   int64     `json:"price_cents"`
	Status       string    `json:"status"`
	ScanCount    int       `json:"scan_count"`
	MaxScanCount int       `json:"max_scan_count"`
}

type EmailRetryView struct {
	ID          uuid.UUID `json:"id"`
	Recipient   string    `json:"recipient"`
	MessageType string    `json:"message_type"`
	Status      string    `json:"status"`
	LastError   *string   `json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderQueries interface {
	GetBySessionID(ctx context.Context, sessionID string) (*OrderView, error)
}

type OrderReader interface {
	FindBySessionID(ctx context.Context, sessionID string) (*order.Transaction, error)
	FindTicketsByTransactionID(ctx context.Context, txID uuid.UUID) ([]*order.Ticket, error)
}

type EmailRetryReader interface {
	ListPending(ctx context.Context, limit int) ([]*EmailRetryView, error)
}

type OpsQueries interface {
	ListEmailRetries(ctx context.Context, limit int) ([]*EmailRetryView, error)
}

type orderQueriesImpl struct {
	reader OrderReader
}

func NewOrderQueries(reader OrderReader) OrderQueries {
	return &orderQueriesImpl{reader: reader}
}

func (q *orderQueriesImpl) GetBySessionID(ctx context.Context, sessionID string) (*OrderView, error) {
	tx, err := q.reader.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	tickets, err := q.reader.FindTicketsByTransactionID(ctx, tx.ID())
	if err != nil {
		return nil, err
	}
	return OrderToView(tx, tickets), nil
}

func OrderToView(tx *order.Transaction, tickets []*order.Ticket) *OrderView {
	views := make([]TicketView, 0, len(tickets))
	for _, tk := range tickets {
		views = append(views, TicketView{
			ID:           tk.ID(),
			TicketTypeID: tk.TicketTypeID(),
			PriceCents:   tk.PriceCents(),
			Status:       string(tk.Status()),
			ScanCount:    tk.ScanCount(),
			MaxScanCount: tk.MaxScanCount(),
		})
	}
	return &OrderView{
		TransactionID: tx.ID(),
		SessionID:     tx.SessionID(),
		CustomerEmail: tx.CustomerEmail(),
		CustomerName:  tx.CustomerName(),
		AmountCents:   tx.AmountCents(),
		Status:        string(tx.Status()),
		CreatedAt:     tx.CreatedAt(),
		Tickets:       views,
	}
}

type opsQueriesImpl struct {
	reader EmailRetryReader
}

func NewOpsQueries(reader EmailRetryReader) OpsQueries {
	return &opsQueriesImpl{reader: reader}
}

func (q *opsQueriesImpl) ListEmailRetries(ctx context.Context, limit int) ([]*EmailRetryView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.reader.ListPending(ctx, limit)
}
