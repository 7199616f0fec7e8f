package response

import (
	"time"

	"ticketline/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID           uuid.UUID `json:"id"`
	TicketTypeID uuid.UUID `json:"ticketTypeId"`
	PriceCents   int64     `json:"priceCents"`
	Status       string    `json:"status"`
	ScanCount    int       `json:"scanCount"`
	MaxScanCount int       `json:"maxScanCount"`
}

type OrderResponse struct {
	TransactionID uuid.UUID        `json:"transactionId"`
	SessionID     string           `json:"sessionId"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerName  string           `json:"customerName"`
	AmountCents   int64            `json:"amountCents"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	Tickets       []TicketResponse `json:"tickets"`
}

type CheckoutResponse struct {
	Order       *OrderResponse `json:"order"`
	Created     bool           `json:"created"`
	TicketCount int            `json:"ticketCount"`
}

type EmailRetryResponse struct {
	ID          uuid.UUID `json:"id"`
	Recipient   string    `json:"recipient"`
	MessageType string    `json:"messageType"`
	Status      string    `json:"status"`
	LastError   *string   `json:"lastError,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	tickets := make([]TicketResponse, 0, len(rm.Tickets))
	for _, tk := range rm.Tickets {
		tickets = append(tickets, TicketResponse{
			ID:           tk.ID,
			TicketTypeID: tk.TicketTypeID,
			PriceCents:   tk.PriceCents,
			Status:       tk.Status,
			ScanCount:    tk.ScanCount,
			MaxScanCount: tk.MaxScanCount,
		})
	}
	return &OrderResponse{
		TransactionID: rm.TransactionID,
		SessionID:     rm.SessionID,
		CustomerEmail: rm.CustomerEmail,
		CustomerName:  rm.CustomerName,
		AmountCents:   rm.AmountCents,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		Tickets:       tickets,
	}
}

func FromEmailRetryView(rm *queries.EmailRetryView) *EmailRetryResponse {
	return &EmailRetryResponse{
		ID:          rm.ID,
		Recipient:   rm.Recipient,
		MessageType: rm.MessageType,
		Status:      rm.Status,
		LastError:   rm.LastError,
		CreatedAt:   rm.CreatedAt,
	}
}
