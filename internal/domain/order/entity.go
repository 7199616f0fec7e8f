package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySessionID   = errors.New("session id is required")
	ErrEmptyRecipient   = errors.New("customer email is required")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrNegativePrice    = errors.New("ticket price cannot be negative")
	ErrInvalidScanLimit = errors.New("max scan count must be at least one")
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionRefunded  TransactionStatus = "refunded"
)

type TicketStatus string

const (
	TicketValid     TicketStatus = "valid"
	TicketCancelled TicketStatus = "cancelled"
)

// Transaction is the durable record of one confirmed payment. The session
// id doubles as the idempotency key: the unique constraint on it is what
// makes materialization safe under duplicate webhook delivery.
type Transaction struct {
	id            uuid.UUID
	sessionID     string
	customerEmail string
	customerName  string
	amountCents   int64
	status        TransactionStatus
	createdAt     time.Time
}

func NewTransaction(sessionID, customerEmail, customerName string, amountCents int64, now time.Time) (*Transaction, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if customerEmail == "" {
		return nil, ErrEmptyRecipient
	}
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}

	return &Transaction{
		id:            uuid.New(),
		sessionID:     sessionID,
		customerEmail: customerEmail,
		customerName:  customerName,
		amountCents:   amountCents,
		status:        TransactionCompleted,
		createdAt:     now,
	}, nil
}

func RestoreTransaction(id uuid.UUID, sessionID, customerEmail, customerName string, amountCents int64, status TransactionStatus, createdAt time.Time) *Transaction {
	return &Transaction{
		id:            id,
		sessionID:     sessionID,
		customerEmail: customerEmail,
		customerName:  customerName,
		amountCents:   amountCents,
		status:        status,
		createdAt:     createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID             { return t.id }
func (t *Transaction) SessionID() string         { return t.sessionID }
func (t *Transaction) CustomerEmail() string     { return t.customerEmail }
func (t *Transaction) CustomerName() string      { return t.customerName }
func (t *Transaction) AmountCents() int64        { return t.amountCents }
func (t *Transaction) Status() TransactionStatus { return t.status }
func (t *Transaction) CreatedAt() time.Time      { return t.createdAt }

func (t *Transaction) Completed() bool {
	return t.status == TransactionCompleted
}

// Ticket is one admission. Created only during materialization and never
// mutated by this pipeline afterwards; scanning belongs to check-in.
type Ticket struct {
	id           uuid.UUID
	txID         uuid.UUID
	ticketTypeID uuid.UUID
	priceCents   int64
	status       TicketStatus
	scanCount    int
	maxScanCount int
}

func NewTicket(txID, ticketTypeID uuid.UUID, priceCents int64, maxScanCount int) (*Ticket, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if maxScanCount < 1 {
		return nil, ErrInvalidScanLimit
	}

	return &Ticket{
		id:           uuid.New(),
		txID:         txID,
		ticketTypeID: ticketTypeID,
		priceCents:   priceCents,
		status:       TicketValid,
		scanCount:    0,
		maxScanCount: maxScanCount,
	}, nil
}

func RestoreTicket(id, txID, ticketTypeID uuid.UUID, priceCents int64, status TicketStatus, scanCount, maxScanCount int) *Ticket {
	return &Ticket{
		id:           id,
		txID:         txID,
		ticketTypeID: ticketTypeID,
		priceCents:   priceCents,
		status:       status,
		scanCount:    scanCount,
		maxScanCount: maxScanCount,
	}
}

func (t *Ticket) ID() uuid.UUID            { return t.id }
func (t *Ticket) TransactionID() uuid.UUID { return t.txID }
func (t *Ticket) TicketTypeID() uuid.UUID  { return t.ticketTypeID }
func (t *Ticket) PriceCents() int64        { return t.priceCents }
func (t *Ticket) Status() TicketStatus     { return t.status }
func (t *Ticket) ScanCount() int           { return t.scanCount }
func (t *Ticket) MaxScanCount() int        { return t.maxScanCount }
