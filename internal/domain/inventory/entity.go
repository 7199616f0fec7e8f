package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeCount   = errors.New("counters cannot be negative")
	ErrCountsExceedCap = errors.New("sold and reserved counts exceed capacity")
	ErrInvalidStatus   = errors.New("invalid ticket type status")
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusSoldOut   Status = "sold_out"
	StatusDisabled  Status = "disabled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusSoldOut, StatusDisabled:
		return true
	}
	return false
}

// TicketType is the unit of sale. The sold/reserved counters are the hot
// shared state of the whole pipeline; they are only ever mutated through
// the ledger's atomic conditional updates, never through this entity.
type TicketType struct {
	id            uuid.UUID
	eventID       uuid.UUID
	name          string
	priceCents    int64
	capacity      int
	soldCount     int
	reservedCount int
	status        Status
	eventDate     time.Time
}

func NewTicketType(
	id uuid.UUID,
	eventID uuid.UUID,
	name string,
	priceCents int64,
	capacity, soldCount, reservedCount int,
	status Status,
	eventDate time.Time,
) (*TicketType, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if soldCount < 0 || reservedCount < 0 {
		return nil, ErrNegativeCount
	}
	if soldCount+reservedCount > capacity {
		return nil, ErrCountsExceedCap
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	return &TicketType{
		id:            id,
		eventID:       eventID,
		name:          name,
		priceCents:    priceCents,
		capacity:      capacity,
		soldCount:     soldCount,
		reservedCount: reservedCount,
		status:        status,
		eventDate:     eventDate,
	}, nil
}

func (t *TicketType) ID() uuid.UUID        { return t.id }
func (t *TicketType) EventID() uuid.UUID   { return t.eventID }
func (t *TicketType) Name() string         { return t.name }
func (t *TicketType) PriceCents() int64    { return t.priceCents }
func (t *TicketType) Capacity() int        { return t.capacity }
func (t *TicketType) SoldCount() int       { return t.soldCount }
func (t *TicketType) ReservedCount() int   { return t.reservedCount }
func (t *TicketType) Status() Status       { return t.status }
func (t *TicketType) EventDate() time.Time { return t.eventDate }

func (t *TicketType) Remaining() int {
	return t.capacity - t.soldCount - t.reservedCount
}

func (t *TicketType) Sellable() bool {
	return t.status == StatusAvailable
}
