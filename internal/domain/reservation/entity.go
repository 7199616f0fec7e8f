package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySessionID      = errors.New("session id is required")
	ErrNoLines             = errors.New("reservation needs at least one line")
	ErrInvalidQuantity     = errors.New("line quantity must be positive")
	ErrDuplicateTicketType = errors.New("duplicate ticket type in reservation")
	ErrNotPending          = errors.New("reservation is no longer pending")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusReleased  Status = "released"
	StatusExpired   Status = "expired"
)

// Line is one held position: a quantity against a single ticket type.
type Line struct {
	TicketTypeID uuid.UUID
	Quantity     int
}

// Reservation is a time-bounded hold on inventory, keyed by the external
// checkout session. It is short-lived: fulfilled, released, or expired
// within minutes, and every non-pending state is terminal.
type Reservation struct {
	id        uuid.UUID
	sessionID string
	lines     []Line
	status    Status
	createdAt time.Time
	expiresAt time.Time
}

func NewReservation(sessionID string, lines []Line, now time.Time, ttl time.Duration) (*Reservation, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, dup := seen[l.TicketTypeID]; dup {
			return nil, ErrDuplicateTicketType
		}
		seen[l.TicketTypeID] = struct{}{}
	}

	return &Reservation{
		id:        uuid.New(),
		sessionID: sessionID,
		lines:     lines,
		status:    StatusPending,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

// Restore rebuilds a reservation from persisted state.
func Restore(id uuid.UUID, sessionID string, lines []Line, status Status, createdAt, expiresAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		sessionID: sessionID,
		lines:     lines,
		status:    status,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) SessionID() string    { return r.sessionID }
func (r *Reservation) Lines() []Line        { return r.lines }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }

func (r *Reservation) Pending() bool {
	return r.status == StatusPending
}

func (r *Reservation) ExpiredAt(now time.Time) bool {
	return r.status == StatusPending && now.After(r.expiresAt)
}

// TotalQuantity is the number of units held across all lines.
func (r *Reservation) TotalQuantity() int {
	total := 0
	for _, l := range r.lines {
		total += l.Quantity
	}
	return total
}
