package shared

import (
	"time"

	"github.com/google/uuid"
)

// EmailRetryEntry is the persisted work item written when a confirmation
// send fails. A separate worker owns draining the queue.
type EmailRetryEntry struct {
	Recipient   string
	MessageType string
	LastError   string
}

// ReminderEvent is one scheduled reminder tied to a transaction.
type ReminderEvent struct {
	TransactionID uuid.UUID
	ReminderType  string
	ScheduledAt   time.Time
}
