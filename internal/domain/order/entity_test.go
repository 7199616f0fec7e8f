//go:build unit

package order_test

import (
	"testing"
	"time"

	"ticketline/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		tx, err := order.NewTransaction("cs_123", "ada@example.com", "Ada", 29800, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, tx.ID())
		assert.Equal(t, "cs_123", tx.SessionID())
		assert.Equal(t, order.TransactionCompleted, tx.Status())
		assert.True(t, tx.Completed())
		assert.Equal(t, int64(29800), tx.AmountCents())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			sessionID string
			email     string
			amount    int64
			errIs     error
		}{
			{name: "empty session id", sessionID: "", email: "a@b.c", amount: 100, errIs: order.ErrEmptySessionID},
			{name: "empty email", sessionID: "cs_1", email: "", amount: 100, errIs: order.ErrEmptyRecipient},
			{name: "negative amount", sessionID: "cs_1", email: "a@b.c", amount: -1, errIs: order.ErrNegativeAmount},
			{name: "zero amount is allowed", sessionID: "cs_1", email: "a@b.c", amount: 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewTransaction(tc.sessionID, tc.email, "", tc.amount, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestNewTicket(t *testing.T) {
	txID := uuid.New()
	typeID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		tk, err := order.NewTicket(txID, typeID, 14900, 1)
		require.NoError(t, err)

		assert.Equal(t, txID, tk.TransactionID())
		assert.Equal(t, typeID, tk.TicketTypeID())
		assert.Equal(t, order.TicketValid, tk.Status())
		assert.Equal(t, 0, tk.ScanCount())
		assert.Equal(t, 1, tk.MaxScanCount())
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := order.NewTicket(txID, typeID, -1, 1)
		assert.ErrorIs(t, err, order.ErrNegativePrice)
	})

	t.Run("zero scan limit", func(t *testing.T) {
		_, err := order.NewTicket(txID, typeID, 100, 0)
		assert.ErrorIs(t, err, order.ErrInvalidScanLimit)
	})
}
