//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"ticketline/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 15 * time.Minute
	typeA := uuid.New()
	typeB := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		res, err := reservation.NewReservation("cs_123", []reservation.Line{
			{TicketTypeID: typeA, Quantity: 2},
			{TicketTypeID: typeB, Quantity: 3},
		}, now, ttl)
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, "cs_123", res.SessionID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.True(t, res.Pending())
		assert.Equal(t, now, res.CreatedAt())
		assert.Equal(t, now.Add(ttl), res.ExpiresAt())
		assert.Equal(t, 5, res.TotalQuantity())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			sessionID string
			lines     []reservation.Line
			errIs     error
		}{
			{
				name:      "empty session id",
				sessionID: "",
				lines:     []reservation.Line{{TicketTypeID: typeA, Quantity: 1}},
				errIs:     reservation.ErrEmptySessionID,
			},
			{
				name:      "no lines",
				sessionID: "cs_1",
				lines:     nil,
				errIs:     reservation.ErrNoLines,
			},
			{
				name:      "zero quantity",
				sessionID: "cs_1",
				lines:     []reservation.Line{{TicketTypeID: typeA, Quantity: 0}},
				errIs:     reservation.ErrInvalidQuantity,
			},
			{
				name:      "negative quantity",
				sessionID: "cs_1",
				lines:     []reservation.Line{{TicketTypeID: typeA, Quantity: -2}},
				errIs:     reservation.ErrInvalidQuantity,
			},
			{
				name:      "duplicate ticket type",
				sessionID: "cs_1",
				lines: []reservation.Line{
					{TicketTypeID: typeA, Quantity: 1},
					{TicketTypeID: typeA, Quantity: 2},
				},
				errIs: reservation.ErrDuplicateTicketType,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.NewReservation(tc.sessionID, tc.lines, now, ttl)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("expiry", func(t *testing.T) {
		res, err := reservation.NewReservation("cs_exp", []reservation.Line{{TicketTypeID: typeA, Quantity: 1}}, now, ttl)
		require.NoError(t, err)

		assert.False(t, res.ExpiredAt(now))
		assert.False(t, res.ExpiredAt(now.Add(ttl)))
		assert.True(t, res.ExpiredAt(now.Add(ttl+time.Second)))

		terminal := reservation.Restore(res.ID(), res.SessionID(), res.Lines(), reservation.StatusFulfilled, now, now.Add(ttl))
		assert.False(t, terminal.ExpiredAt(now.Add(time.Hour)), "terminal states never expire")
	})
}
