//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"ticketline/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketType(t *testing.T) {
	eventDate := time.Date(2026, 8, 14, 18, 0, 0, 0, time.UTC)

	valid := func() (uuid.UUID, uuid.UUID, string, int64, int, int, int, inventory.Status, time.Time) {
		return uuid.New(), uuid.New(), "Weekend Pass", 14900, 500, 120, 30, inventory.StatusAvailable, eventDate
	}

	t.Run("basic success case", func(t *testing.T) {
		tt, err := inventory.NewTicketType(valid())
		require.NoError(t, err)

		assert.Equal(t, 500, tt.Capacity())
		assert.Equal(t, 350, tt.Remaining())
		assert.True(t, tt.Sellable())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*int64, *int, *int, *int, *inventory.Status)
			errIs  error
		}{
			{
				name:   "zero capacity",
				mutate: func(_ *int64, capacity, _, _ *int, _ *inventory.Status) { *capacity = 0 },
				errIs:  inventory.ErrInvalidCapacity,
			},
			{
				name:   "negative price",
				mutate: func(price *int64, _, _, _ *int, _ *inventory.Status) { *price = -1 },
				errIs:  inventory.ErrNegativePrice,
			},
			{
				name:   "negative sold count",
				mutate: func(_ *int64, _, sold, _ *int, _ *inventory.Status) { *sold = -1 },
				errIs:  inventory.ErrNegativeCount,
			},
			{
				name:   "counters above capacity",
				mutate: func(_ *int64, _, sold, reserved *int, _ *inventory.Status) { *sold = 400; *reserved = 101 },
				errIs:  inventory.ErrCountsExceedCap,
			},
			{
				name:   "unknown status",
				mutate: func(_ *int64, _, _, _ *int, st *inventory.Status) { *st = "archived" },
				errIs:  inventory.ErrInvalidStatus,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				id, eventID, name, price, capacity, sold, reserved, status, date := valid()
				tc.mutate(&price, &capacity, &sold, &reserved, &status)

				_, err := inventory.NewTicketType(id, eventID, name, price, capacity, sold, reserved, status, date)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("disabled type is not sellable", func(t *testing.T) {
		id, eventID, name, price, capacity, sold, reserved, _, date := valid()
		tt, err := inventory.NewTicketType(id, eventID, name, price, capacity, sold, reserved, inventory.StatusDisabled, date)
		require.NoError(t, err)

		assert.False(t, tt.Sellable())
	})

	t.Run("fully booked type has zero remaining", func(t *testing.T) {
		id, eventID, name, price, _, _, _, status, date := valid()
		tt, err := inventory.NewTicketType(id, eventID, name, price, 10, 7, 3, status, date)
		require.NoError(t, err)

		assert.Equal(t, 0, tt.Remaining())
	})
}
