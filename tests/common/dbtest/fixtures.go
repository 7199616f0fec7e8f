//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a sellable ticket type and returns its id
func CreateTicketType(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()
	return createTicketType(t, db, name, capacity, "available")
}

func CreateDisabledTicketType(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()
	return createTicketType(t, db, name, capacity, "disabled")
}

func createTicketType(t *testing.T, db DBLike, name string, capacity int, status string) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	eventDate := time.Now().UTC().Add(30 * 24 * time.Hour)

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO ticket_types (id, event_id, name, price_cents, capacity, status, event_date)
		VALUES ($1, $2, $3, 5000, $4, $5, $6)`,
		typeID, uuid.New(), name, capacity, status, eventDate)
	require.NoError(t, err)

	return typeID
}

// backdates a pending reservation so the sweeper picks it up
func ExpireReservation(t *testing.T, db DBLike, sessionID string) {
	t.Helper()

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"UPDATE ticket_reservations SET expires_at = now() - interval '1 minute' WHERE session_id = $1 AND status = 'pending'",
		sessionID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "no pending reservation found for session %s", sessionID)
}

func CountByStatus(t *testing.T, db DBLike, table, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		fmt.Sprintf("SELECT count(*) FROM %s WHERE status = $1", table), status).Scan(&n)
	require.NoError(t, err)
	return n
}

func InventoryCounts(t *testing.T, db DBLike, typeID uuid.UUID) (sold, reserved int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT sold_count, reserved_count FROM ticket_types WHERE id = $1", typeID).Scan(&sold, &reserved)
	require.NoError(t, err)
	return sold, reserved
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean slate
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
