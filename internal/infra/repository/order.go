package repository

import (
	"context"
	"log/slog"
	"time"

	"ticketline/internal/domain/order"
	"ticketline/internal/infra"
	"ticketline/internal/pkg/telemetry"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type OrderRepository struct {
	pool   *pgxpool.Pool
	tracer *telemetry.Provider
	logger *slog.Logger
}

func NewOrderRepository(pool *pgxpool.Pool, tracer *telemetry.Provider, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{pool: pool, tracer: tracer, logger: logger}
}

func (r *OrderRepository) FindBySessionID(ctx context.Context, sessionID string) (*order.Transaction, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.order.find_by_session_id")
	defer span.End()

	var (
		id                        uuid.UUID
		customerEmail, customerNm string
		amountCents               int64
		status                    string
		createdAt                 time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_email, customer_name, amount_cents, status, created_at
		FROM transactions
		WHERE session_id = $1
	`, sessionID).Scan(&id, &customerEmail, &customerNm, &amountCents, &status, &createdAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("transaction not found", err)
	}

	return order.RestoreTransaction(id, sessionID, customerEmail, customerNm, amountCents, order.TransactionStatus(status), createdAt), nil
}

func (r *OrderRepository) FindTicketsByTransactionID(ctx context.Context, txID uuid.UUID) ([]*order.Ticket, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.order.find_tickets")
	defer span.End()
	span.SetAttributes(attribute.String("transaction_id", txID.String()))

	rows, err := r.pool.Query(ctx, `
		SELECT id, ticket_type_id, price_cents, status, scan_count, max_scan_count
		FROM tickets
		WHERE transaction_id = $1
		ORDER BY id
	`, txID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to load tickets", err)
	}
	defer rows.Close()

	var tickets []*order.Ticket
	for rows.Next() {
		var (
			id, ticketTypeID    uuid.UUID
			priceCents          int64
			status              string
			scanCount, maxScans int
		)
		if err := rows.Scan(&id, &ticketTypeID, &priceCents, &status, &scanCount, &maxScans); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan ticket", err)
		}
		tickets = append(tickets, order.RestoreTicket(id, txID, ticketTypeID, priceCents, order.TicketStatus(status), scanCount, maxScans))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate tickets", err)
	}

	return tickets, nil
}

// CreateWithTickets inserts the transaction and all of its tickets in one
// database transaction: the transaction row strictly first (tickets
// reference it), and any failure rolls the whole set back so a partial
// ticket set can never exist. A unique violation on session_id surfaces
// as KindConflict for the caller's fallback-read path.
func (r *OrderRepository) CreateWithTickets(ctx context.Context, tx *order.Transaction, tickets []*order.Ticket) error {
	ctx, span := r.tracer.StartSpan(ctx, "repo.order.create_with_tickets")
	defer span.End()
	span.SetAttributes(
		attribute.String("session_id", tx.SessionID()),
		attribute.Int("ticket_count", len(tickets)),
	)

	pgTx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err, infra.KindUnavailable)
	}
	defer func() {
		if rollbackErr := pgTx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			r.logger.Warn("failed to rollback order transaction", "error", rollbackErr.Error())
		}
	}()

	_, err = pgTx.Exec(ctx, `
		INSERT INTO transactions (id, session_id, customer_email, customer_name, amount_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tx.ID(), tx.SessionID(), tx.CustomerEmail(), tx.CustomerName(), tx.AmountCents(), string(tx.Status()), tx.CreatedAt())
	if err != nil {
		return infra.ClassifyPgErr("failed to insert transaction", err)
	}

	_, err = pgTx.CopyFrom(ctx,
		pgx.Identifier{"tickets"},
		[]string{"id", "transaction_id", "ticket_type_id", "price_cents", "status", "scan_count", "max_scan_count"},
		pgx.CopyFromSlice(len(tickets), func(i int) ([]any, error) {
			tk := tickets[i]
			return []any{tk.ID(), tk.TransactionID(), tk.TicketTypeID(), tk.PriceCents(), string(tk.Status()), tk.ScanCount(), tk.MaxScanCount()}, nil
		}),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to insert tickets", err)
	}

	if err := pgTx.Commit(ctx); err != nil {
		return infra.ClassifyPgErr("failed to commit order", err)
	}

	return nil
}
