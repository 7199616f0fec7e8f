package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ticketline/internal/domain/inventory"
	"ticketline/internal/infra"
	"ticketline/internal/pkg/telemetry"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// InventoryRepository is the ledger over the ticket_types counters. Every
// mutation is a single conditional UPDATE scoped to one row; correctness
// under concurrency comes from the statement, not from application locks.
type InventoryRepository struct {
	pool   *pgxpool.Pool
	tracer *telemetry.Provider
	logger *slog.Logger
}

func NewInventoryRepository(pool *pgxpool.Pool, tracer *telemetry.Provider, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{pool: pool, tracer: tracer, logger: logger}
}

// FindByIDs resolves all requested ticket types in one round trip.
func (r *InventoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*inventory.TicketType, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.inventory.find_by_ids")
	defer span.End()
	span.SetAttributes(attribute.Int("ticket_type_count", len(ids)))

	rows, err := r.pool.Query(ctx, `
		SELECT id, event_id, name, price_cents, capacity, sold_count, reserved_count, status, event_date
		FROM ticket_types
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to load ticket types", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*inventory.TicketType, len(ids))
	for rows.Next() {
		var (
			id, eventID          uuid.UUID
			name, status         string
			priceCents           int64
			capacity, sold, held int
			eventDate            time.Time
		)
		if err := rows.Scan(&id, &eventID, &name, &priceCents, &capacity, &sold, &held, &status, &eventDate); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan ticket type", err)
		}

		tt, err := inventory.NewTicketType(id, eventID, name, priceCents, capacity, sold, held, inventory.Status(status), eventDate)
		if err != nil {
			return nil, infra.WrapRepoErr("ticket type row violates invariants", err)
		}
		result[id] = tt
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate ticket types", err)
	}

	return result, nil
}

// TryReserve increments reserved_count by qty only while the capacity
// invariant holds, in one atomic statement. Zero affected rows means
// insufficient inventory (or an unsellable type), not a system error.
func (r *InventoryRepository) TryReserve(ctx context.Context, ticketTypeID uuid.UUID, qty int) (bool, int, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.inventory.try_reserve")
	defer span.End()
	span.SetAttributes(
		attribute.String("ticket_type_id", ticketTypeID.String()),
		attribute.Int("quantity", qty),
	)

	var remaining int
	err := r.pool.QueryRow(ctx, `
		UPDATE ticket_types
		SET reserved_count = reserved_count + $2, updated_at = now()
		WHERE id = $1
		  AND status = 'available'
		  AND sold_count + reserved_count + $2 <= capacity
		RETURNING capacity - sold_count - reserved_count
	`, ticketTypeID, qty).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, 0, nil
		}
		return false, 0, infra.ClassifyPgErr("failed to reserve inventory", err)
	}

	return true, remaining, nil
}

// CommitSale moves qty units from reserved to sold for a fulfilled
// reservation line.
func (r *InventoryRepository) CommitSale(ctx context.Context, ticketTypeID uuid.UUID, qty int) error {
	ctx, span := r.tracer.StartSpan(ctx, "repo.inventory.commit_sale")
	defer span.End()
	span.SetAttributes(
		attribute.String("ticket_type_id", ticketTypeID.String()),
		attribute.Int("quantity", qty),
	)

	tag, err := r.pool.Exec(ctx, `
		UPDATE ticket_types
		SET reserved_count = reserved_count - $2,
		    sold_count = sold_count + $2,
		    updated_at = now()
		WHERE id = $1 AND reserved_count >= $2
	`, ticketTypeID, qty)
	if err != nil {
		return infra.ClassifyPgErr("failed to commit sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reserved count below committed quantity", nil, infra.KindConflict)
	}

	return nil
}

// Release hands qty units back. The decrement clamps at zero so a double
// release can never push the counter negative; a clamp is logged because
// it means a release raced or repeated, which is tolerated but notable.
func (r *InventoryRepository) Release(ctx context.Context, ticketTypeID uuid.UUID, qty int) error {
	ctx, span := r.tracer.StartSpan(ctx, "repo.inventory.release")
	defer span.End()
	span.SetAttributes(
		attribute.String("ticket_type_id", ticketTypeID.String()),
		attribute.Int("quantity", qty),
	)

	var before int
	err := r.pool.QueryRow(ctx, `
		WITH prev AS (
			SELECT reserved_count FROM ticket_types WHERE id = $1 FOR UPDATE
		)
		UPDATE ticket_types t
		SET reserved_count = GREATEST(t.reserved_count - $2, 0), updated_at = now()
		FROM prev
		WHERE t.id = $1
		RETURNING prev.reserved_count
	`, ticketTypeID, qty).Scan(&before)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unknown ticket type: nothing to release.
			return nil
		}
		return infra.ClassifyPgErr("failed to release inventory", err)
	}

	if before < qty {
		r.logger.Warn("inventory release clamped at zero",
			"ticket_type_id", ticketTypeID,
			"requested", qty,
			"reserved_before", before,
		)
	}

	return nil
}
