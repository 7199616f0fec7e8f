package repository

import (
	"context"
	"encoding/json"
	"time"

	"ticketline/internal/domain/reservation"
	"ticketline/internal/infra"
	"ticketline/internal/pkg/telemetry"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// reservationLine is the JSONB shape of one held position.
type reservationLine struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	Quantity     int       `json:"quantity"`
}

type ReservationRepository struct {
	pool   *pgxpool.Pool
	tracer *telemetry.Provider
}

func NewReservationRepository(pool *pgxpool.Pool, tracer *telemetry.Provider) *ReservationRepository {
	return &ReservationRepository{pool: pool, tracer: tracer}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	ctx, span := r.tracer.StartSpan(ctx, "repo.reservation.create")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", res.SessionID()))

	items, err := encodeLines(res.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation lines", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO ticket_reservations (id, session_id, items, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, res.ID(), res.SessionID(), items, string(res.Status()), res.CreatedAt(), res.ExpiresAt())
	if err != nil {
		return infra.ClassifyPgErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) FindBySessionID(ctx context.Context, sessionID string) (*reservation.Reservation, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.reservation.find_by_session_id")
	defer span.End()

	var (
		id                   uuid.UUID
		items                []byte
		status               string
		createdAt, expiresAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, items, status, created_at, expires_at
		FROM ticket_reservations
		WHERE session_id = $1
	`, sessionID).Scan(&id, &items, &status, &createdAt, &expiresAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("reservation not found", err)
	}

	lines, err := decodeLines(items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation lines", err)
	}

	return reservation.Restore(id, sessionID, lines, reservation.Status(status), createdAt, expiresAt), nil
}

// MarkFulfilled flips pending to fulfilled. The conditional update makes
// concurrent fulfillment attempts race safely: exactly one caller sees
// true and goes on to commit the sale.
func (r *ReservationRepository) MarkFulfilled(ctx context.Context, sessionID string) (bool, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.reservation.mark_fulfilled")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", sessionID))

	tag, err := r.pool.Exec(ctx, `
		UPDATE ticket_reservations
		SET status = 'fulfilled'
		WHERE session_id = $1 AND status = 'pending'
	`, sessionID)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to mark reservation fulfilled", err)
	}

	return tag.RowsAffected() == 1, nil
}

// MarkReleased is the compensating transition used when a partially
// granted reservation is rolled back.
func (r *ReservationRepository) MarkReleased(ctx context.Context, sessionID string) error {
	ctx, span := r.tracer.StartSpan(ctx, "repo.reservation.mark_released")
	defer span.End()

	_, err := r.pool.Exec(ctx, `
		UPDATE ticket_reservations
		SET status = 'released'
		WHERE session_id = $1 AND status = 'pending'
	`, sessionID)
	if err != nil {
		return infra.ClassifyPgErr("failed to mark reservation released", err)
	}

	return nil
}

// SweepExpired atomically claims up to limit pending reservations past
// their deadline and returns them so the caller can release inventory.
// SKIP LOCKED keeps concurrent sweepers from claiming the same rows.
func (r *ReservationRepository) SweepExpired(ctx context.Context, now time.Time, limit int) ([]*reservation.Reservation, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.reservation.sweep_expired")
	defer span.End()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.pool.Query(ctx, `
		UPDATE ticket_reservations
		SET status = 'expired'
		WHERE id IN (
			SELECT id FROM ticket_reservations
			WHERE status = 'pending' AND expires_at < $1
			ORDER BY expires_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, session_id, items, created_at, expires_at
	`, now, limit)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to sweep expired reservations", err)
	}
	defer rows.Close()

	var swept []*reservation.Reservation
	for rows.Next() {
		var (
			id                   uuid.UUID
			sessionID            string
			items                []byte
			createdAt, expiresAt time.Time
		)
		if err := rows.Scan(&id, &sessionID, &items, &createdAt, &expiresAt); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan swept reservation", err)
		}

		lines, err := decodeLines(items)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation lines", err)
		}
		swept = append(swept, reservation.Restore(id, sessionID, lines, reservation.StatusExpired, createdAt, expiresAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate swept reservations", err)
	}

	return swept, nil
}

func encodeLines(lines []reservation.Line) ([]byte, error) {
	rows := make([]reservationLine, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, reservationLine{TicketTypeID: l.TicketTypeID, Quantity: l.Quantity})
	}
	return json.Marshal(rows)
}

func decodeLines(raw []byte) ([]reservation.Line, error) {
	var rows []reservationLine
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	lines := make([]reservation.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, reservation.Line{TicketTypeID: row.TicketTypeID, Quantity: row.Quantity})
	}
	return lines, nil
}
