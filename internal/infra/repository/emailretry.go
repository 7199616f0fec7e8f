package repository

import (
	"context"
	"time"

	"ticketline/internal/infra"
	"ticketline/internal/pkg/telemetry"
	"ticketline/internal/usecase/queries"
	"ticketline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type EmailRetryRepository struct {
	pool   *pgxpool.Pool
	tracer *telemetry.Provider
}

func NewEmailRetryRepository(pool *pgxpool.Pool, tracer *telemetry.Provider) *EmailRetryRepository {
	return &EmailRetryRepository{pool: pool, tracer: tracer}
}

func (r *EmailRetryRepository) Enqueue(ctx context.Context, entry shared.EmailRetryEntry) error {
	ctx, span := r.tracer.StartSpan(ctx, "repo.emailretry.enqueue")
	defer span.End()
	span.SetAttributes(attribute.String("message_type", entry.MessageType))

	_, err := r.pool.Exec(ctx, `
		INSERT INTO email_retry_queue (id, recipient, message_type, status, last_error, created_at)
		VALUES ($1, $2, $3, 'pending', $4, now())
	`, uuid.New(), entry.Recipient, entry.MessageType, entry.LastError)
	if err != nil {
		return infra.ClassifyPgErr("failed to enqueue email retry", err)
	}

	return nil
}

func (r *EmailRetryRepository) ListPending(ctx context.Context, limit int) ([]*queries.EmailRetryView, error) {
	ctx, span := r.tracer.StartSpan(ctx, "repo.emailretry.list_pending")
	defer span.End()

	rows, err := r.pool.Query(ctx, `
		SELECT id, recipient, message_type, status, last_error, created_at
		FROM email_retry_queue
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list email retries", err)
	}
	defer rows.Close()

	var entries []*queries.EmailRetryView
	for rows.Next() {
		var (
			id                             uuid.UUID
			recipient, messageType, status string
			lastError                      *string
			createdAt                      time.Time
		)
		if err := rows.Scan(&id, &recipient, &messageType, &status, &lastError, &createdAt); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan email retry", err)
		}
		entries = append(entries, &queries.EmailRetryView{
			ID:          id,
			Recipient:   recipient,
			MessageType: messageType,
			Status:      status,
			LastError:   lastError,
			CreatedAt:   createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate email retries", err)
	}

	return entries, nil
}
