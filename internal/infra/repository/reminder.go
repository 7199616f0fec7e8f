package repository

import (
	"context"

	"ticketline/internal/infra"
	"ticketline/internal/pkg/telemetry"
	"ticketline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ReminderRepository struct {
	pool   *pgxpool.Pool
	tracer *telemetry.Provider
}

func NewReminderRepository(pool *pgxpool.Pool, tracer *telemetry.Provider) *ReminderRepository {
	return &ReminderRepository{pool: pool, tracer: tracer}
}

func (r *ReminderRepository) CreateBatch(ctx context.Context, reminders []shared.ReminderEvent) error {
	if len(reminders) == 0 {
		return nil
	}

	ctx, span := r.tracer.StartSpan(ctx, "repo.reminder.create_batch")
	defer span.End()
	span.SetAttributes(attribute.Int("reminder_count", len(reminders)))

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"registration_reminders"},
		[]string{"id", "transaction_id", "reminder_type", "scheduled_at"},
		pgx.CopyFromSlice(len(reminders), func(i int) ([]any, error) {
			rem := reminders[i]
			return []any{uuid.New(), rem.TransactionID, rem.ReminderType, rem.ScheduledAt}, nil
		}),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to insert reminders", err)
	}

	return nil
}
