package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ticketline/internal/pkg/clock"
	"ticketline/internal/pkg/config"
	"ticketline/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReminderCommands persists future reminder events for a materialized
// transaction. Only entered on the created=true branch, which is what
// keeps scheduling single-shot per transaction.
type ReminderCommands interface {
	ScheduleReminders(ctx context.Context, transactionID uuid.UUID, eventDate time.Time)
}

type reminderUseCaseImpl struct {
	reminderRepo ReminderRepository
	cfg          config.CheckoutConfig
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReminderUseCase(reminderRepo ReminderRepository, cfg config.CheckoutConfig, clk clock.Clock, logger *slog.Logger) ReminderCommands {
	return &reminderUseCaseImpl{
		reminderRepo: reminderRepo,
		cfg:          cfg,
		clock:        clk,
		logger:       logger,
	}
}

func (u *reminderUseCaseImpl) ScheduleReminders(ctx context.Context, transactionID uuid.UUID, eventDate time.Time) {
	reminders := u.computeSchedule(transactionID, eventDate)

	if err := u.reminderRepo.CreateBatch(ctx, reminders); err != nil {
		u.logger.Error("failed to persist reminders",
			"transaction_id", transactionID,
			"count", len(reminders),
			"error", err.Error(),
		)
	}
}

// computeSchedule derives one reminder per configured offset before the
// event, dropping timestamps already in the past. At least one reminder
// always survives; with nothing left, a near-term catch-all is scheduled.
func (u *reminderUseCaseImpl) computeSchedule(transactionID uuid.UUID, eventDate time.Time) []shared.ReminderEvent {
	now := u.clock.Now()

	var reminders []shared.ReminderEvent
	for _, offset := range u.cfg.ReminderOffsets {
		at := eventDate.Add(-offset)
		if at.Before(now) {
			continue
		}
		reminders = append(reminders, shared.ReminderEvent{
			TransactionID: transactionID,
			ReminderType:  offsetType(offset),
			ScheduledAt:   at,
		})
	}

	if len(reminders) == 0 {
		reminders = append(reminders, shared.ReminderEvent{
			TransactionID: transactionID,
			ReminderType:  "final",
			ScheduledAt:   now.Add(time.Hour),
		})
	}

	return reminders
}

func offsetType(offset time.Duration) string {
	days := int(offset / (24 * time.Hour))
	if days >= 1 {
		return fmt.Sprintf("before_%dd", days)
	}
	return fmt.Sprintf("before_%dh", int(offset/time.Hour))
}
