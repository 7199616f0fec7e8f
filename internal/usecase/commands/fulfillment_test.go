//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ticketline/internal/domain/reservation"
	"ticketline/internal/infra"
	"ticketline/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFulfillReservation(t *testing.T) {
	ctx := context.Background()
	txID := uuid.New()
	typeA := uuid.New()
	typeB := uuid.New()

	pendingRes := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		res, err := reservation.NewReservation("cs_ful", []reservation.Line{
			{TicketTypeID: typeA, Quantity: 2},
			{TicketTypeID: typeB, Quantity: 1},
		}, testNow, 15*time.Minute)
		require.NoError(t, err)
		return res
	}

	t.Run("moves every reserved unit to sold", func(t *testing.T) {
		ledger := new(MockLedger)
		repo := new(MockReservationRepo)
		uc := commands.NewFulfillmentUseCase(ledger, repo, slog.Default())

		repo.On("FindBySessionID", mock.Anything, "cs_ful").Return(pendingRes(t), nil).Once()
		repo.On("MarkFulfilled", mock.Anything, "cs_ful").Return(true, nil).Once()
		ledger.On("CommitSale", mock.Anything, typeA, 2).Return(nil).Once()
		ledger.On("CommitSale", mock.Anything, typeB, 1).Return(nil).Once()

		uc.FulfillReservation(ctx, "cs_ful", txID)

		ledger.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("no reservation is a quiet no-op", func(t *testing.T) {
		ledger := new(MockLedger)
		repo := new(MockReservationRepo)
		uc := commands.NewFulfillmentUseCase(ledger, repo, slog.Default())

		repo.On("FindBySessionID", mock.Anything, "cs_ful").Return(nil, notFoundErr()).Once()

		uc.FulfillReservation(ctx, "cs_ful", txID)

		ledger.AssertNotCalled(t, "CommitSale", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "MarkFulfilled", mock.Anything, mock.Anything)
	})

	t.Run("settled reservation is left untouched", func(t *testing.T) {
		ledger := new(MockLedger)
		repo := new(MockReservationRepo)
		uc := commands.NewFulfillmentUseCase(ledger, repo, slog.Default())

		released := reservation.Restore(uuid.New(), "cs_ful", []reservation.Line{{TicketTypeID: typeA, Quantity: 2}},
			reservation.StatusReleased, testNow.Add(-time.Hour), testNow.Add(-45*time.Minute))
		repo.On("FindBySessionID", mock.Anything, "cs_ful").Return(released, nil).Once()

		uc.FulfillReservation(ctx, "cs_ful", txID)

		ledger.AssertNotCalled(t, "CommitSale", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "MarkFulfilled", mock.Anything, mock.Anything)
	})

	t.Run("losing the status race skips the ledger", func(t *testing.T) {
		ledger := new(MockLedger)
		repo := new(MockReservationRepo)
		uc := commands.NewFulfillmentUseCase(ledger, repo, slog.Default())

		repo.On("FindBySessionID", mock.Anything, "cs_ful").Return(pendingRes(t), nil).Once()
		repo.On("MarkFulfilled", mock.Anything, "cs_ful").Return(false, nil).Once()

		uc.FulfillReservation(ctx, "cs_ful", txID)

		ledger.AssertNotCalled(t, "CommitSale", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("one failing line does not stop the others", func(t *testing.T) {
		ledger := new(MockLedger)
		repo := new(MockReservationRepo)
		uc := commands.NewFulfillmentUseCase(ledger, repo, slog.Default())

		repo.On("FindBySessionID", mock.Anything, "cs_ful").Return(pendingRes(t), nil).Once()
		repo.On("MarkFulfilled", mock.Anything, "cs_ful").Return(true, nil).Once()
		ledger.On("CommitSale", mock.Anything, typeA, 2).
			Return(infra.WrapRepoErr("counter drift", nil, infra.KindConflict)).Once()
		ledger.On("CommitSale", mock.Anything, typeB, 1).Return(nil).Once()

		uc.FulfillReservation(ctx, "cs_ful", txID)

		ledger.AssertExpectations(t)
	})
}
