//go:build unit

package commands_test

import (
	"context"
	"time"

	"ticketline/internal/domain/inventory"
	"ticketline/internal/domain/order"
	"ticketline/internal/domain/reservation"
	"ticketline/internal/pkg/mailer"
	"ticketline/internal/usecase/queries"
	"ticketline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*inventory.TicketType, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*inventory.TicketType), args.Error(1)
}

func (m *MockLedger) TryReserve(ctx context.Context, ticketTypeID uuid.UUID, qty int) (bool, int, error) {
	args := m.Called(ctx, ticketTypeID, qty)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockLedger) CommitSale(ctx context.Context, ticketTypeID uuid.UUID, qty int) error {
	args := m.Called(ctx, ticketTypeID, qty)
	return args.Error(0)
}

func (m *MockLedger) Release(ctx context.Context, ticketTypeID uuid.UUID, qty int) error {
	args := m.Called(ctx, ticketTypeID, qty)
	return args.Error(0)
}

type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *reservation.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepo) FindBySessionID(ctx context.Context, sessionID string) (*reservation.Reservation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepo) MarkFulfilled(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepo) MarkReleased(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockReservationRepo) SweepExpired(ctx context.Context, now time.Time, limit int) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) FindBySessionID(ctx context.Context, sessionID string) (*order.Transaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Transaction), args.Error(1)
}

func (m *MockOrderRepo) FindTicketsByTransactionID(ctx context.Context, txID uuid.UUID) ([]*order.Ticket, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Ticket), args.Error(1)
}

func (m *MockOrderRepo) CreateWithTickets(ctx context.Context, tx *order.Transaction, tickets []*order.Ticket) error {
	args := m.Called(ctx, tx, tickets)
	return args.Error(0)
}

type MockEmailRetryRepo struct {
	mock.Mock
}

func (m *MockEmailRetryRepo) Enqueue(ctx context.Context, entry shared.EmailRetryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockReminderRepo struct {
	mock.Mock
}

func (m *MockReminderRepo) CreateBatch(ctx context.Context, reminders []shared.ReminderEvent) error {
	args := m.Called(ctx, reminders)
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Confirmation) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockFulfillment struct {
	mock.Mock
}

func (m *MockFulfillment) FulfillReservation(ctx context.Context, sessionID string, transactionID uuid.UUID) {
	m.Called(ctx, sessionID, transactionID)
}

type MockNotification struct {
	mock.Mock
}

func (m *MockNotification) SendConfirmation(ctx context.Context, view *queries.OrderView) {
	m.Called(ctx, view)
}

type MockReminders struct {
	mock.Mock
}

func (m *MockReminders) ScheduleReminders(ctx context.Context, transactionID uuid.UUID, eventDate time.Time) {
	m.Called(ctx, transactionID, eventDate)
}

// syncScheduler runs scheduled tasks inline so tests can assert on their
// effects without timing games.
type syncScheduler struct {
	names []string
}

func (s *syncScheduler) Go(name string, fn func(ctx context.Context) error) {
	s.names = append(s.names, name)
	_ = fn(context.Background())
}
