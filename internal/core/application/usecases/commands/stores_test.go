package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// fakeSessionStore is a plain map-backed SessionStore for handler tests.
// Handlers receive the mutator result exactly as the production store would
// apply it; locking is irrelevant in single-goroutine tests.
type fakeSessionStore struct {
	orders map[kernel.SessionKey]*order.InProgressOrder
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{orders: make(map[kernel.SessionKey]*order.InProgressOrder)}
}

func (s *fakeSessionStore) Update(
	_ context.Context,
	key kernel.SessionKey,
	fn ports.SessionMutator,
) error {
	updated, err := fn(s.orders[key])
	if err != nil {
		return err
	}

	if updated == nil {
		delete(s.orders, key)
		return nil
	}

	s.orders[key] = updated
	return nil
}

func (s *fakeSessionStore) EvictIdle(_ context.Context, _ time.Duration) int {
	return 0
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) NextOrderID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderStore) InsertOrderItem(ctx context.Context, item string, quantity int, orderID int) error {
	args := m.Called(ctx, item, quantity, orderID)
	return args.Error(0)
}

func (m *MockOrderStore) InsertOrderTracking(ctx context.Context, orderID int, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderStore) OrderStatus(ctx context.Context, orderID int) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderStore) TotalPrice(ctx context.Context, orderID int) (float64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(float64), args.Error(1)
}
