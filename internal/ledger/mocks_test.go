package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadPoints(ctx context.Context) (int, bool) {
	args := m.Called(ctx)
	return args.Int(0), args.Bool(1)
}

func (m *MockStore) SavePoints(ctx context.Context, points int) error {
	args := m.Called(ctx, points)
	return args.Error(0)
}
