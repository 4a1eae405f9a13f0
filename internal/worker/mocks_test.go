package worker

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockResetter is a mock implementation of Resetter
type MockResetter struct {
	mock.Mock
}

func (m *MockResetter) DailyReset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
