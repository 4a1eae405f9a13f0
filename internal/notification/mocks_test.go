package notification

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, reminder Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockNotifier) Name() string {
	return "mock"
}
