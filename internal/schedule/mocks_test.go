package schedule

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// MockReminderScheduler is a mock implementation of notification.ReminderScheduler
type MockReminderScheduler struct {
	mock.Mock
}

func (m *MockReminderScheduler) ScheduleReminder(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// failingStore loads nothing and refuses every write
type failingStore struct {
	mu    sync.Mutex
	saves int
}

func (f *failingStore) LoadEvents(ctx context.Context) ([]domain.Event, bool) {
	return nil, false
}

func (f *failingStore) SaveEvents(ctx context.Context, events []domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	return errors.New("storage offline")
}
