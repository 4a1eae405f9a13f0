package prediction

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// MockEventLookup is a mock implementation of EventLookup
type MockEventLookup struct {
	mock.Mock
}

func (m *MockEventLookup) FindEvent(ctx context.Context, eventID string) (domain.Event, bool) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(domain.Event), args.Bool(1)
}

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadPredictions(ctx context.Context) ([]domain.Prediction, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Prediction), args.Bool(1)
}

func (m *MockStore) SavePredictions(ctx context.Context, preds []domain.Prediction) error {
	args := m.Called(ctx, preds)
	return args.Error(0)
}
