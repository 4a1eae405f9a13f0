package engine

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// MockSchedule is a mock implementation of Schedule
type MockSchedule struct {
	mock.Mock
}

func (m *MockSchedule) FetchActiveEvents(ctx context.Context) []domain.Event {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event)
}

func (m *MockSchedule) MaintainRollingSchedule(ctx context.Context, targetCount int, spacingMinutes int) []domain.Event {
	args := m.Called(ctx, targetCount, spacingMinutes)
	return args.Get(0).([]domain.Event)
}

func (m *MockSchedule) RegeneratePool(ctx context.Context) []domain.Event {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event)
}

// MockResolver is a mock implementation of Resolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context) (*domain.ResolutionResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolutionResult), args.Error(1)
}

// MockTournaments is a mock implementation of Tournaments
type MockTournaments struct {
	mock.Mock
}

func (m *MockTournaments) Settle(ctx context.Context) []domain.TournamentSettlement {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TournamentSettlement)
}

func (m *MockTournaments) ResetPool(ctx context.Context) {
	m.Called(ctx)
}
