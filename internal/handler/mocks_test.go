package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/prediction"
)

// MockHealthChecker mocks HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockIdentity mocks Identity
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) CurrentUserID(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

// MockBalance mocks BalanceReader
type MockBalance struct {
	mock.Mock
}

func (m *MockBalance) Balance(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

// MockEventSource mocks EventSource
type MockEventSource struct {
	mock.Mock
}

func (m *MockEventSource) FetchActiveEvents(ctx context.Context) []domain.Event {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Event)
}

// MockPredictionService mocks prediction.Service
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Submit(ctx context.Context, eventID, userID string, outcome domain.Outcome) (*domain.Prediction, error) {
	args := m.Called(ctx, eventID, userID, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) List(ctx context.Context, userID string) []domain.Prediction {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Prediction)
}

func (m *MockPredictionService) All(ctx context.Context) []domain.Prediction {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Prediction)
}

func (m *MockPredictionService) MarkResolved(ctx context.Context, predictionID string, correct bool) error {
	args := m.Called(ctx, predictionID, correct)
	return args.Error(0)
}

func (m *MockPredictionService) ApplyOutcomes(ctx context.Context, userID string, outcomes map[string]domain.Outcome) prediction.Settlement {
	args := m.Called(ctx, userID, outcomes)
	return args.Get(0).(prediction.Settlement)
}

// MockTournamentService mocks tournament.Service
type MockTournamentService struct {
	mock.Mock
}

func (m *MockTournamentService) List(ctx context.Context, userID string) []domain.TournamentView {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.TournamentView)
}

func (m *MockTournamentService) Join(ctx context.Context, tournamentID, userID string) (bool, error) {
	args := m.Called(ctx, tournamentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTournamentService) Settle(ctx context.Context) []domain.TournamentSettlement {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TournamentSettlement)
}

func (m *MockTournamentService) ResetPool(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockTournamentService) NextResetAt() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CurrentUserID(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockUserService) CurrentUser(ctx context.Context) *domain.UserProfile {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.UserProfile)
}

func (m *MockUserService) SignIn(ctx context.Context, displayName string) (*domain.UserProfile, error) {
	args := m.Called(ctx, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserService) SignOut(ctx context.Context) {
	m.Called(ctx)
}

// MockStatsService mocks stats.Service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) UserStats(ctx context.Context, userID string) domain.UserStats {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserStats)
}

// MockLeaderboard mocks LeaderboardSource
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) Entries(ctx context.Context) []domain.LeaderboardEntry {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LeaderboardEntry)
}

func guestIdentity() *MockIdentity {
	id := new(MockIdentity)
	id.On("CurrentUserID", mock.Anything).Return(domain.GuestUserID)
	return id
}
