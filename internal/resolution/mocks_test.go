package resolution

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLedger is a mock implementation of Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Credit(ctx context.Context, amount int) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// staticIdentity always reports the same user
type staticIdentity string

func (s staticIdentity) CurrentUserID(ctx context.Context) string { return string(s) }

// scriptedSource replays fixed values, wrapping around
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}
