package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/storage"
)

func newTestService(store Store) (Service, *int) {
	bus := event.NewMemoryBus()
	signals := 0
	bus.Subscribe(event.PredictionsChanged, func(ctx context.Context, e event.Event) error {
		signals++
		return nil
	})
	notifier := event.NewNotifier(bus, clock.NewSimulatedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	return NewService(store, notifier), &signals
}

func TestCredit(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		amount      int
		wantBalance int
		wantErr     error
		wantSignals int
	}{
		{"positive credit", 5, 10, 15, nil, 1},
		{"zero credit is a silent no-op", 5, 0, 5, nil, 0},
		{"negative credit rejected", 5, -1, 5, domain.ErrInvalidAmount, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			records := storage.NewRecords(storage.NewMemoryKV())
			require.NoError(t, records.SavePoints(ctx, tt.start))
			svc, signals := newTestService(records)

			err := svc.Credit(ctx, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, svc.Balance(ctx))
			assert.Equal(t, tt.wantSignals, *signals)

			persisted, _ := records.LoadPoints(ctx)
			assert.Equal(t, tt.wantBalance, persisted)
		})
	}
}

func TestDebit(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		amount      int
		wantOK      bool
		wantBalance int
	}{
		{"exact balance", 20, 20, true, 0},
		{"partial", 50, 20, true, 30},
		{"insufficient", 19, 20, false, 19},
		{"negative rejected", 10, -5, false, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			records := storage.NewRecords(storage.NewMemoryKV())
			require.NoError(t, records.SavePoints(ctx, tt.start))
			svc, signals := newTestService(records)

			assert.Equal(t, tt.wantOK, svc.Debit(ctx, tt.amount))
			assert.Equal(t, tt.wantBalance, svc.Balance(ctx))
			if tt.wantOK {
				assert.Equal(t, 1, *signals)
			} else {
				assert.Zero(t, *signals)
			}
		})
	}
}

func TestBalance_LoadsLazilyOnce(t *testing.T) {
	store := new(MockStore)
	store.On("LoadPoints", mock.Anything).Return(40, true).Once()

	svc, _ := newTestService(store)
	assert.Equal(t, 40, svc.Balance(context.Background()))
	assert.Equal(t, 40, svc.Balance(context.Background()))
	store.AssertExpectations(t)
}

func TestBalance_AbsentRecordIsZero(t *testing.T) {
	store := new(MockStore)
	store.On("LoadPoints", mock.Anything).Return(0, false)

	svc, _ := newTestService(store)
	assert.Equal(t, 0, svc.Balance(context.Background()))
}

func TestCredit_PersistFailureKeepsInMemoryValue(t *testing.T) {
	store := new(MockStore)
	store.On("LoadPoints", mock.Anything).Return(10, true)
	store.On("SavePoints", mock.Anything, 20).Return(errors.New("disk full"))

	svc, signals := newTestService(store)
	require.NoError(t, svc.Credit(context.Background(), 10))
	assert.Equal(t, 20, svc.Balance(context.Background()))
	assert.Equal(t, 1, *signals)
}

func TestConcurrentCreditsAndDebits(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewRecords(storage.NewMemoryKV()), nil)
	require.NoError(t, svc.Credit(ctx, 1000))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = svc.Credit(ctx, 10)
		}()
		go func() {
			defer wg.Done()
			svc.Debit(ctx, 10)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, svc.Balance(ctx))
}

func TestBalanceNeverNegative(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewRecords(storage.NewMemoryKV()), nil)
	require.NoError(t, svc.Credit(ctx, 35))

	for i := 0; i < 10; i++ {
		svc.Debit(ctx, 20)
		assert.GreaterOrEqual(t, svc.Balance(ctx), 0)
	}
	assert.Equal(t, 15, svc.Balance(ctx))
}
