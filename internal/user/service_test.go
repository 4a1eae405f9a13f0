package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/storage"
)

type fixedBalance int

func (f fixedBalance) Balance(ctx context.Context) int { return int(f) }

func TestCurrentUserID_GuestByDefault(t *testing.T) {
	svc := NewService(storage.NewRecords(storage.NewMemoryKV()), fixedBalance(0), nil)
	assert.Equal(t, domain.GuestUserID, svc.CurrentUserID(context.Background()))
	assert.Nil(t, svc.CurrentUser(context.Background()))
}

func TestSignIn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  error
	}{
		{"trims whitespace", "  Riley  ", "Riley", nil},
		{"empty rejected", "   ", "", domain.ErrInvalidDisplayName},
		{"long names truncated", strings.Repeat("x", 60), strings.Repeat("x", MaxDisplayNameLength), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := NewService(storage.NewRecords(storage.NewMemoryKV()), fixedBalance(70), nil)

			profile, err := svc.SignIn(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.GuestUserID, svc.CurrentUserID(ctx))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, profile.DisplayName)
			assert.Equal(t, 70, profile.TotalPoints)
			assert.Equal(t, profile.ID, svc.CurrentUserID(ctx))
		})
	}
}

func TestSignInSignOut_PersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	records := storage.NewRecords(storage.NewMemoryKV())
	bus := event.NewMemoryBus()
	signals := 0
	bus.Subscribe(event.PredictionsChanged, func(ctx context.Context, e event.Event) error { signals++; return nil })
	svc := NewService(records, fixedBalance(0), event.NewNotifier(bus, clock.NewRealClock()))

	profile, err := svc.SignIn(ctx, "Sam")
	require.NoError(t, err)

	stored, ok := records.LoadProfile(ctx)
	require.True(t, ok)
	assert.Equal(t, profile.ID, stored.ID)

	// A fresh service picks the stored profile up
	restarted := NewService(records, fixedBalance(0), nil)
	assert.Equal(t, profile.ID, restarted.CurrentUserID(ctx))

	svc.SignOut(ctx)
	assert.Equal(t, domain.GuestUserID, svc.CurrentUserID(ctx))
	_, ok = records.LoadProfile(ctx)
	assert.False(t, ok)
	assert.Equal(t, 2, signals)
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewRecords(storage.NewMemoryKV()), nil, nil)
	_, err := svc.SignIn(ctx, "Jo")
	require.NoError(t, err)

	p := svc.CurrentUser(ctx)
	p.DisplayName = "mutated"
	assert.Equal(t, "Jo", svc.CurrentUser(ctx).DisplayName)
}
