package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/repository"
)

func TestRecords_EventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(NewMemoryKV())

	_, ok := records.LoadEvents(ctx)
	assert.False(t, ok, "absent record")

	outcome := domain.OutcomeAwayWin
	start := time.Date(2026, 4, 2, 10, 5, 0, 0, time.UTC)
	events := []domain.Event{
		{ID: "a", Sport: domain.SportFootball, HomeTeam: "Real Madrid", AwayTeam: "Barcelona", StartDate: start},
		{ID: "b", Sport: domain.SportTennis, HomeTeam: "Sinner", AwayTeam: "Medvedev", StartDate: start.Add(5 * time.Minute), Outcome: &outcome},
	}
	require.NoError(t, records.SaveEvents(ctx, events))

	loaded, ok := records.LoadEvents(ctx)
	require.True(t, ok)
	require.Len(t, loaded, 2)
	assert.True(t, loaded[0].StartDate.Equal(start))
	assert.Nil(t, loaded[0].Outcome)
	require.NotNil(t, loaded[1].Outcome)
	assert.Equal(t, domain.OutcomeAwayWin, *loaded[1].Outcome)
}

func TestRecords_UndecodableTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	records := NewRecords(kv)

	require.NoError(t, kv.Put(ctx, repository.KeyEvents, []byte("{not json")))
	require.NoError(t, kv.Put(ctx, repository.KeyPoints, []byte("lots")))

	_, ok := records.LoadEvents(ctx)
	assert.False(t, ok)
	points, ok := records.LoadPoints(ctx)
	assert.False(t, ok)
	assert.Zero(t, points)
}

func TestRecords_PointsAndProfile(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(NewMemoryKV())

	require.NoError(t, records.SavePoints(ctx, 130))
	points, ok := records.LoadPoints(ctx)
	require.True(t, ok)
	assert.Equal(t, 130, points)

	require.NoError(t, records.SaveProfile(ctx, domain.UserProfile{ID: "u1", DisplayName: "Ada"}))
	profile, ok := records.LoadProfile(ctx)
	require.True(t, ok)
	assert.Equal(t, "Ada", profile.DisplayName)

	require.NoError(t, records.DeleteProfile(ctx))
	_, ok = records.LoadProfile(ctx)
	assert.False(t, ok)
}

func TestRecords_ReadFailureTreatedAsAbsent(t *testing.T) {
	kv := new(MockKV)
	kv.On("Get", mock.Anything, repository.KeyPredictions).Return(nil, errors.New("disk gone"))

	preds, ok := NewRecords(kv).LoadPredictions(context.Background())
	assert.False(t, ok)
	assert.Nil(t, preds)
	kv.AssertExpectations(t)
}

func TestRecords_WriteFailureWrapsPersistenceUnavailable(t *testing.T) {
	kv := new(MockKV)
	kv.On("Put", mock.Anything, repository.KeyPoints, []byte("5")).Return(errors.New("read-only"))

	err := NewRecords(kv).SavePoints(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
	assert.Contains(t, err.Error(), domain.ErrMsgPersistenceUnavailable)
}

func TestRecords_Wipe(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	records := NewRecords(kv)
	require.NoError(t, records.SavePoints(ctx, 10))
	require.NoError(t, records.SavePredictions(ctx, []domain.Prediction{{ID: "p"}}))

	require.NoError(t, records.Wipe(ctx))

	for _, key := range repository.AllKeys {
		_, err := kv.Get(ctx, key)
		assert.ErrorIs(t, err, repository.ErrNotFound, key)
	}
}

func TestRecords_CheckHealth(t *testing.T) {
	tests := []struct {
		name    string
		getErr  error
		wantErr bool
	}{
		{name: "missing record is healthy", getErr: repository.ErrNotFound},
		{name: "present record is healthy"},
		{name: "backend failure", getErr: errors.New("connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := new(MockKV)
			kv.On("Get", mock.Anything, repository.KeyPoints).Return([]byte("1"), tt.getErr)

			err := NewRecords(kv).CheckHealth(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
				return
			}
			assert.NoError(t, err)
		})
	}
}
