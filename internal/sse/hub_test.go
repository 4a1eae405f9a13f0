package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case evt := <-client.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	hub := startHub(t)
	all := hub.Register(nil)
	resolvedOnly := hub.Register([]string{" events.resolved ", ""})
	waitForClients(t, hub, 2)

	hub.Broadcast(context.Background(), "predictions.changed", 10, nil)
	hub.Broadcast(context.Background(), "events.resolved", 20, nil)

	assert.Equal(t, "predictions.changed", receive(t, all).Type)
	assert.Equal(t, "events.resolved", receive(t, all).Type)

	got := receive(t, resolvedOnly)
	assert.Equal(t, "events.resolved", got.Type)
	assert.Equal(t, int64(20), got.Timestamp)
	assert.Empty(t, resolvedOnly.EventChannel)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, ok := <-client.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()
	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, ok := <-client.EventChannel
	assert.False(t, ok)

	// Registering after stop yields a closed channel instead of blocking
	late := hub.Register(nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "events.resolved", Timestamp: 5})
	require.NoError(t, err)

	lines := strings.Split(string(msg), "\n")
	assert.Equal(t, "id: abc", lines[0])
	assert.Equal(t, "event: events.resolved", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "data: {"))
	assert.True(t, strings.HasSuffix(string(msg), "\n\n"))

	keepalive, err := FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(keepalive), "event: keepalive\n"))
}

func TestSubscriber_ForwardsChangeSignals(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe(context.Background())

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event.NewNotifier(bus, clock.NewSimulatedClock(at)).Notify(context.Background(), event.TournamentsUpdated)

	got := receive(t, client)
	assert.Equal(t, string(event.TournamentsUpdated), got.Type)
	assert.Equal(t, at.Unix(), got.Timestamp)
	assert.Equal(t, domain.ChangeSignal{Timestamp: at.Unix()}, got.Payload)
}

func TestSubscriber_DropsMalformedPayload(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe(context.Background())

	err := bus.Publish(context.Background(), event.Event{Type: event.EventsResolved, Payload: "not a signal"})
	assert.NoError(t, err)
}
