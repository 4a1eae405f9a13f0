package sse

import (
	"context"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/logger"
)

// Subscriber bridges the engine's change signals to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarder for every change signal type
func (s *Subscriber) Subscribe(ctx context.Context) {
	types := []event.Type{event.PredictionsChanged, event.EventsResolved, event.TournamentsUpdated}
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
	}
	logger.FromContext(ctx).Info(LogMsgSubscriberAttached, "types", types)
}

// forward relays a change signal to clients. Malformed payloads are dropped, not failed,
// so a bad signal never surfaces as an error to the publisher.
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	signal, err := event.DecodePayload[domain.ChangeSignal](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidSignal, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(ctx, string(evt.Type), signal.Timestamp, signal)
	return nil
}
