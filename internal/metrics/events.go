package metrics

import (
	"context"

	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/logger"
)

// SignalMetricsCollector subscribes to change signals and counts them
type SignalMetricsCollector struct{}

// NewSignalMetricsCollector creates a new signal metrics collector
func NewSignalMetricsCollector() *SignalMetricsCollector {
	return &SignalMetricsCollector{}
}

// Register subscribes to every change signal type
func (c *SignalMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{event.PredictionsChanged, event.EventsResolved, event.TournamentsUpdated} {
		bus.Subscribe(t, c.HandleEvent)
	}
}

// HandleEvent records one published signal
func (c *SignalMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	SignalsPublished.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgSignalRecorded, "type", evt.Type)
	return nil
}
