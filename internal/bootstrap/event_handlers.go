package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BetEngine_Go/internal/event"
	"github.com/osse101/BetEngine_Go/internal/metrics"
	"github.com/osse101/BetEngine_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
}

// RegisterEventHandlers sets up all change signal subscribers:
// - Metrics collector (counts signals by type)
// - SSE subscriber (pushes signals to connected clients)
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) {
	metricsCollector := metrics.NewSignalMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe(ctx)
		slog.Info(LogMsgSSESubscriberRegistered)
	}
}
