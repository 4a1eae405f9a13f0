package event

import (
	"context"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/logger"
)

// Notifier publishes change signals on a bus, stamping them with the engine clock.
// Handler failures are logged and never reach the caller.
type Notifier struct {
	bus   Bus
	clock clock.Clock
}

// NewNotifier creates a Notifier. A nil bus yields a notifier that drops every signal.
func NewNotifier(bus Bus, clk clock.Clock) *Notifier {
	return &Notifier{bus: bus, clock: clk}
}

// Notify publishes a change signal of the given type
func (n *Notifier) Notify(ctx context.Context, eventType Type) {
	if n == nil || n.bus == nil {
		return
	}
	if err := n.bus.Publish(ctx, NewChangeSignal(eventType, n.clock.Now())); err != nil {
		logger.FromContext(ctx).Warn(LogMsgHandlerFailed, "type", eventType, "error", err)
	}
}
