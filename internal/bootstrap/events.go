package bootstrap

import (
	"log/slog"

	"github.com/osse101/BetEngine_Go/internal/clock"
	"github.com/osse101/BetEngine_Go/internal/event"
)

// InitializeEventSystem creates the in-process bus that carries change signals
// and the notifier services use to publish them.
func InitializeEventSystem(clk clock.Clock) (*event.MemoryBus, *event.Notifier) {
	bus := event.NewMemoryBus()
	notifier := event.NewNotifier(bus, clk)

	slog.Info(LogMsgEventSystemInitialized)
	return bus, notifier
}
