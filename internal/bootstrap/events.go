package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/RecipeBook_Go/internal/event"
	"github.com/osse101/RecipeBook_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes
// the metrics collector to it
func InitializeEventSystem() (event.Bus, error) {
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	slog.Info(LogMsgEventSystemInitialized)

	return bus, nil
}
