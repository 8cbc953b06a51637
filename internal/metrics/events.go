package metrics

import (
	"context"
	"strings"

	"github.com/osse101/RecipeBook_Go/internal/event"
	"github.com/osse101/RecipeBook_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.IngredientCreated,
		event.IngredientDeleted,
		event.RecipeCreated,
		event.RecipeUpdated,
		event.RecipeDeleted,
		event.UserSignedUp,
		event.UserSignedOut,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.IngredientCreated, event.IngredientDeleted, event.RecipeCreated, event.RecipeUpdated, event.RecipeDeleted:
		// "recipe.updated" -> entity recipe, operation updated
		entity, op, _ := strings.Cut(string(evt.Type), ".")
		RecordMutations.WithLabelValues(entity, op).Inc()
	case event.UserSignedUp:
		SignUps.Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
