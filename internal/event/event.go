package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RecipeBook_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	IngredientCreated Type = "ingredient.created"
	IngredientDeleted Type = "ingredient.deleted"
	RecipeCreated     Type = "recipe.created"
	RecipeUpdated     Type = "recipe.updated"
	RecipeDeleted     Type = "recipe.deleted"
	UserSignedUp      Type = "auth.signed_up"
	UserSignedOut     Type = "auth.signed_out"
)

// RecordPayloadV1 is the payload of every ingredient/recipe mutation
type RecordPayloadV1 struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	IsPublic  bool   `json:"is_public"`
	Timestamp int64  `json:"timestamp"`
}

// SessionPayloadV1 is the payload of auth events
type SessionPayloadV1 struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewRecordEvent creates an ingredient/recipe mutation event
func NewRecordEvent(t Type, id, authorID string, isPublic bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: RecordPayloadV1{
			ID:        id,
			AuthorID:  authorID,
			IsPublic:  isPublic,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSessionEvent creates an auth lifecycle event
func NewSessionEvent(t Type, userID, sessionID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: SessionPayloadV1{
			UserID:    userID,
			SessionID: sessionID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers, synchronously and in subscription order
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes and logs a failure instead of returning it.
// Mutations have already been committed when their events fire.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
