package store

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// Container holds the stores of one logical session
type Container struct {
	Ingredients *IngredientStore
	Recipes     *RecipeStore

	mu      sync.Mutex
	session domain.Session
}

// NewContainer creates a container whose session is still loading
func NewContainer(ingredients IngredientGateway, recipes RecipeGateway) *Container {
	return &Container{
		Ingredients: NewIngredientStore(ingredients),
		Recipes:     NewRecipeStore(recipes),
		session:     domain.Session{Status: domain.AuthStatusLoading},
	}
}

// Session returns the last session handed to SetSession
func (c *Container) Session() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SetSession records the session. Becoming unauthenticated, or switching
// to another user, resets each store.
func (c *Container) SetSession(s domain.Session) {
	c.mu.Lock()
	prev := c.session
	c.session = s
	c.mu.Unlock()

	if !resetNeeded(prev, s) {
		return
	}
	c.Ingredients.Reset()
	c.Recipes.Reset()
}

func resetNeeded(prev, next domain.Session) bool {
	if next.Status == domain.AuthStatusUnauthenticated {
		return prev.Status != domain.AuthStatusUnauthenticated
	}
	if prev.Authenticated() && next.Authenticated() {
		return *prev.UserID != *next.UserID
	}
	return false
}

// Registry keeps one Container per session id for server-rendered views
type Registry struct {
	mu      sync.Mutex
	lru     *expirable.LRU[string, *Container]
	factory func() *Container
}

// NewRegistry creates a registry. Idle containers expire after ttl.
func NewRegistry(size int, ttl time.Duration, factory func() *Container) *Registry {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	if ttl <= 0 {
		ttl = DefaultRegistryTTL
	}
	return &Registry{
		lru:     expirable.NewLRU[string, *Container](size, nil, ttl),
		factory: factory,
	}
}

// Get returns the container for sessionID, creating it on first use
func (r *Registry) Get(sessionID string) *Container {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.lru.Get(sessionID); ok {
		return c
	}
	c := r.factory()
	r.lru.Add(sessionID, c)
	return c
}

// Drop signs the container out and forgets it
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	c, ok := r.lru.Peek(sessionID)
	r.lru.Remove(sessionID)
	r.mu.Unlock()

	if ok {
		c.SetSession(domain.AnonymousSession())
	}
}

// Len reports how many sessions hold a container
func (r *Registry) Len() int {
	return r.lru.Len()
}

// Transient returns a container that is not registered, for anonymous requests
func (r *Registry) Transient() *Container {
	c := r.factory()
	c.SetSession(domain.AnonymousSession())
	return c
}
