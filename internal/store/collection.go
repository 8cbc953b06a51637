// Package store keeps the per-session cache of loaded ingredients and
// recipes. Every mutation goes to the gateway first; the cache only ever
// reflects confirmed results.
package store

import (
	"context"
	"sync"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// Result is what every store action returns
type Result[T any] struct {
	Success bool   `json:"success"`
	Item    T      `json:"item,omitempty"`
	Error   string `json:"error,omitempty"`
	// Err is the gateway error behind Error, kept for status mapping
	Err error `json:"-"`
}

func succeed[T any](item T) Result[T] {
	return Result[T]{Success: true, Item: item}
}

func fail[T any](err error, fallback string) Result[T] {
	return Result[T]{Error: domain.MessageOf(err, fallback), Err: err}
}

// Collection is the cache for one entity type.
//
// Two counters fence stale writers: loadSeq lets only the newest Load
// publish its items, and epoch (advanced by Reset) keeps actions that
// started before a reset from touching the cache after it.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	loaded  bool
	loading bool
	err     string
	loadSeq uint64
	epoch   uint64
	idOf    func(T) string
}

// NewCollection creates an empty, never-loaded collection
func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// Items returns a copy of the cached items. ok is false when the
// collection has never been loaded, which is not the same as empty.
func (c *Collection[T]) Items() (items []T, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return append(make([]T, 0, len(c.items)), c.items...), true
}

func (c *Collection[T]) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err is the last action error, empty when there is none
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Reset forgets everything, including any in-flight load
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.loaded = false
	c.loading = false
	c.err = ""
	c.loadSeq++
	c.epoch++
}

// LoadWith replaces the items with what fetch returns. On failure the
// collection becomes loaded-and-empty so callers do not retry forever.
func (c *Collection[T]) LoadWith(ctx context.Context, fallback string, fetch func(context.Context) ([]T, error)) Result[[]T] {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		// superseded by a newer load or a reset
		if err != nil {
			return fail[[]T](err, fallback)
		}
		return succeed(items)
	}
	c.loading = false
	c.loaded = true
	if err != nil {
		res := fail[[]T](err, fallback)
		c.items = []T{}
		c.err = res.Error
		return res
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	return succeed(append([]T(nil), items...))
}

// AddWith appends the created item once create confirms it
func (c *Collection[T]) AddWith(ctx context.Context, fallback string, create func(context.Context) (*T, error)) Result[T] {
	epoch := c.begin()

	item, err := create(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		return c.failLocked(epoch, err, fallback)
	}
	if epoch == c.epoch {
		if !c.loaded {
			c.items = []T{*item}
			c.loaded = true
		} else {
			c.items = append(c.items, *item)
		}
	}
	return succeed(*item)
}

// UpdateWith replaces the item with the same id in place, appending it
// when the cache does not hold it
func (c *Collection[T]) UpdateWith(ctx context.Context, fallback string, update func(context.Context) (*T, error)) Result[T] {
	epoch := c.begin()

	item, err := update(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		return c.failLocked(epoch, err, fallback)
	}
	if epoch == c.epoch {
		c.upsertLocked(*item)
	}
	return succeed(*item)
}

// RemoveWith drops id from the cache once remove confirms it
func (c *Collection[T]) RemoveWith(ctx context.Context, id, fallback string, remove func(context.Context) error) Result[T] {
	epoch := c.begin()

	err := remove(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		return c.failLocked(epoch, err, fallback)
	}
	if epoch == c.epoch && c.loaded {
		kept := make([]T, 0, len(c.items))
		for _, it := range c.items {
			if c.idOf(it) != id {
				kept = append(kept, it)
			}
		}
		c.items = kept
	}
	var zero T
	return succeed(zero)
}

func (c *Collection[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = ""
	return c.epoch
}

func (c *Collection[T]) failLocked(epoch uint64, err error, fallback string) Result[T] {
	res := fail[T](err, fallback)
	if epoch == c.epoch {
		c.err = res.Error
	}
	return res
}

func (c *Collection[T]) upsertLocked(item T) {
	if !c.loaded {
		c.items = []T{item}
		c.loaded = true
		return
	}
	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}
