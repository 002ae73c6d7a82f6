package client

import "sync"

// Collection is the in-memory working set behind an admin list view. It
// hands out copies so callers never mutate the shared slice.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) int64
}

func NewCollection[T any](id func(T) int64) *Collection[T] {
	return &Collection[T]{id: id}
}

// Replace swaps the whole working set, usually after a fresh fetch.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// Items returns a copy of the working set.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the item with the given identity.
func (c *Collection[T]) Find(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the item with the same identity or appends a new one.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove filters out the item with the given identity.
func (c *Collection[T]) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}
