// Package storage implements the persistence store: three named
// collections, each kept as a single JSON-encoded array under a fixed
// key in the key-value substrate.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/StarickDosSantos/FactBP/internal/kv"
)

// Collection keys. They are the persisted storage contract and must
// not change without a data migration.
const (
	KeyClients  = "clients"
	KeyProducts = "products"
	KeyInvoices = "invoices"
)

// Entity is anything addressable by an opaque string id.
type Entity interface {
	EntityID() string
}

// Collection is a durable, ordered (newest-first) set of entities with
// unique ids, persisted whole under a single key. The read-modify-write
// cycle of each mutation is serialized by a per-collection mutex.
type Collection[T Entity] struct {
	mu    sync.Mutex
	store kv.Store
	key   string
}

func NewCollection[T Entity](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the storage key the collection persists under.
func (c *Collection[T]) Key() string { return c.key }

// List returns all entities in stored order. An absent key yields an
// empty slice. A value that does not decode yields a *DecodeError.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// Upsert replaces the entity with the same id in place, or prepends the
// entity when the id is new, then writes the whole collection back.
func (c *Collection[T]) Upsert(ctx context.Context, entity T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].EntityID() == entity.EntityID() {
			items[i] = entity
			replaced = true
			break
		}
	}
	if !replaced {
		items = append([]T{entity}, items...)
	}

	return c.write(ctx, items)
}

// DeleteByID removes the entity with the given id. Deleting an absent
// id is a no-op, not an error.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	filtered := items[:0]
	for _, item := range items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return nil
	}

	return c.write(ctx, filtered)
}

// Reset overwrites the collection with an empty array. It is the
// recovery path when List reports a DecodeError.
func (c *Collection[T]) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(ctx, []T{})
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []T{}, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &DecodeError{Key: c.key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) write(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return &WriteFailure{Key: c.key, Err: err}
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return &WriteFailure{Key: c.key, Err: err}
	}
	return nil
}

// ClearAll removes every collection key. Each key is removed
// independently; there is no cross-key atomicity.
func ClearAll(ctx context.Context, store kv.Store) error {
	for _, key := range []string{KeyClients, KeyProducts, KeyInvoices} {
		if err := store.Delete(ctx, key); err != nil {
			return &WriteFailure{Key: key, Err: err}
		}
	}
	return nil
}
