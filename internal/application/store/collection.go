// Package store is the typed persistence layer: each Collection marshals one
// entity slice to a storage key, and EntityStore layers CRUD, search and
// pagination on top.
package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/nmthanh/backoffice-api/internal/infrastructure/storage"
)

// Collection binds an entity slice to a storage key with a seed fallback.
// Load never fails: an absent key, a driver error or a payload that does not
// unmarshal all degrade to a fresh copy of the seed slice.
type Collection[T any] struct {
	driver storage.Driver
	key    string
	seed   func() []T
}

func NewCollection[T any](driver storage.Driver, key string, seed func() []T) *Collection[T] {
	return &Collection[T]{driver: driver, key: key, seed: seed}
}

// Key returns the storage key the collection persists under.
func (c *Collection[T]) Key() string { return c.key }

// Load returns the persisted slice, or the seed defaults when nothing usable
// is stored. The degraded cases are logged but not surfaced; the caller
// always gets a working dataset.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, ok, err := c.driver.Load(ctx, c.key)
	if err != nil {
		log.Warn().Err(err).Str("key", c.key).Msg("collection load failed, using seed data")
		return c.seed()
	}
	if !ok {
		return c.seed()
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("key", c.key).Msg("collection payload corrupt, using seed data")
		return c.seed()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Save persists the whole slice, replacing whatever was stored.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.driver.Save(ctx, c.key, raw)
}

// Reset removes the persisted value; the next Load returns the seed defaults.
func (c *Collection[T]) Reset(ctx context.Context) error {
	return c.driver.Clear(ctx, c.key)
}
