// Package storage provides the persistence adapter: a named-collection
// key-value store holding one serialized JSON array per key. Drivers are
// interchangeable: the in-memory one backs tests, the file driver is the
// default single-machine deployment, and postgres/redis exist for shared
// setups. Whatever the driver, the contract is last-save-wins on the whole
// value; there is no versioning, migration or multi-writer conflict
// detection.
package storage

import (
	"context"
	"fmt"

	"github.com/nmthanh/backoffice-api/pkg/config"
)

// Collection keys persisted by the application.
const (
	KeyIngredients = "ingredients"
	KeyProducts    = "products"
	KeyCategories  = "categories"
	KeyEmployees   = "employees"
	KeyHistory     = "warehouse_history_events"
)

// Driver reads and writes raw serialized collections. Load reports
// (nil, false, nil) for an absent key; corruption handling is the typed
// layer's concern, not the driver's.
type Driver interface {
	Load(ctx context.Context, key string) (raw []byte, ok bool, err error)
	Save(ctx context.Context, key string, raw []byte) error
	Clear(ctx context.Context, key string) error
	Close() error
}

// Open constructs the driver selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Driver, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemory(), nil
	case "file", "":
		return NewFile(cfg.DataDir)
	case "postgres":
		return NewPostgres(ctx, cfg)
	case "redis":
		return NewRedis(ctx, cfg)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
