// Package catalog persists service catalog records as Redis hashes and hands
// the engine a fresh, ordered item list per invocation. The engine itself
// keeps no copy of catalog contents.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/renolab/quotient/internal/db"
	"github.com/renolab/quotient/internal/domain"
	domcat "github.com/renolab/quotient/internal/domain/catalog"
)

const keyPrefix = "quotient:service:"

// Source supplies catalog items. Implemented by Repo, staticcat.Catalog, and
// the WithFallback decorator.
type Source interface {
	List(ctx context.Context) ([]domcat.Item, error)
	Get(ctx context.Context, id string) (domcat.Item, error)
}

// Repo is a Redis-backed catalog store.
type Repo struct {
	store db.Store
}

// New creates a catalog repository.
func New(store db.Store) *Repo {
	return &Repo{store: store}
}

// List returns every stored service, active or not, sorted by display order
// then ID. Callers filter on Active themselves.
func (r *Repo) List(ctx context.Context) ([]domcat.Item, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan services: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch services: %w", err)
	}

	items := make([]domcat.Item, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			// Key expired or deleted between SCAN and HGETALL.
			continue
		}
		item, err := itemFromHash(row)
		if err != nil {
			return nil, fmt.Errorf("decode service %s: %w", keys[i], err)
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// Get returns a single service by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcat.Item, error) {
	row, err := r.store.HGetAll(ctx, keyPrefix+id)
	if err != nil {
		return domcat.Item{}, fmt.Errorf("fetch service %s: %w", id, err)
	}
	if len(row) == 0 {
		return domcat.Item{}, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, id)
	}
	item, err := itemFromHash(row)
	if err != nil {
		return domcat.Item{}, fmt.Errorf("decode service %s: %w", id, err)
	}
	return item, nil
}

// Put stores or replaces a service.
func (r *Repo) Put(ctx context.Context, item domcat.Item) error {
	fields, err := itemToHash(item)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, keyPrefix+item.ID, fields); err != nil {
		return fmt.Errorf("store service %s: %w", item.ID, err)
	}
	return nil
}

// PutAll stores multiple services in one pipelined round-trip. Used to seed a
// fresh instance from the static baseline.
func (r *Repo) PutAll(ctx context.Context, items []domcat.Item) error {
	if len(items) == 0 {
		return nil
	}
	batch := make([]db.HashSetItem, len(items))
	for i, item := range items {
		fields, err := itemToHash(item)
		if err != nil {
			return err
		}
		batch[i] = db.HashSetItem{Key: keyPrefix + item.ID, Fields: fields}
	}
	if err := r.store.HSetMulti(ctx, batch); err != nil {
		return fmt.Errorf("store %d services: %w", len(items), err)
	}
	return nil
}

// Delete removes a service.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("delete service %s: %w", id, err)
	}
	return nil
}

// Empty reports whether no services are stored yet.
func (r *Repo) Empty(ctx context.Context) (bool, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return false, fmt.Errorf("scan services: %w", err)
	}
	return len(keys) == 0, nil
}
