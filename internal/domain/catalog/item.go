// Package catalog defines the validated service catalog records the engine
// operates on. Records from external stores are parsed into Item exactly once
// at the ingestion boundary; scoring, pricing, and bundling only ever see the
// validated type.
package catalog

import (
	"fmt"
	"strings"

	"github.com/renolab/quotient/internal/domain"
)

// Item is a single offered service.
type Item struct {
	ID          string
	Title       string
	Description string
	Features    []string
	Active      bool
	Order       int
	CreatedAt   int64 // epoch seconds, never scored
	UpdatedAt   int64
}

// New validates and builds an Item from externally supplied fields.
// ID and Title are required; Features are copied so the caller's slice
// cannot alias into the validated record.
func New(id, title, description string, features []string, active bool, order int) (Item, error) {
	id = strings.TrimSpace(id)
	title = strings.TrimSpace(title)
	if id == "" {
		return Item{}, fmt.Errorf("%w: id is required", domain.ErrInvalidService)
	}
	if title == "" {
		return Item{}, fmt.Errorf("%w: title is required for %q", domain.ErrInvalidService, id)
	}

	var feats []string
	if len(features) > 0 {
		feats = make([]string, len(features))
		copy(feats, features)
	}

	return Item{
		ID:          id,
		Title:       title,
		Description: description,
		Features:    feats,
		Active:      active,
		Order:       order,
	}, nil
}

// SearchText returns the text a search vector is built from:
// title, description, and all features joined.
func (i Item) SearchText() string {
	parts := make([]string, 0, 2+len(i.Features))
	parts = append(parts, i.Title, i.Description)
	parts = append(parts, i.Features...)
	return strings.Join(parts, " ")
}

// ScoredItem is a ranked search hit: the item, its similarity score against
// the query, and its estimated labor-only price.
type ScoredItem struct {
	Item                Item
	Score               float64
	EstimatedPriceCents int64
}

// ActiveOnly returns the items with Active set, preserving catalog order.
func ActiveOnly(items []Item) []Item {
	active := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Active {
			active = append(active, it)
		}
	}
	return active
}
