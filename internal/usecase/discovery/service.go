// Package discovery ranks catalog services against free-text queries using
// term-frequency vectors and cosine similarity, and annotates every hit with
// its estimated labor-only price.
package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/renolab/quotient/internal/cache"
	"github.com/renolab/quotient/internal/domain/catalog"
	"github.com/renolab/quotient/internal/domain/pricing"
	"github.com/renolab/quotient/internal/domain/textvec"
	"github.com/renolab/quotient/internal/metrics"
)

// Result-set bounds for k. Out-of-range values are clamped, not rejected.
const (
	minResults = 1
	maxResults = 50
)

// PricedItem is a catalog item annotated with its estimated price.
type PricedItem struct {
	Item                catalog.Item
	EstimatedPriceCents int64
}

// Service handles service discovery over the catalog.
type Service struct {
	source CatalogSource
	memo   *cache.Cache[[]catalog.ScoredItem]
	ttl    time.Duration
}

// New creates a discovery service. memo may be nil to disable memoization.
func New(source CatalogSource, memo *cache.Cache[[]catalog.ScoredItem], ttl time.Duration) *Service {
	return &Service{source: source, memo: memo, ttl: ttl}
}

// Search ranks active catalog items against query and returns the top k,
// sorted by non-increasing score with catalog order breaking ties. An empty
// or whitespace query yields an empty result list, not an error, so callers
// need not special-case "no query yet". k is clamped to [1, 50].
func (s *Service) Search(ctx context.Context, query string, k int) ([]catalog.ScoredItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if k < minResults {
		k = minResults
	}
	if k > maxResults {
		k = maxResults
	}

	key := fmt.Sprintf("search:%s:%d", query, k)
	if s.memo != nil {
		if cached, ok := s.memo.Get(key); ok {
			return cached, nil
		}
	}

	items, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	queryVec := textvec.FromText(query)

	active := catalog.ActiveOnly(items)
	scored := make([]catalog.ScoredItem, len(active))
	for i, item := range active {
		scored[i] = catalog.ScoredItem{
			Item:                item,
			Score:               textvec.Cosine(queryVec, textvec.FromText(item.SearchText())),
			EstimatedPriceCents: pricing.Estimate(item.Title, item.Description),
		}
	}

	// Stable sort keeps catalog order on score ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	metrics.SearchResults.Observe(float64(len(scored)))

	if s.memo != nil {
		s.memo.Set(key, scored, s.ttl)
	}
	return scored, nil
}

// List returns all active catalog items with estimated prices, in catalog
// order.
func (s *Service) List(ctx context.Context) ([]PricedItem, error) {
	items, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	active := catalog.ActiveOnly(items)
	priced := make([]PricedItem, len(active))
	for i, item := range active {
		priced[i] = PricedItem{
			Item:                item,
			EstimatedPriceCents: pricing.Estimate(item.Title, item.Description),
		}
	}
	return priced, nil
}

// Estimate returns a single service with its estimated price.
func (s *Service) Estimate(ctx context.Context, id string) (PricedItem, error) {
	item, err := s.source.Get(ctx, id)
	if err != nil {
		return PricedItem{}, fmt.Errorf("get service: %w", err)
	}
	return PricedItem{
		Item:                item,
		EstimatedPriceCents: pricing.Estimate(item.Title, item.Description),
	}, nil
}
