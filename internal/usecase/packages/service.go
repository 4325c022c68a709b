// Package packages synthesizes sellable bundles from the active catalog:
// tiered per-category packages with volume discounts, plus one cross-category
// Best Value bundle composed of the highest-priced services.
package packages

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/renolab/quotient/internal/cache"
	"github.com/renolab/quotient/internal/domain/bundle"
	"github.com/renolab/quotient/internal/domain/catalog"
	"github.com/renolab/quotient/internal/domain/pricing"
	"github.com/renolab/quotient/internal/metrics"
)

const cacheKey = "packages:all"

// bestValueSize is the fixed membership of the Best Value bundle.
const bestValueSize = 3

// Service synthesizes packages from the catalog.
type Service struct {
	source CatalogSource
	memo   *cache.Cache[[]bundle.Package]
	ttl    time.Duration
}

// New creates a package synthesizer. memo may be nil to disable memoization.
func New(source CatalogSource, memo *cache.Cache[[]bundle.Package], ttl time.Duration) *Service {
	return &Service{source: source, memo: memo, ttl: ttl}
}

// List builds every package for the current catalog: bucket-iteration order,
// tier order within each bucket, Best Value last. Callers needing a different
// presentation order re-sort themselves. An empty catalog yields zero
// packages, not an error.
func (s *Service) List(ctx context.Context) ([]bundle.Package, error) {
	if s.memo != nil {
		if cached, ok := s.memo.Get(cacheKey); ok {
			return cached, nil
		}
	}

	items, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	active := catalog.ActiveOnly(items)
	priced := priceAll(active)

	var out []bundle.Package
	for _, bucket := range categorize(active) {
		if len(bucket.items) == 0 {
			continue
		}
		for _, tier := range bundle.Tiers() {
			out = append(out, buildTierPackage(bucket, tier, priced))
		}
	}

	if bv, ok := bestValue(active, priced); ok {
		out = append(out, bv)
	}

	metrics.PackagesSynthesized.Observe(float64(len(out)))

	if s.memo != nil {
		s.memo.Set(cacheKey, out, s.ttl)
	}
	return out, nil
}

// priceAll estimates each item's price once, keyed by ID.
func priceAll(items []catalog.Item) map[string]int64 {
	prices := make(map[string]int64, len(items))
	for _, item := range items {
		prices[item.ID] = pricing.Estimate(item.Title, item.Description)
	}
	return prices
}

// buildTierPackage bundles the first tier.MaxServices items of the bucket in
// catalog order and applies the tier discount.
func buildTierPackage(b bucket, tier bundle.Tier, prices map[string]int64) bundle.Package {
	members := b.items
	if len(members) > tier.MaxServices {
		members = members[:tier.MaxServices]
	}

	var sum int64
	included := make([]bundle.IncludedService, len(members))
	for i, item := range members {
		p := prices[item.ID]
		sum += p
		included[i] = bundle.IncludedService{
			ID:                  item.ID,
			Title:               item.Title,
			EstimatedPriceCents: p,
		}
	}

	discountPct := int(100 - tier.DiscountMultiplier*100)
	return bundle.Package{
		ID:   fmt.Sprintf("pkg-%s-%s", b.name, lower(tier.Name)),
		Name: fmt.Sprintf("%s %s Package", title(b.name), tier.Name),
		Description: fmt.Sprintf(
			"%d related %s services bundled at a %d%% labor discount",
			len(included), b.name, discountPct,
		),
		PriceCents:        bundle.DiscountedTotal(sum, tier.DiscountMultiplier),
		Category:          b.name,
		IncludedServices:  included,
		EstimatedTimeline: bundle.TimelineFor(b.name),
		Complexity:        bundle.ComplexityFor(len(included)),
	}
}

// bestValue bundles the three highest-priced active items. It exists iff the
// active catalog has at least three items; price ties break by catalog order.
func bestValue(active []catalog.Item, prices map[string]int64) (bundle.Package, bool) {
	if len(active) < bestValueSize {
		return bundle.Package{}, false
	}

	byPrice := make([]catalog.Item, len(active))
	copy(byPrice, active)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return prices[byPrice[i].ID] > prices[byPrice[j].ID]
	})
	top := byPrice[:bestValueSize]

	var sum int64
	included := make([]bundle.IncludedService, len(top))
	for i, item := range top {
		p := prices[item.ID]
		sum += p
		included[i] = bundle.IncludedService{
			ID:                  item.ID,
			Title:               item.Title,
			EstimatedPriceCents: p,
		}
	}

	return bundle.Package{
		ID:                "pkg-best-value",
		Name:              "Best Value Package",
		Description:       "Our three highest-value services bundled at maximum savings",
		PriceCents:        bundle.DiscountedTotal(sum, bundle.BestValueDiscount),
		Category:          "best-value",
		IncludedServices:  included,
		EstimatedTimeline: bundle.TimelineFor("best-value"),
		Complexity:        bundle.ComplexityFor(len(included)),
	}, true
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func title(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
