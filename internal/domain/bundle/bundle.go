// Package bundle defines the sellable package types the synthesizer emits:
// tiered per-category bundles with volume discounts and the cross-category
// Best Value bundle.
package bundle

import "math"

// Complexity grades a package by how many services it includes.
type Complexity string

const (
	// Low is a package of at most 2 services.
	Low Complexity = "Low"
	// Medium is a package of 3 services.
	Medium Complexity = "Medium"
	// High is a package of 4 or more services.
	High Complexity = "High"
)

// ComplexityFor derives complexity purely from the included-service count.
func ComplexityFor(count int) Complexity {
	switch {
	case count <= 2:
		return Low
	case count <= 3:
		return Medium
	default:
		return High
	}
}

// Tier caps a bundle's size and sets its volume discount.
type Tier struct {
	Name               string
	MaxServices        int
	DiscountMultiplier float64
}

// Tiers returns the fixed tier sequence applied to every category bucket.
func Tiers() []Tier {
	return []Tier{
		{Name: "Starter", MaxServices: 2, DiscountMultiplier: 0.85},
		{Name: "Complete", MaxServices: 3, DiscountMultiplier: 0.80},
		{Name: "Premium", MaxServices: 4, DiscountMultiplier: 0.75},
	}
}

// BestValueDiscount is the fixed multiplier of the cross-category bundle.
const BestValueDiscount = 0.75

// IncludedService is one line of a package's breakdown.
type IncludedService struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	EstimatedPriceCents int64  `json:"estimated_price_cents"`
}

// Package is a synthesized, sellable bundle of related services.
type Package struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	PriceCents        int64             `json:"price_cents"`
	Category          string            `json:"category"`
	IncludedServices  []IncludedService `json:"included_services"`
	EstimatedTimeline string            `json:"estimated_timeline"`
	Complexity        Complexity        `json:"complexity"`
}

// DiscountedTotal applies a tier discount to a summed price, rounding to the
// nearest cent. The package price is fully determined by its included prices
// and the discount; there are no hidden adjustments.
func DiscountedTotal(sumCents int64, discount float64) int64 {
	return int64(math.Round(float64(sumCents) * discount))
}

// timelines holds the category-constant timeline estimates shown on packages.
var timelines = map[string]string{
	"kitchen":     "4-8 weeks",
	"bathroom":    "2-4 weeks",
	"outdoor":     "1-3 weeks",
	"renovation":  "6-12 weeks",
	"maintenance": "1-2 weeks",
}

// TimelineFor returns the constant timeline for a category, or a generic
// estimate for categories without one (the Best Value bundle).
func TimelineFor(category string) string {
	if t, ok := timelines[category]; ok {
		return t
	}
	return "varies by scope"
}
