// Package staticcat ships the compiled-in baseline service list. It backs the
// "static" database driver and the fallback side of catalog.WithFallback, and
// seeds a fresh Redis instance on first start.
package staticcat

import (
	"context"
	"fmt"

	"github.com/renolab/quotient/internal/domain"
	domcat "github.com/renolab/quotient/internal/domain/catalog"
)

// Catalog serves the baseline items from memory. Safe for concurrent use:
// callers always receive fresh copies.
type Catalog struct{}

// New creates a static catalog.
func New() *Catalog {
	return &Catalog{}
}

// List returns a fresh copy of the baseline items in display order.
func (c *Catalog) List(_ context.Context) ([]domcat.Item, error) {
	return Items(), nil
}

// Get returns a baseline item by ID.
func (c *Catalog) Get(_ context.Context, id string) (domcat.Item, error) {
	for _, item := range baseline {
		if item.ID == id {
			return copyItem(item), nil
		}
	}
	return domcat.Item{}, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, id)
}

// Ping always succeeds: the baseline lives in process memory.
func (c *Catalog) Ping(_ context.Context) error { return nil }

// Items returns a fresh copy of the baseline catalog.
func Items() []domcat.Item {
	out := make([]domcat.Item, len(baseline))
	for i, item := range baseline {
		out[i] = copyItem(item)
	}
	return out
}

func copyItem(item domcat.Item) domcat.Item {
	feats := make([]string, len(item.Features))
	copy(feats, item.Features)
	item.Features = feats
	return item
}

// baseline is the static product list served when no catalog store is
// configured or reachable. Order values drive display and tie-breaks.
var baseline = []domcat.Item{
	{
		ID:          "svc-kitchen-remodel",
		Title:       "Kitchen Remodeling",
		Description: "Transform your kitchen with full remodeling, from layout changes to finish work",
		Features:    []string{"Custom layout design", "Cabinet installation", "Countertop fitting", "Appliance hookup"},
		Active:      true,
		Order:       1,
	},
	{
		ID:          "svc-bathroom-remodel",
		Title:       "Bathroom Renovation",
		Description: "Complete bathroom renovation including fixtures, tile, and waterproofing",
		Features:    []string{"Fixture replacement", "Tile work", "Waterproofing", "Vanity installation"},
		Active:      true,
		Order:       2,
	},
	{
		ID:          "svc-home-addition",
		Title:       "Home Addition",
		Description: "Room additions and extensions that blend seamlessly with your existing home",
		Features:    []string{"Architectural planning", "Foundation work", "Framing", "Full finish"},
		Active:      true,
		Order:       3,
	},
	{
		ID:          "svc-deck-build",
		Title:       "Deck & Patio Construction",
		Description: "Custom outdoor decks and patios built for your climate and lifestyle",
		Features:    []string{"Material selection", "Custom railings", "Built-in seating"},
		Active:      true,
		Order:       4,
	},
	{
		ID:          "svc-roof-replace",
		Title:       "Roof Replacement",
		Description: "Full roof replacement with modern materials and workmanship warranty",
		Features:    []string{"Tear-off and disposal", "New underlayment", "Shingle installation"},
		Active:      true,
		Order:       5,
	},
	{
		ID:          "svc-hardwood-floor",
		Title:       "Hardwood Flooring",
		Description: "Hardwood floor installation and refinishing throughout your home",
		Features:    []string{"Subfloor preparation", "Installation", "Sanding and sealing"},
		Active:      true,
		Order:       6,
	},
	{
		ID:          "svc-finish-carpentry",
		Title:       "Finish Carpentry",
		Description: "Trim, molding, and custom carpentry details that complete a room",
		Features:    []string{"Crown molding", "Baseboards", "Custom built-ins"},
		Active:      true,
		Order:       7,
	},
	{
		ID:          "svc-electrical-upgrade",
		Title:       "Electrical Panel Upgrade",
		Description: "Electrical service and panel upgrades to modern code",
		Features:    []string{"Load calculation", "Panel replacement", "Permit handling"},
		Active:      true,
		Order:       8,
	},
	{
		ID:          "svc-plumbing-service",
		Title:       "Plumbing Repair",
		Description: "Plumbing repair and maintenance for fixtures, drains, and supply lines",
		Features:    []string{"Leak detection", "Fixture repair", "Drain clearing"},
		Active:      true,
		Order:       9,
	},
	{
		ID:          "svc-hvac-install",
		Title:       "HVAC Installation",
		Description: "Heating and cooling system installation sized for your home",
		Features:    []string{"Load sizing", "Ductwork", "System commissioning"},
		Active:      true,
		Order:       10,
	},
	{
		ID:          "svc-consultation",
		Title:       "Project Consultation",
		Description: "On-site consultation to scope your project and plan the work",
		Features:    []string{"Site assessment", "Budget guidance", "Written scope"},
		Active:      true,
		Order:       11,
	},
}
