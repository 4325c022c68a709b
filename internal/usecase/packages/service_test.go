package packages

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/renolab/quotient/internal/cache"
	"github.com/renolab/quotient/internal/domain/bundle"
	"github.com/renolab/quotient/internal/domain/catalog"
)

type mockSource struct {
	items     []catalog.Item
	listErr   error
	listCalls int
}

func (m *mockSource) List(_ context.Context) ([]catalog.Item, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func item(id, title, description string, features []string, active bool, order int) catalog.Item {
	return catalog.Item{
		ID:          id,
		Title:       title,
		Description: description,
		Features:    features,
		Active:      active,
		Order:       order,
	}
}

func testItems() []catalog.Item {
	return []catalog.Item{
		item("svc-kitchen", "Kitchen Remodeling",
			"Transform your kitchen with full remodeling", nil, true, 1),
		item("svc-bathroom", "Bathroom Remodeling",
			"Complete bathroom remodel", nil, true, 2),
		item("svc-addition", "Home Addition",
			"Second story addition and extensions", nil, true, 3),
		item("svc-deck", "Deck Building",
			"Composite deck construction", nil, true, 4),
		item("svc-roof", "Roof Repair",
			"Leak diagnosis and repair", nil, true, 5),
		item("svc-inactive", "Kitchen Countertops",
			"Discontinued countertop program", nil, false, 6),
	}
}

func findPackage(t *testing.T, pkgs []bundle.Package, id string) bundle.Package {
	t.Helper()
	for _, p := range pkgs {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("package %s not found", id)
	return bundle.Package{}
}

func TestList_EmptyCatalogYieldsNoPackages(t *testing.T) {
	svc := New(&mockSource{}, nil, time.Minute)

	pkgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pkgs) != 0 {
		t.Errorf("got %d packages, want 0", len(pkgs))
	}
}

func TestList_TiersPerBucket(t *testing.T) {
	svc := New(&mockSource{items: testItems()}, nil, time.Minute)

	pkgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every non-empty bucket emits all three tiers.
	starter := findPackage(t, pkgs, "pkg-kitchen-starter")
	if starter.Name != "Kitchen Starter Package" {
		t.Errorf("name: got %q", starter.Name)
	}
	if starter.Category != "kitchen" {
		t.Errorf("category: got %q", starter.Category)
	}
	if starter.EstimatedTimeline != "4-8 weeks" {
		t.Errorf("timeline: got %q", starter.EstimatedTimeline)
	}
	findPackage(t, pkgs, "pkg-kitchen-complete")
	findPackage(t, pkgs, "pkg-kitchen-premium")
	findPackage(t, pkgs, "pkg-renovation-starter")
	findPackage(t, pkgs, "pkg-maintenance-starter")
}

func TestList_PriceIsDiscountedSumOfIncluded(t *testing.T) {
	svc := New(&mockSource{items: testItems()}, nil, time.Minute)

	pkgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range pkgs {
		var sum int64
		for _, inc := range p.IncludedServices {
			sum += inc.EstimatedPriceCents
		}

		var discount float64
		switch {
		case p.ID == "pkg-best-value":
			discount = bundle.BestValueDiscount
		default:
			for _, tier := range bundle.Tiers() {
				if p.ID == "pkg-"+p.Category+"-"+lower(tier.Name) {
					discount = tier.DiscountMultiplier
				}
			}
		}
		if discount == 0 {
			t.Fatalf("package %s matched no tier", p.ID)
		}

		want := int64(math.Round(float64(sum) * discount))
		if p.PriceCents != want {
			t.Errorf("%s: price %d, want %d (sum %d x %v)", p.ID, p.PriceCents, want, sum, discount)
		}
	}
}

func TestList_TierCapsMembership(t *testing.T) {
	// Four items land in the renovation bucket (remodel/renovation/addition).
	items := []catalog.Item{
		item("r1", "Kitchen Remodeling", "Full remodel", nil, true, 1),
		item("r2", "Bathroom Remodeling", "Full remodel", nil, true, 2),
		item("r3", "Home Addition", "Garage addition", nil, true, 3),
		item("r4", "Basement Renovation", "Finish the basement", nil, true, 4),
	}
	svc := New(&mockSource{items: items}, nil, time.Minute)

	pkgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	starter := findPackage(t, pkgs, "pkg-renovation-starter")
	if len(starter.IncludedServices) != 2 {
		t.Errorf("starter includes %d, want 2", len(starter.IncludedServices))
	}
	if starter.Complexity != bundle.Low {
		t.Errorf("starter complexity: got %s, want %s", starter.Complexity, bundle.Low)
	}

	complete := findPackage(t, pkgs, "pkg-renovation-complete")
	if len(complete.IncludedServices) != 3 {
		t.Errorf("complete includes %d, want 3", len(complete.IncludedServices))
	}
	if complete.Complexity != bundle.Medium {
		t.Errorf("complete complexity: got %s, want %s", complete.Complexity, bundle.Medium)
	}

	premium := findPackage(t, pkgs, "pkg-renovation-premium")
	if len(premium.IncludedServices) != 4 {
		t.Errorf("premium includes %d, want 4", len(premium.IncludedServices))
	}
	if premium.Complexity != bundle.High {
		t.Errorf("premium complexity: got %s, want %s", premium.Complexity, bundle.High)
	}

	// Members are the first N in catalog order.
	if starter.IncludedServices[0].ID != "r1" || starter.IncludedServices[1].ID != "r2" {
		t.Error("starter membership not in catalog order")
	}
}

func TestList_BestValueHoldsTopThreePrices(t *testing.T) {
	svc := New(&mockSource{items: testItems()}, nil, time.Minute)

	pkgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bv := pkgs[len(pkgs)-1]
	if bv.ID != "pkg-best-value" {
		t.Fatalf("last package: got %s, want pkg-best-value", bv.ID)
	}
	if len(bv.IncludedServices) != 3 {
		t.Fatalf("best value includes %d, want 3", len(bv.IncludedServices))
	}

	// Highest-priced actives: addition (80000.00), kitchen (25000.00),
	// deck (18000.00).
	wantIDs := map[string]bool{"svc-addition": true, "svc-kitchen": true, "svc-deck": true}
	for _, inc := range bv.IncludedServices {
		if !wantIDs[inc.ID] {
			t.Errorf("unexpected best value member %s", inc.ID)
		}
	}
	if bv.IncludedServices[0].ID != "svc-addition" {
		t.Errorf("best value not price-ordered, first is %s", bv.IncludedServices[0].ID)
	}
	if bv.EstimatedTimeline != "varies by scope" {
		t.Errorf("timeline: got %q", bv.EstimatedTimeline)
	}
}

func TestList_NoBestValueUnderThreeActive(t *testing.T) {
	items := []catalog.Item{
		item("a", "Kitchen Remodeling", "Full remodel", nil, true, 1),
		item("b", "Roof Repair", "Leak repair", nil, true, 2),
		item("c", "Deck Building", "Inactive", nil, false, 3),
	}
	svc := New(&mockSource{items: items}, nil, time.Minute)

	pkgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range pkgs {
		if p.ID == "pkg-best-value" {
			t.Error("best value emitted with fewer than 3 active services")
		}
	}
}

func TestList_ExcludesInactiveItems(t *testing.T) {
	svc := New(&mockSource{items: testItems()}, nil, time.Minute)

	pkgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range pkgs {
		for _, inc := range p.IncludedServices {
			if inc.ID == "svc-inactive" {
				t.Errorf("inactive service in package %s", p.ID)
			}
		}
	}
}

func TestList_MemoizesResults(t *testing.T) {
	src := &mockSource{items: testItems()}
	memo := cache.New[[]bundle.Package](nil)
	svc := New(src, memo, time.Minute)

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if src.listCalls != 1 {
		t.Errorf("catalog listed %d times, want 1", src.listCalls)
	}
}

func TestList_CatalogError(t *testing.T) {
	svc := New(&mockSource{listErr: errors.New("store down")}, nil, time.Minute)

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error when catalog listing fails")
	}
}

func TestCategorize_MultiBucketMembership(t *testing.T) {
	items := []catalog.Item{
		item("k", "Kitchen Renovation", "Gut renovation of the kitchen", nil, true, 1),
	}

	got := categorize(items)

	inBucket := func(name string) bool {
		for _, b := range got {
			if b.name == name {
				return len(b.items) == 1
			}
		}
		return false
	}
	if !inBucket("kitchen") {
		t.Error("item missing from kitchen bucket")
	}
	if !inBucket("renovation") {
		t.Error("item missing from renovation bucket")
	}
}
