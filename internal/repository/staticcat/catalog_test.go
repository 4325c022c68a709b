package staticcat

import (
	"context"
	"errors"
	"testing"

	"github.com/renolab/quotient/internal/domain"
)

func TestList_ReturnsBaselineInOrder(t *testing.T) {
	c := New()

	items, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("baseline is empty")
	}

	for i := 1; i < len(items); i++ {
		if items[i].Order < items[i-1].Order {
			t.Errorf("baseline out of order at index %d", i)
		}
	}
	for _, it := range items {
		if !it.Active {
			t.Errorf("baseline item %s is inactive", it.ID)
		}
		if it.ID == "" || it.Title == "" {
			t.Errorf("baseline item missing id or title: %+v", it)
		}
	}
}

func TestGet_KnownAndUnknown(t *testing.T) {
	c := New()

	item, err := c.Get(context.Background(), "svc-kitchen-remodel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Title != "Kitchen Remodeling" {
		t.Errorf("title: got %q", item.Title)
	}

	_, err = c.Get(context.Background(), "svc-unknown")
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Errorf("got %v, want ErrServiceNotFound", err)
	}
}

func TestItems_ReturnsCopies(t *testing.T) {
	first := Items()
	first[0].Title = "mutated"
	if len(first[0].Features) > 0 {
		first[0].Features[0] = "mutated"
	}

	second := Items()
	if second[0].Title == "mutated" {
		t.Error("Items shares the underlying item slice")
	}
	if len(second[0].Features) > 0 && second[0].Features[0] == "mutated" {
		t.Error("Items shares the underlying feature slices")
	}
}
