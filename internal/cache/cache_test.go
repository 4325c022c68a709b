package cache

import (
	"sync"
	"testing"
	"time"
)

func TestCache_GetAfterSet(t *testing.T) {
	c := New[string](nil)
	c.Set("k", "v", time.Minute)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != "v" {
		t.Errorf("got %q, want %q", got, "v")
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := New[int](nil)

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestCache_ExpiryEvictsLazily(t *testing.T) {
	now := time.Now()
	clock := now
	c := New[string](nil).WithClock(func() time.Time { return clock })

	c.Set("k", "v", time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit before expiry")
	}

	clock = now.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not evicted, len = %d", c.Len())
	}
}

func TestCache_SetReplacesEntryAndExpiry(t *testing.T) {
	now := time.Now()
	clock := now
	c := New[string](nil).WithClock(func() time.Time { return clock })

	c.Set("k", "old", time.Minute)
	clock = now.Add(30 * time.Second)
	c.Set("k", "new", time.Minute)

	clock = now.Add(80 * time.Second) // past first expiry, inside second
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit, Set should have extended the expiry")
	}
	if got != "new" {
		t.Errorf("got %q, want %q", got, "new")
	}
}

func TestCache_Sweep(t *testing.T) {
	now := time.Now()
	clock := now
	c := New[int](nil).WithClock(func() time.Time { return clock })

	c.Set("live", 1, time.Hour)
	c.Set("dead1", 2, time.Second)
	c.Set("dead2", 3, time.Second)

	clock = now.Add(time.Minute)
	if evicted := c.Sweep(); evicted != 2 {
		t.Errorf("Sweep evicted %d, want 2", evicted)
	}
	if c.Len() != 1 {
		t.Errorf("len after sweep = %d, want 1", c.Len())
	}
	if _, ok := c.Get("live"); !ok {
		t.Error("live entry swept")
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int](nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("shared", n, time.Minute)
				c.Get("shared")
				c.Sweep()
			}
		}(i)
	}
	wg.Wait()

	if _, ok := c.Get("shared"); !ok {
		t.Error("expected entry to survive concurrent writes")
	}
}
