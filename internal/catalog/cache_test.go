package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestCacheScansOnce(t *testing.T) {
	calls := 0
	cache := NewCache(func(ctx context.Context) (*Catalog, error) {
		calls++
		c := newCatalog()
		c.upsertShow("Foo", "", "")
		return c, nil
	})

	first, err := cache.Catalog(t.Context())
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	second, err := cache.Catalog(t.Context())
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}

	if calls != 1 {
		t.Fatalf("scan ran %d times, want 1", calls)
	}
	if first != second {
		t.Fatal("expected the same catalog instance on every call")
	}
}

func TestCacheDoesNotMemoizeFailure(t *testing.T) {
	calls := 0
	boom := errors.New("walk failed")
	cache := NewCache(func(ctx context.Context) (*Catalog, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return newCatalog(), nil
	})

	if _, err := cache.Catalog(t.Context()); !errors.Is(err, boom) {
		t.Fatalf("expected scan error, got %v", err)
	}
	// The failed attempt fails only that request; the next one retries.
	if _, err := cache.Catalog(t.Context()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("scan ran %d times, want 2", calls)
	}
}

func TestCacheReset(t *testing.T) {
	calls := 0
	cache := NewCache(func(ctx context.Context) (*Catalog, error) {
		calls++
		return newCatalog(), nil
	})

	if _, err := cache.Catalog(t.Context()); err != nil {
		t.Fatal(err)
	}
	cache.Reset()
	if _, err := cache.Catalog(t.Context()); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("scan ran %d times after reset, want 2", calls)
	}
}

func TestCacheConcurrentFirstUse(t *testing.T) {
	calls := 0
	cache := NewCache(func(ctx context.Context) (*Catalog, error) {
		calls++
		return newCatalog(), nil
	})

	done := make(chan *Catalog, 8)
	for range 8 {
		go func() {
			c, err := cache.Catalog(context.Background())
			if err != nil {
				t.Errorf("Catalog: %v", err)
			}
			done <- c
		}()
	}

	first := <-done
	for range 7 {
		if got := <-done; got != first {
			t.Fatal("concurrent callers should observe one catalog")
		}
	}
	if calls != 1 {
		t.Fatalf("scan ran %d times under concurrency, want 1", calls)
	}
}
