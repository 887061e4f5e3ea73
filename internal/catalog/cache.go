package catalog

import (
	"context"
	"sync"
)

// ScanFunc produces a fresh catalog from the current filesystem state.
type ScanFunc func(ctx context.Context) (*Catalog, error)

// Cache memoizes a single catalog for the process lifetime. The scan runs
// at most once; every later call returns the same structure even if the
// library changed on disk. A failed scan is not memoized, so the next
// caller retries.
type Cache struct {
	scan ScanFunc

	mu      sync.Mutex
	done    bool
	catalog *Catalog
}

// NewCache wraps a scan function in a single-shot cache.
func NewCache(scan ScanFunc) *Cache {
	return &Cache{scan: scan}
}

// Catalog returns the memoized catalog, scanning on first use. Concurrent
// first callers serialize on the scan rather than racing it.
func (c *Cache) Catalog(ctx context.Context) (*Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return c.catalog, nil
	}
	result, err := c.scan(ctx)
	if err != nil {
		return nil, err
	}
	c.catalog = result
	c.done = true
	return c.catalog, nil
}

// Reset re-arms the cache so the next Catalog call scans again. Intended
// for tests and diagnostics; a running server never calls it.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done = false
	c.catalog = nil
}
