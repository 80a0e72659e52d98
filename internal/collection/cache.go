package collection

import (
	"context"
	"fmt"
	"sync"

	hberrors "github.com/resourcehub/hubctl/internal/errors"
)

// Cache holds the authoritative local copy of a fetched collection. Items are
// replaced wholesale by loads and reconciled entry-by-entry after mutations.
// Loads are generation-checked: only the response belonging to the most
// recently issued load may replace the items, so a superseded in-flight fetch
// can never overwrite newer data after rapid navigation.
type Cache[T Record] struct {
	mu     sync.Mutex
	items  []T
	issued uint64
}

// NewCache creates an empty cache.
func NewCache[T Record]() *Cache[T] {
	return &Cache[T]{}
}

// BeginLoad reserves a load generation. The returned generation must be passed
// to ApplyLoad together with the fetch result.
func (c *Cache[T]) BeginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// ApplyLoad installs a fetched collection for the given generation.
// On fetch failure the previous items are retained and the error is returned
// unchanged. A superseded generation returns ErrStaleResponse and leaves the
// cache untouched. Duplicate record ids reject the whole load; there is no
// partial overwrite.
func (c *Cache[T]) ApplyLoad(gen uint64, items []T, fetchErr error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.issued {
		return hberrors.ErrStaleResponse
	}
	if fetchErr != nil {
		return fetchErr
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		id := item.RecordID()
		if seen[id] {
			return fmt.Errorf("load rejected: duplicate record id %q", id)
		}
		seen[id] = true
	}
	c.items = append([]T(nil), items...)
	return nil
}

// LoadFrom issues a load against the given list function and applies the
// result, observing the generation discipline.
func (c *Cache[T]) LoadFrom(ctx context.Context, list func(context.Context) ([]T, error)) error {
	gen := c.BeginLoad()
	items, err := list(ctx)
	return c.ApplyLoad(gen, items, err)
}

// Items returns a copy of the cached collection in fetch order.
func (c *Cache[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Len returns the number of cached records.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Append adds a server-confirmed record to the end of the collection.
func (c *Cache[T]) Append(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, rec)
}

// Replace swaps the record with the given id in place, preserving list order.
// Returns false if no record with that id exists.
func (c *Cache[T]) Replace(id string, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items[i] = rec
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id. Returns false if absent.
func (c *Cache[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// LookupMap indexes a lookup collection by record id for enrichment joins.
func LookupMap[L Record](lookups []L) map[string]L {
	m := make(map[string]L, len(lookups))
	for _, l := range lookups {
		m[l.RecordID()] = l
	}
	return m
}
