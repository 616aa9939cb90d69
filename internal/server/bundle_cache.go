package server

import (
	"sync"

	"github.com/google/uuid"
)

// bundleEntry is one generated archive held for download.
type bundleEntry struct {
	Name string
	Data []byte
}

// bundleCache keeps recently generated archives in memory, keyed by an
// opaque handle. Bounded by count; the oldest entry is evicted when full.
type bundleCache struct {
	mu      sync.Mutex
	entries map[string]bundleEntry
	order   []string
	limit   int
}

func newBundleCache(limit int) *bundleCache {
	return &bundleCache{
		entries: make(map[string]bundleEntry),
		limit:   limit,
	}
}

// Put stores an archive and returns its download handle.
func (c *bundleCache) Put(name string, data []byte) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[id] = bundleEntry{Name: name, Data: data}
	c.order = append(c.order, id)
	return id
}

// Get looks up an archive by handle.
func (c *bundleCache) Get(id string) (bundleEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[id]
	return entry, ok
}
