// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geocode

import "github.com/pdiddy/citation-atlas/pkg/types"

// Cache memoizes geocode outcomes, including misses, for the lifetime of
// one run. It is keyed by the trimmed affiliation string and is not safe
// for concurrent use.
type Cache struct {
	entries map[string]cacheEntry
}

type cacheEntry struct {
	point types.GeoPoint
	found bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Len returns the number of memoized affiliations.
func (c *Cache) Len() int { return len(c.entries) }

func (c *Cache) get(key string) (cacheEntry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

func (c *Cache) put(key string, p types.GeoPoint, found bool) {
	c.entries[key] = cacheEntry{point: p, found: found}
}
