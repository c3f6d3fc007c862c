// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geocode resolves free-text affiliations to coordinates using the
// OpenStreetMap Nominatim service, falling back to a static table of
// country centroids when the service has no answer.
package geocode

import (
	"context"
	"strings"

	"github.com/pdiddy/citation-atlas/internal/httputil"
	"github.com/pdiddy/citation-atlas/pkg/types"
)

// DefaultBaseURL is the public Nominatim search endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Stats counts how affiliations were resolved during a run.
type Stats struct {
	Remote    int
	Fallback  int
	NotFound  int
	CacheHits int
}

// Geocoder resolves affiliations. It makes one remote call per uncached
// affiliation and is not safe for concurrent use.
type Geocoder struct {
	client    *httputil.PacedClient
	baseURL   string
	userAgent string
	cache     *Cache
	stats     Stats
}

// Option configures a Geocoder.
type Option func(*Geocoder)

// WithBaseURL sets a custom search endpoint (for testing).
func WithBaseURL(base string) Option {
	return func(g *Geocoder) {
		g.baseURL = base
	}
}

// WithCache memoizes outcomes in c. Without a cache every call issues a
// remote lookup.
func WithCache(c *Cache) Option {
	return func(g *Geocoder) {
		g.cache = c
	}
}

// New returns a geocoder that sends requests through client with the
// given User-Agent, which Nominatim's usage policy requires.
func New(client *httputil.PacedClient, userAgent string, opts ...Option) *Geocoder {
	g := &Geocoder{
		client:    client,
		baseURL:   DefaultBaseURL,
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Stats returns the resolution counters accumulated so far.
func (g *Geocoder) Stats() Stats { return g.stats }

// Geocode resolves affiliation. The boolean reports whether a location was
// found; blank input is never found. Remote failures are not returned:
// they fall through to the country table.
func (g *Geocoder) Geocode(ctx context.Context, affiliation string) (types.GeoPoint, bool) {
	key := strings.TrimSpace(affiliation)
	if key == "" {
		return types.GeoPoint{}, false
	}

	if g.cache != nil {
		if e, hit := g.cache.get(key); hit {
			g.stats.CacheHits++
			return e.point, e.found
		}
	}

	point, found := g.resolve(ctx, key)
	if g.cache != nil {
		g.cache.put(key, point, found)
	}
	return point, found
}

func (g *Geocoder) resolve(ctx context.Context, affiliation string) (types.GeoPoint, bool) {
	if p, err := g.lookup(ctx, affiliation); err == nil {
		g.stats.Remote++
		return p, true
	}
	if p, ok := FallbackLookup(affiliation); ok {
		g.stats.Fallback++
		return p, true
	}
	g.stats.NotFound++
	return types.GeoPoint{}, false
}
