// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar fetches an author's publications and their citing papers
// from the SerpAPI Google Scholar endpoints.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/citation-atlas/internal/httputil"
	"github.com/pdiddy/citation-atlas/internal/score"
	"github.com/pdiddy/citation-atlas/pkg/types"
)

const (
	// DefaultBaseURL is the SerpAPI search endpoint.
	DefaultBaseURL = "https://serpapi.com/search.json"

	// PageSize is the number of citing papers SerpAPI returns per page.
	PageSize = 10

	// DefaultMaxPages bounds citation pagination for one publication.
	DefaultMaxPages = 1000

	// articlesPerProfile is the largest article page the author engine serves.
	articlesPerProfile = 100
)

// Client queries SerpAPI. All requests share one paced HTTP client, so
// successive calls are always separated by the configured interval.
type Client struct {
	http       *httputil.PacedClient
	apiKey     string
	baseURL    string
	userAgent  string
	maxPages   int
	selfNames  map[string]bool
	classifier *score.Classifier
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithClassifier scores citing papers with cl instead of the built-in venue patterns.
func WithClassifier(cl *score.Classifier) Option {
	return func(c *Client) {
		c.classifier = cl
	}
}

// WithClock sets the clock used for defaulting publication years.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a SerpAPI client from cfg.
func NewClient(hc *httputil.PacedClient, cfg types.ScholarConfig, opts ...Option) *Client {
	c := &Client{
		http:       hc,
		apiKey:     cfg.APIKey,
		baseURL:    DefaultBaseURL,
		userAgent:  cfg.UserAgent,
		maxPages:   cfg.MaxPages,
		selfNames:  make(map[string]bool),
		classifier: score.NewClassifier(score.DefaultPatterns()),
		now:        time.Now,
	}
	if c.maxPages <= 0 {
		c.maxPages = DefaultMaxPages
	}
	for _, n := range cfg.SelfNames {
		if k := normalizeName(n); k != "" {
			c.selfNames[k] = true
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues one search request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrHTTP, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
