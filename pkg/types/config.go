// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citation-atlas/0.1"). Nominatim rejects requests without one.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Interval is the minimum gap between successive requests to the same
	// service. It must be positive.
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// ScholarConfig holds settings for the SerpAPI Google Scholar stages.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the SerpAPI key, sent as the api_key query parameter.
	APIKey string `json:"-" yaml:"-"`

	// AuthorID is the Google Scholar profile identifier to track.
	AuthorID string `json:"author_id" yaml:"author_id"`

	// MaxPages bounds citation pagination per publication (default 1000).
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// SelfNames lists lowercase author names treated as the tracked author
	// when flagging self-citations.
	SelfNames []string `json:"self_names,omitempty" yaml:"self_names,omitempty"`
}

// GeocoderConfig holds settings for the Nominatim geocoder.
type GeocoderConfig struct {
	HTTPConfig `yaml:",inline"`

	// Memoize caches geocode outcomes per affiliation for the run.
	Memoize bool `json:"memoize" yaml:"memoize"`
}

// PipelineConfig groups all stage configurations for a fetch run.
type PipelineConfig struct {
	Scholar  ScholarConfig  `json:"scholar" yaml:"scholar"`
	Geocoder GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// OutputPath is the dataset file, replaced on every run.
	OutputPath string `json:"output" yaml:"output"`

	// VenuePatternsFile optionally overrides the built-in venue tiers.
	VenuePatternsFile string `json:"venue_patterns,omitempty" yaml:"venue_patterns,omitempty"`
}
