// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the citation dataset written by the fetch pipeline and
// the configuration shared by its stages.
//
// JSON field names are camelCase because the front end reads the dataset
// file directly.
package types

import "time"

// Publication is one article from the tracked author's profile.
type Publication struct {
	// ID is a surrogate identifier derived from ResultID (see scholar.PublicationID).
	ID string `json:"id"`

	// Title is the article title as listed on the profile.
	Title string `json:"title"`

	// Authors lists the article authors in profile order.
	Authors []string `json:"authors"`

	// Year is the publication year. Unparsable years default to the fetch year.
	Year int `json:"year"`

	// Venue is the free-text publication venue ("Unknown" when absent).
	Venue string `json:"venue"`

	// Link is the article URL on the profile.
	Link string `json:"link"`

	// CitationCount is the cited-by count reported by the profile.
	CitationCount int `json:"citationCount"`

	// ResultID is the opaque external identifier of the article.
	ResultID string `json:"resultId"`

	// CitesID groups the article's citers. It may hold several
	// comma-separated identifiers; only the first is queried.
	CitesID string `json:"citesId,omitempty"`
}

// PublicationInfo is the raw venue summary line of a citing paper.
type PublicationInfo struct {
	Summary string `json:"summary"`
}

// CitingPaper is a publication that cites one of the tracked publications.
type CitingPaper struct {
	// ID is a surrogate identifier derived from the link (or title).
	ID string `json:"id"`

	Title   string   `json:"title"`
	Authors []string `json:"authors"`

	// Year is parsed from the summary line; nil when no year is present.
	Year *int `json:"year,omitempty"`

	Venue           string           `json:"venue"`
	Link            string           `json:"link"`
	CitationCount   int              `json:"citationCount"`
	Snippet         string           `json:"snippet,omitempty"`
	PublicationInfo *PublicationInfo `json:"publicationInfo,omitempty"`

	// InfluenceScore is VenueScore + CitationScore, in [0,100].
	InfluenceScore int `json:"influenceScore"`
	VenueScore     int `json:"venueScore"`
	CitationScore  int `json:"citationScore"`

	// CitedPublication is the title of the cited Publication and
	// CitedPublicationID its surrogate id. Joins use the id.
	CitedPublication   string `json:"citedPublication"`
	CitedPublicationID string `json:"citedPublicationId"`

	// Affiliation is the first author's profile affiliation, when fetched.
	Affiliation string `json:"affiliation,omitempty"`

	// Country is set by location aggregation when the paper was geocoded.
	Country string `json:"country,omitempty"`

	// SelfCitation is true when a citing author matches a configured self-name.
	SelfCitation bool `json:"selfCitation,omitempty"`
}

// GeoPoint is a geocoded affiliation.
type GeoPoint struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
	City    string  `json:"city,omitempty"`
}

// CitationLocation is a geographic cluster of citing papers. Papers are
// clustered by their coordinates rounded to two decimal places.
type CitationLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country"`

	// Count is the number of citing papers that resolved to this location.
	Count int `json:"count"`

	// Papers holds distinct citing-paper titles, PaperIDs distinct ids.
	Papers   []string `json:"papers"`
	PaperIDs []string `json:"paperIds"`

	// Affiliations holds the distinct raw affiliation strings geocoded here.
	Affiliations []string `json:"affiliations"`
}

// VenueCount is one row of the venue frequency table.
type VenueCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// InfluenceDistribution counts citing papers per influence band:
// high [70,100], medium [40,70), low [0,40).
type InfluenceDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CitationStats summarizes a run.
type CitationStats struct {
	TotalCitations        int                   `json:"totalCitations"`
	UniqueLocations       int                   `json:"uniqueLocations"`
	TopVenues             []VenueCount          `json:"topVenues"`
	InfluenceDistribution InfluenceDistribution `json:"influenceDistribution"`
	SelfCitations         int                   `json:"selfCitations"`
}

// CitationData is the persisted dataset. Each run replaces it entirely.
type CitationData struct {
	LastUpdated  time.Time          `json:"lastUpdated"`
	ScholarID    string             `json:"scholarId"`
	Publications []Publication      `json:"publications"`
	CitingPapers []CitingPaper      `json:"citingPapers"`
	Locations    []CitationLocation `json:"locations"`
	Stats        CitationStats      `json:"stats"`
}
