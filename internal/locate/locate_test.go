// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

// fakeGeocoder answers from a fixed table and records every query.
type fakeGeocoder struct {
	points  map[string]types.GeoPoint
	queries []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, affiliation string) (types.GeoPoint, bool) {
	f.queries = append(f.queries, affiliation)
	p, ok := f.points[affiliation]
	return p, ok
}

func TestExtractAffiliation(t *testing.T) {
	tests := []struct {
		name    string
		venue   string
		snippet string
		want    string
	}{
		{"comma before institution", "Proceedings, Stanford University Press", "", ", Stanford University Press"},
		{"city and country", "Security Workshop - Berlin, Germany", "", "Berlin, Germany"},
		{"snippet city and country", "IEEE Access", "Authors based in Zurich, Switzerland", "Zurich, Switzerland"},
		{"no match falls back to venue", "IEEE Access", "", "IEEE Access"},
		{"leading institution word", "University of Oxford", "", "University of Oxford"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAffiliation(tt.venue, tt.snippet))
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{", Stanford University Press", "Stanford University Press"},
		{"  at Cisco Systems ", "Cisco Systems"},
		{"From ETH Zurich", "ETH Zurich"},
		{"Athens University", "Athens University"},
		{"Frommer Institute", "Frommer Institute"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in), tt.in)
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "42.36,-71.09", Key(42.3601, -71.0942))
	assert.Equal(t, Key(42.3601, -71.0942), Key(42.361, -71.094))
	assert.NotEqual(t, Key(42.3601, -71.0942), Key(42.377, -71.1167))
}

func TestAggregate(t *testing.T) {
	g := &fakeGeocoder{points: map[string]types.GeoPoint{
		"MIT":       {Lat: 42.3601, Lng: -71.0942, Country: "United States", City: "Cambridge"},
		"MIT CSAIL": {Lat: 42.361, Lng: -71.094, Country: "United States", City: "Cambridge"},
		"Harvard":   {Lat: 42.377, Lng: -71.1167, Country: "United States"},
		"Null Isle": {Lat: 0, Lng: 10, Country: "Nowhere"},
	}}
	papers := []types.CitingPaper{
		{ID: "p1", Title: "Paper One", Affiliation: "MIT"},
		{ID: "p2", Title: "Paper Two", Affiliation: "Harvard"},
		{ID: "p3", Title: "Paper Three", Affiliation: "MIT CSAIL"},
		{ID: "p4", Title: "Paper One", Affiliation: "at MIT"},
		{ID: "p5", Title: "Lost Paper", Affiliation: "Atlantis Institute"},
		{ID: "p6", Title: "Zero Paper", Affiliation: "Null Isle"},
	}

	var buf bytes.Buffer
	locs := Aggregate(context.Background(), papers, g, &buf)
	require.Len(t, locs, 2)

	mit := locs[0]
	assert.Equal(t, 42.3601, mit.Latitude, "first point seen is kept")
	assert.Equal(t, -71.0942, mit.Longitude)
	assert.Equal(t, "Cambridge", mit.City)
	assert.Equal(t, "United States", mit.Country)
	assert.Equal(t, 3, mit.Count)
	assert.Equal(t, []string{"Paper One", "Paper Three"}, mit.Papers)
	assert.Equal(t, []string{"p1", "p3", "p4"}, mit.PaperIDs)
	assert.Equal(t, []string{"MIT", "MIT CSAIL"}, mit.Affiliations)

	harvard := locs[1]
	assert.Equal(t, 1, harvard.Count)
	assert.Equal(t, []string{"Paper Two"}, harvard.Papers)

	assert.Equal(t, "United States", papers[0].Country)
	assert.Equal(t, "United States", papers[3].Country)
	assert.Empty(t, papers[4].Country, "unresolved papers are left alone")
	assert.Empty(t, papers[5].Country, "zero-coordinate points are dropped")

	assert.Equal(t, []string{"MIT", "Harvard", "MIT CSAIL", "MIT", "Atlantis Institute", "Null Isle"}, g.queries)
	assert.Contains(t, buf.String(), "located 4 of 6 citing papers in 2 locations")
}

func TestAggregate_VenueFallback(t *testing.T) {
	g := &fakeGeocoder{points: map[string]types.GeoPoint{
		"Stanford University Press": {Lat: 37.43, Lng: -122.17, Country: "United States"},
	}}
	papers := []types.CitingPaper{
		{ID: "p1", Title: "T", Venue: "Proceedings, Stanford University Press"},
	}

	locs := Aggregate(context.Background(), papers, g, &bytes.Buffer{})
	require.Len(t, locs, 1)
	assert.Equal(t, []string{"Stanford University Press"}, locs[0].Affiliations)
}

func TestAggregate_Empty(t *testing.T) {
	locs := Aggregate(context.Background(), nil, &fakeGeocoder{}, &bytes.Buffer{})
	assert.NotNil(t, locs)
	assert.Empty(t, locs)
}

func TestAggregate_CancelledContext(t *testing.T) {
	g := &fakeGeocoder{points: map[string]types.GeoPoint{
		"MIT": {Lat: 42.36, Lng: -71.09, Country: "United States"},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	locs := Aggregate(ctx, []types.CitingPaper{{Title: "T", Affiliation: "MIT"}}, g, &buf)
	assert.Empty(t, locs)
	assert.Empty(t, g.queries)
	assert.Contains(t, buf.String(), "warning: location aggregation stopped")
}
