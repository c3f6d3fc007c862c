// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate groups citing papers into geographic clusters by geocoding
// each paper's institutional affiliation.
package locate

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

// Geocoder resolves a free-text affiliation to a point. The boolean reports
// whether a location was found.
type Geocoder interface {
	Geocode(ctx context.Context, affiliation string) (types.GeoPoint, bool)
}

// affiliationPatterns are tried in order against the venue and snippet text.
var affiliationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:at|from|,\s*)([A-Z][^,]+(?:University|Univ\.?|College|Institute|School)[^,]*)`),
	regexp.MustCompile(`(?i)([A-Z][^,]+(?:University|Univ\.?|College|Institute|School)[^,]*)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

var leadingToken = regexp.MustCompile(`(?i)^(?:(?:at|from)\s+|,\s*)`)

// ExtractAffiliation guesses an institution from a paper's venue and
// snippet. When no pattern matches, the venue itself is returned.
func ExtractAffiliation(venue, snippet string) string {
	text := venue + " " + snippet
	for _, re := range affiliationPatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return venue
}

// Clean strips a leading "at", "from" or comma and surrounding space.
func Clean(affiliation string) string {
	s := leadingToken.ReplaceAllString(strings.TrimSpace(affiliation), "")
	return strings.TrimSpace(s)
}

// affiliationOf returns the profile affiliation when known, else a guess
// from the venue text.
func affiliationOf(p types.CitingPaper) string {
	if p.Affiliation != "" {
		return Clean(p.Affiliation)
	}
	return Clean(ExtractAffiliation(p.Venue, p.Snippet))
}

// Key returns the cluster key of a point: its coordinates rounded to two
// decimal places.
func Key(lat, lng float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lng)
}

// Aggregate geocodes every paper and merges the results into locations,
// in order of first appearance. Papers that resolve get their Country set
// in place; papers that do not resolve, or resolve to a zero coordinate,
// are left out of the geographic view. Aggregation stops early when ctx is
// done.
func Aggregate(ctx context.Context, papers []types.CitingPaper, g Geocoder, w io.Writer) []types.CitationLocation {
	locations := []types.CitationLocation{}
	index := make(map[string]int)
	located := 0

	for i := range papers {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(w, "warning: location aggregation stopped after %d of %d papers: %v\n", i, len(papers), err)
			break
		}
		p := &papers[i]

		aff := affiliationOf(*p)
		if aff == "" {
			continue
		}
		pt, ok := g.Geocode(ctx, aff)
		if !ok || pt.Lat == 0 || pt.Lng == 0 {
			continue
		}

		key := Key(pt.Lat, pt.Lng)
		n, seen := index[key]
		if !seen {
			n = len(locations)
			index[key] = n
			locations = append(locations, types.CitationLocation{
				Latitude:     pt.Lat,
				Longitude:    pt.Lng,
				City:         pt.City,
				Country:      pt.Country,
				Papers:       []string{},
				PaperIDs:     []string{},
				Affiliations: []string{},
			})
		}
		loc := &locations[n]
		loc.Count++
		loc.Papers = appendUnique(loc.Papers, p.Title)
		loc.PaperIDs = appendUnique(loc.PaperIDs, p.ID)
		loc.Affiliations = appendUnique(loc.Affiliations, aff)
		p.Country = pt.Country
		located++
	}

	fmt.Fprintf(w, "located %d of %d citing papers in %d locations\n", located, len(papers), len(locations))
	return locations
}

func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
