// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

// MultiCitation is a citing paper that cites more than one tracked
// publication.
type MultiCitation struct {
	ID    string
	Title string

	// Cited lists the titles of the cited publications in first-seen order.
	Cited []string
}

// MultiCitations groups citing papers by surrogate id and returns those
// citing two or more distinct publications, most citations first.
func MultiCitations(papers []types.CitingPaper) []MultiCitation {
	var out []MultiCitation
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)

	for _, p := range papers {
		if p.ID == "" {
			continue
		}
		i, ok := index[p.ID]
		if !ok {
			i = len(out)
			index[p.ID] = i
			seen[p.ID] = make(map[string]bool)
			out = append(out, MultiCitation{ID: p.ID, Title: p.Title})
		}
		key := p.CitedPublicationID
		if key == "" {
			key = p.CitedPublication
		}
		if seen[p.ID][key] {
			continue
		}
		seen[p.ID][key] = true
		out[i].Cited = append(out[i].Cited, p.CitedPublication)
	}

	multi := []MultiCitation{}
	for _, m := range out {
		if len(m.Cited) > 1 {
			multi = append(multi, m)
		}
	}
	sort.SliceStable(multi, func(a, b int) bool {
		return len(multi[a].Cited) > len(multi[b].Cited)
	})
	return multi
}

// topLocationLimit bounds the location table of the report.
const topLocationLimit = 10

// FormatReport writes a human-readable summary of data to w.
func FormatReport(data *types.CitationData, w io.Writer) {
	fmt.Fprintf(w, "Scholar:       %s\n", data.ScholarID)
	fmt.Fprintf(w, "Last updated:  %s\n", data.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Publications:  %d\n", len(data.Publications))
	fmt.Fprintf(w, "Citing papers: %d\n", data.Stats.TotalCitations)
	fmt.Fprintf(w, "Locations:     %d\n", data.Stats.UniqueLocations)
	fmt.Fprintf(w, "Self-citations: %d\n", data.Stats.SelfCitations)

	d := data.Stats.InfluenceDistribution
	fmt.Fprintf(w, "\nInfluence:  high %d  medium %d  low %d\n", d.High, d.Medium, d.Low)

	if len(data.Stats.TopVenues) > 0 {
		fmt.Fprintf(w, "\n%-4s  %-60s  %s\n", "#", "Venue", "Count")
		for i, v := range data.Stats.TopVenues {
			fmt.Fprintf(w, "%-4d  %-60s  %d\n", i+1, truncate(v.Name, 57), v.Count)
		}
	}

	if len(data.Locations) > 0 {
		locs := append([]types.CitationLocation(nil), data.Locations...)
		sort.SliceStable(locs, func(a, b int) bool { return locs[a].Count > locs[b].Count })
		if len(locs) > topLocationLimit {
			locs = locs[:topLocationLimit]
		}
		fmt.Fprintf(w, "\n%-4s  %-40s  %-20s  %s\n", "#", "Location", "Country", "Count")
		for i, l := range locs {
			place := l.City
			if place == "" {
				place = fmt.Sprintf("%.2f, %.2f", l.Latitude, l.Longitude)
			}
			fmt.Fprintf(w, "%-4d  %-40s  %-20s  %d\n", i+1, truncate(place, 37), truncate(l.Country, 17), l.Count)
		}
	}

	multi := MultiCitations(data.CitingPapers)
	fmt.Fprintf(w, "\n%d citing papers cite more than one publication\n", len(multi))
	for _, m := range multi {
		fmt.Fprintf(w, "  %s (%d)\n", truncate(m.Title, 70), len(m.Cited))
		for _, c := range m.Cited {
			fmt.Fprintf(w, "    - %s\n", truncate(c, 66))
		}
	}
}
