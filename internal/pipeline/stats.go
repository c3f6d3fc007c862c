// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"sort"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

const (
	// TopVenueLimit is the number of venues kept in the frequency table.
	TopVenueLimit = 10

	highInfluence   = 70
	mediumInfluence = 40
)

// ComputeStats summarizes the citing papers and locations of a run.
func ComputeStats(papers []types.CitingPaper, locations []types.CitationLocation) types.CitationStats {
	stats := types.CitationStats{
		TotalCitations:  len(papers),
		UniqueLocations: len(locations),
		TopVenues:       TopVenues(papers, TopVenueLimit),
	}
	for _, p := range papers {
		switch {
		case p.InfluenceScore >= highInfluence:
			stats.InfluenceDistribution.High++
		case p.InfluenceScore >= mediumInfluence:
			stats.InfluenceDistribution.Medium++
		default:
			stats.InfluenceDistribution.Low++
		}
		if p.SelfCitation {
			stats.SelfCitations++
		}
	}
	return stats
}

// TopVenues counts papers per exact venue string and returns the n most
// frequent. Ties keep the order in which venues first appeared.
func TopVenues(papers []types.CitingPaper, n int) []types.VenueCount {
	counts := []types.VenueCount{}
	index := make(map[string]int)
	for _, p := range papers {
		i, ok := index[p.Venue]
		if !ok {
			i = len(counts)
			index[p.Venue] = i
			counts = append(counts, types.VenueCount{Name: p.Venue})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
