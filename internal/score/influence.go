// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import "math"

// maxCitationScore caps the citation component.
const maxCitationScore = 50

// Influence is the composite score of a citing paper.
type Influence struct {
	Total    int
	Venue    int
	Citation int
}

// CitationScore maps a citation count onto [0,50] on a log scale:
// round(min(50, log10(n+1)*20)). Negative counts score 0.
func CitationScore(citationCount int) int {
	if citationCount < 0 {
		citationCount = 0
	}
	s := math.Log10(float64(citationCount)+1) * 20
	return int(math.Round(math.Min(maxCitationScore, s)))
}

// Score computes the influence of a paper from its venue and citation count.
func (c *Classifier) Score(venue string, citationCount int) Influence {
	_, venueScore := c.Classify(venue)
	citation := CitationScore(citationCount)
	return Influence{
		Total:    venueScore + citation,
		Venue:    venueScore,
		Citation: citation,
	}
}

// Score computes influence with the built-in venue patterns.
func Score(venue string, citationCount int) Influence {
	return defaultClassifier.Score(venue, citationCount)
}
