// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score classifies citing-paper venues into quality tiers and
// combines the tier score with citation volume into an influence score.
package score

import "strings"

// Tier is a coarse venue-quality class.
type Tier string

const (
	Tier1        Tier = "tier1"
	Tier2        Tier = "tier2"
	TierPreprint Tier = "preprint"
	TierOther    Tier = "other"
)

// Score returns the venue score awarded to the tier.
func (t Tier) Score() int {
	switch t {
	case Tier1:
		return 50
	case Tier2:
		return 35
	case TierPreprint:
		return 10
	default:
		return 20
	}
}

// Patterns holds the substring lists for each tier and the order in which
// they are tried. The first tier with a matching substring wins.
type Patterns struct {
	Precedence []Tier
	ByTier     map[Tier][]string
}

// DefaultPatterns returns the built-in tier lists. Preprint servers are tried
// first so that "IEEE ... arXiv preprint" is not credited as peer reviewed.
func DefaultPatterns() Patterns {
	return Patterns{
		Precedence: []Tier{TierPreprint, Tier1, Tier2},
		ByTier: map[Tier][]string{
			TierPreprint: {
				"arxiv", "preprint", "ssrn", "biorxiv", "medrxiv",
				"researchgate", "research square", "zenodo", "techrxiv",
			},
			Tier1: {
				"ieee", "acm", "usenix", "ndss", "ccs", "s&p",
				"neurips", "icml", "iclr", "cvpr", "aaai", "ijcai",
			},
			Tier2: {
				"springer", "elsevier", "nature", "science", "plos", "jstor",
				"wiley", "mdpi", "taylor & francis",
			},
		},
	}
}

// Classifier maps venue strings to tiers. The zero value classifies
// everything as TierOther; use NewClassifier.
type Classifier struct {
	patterns Patterns
}

// NewClassifier returns a classifier over p. Patterns are lowercased.
func NewClassifier(p Patterns) *Classifier {
	norm := Patterns{
		Precedence: append([]Tier(nil), p.Precedence...),
		ByTier:     make(map[Tier][]string, len(p.ByTier)),
	}
	for tier, subs := range p.ByTier {
		for _, s := range subs {
			norm.ByTier[tier] = append(norm.ByTier[tier], strings.ToLower(s))
		}
	}
	return &Classifier{patterns: norm}
}

// Classify returns the venue's tier and score. Matching is a
// case-insensitive substring search.
func (c *Classifier) Classify(venue string) (Tier, int) {
	v := strings.ToLower(venue)
	if v != "" {
		for _, tier := range c.patterns.Precedence {
			for _, sub := range c.patterns.ByTier[tier] {
				if strings.Contains(v, sub) {
					return tier, tier.Score()
				}
			}
		}
	}
	return TierOther, TierOther.Score()
}

var defaultClassifier = NewClassifier(DefaultPatterns())

// Classify classifies venue with the built-in patterns.
func Classify(venue string) (Tier, int) {
	return defaultClassifier.Classify(venue)
}
