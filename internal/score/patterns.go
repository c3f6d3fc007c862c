// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// PatternFile is the on-disk representation of venue tiers. Tiers missing
// from the file keep no patterns; an omitted precedence uses the default
// order (preprint, tier1, tier2).
//
//	precedence: [preprint, tier1, tier2]
//	tier1: [ieee, acm, usenix]
//	tier2: [springer, elsevier]
//	preprint: [arxiv, preprint]
type PatternFile struct {
	Precedence []string `yaml:"precedence,omitempty"`
	Tier1      []string `yaml:"tier1"`
	Tier2      []string `yaml:"tier2"`
	Preprint   []string `yaml:"preprint"`
}

// LoadPatterns reads a venue pattern file.
func LoadPatterns(path string) (Patterns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Patterns{}, fmt.Errorf("reading venue patterns: %w", err)
	}
	var pf PatternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Patterns{}, fmt.Errorf("parsing venue patterns %s: %w", path, err)
	}
	return pf.Patterns()
}

// Patterns validates the file and converts it to classifier patterns.
func (pf PatternFile) Patterns() (Patterns, error) {
	p := Patterns{
		ByTier: map[Tier][]string{
			Tier1:        pf.Tier1,
			Tier2:        pf.Tier2,
			TierPreprint: pf.Preprint,
		},
	}
	for tier, subs := range p.ByTier {
		for _, s := range subs {
			if strings.TrimSpace(s) == "" {
				return Patterns{}, fmt.Errorf("empty pattern in tier %s", tier)
			}
		}
	}

	if len(pf.Precedence) == 0 {
		p.Precedence = DefaultPatterns().Precedence
		return p, nil
	}
	seen := make(map[Tier]bool)
	for _, name := range pf.Precedence {
		tier := Tier(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := p.ByTier[tier]; !ok {
			return Patterns{}, fmt.Errorf("unknown tier %q in precedence", name)
		}
		if seen[tier] {
			return Patterns{}, fmt.Errorf("tier %q listed twice in precedence", name)
		}
		seen[tier] = true
		p.Precedence = append(p.Precedence, tier)
	}
	return p, nil
}
