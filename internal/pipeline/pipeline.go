// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a full citation fetch: publications, their citing
// papers, location aggregation and stats, ending in one dataset file.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/citation-atlas/internal/locate"
	"github.com/pdiddy/citation-atlas/pkg/types"
)

// Scholar is the citation source.
type Scholar interface {
	Publications(ctx context.Context, authorID string) ([]types.Publication, error)
	CitingPapers(ctx context.Context, pub types.Publication) ([]types.CitingPaper, error)
}

// Pipeline wires a citation source and a geocoder to a dataset file.
type Pipeline struct {
	scholar    Scholar
	geocoder   locate.Geocoder
	scholarID  string
	outputPath string
	w          io.Writer
	now        func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock sets the clock used for the dataset timestamp.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New returns a pipeline for the author and output file in cfg. Progress
// lines are written to w.
func New(s Scholar, g locate.Geocoder, cfg types.PipelineConfig, w io.Writer, opts ...Option) *Pipeline {
	p := &Pipeline{
		scholar:    s,
		geocoder:   g,
		scholarID:  cfg.Scholar.AuthorID,
		outputPath: cfg.OutputPath,
		w:          w,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run performs one fetch and replaces the dataset file. Upstream failures
// are logged and degrade the result; only a cancelled context or a failed
// write is returned as an error. A cancelled run leaves the previous
// dataset in place.
func (p *Pipeline) Run(ctx context.Context) (*types.CitationData, error) {
	fmt.Fprintf(p.w, "fetching citations for scholar %s\n", p.scholarID)

	pubs, err := p.scholar.Publications(ctx, p.scholarID)
	if err != nil {
		fmt.Fprintf(p.w, "warning: %v\n", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.w, "found %d publications\n", len(pubs))

	if len(pubs) == 0 {
		fmt.Fprintln(p.w, "warning: no publications found; the API key or scholar id may be wrong")
		data := EmptyDataset(p.scholarID, p.now())
		if err := WriteDataset(data, p.outputPath); err != nil {
			return nil, fmt.Errorf("writing dataset: %w", err)
		}
		fmt.Fprintf(p.w, "empty dataset written to %s\n", p.outputPath)
		return data, nil
	}

	papers := []types.CitingPaper{}
	for i, pub := range pubs {
		if pub.CitesID == "" {
			fmt.Fprintf(p.w, "  skipping %s (no cites id)\n", truncate(pub.Title, 50))
			continue
		}
		fmt.Fprintf(p.w, "[%d/%d] citing papers for: %s\n", i+1, len(pubs), truncate(pub.Title, 50))
		cited, err := p.scholar.CitingPapers(ctx, pub)
		if err != nil {
			fmt.Fprintf(p.w, "  warning: %v (keeping %d papers)\n", err, len(cited))
		} else {
			fmt.Fprintf(p.w, "  found %d citing papers\n", len(cited))
		}
		papers = append(papers, cited...)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(p.w, "total citing papers: %d\n", len(papers))

	fmt.Fprintln(p.w, "aggregating locations")
	locations := locate.Aggregate(ctx, papers, p.geocoder, p.w)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := &types.CitationData{
		LastUpdated:  p.now().UTC(),
		ScholarID:    p.scholarID,
		Publications: pubs,
		CitingPapers: papers,
		Locations:    locations,
		Stats:        ComputeStats(papers, locations),
	}
	if err := WriteDataset(data, p.outputPath); err != nil {
		return nil, fmt.Errorf("writing dataset: %w", err)
	}
	fmt.Fprintf(p.w, "citation data written to %s\n", p.outputPath)
	fmt.Fprintf(p.w, "  publications:  %d\n", len(pubs))
	fmt.Fprintf(p.w, "  citing papers: %d\n", len(papers))
	fmt.Fprintf(p.w, "  locations:     %d\n", len(locations))
	return data, nil
}

// truncate shortens s to at most n runes, appending "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
