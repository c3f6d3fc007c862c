// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

// CitingPapers pages through the citers of pub, PageSize results at a
// time, until a page comes back empty (done), a request fails (aborted) or
// the page ceiling is reached (done). When aborted, the papers collected so
// far are returned together with the error.
//
// Only the first of several comma-joined cites ids is queried.
func (c *Client) CitingPapers(ctx context.Context, pub types.Publication) ([]types.CitingPaper, error) {
	citesID := FirstCitesID(pub.CitesID)
	if citesID == "" {
		return nil, fmt.Errorf("%q: %w", pub.Title, ErrNoCitesID)
	}

	var papers []types.CitingPaper
	for page := 0; page < c.maxPages; page++ {
		offset := page * PageSize
		if err := ctx.Err(); err != nil {
			return papers, fmt.Errorf("citations of %s at offset %d: %w", citesID, offset, err)
		}

		params := url.Values{
			"engine": {"google_scholar"},
			"cites":  {citesID},
			"start":  {strconv.Itoa(offset)},
		}
		var cr citesResponse
		if err := c.get(ctx, params, &cr); err != nil {
			return papers, fmt.Errorf("citations of %s at offset %d: %w", citesID, offset, err)
		}
		if len(cr.OrganicResults) == 0 {
			return papers, nil
		}

		for _, r := range cr.OrganicResults {
			papers = append(papers, c.citingPaper(ctx, r, pub))
		}
	}
	return papers, nil
}

// citingPaper converts one result row. The affiliation lookup is best
// effort and never fails the row.
func (c *Client) citingPaper(ctx context.Context, r organicResult, pub types.Publication) types.CitingPaper {
	p := types.CitingPaper{
		ID:                 CitingPaperID(r.Link, r.Title),
		Title:              r.Title,
		Authors:            []string{},
		Venue:              "Unknown",
		Link:               r.Link,
		Snippet:            r.Snippet,
		CitedPublication:   pub.Title,
		CitedPublicationID: pub.ID,
	}
	if r.InlineLinks != nil && r.InlineLinks.CitedBy != nil {
		p.CitationCount = r.InlineLinks.CitedBy.Total
	}

	var links []string
	if info := r.PublicationInfo; info != nil {
		p.PublicationInfo = &types.PublicationInfo{Summary: info.Summary}
		if info.Summary != "" {
			p.Venue = info.Summary
		}
		p.Year = summaryYear(info.Summary)
		for _, a := range info.Authors {
			p.Authors = append(p.Authors, a.Name)
			if l := firstNonEmpty(a.SerpAPIScholarLink, a.Link); l != "" {
				links = append(links, l)
			}
		}
	}

	if len(links) > 0 {
		if aff, err := c.Affiliation(ctx, links[0]); err == nil {
			p.Affiliation = aff
		}
	}

	inf := c.classifier.Score(p.Venue, p.CitationCount)
	p.InfluenceScore = inf.Total
	p.VenueScore = inf.Venue
	p.CitationScore = inf.Citation
	p.SelfCitation = c.isSelfCitation(p.Authors)
	return p
}

var authorIDPattern = regexp.MustCompile(`(?:author_id|user)=([^&]+)`)

// Affiliation looks up the profile behind an author link and returns its
// affiliation line, which may be empty.
func (c *Client) Affiliation(ctx context.Context, authorLink string) (string, error) {
	m := authorIDPattern.FindStringSubmatch(authorLink)
	if m == nil {
		return "", fmt.Errorf("%s: %w", authorLink, ErrNoAuthorID)
	}
	id := m[1]
	if unescaped, err := url.QueryUnescape(id); err == nil {
		id = unescaped
	}

	params := url.Values{
		"engine":    {"google_scholar_author"},
		"author_id": {id},
	}
	var ar authorResponse
	if err := c.get(ctx, params, &ar); err != nil {
		return "", fmt.Errorf("fetching author %s: %w", id, err)
	}
	if ar.Error != "" {
		return "", fmt.Errorf("fetching author %s: %w: %s", id, ErrAPI, ar.Error)
	}
	return strings.TrimSpace(ar.Author.Affiliations), nil
}

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// summaryYear returns the last four-digit year in a summary line such as
// "A Smith, B Jones - IEEE Access, 2023 - ieeexplore.ieee.org".
func summaryYear(summary string) *int {
	matches := yearPattern.FindAllString(summary, -1)
	if len(matches) == 0 {
		return nil
	}
	y, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return nil
	}
	return &y
}

func (c *Client) isSelfCitation(authors []string) bool {
	if len(c.selfNames) == 0 {
		return false
	}
	for _, a := range authors {
		if c.selfNames[normalizeName(a)] {
			return true
		}
	}
	return false
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// SerpAPI google_scholar (cites) JSON structures.
type citesResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
	Error          string          `json:"error"`
}

type organicResult struct {
	Title           string           `json:"title"`
	Link            string           `json:"link"`
	Snippet         string           `json:"snippet"`
	PublicationInfo *publicationInfo `json:"publication_info"`
	InlineLinks     *inlineLinks     `json:"inline_links"`
}

type publicationInfo struct {
	Summary string       `json:"summary"`
	Authors []infoAuthor `json:"authors"`
}

type infoAuthor struct {
	Name               string `json:"name"`
	Link               string `json:"link"`
	SerpAPIScholarLink string `json:"serpapi_scholar_link"`
}

type inlineLinks struct {
	CitedBy *inlineCitedBy `json:"cited_by"`
}

type inlineCitedBy struct {
	Total int    `json:"total"`
	Link  string `json:"link"`
}
