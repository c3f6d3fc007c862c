// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

// Publications fetches the article list of the author profile authorID in
// one request. Any failure (HTTP status, an error field in the body, an
// empty profile) yields an empty list and a descriptive error; callers
// treat the list as authoritative and the error as a diagnostic.
func (c *Client) Publications(ctx context.Context, authorID string) ([]types.Publication, error) {
	params := url.Values{
		"engine":    {"google_scholar_author"},
		"author_id": {authorID},
		"num":       {strconv.Itoa(articlesPerProfile)},
	}
	var ar authorResponse
	if err := c.get(ctx, params, &ar); err != nil {
		return []types.Publication{}, fmt.Errorf("fetching profile %s: %w", authorID, err)
	}
	if ar.Error != "" {
		return []types.Publication{}, fmt.Errorf("fetching profile %s: %w: %s", authorID, ErrAPI, ar.Error)
	}
	if len(ar.Articles) == 0 {
		return []types.Publication{}, fmt.Errorf("fetching profile %s: %w", authorID, ErrNoArticles)
	}

	pubs := make([]types.Publication, 0, len(ar.Articles))
	for _, a := range ar.Articles {
		pubs = append(pubs, c.publication(a))
	}
	return pubs, nil
}

func (c *Client) publication(a authorArticle) types.Publication {
	p := types.Publication{
		ID:       PublicationID(a.CitationID, a.Title),
		Title:    a.Title,
		Authors:  splitAuthors(a.Authors),
		Year:     c.parseYear(a.Year),
		Venue:    a.Publication,
		Link:     a.Link,
		ResultID: a.CitationID,
	}
	if strings.TrimSpace(p.Venue) == "" {
		p.Venue = "Unknown"
	}
	if a.CitedBy != nil {
		if a.CitedBy.Value != nil {
			p.CitationCount = *a.CitedBy.Value
		}
		p.CitesID = a.CitedBy.CitesID
	}
	return p
}

// parseYear parses a profile year, defaulting to the current year.
func (c *Client) parseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y <= 0 {
		return c.now().Year()
	}
	return y
}

// splitAuthors turns "A Smith, B Jones" into a trimmed list.
func splitAuthors(s string) []string {
	authors := []string{}
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// FirstCitesID returns the first of a comma-separated list of cites ids.
func FirstCitesID(citesID string) string {
	first, _, _ := strings.Cut(citesID, ",")
	return strings.TrimSpace(first)
}

// PublicationID derives a stable surrogate id from a profile result id,
// or from the title when the result id is missing.
func PublicationID(resultID, title string) string {
	key := resultID
	if key == "" {
		key = title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("publication:"+key)).String()
}

// CitingPaperID derives a stable surrogate id from a citing paper's link,
// or from its title when the link is missing.
func CitingPaperID(link, title string) string {
	key := link
	if key == "" {
		key = title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("citing:"+key)).String()
}

// SerpAPI google_scholar_author JSON structures.
type authorResponse struct {
	Author   authorProfile   `json:"author"`
	Articles []authorArticle `json:"articles"`
	Error    string          `json:"error"`
}

type authorProfile struct {
	Name         string `json:"name"`
	AuthorID     string `json:"author_id"`
	Affiliations string `json:"affiliations"`
	Email        string `json:"email"`
}

type authorArticle struct {
	Title       string          `json:"title"`
	Link        string          `json:"link"`
	CitationID  string          `json:"citation_id"`
	Authors     string          `json:"authors"`
	Publication string          `json:"publication"`
	Year        string          `json:"year"`
	CitedBy     *articleCitedBy `json:"cited_by"`
}

type articleCitedBy struct {
	Value   *int   `json:"value"`
	Link    string `json:"link"`
	CitesID string `json:"cites_id"`
}
