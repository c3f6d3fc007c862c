// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

var errNoResults = errors.New("no geocoding results")

// lookup issues a single Nominatim search and returns the top result.
func (g *Geocoder) lookup(ctx context.Context, affiliation string) (types.GeoPoint, error) {
	params := url.Values{
		"q":              {affiliation},
		"format":         {"json"},
		"limit":          {"1"},
		"addressdetails": {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("Nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.GeoPoint{}, fmt.Errorf("Nominatim returned HTTP %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return types.GeoPoint{}, fmt.Errorf("parsing Nominatim response: %w", err)
	}
	if len(places) == 0 {
		return types.GeoPoint{}, errNoResults
	}

	top := places[0]
	lat, err := strconv.ParseFloat(top.Lat, 64)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("parsing latitude %q: %w", top.Lat, err)
	}
	lng, err := strconv.ParseFloat(top.Lon, 64)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("parsing longitude %q: %w", top.Lon, err)
	}

	p := types.GeoPoint{Lat: lat, Lng: lng, Country: "Unknown"}
	if a := top.Address; a != nil {
		if a.Country != "" {
			p.Country = a.Country
		}
		p.City = firstNonEmpty(a.City, a.Town, a.Village)
	}
	return p, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Nominatim search JSON structures. Coordinates arrive as strings.
type nominatimPlace struct {
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	DisplayName string            `json:"display_name"`
	Address     *nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Country string `json:"country"`
}
