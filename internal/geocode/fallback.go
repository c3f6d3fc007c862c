// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geocode

import (
	"regexp"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

type fallbackEntry struct {
	re    *regexp.Regexp
	point types.GeoPoint
}

func entry(key string, lat, lng float64, country string) fallbackEntry {
	return fallbackEntry{
		re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`),
		point: types.GeoPoint{Lat: lat, Lng: lng, Country: country},
	}
}

// fallbackTable maps country names to representative centroids. Order is
// significant: the first matching key wins. Keys match whole words only,
// so "us" does not fire inside "russia" or "business".
var fallbackTable = []fallbackEntry{
	entry("usa", 39.8283, -98.5795, "United States"),
	entry("united states", 39.8283, -98.5795, "United States"),
	entry("us", 39.8283, -98.5795, "United States"),
	entry("india", 20.5937, 78.9629, "India"),
	entry("china", 35.8617, 104.1954, "China"),
	entry("uk", 55.3781, -3.4360, "United Kingdom"),
	entry("united kingdom", 55.3781, -3.4360, "United Kingdom"),
	entry("germany", 51.1657, 10.4515, "Germany"),
	entry("france", 46.2276, 2.2137, "France"),
	entry("canada", 56.1304, -106.3468, "Canada"),
	entry("australia", -25.2744, 133.7751, "Australia"),
	entry("japan", 36.2048, 138.2529, "Japan"),
	entry("south korea", 35.9078, 127.7669, "South Korea"),
	entry("brazil", -14.2350, -51.9253, "Brazil"),
	entry("russia", 61.5240, 105.3188, "Russia"),
}

// FallbackLookup resolves affiliation against the country table.
func FallbackLookup(affiliation string) (types.GeoPoint, bool) {
	for _, e := range fallbackTable {
		if e.re.MatchString(affiliation) {
			return e.point, true
		}
	}
	return types.GeoPoint{}, false
}
