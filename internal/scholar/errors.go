// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import "errors"

// Errors returned by the scholar client. Callers treat all of them as
// "no data" for the request that produced them.
var (
	// ErrHTTP indicates a non-2xx response.
	ErrHTTP = errors.New("SerpAPI HTTP error")

	// ErrNetwork indicates the request could not be sent or read.
	ErrNetwork = errors.New("network error communicating with SerpAPI")

	// ErrInvalidResponse indicates a body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response from SerpAPI")

	// ErrAPI indicates the response carried an explicit error field.
	ErrAPI = errors.New("SerpAPI reported an error")

	// ErrNoArticles indicates an author profile with no articles.
	ErrNoArticles = errors.New("no articles in author profile")

	// ErrNoCitesID indicates a publication without a citation-graph identifier.
	ErrNoCitesID = errors.New("publication has no cites id")

	// ErrNoAuthorID indicates an author link without a profile identifier.
	ErrNoAuthorID = errors.New("author link has no profile id")
)
