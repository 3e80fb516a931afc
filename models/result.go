package models

// SearchResult is a single ranked result from a search backend.
//
// A parser creates it with the backend's short snippet; the enrichment
// pipeline may replace Snippet once with extracted page text. Title and URL
// are never mutated after parsing.
type SearchResult struct {
	// Title is the result's display title.
	Title string `json:"title"`

	// URL is the absolute target URL (http or https).
	URL string `json:"url"`

	// Snippet is plain text: the backend's summary, or extracted page
	// content after enrichment. May be empty.
	Snippet string `json:"snippet"`

	// Date is an optional provider-supplied publication date, unvalidated.
	Date string `json:"date,omitempty"`

	// LastUpdated is an optional provider-supplied update date, unvalidated.
	LastUpdated string `json:"last_updated,omitempty"`
}

// SearchResponse is the response for GET /search.
type SearchResponse struct {
	// Results preserves the winning backend's ranking order.
	Results []SearchResult `json:"results"`

	// ID is an opaque per-request identifier used for traceability.
	ID string `json:"id"`
}

// ErrorResponse is the body of 4xx/5xx responses.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
