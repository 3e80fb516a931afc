package backend

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/use-agent/scour/models"
)

// Locale carries the optional language/country hints from the request.
// Backends that support locale parameters fold them into the query URL;
// the rest ignore them.
type Locale struct {
	Language string // e.g. "en" or "en-US"
	Country  string // e.g. "US", "IN"
}

// Backend is a single search provider: a query-URL template plus the
// provider-specific rules for parsing its results page.
type Backend interface {
	// Name returns the backend identifier (e.g. "duckduckgo").
	Name() string

	// QueryURL builds the results-page URL for the given query.
	QueryURL(query string, limit int, loc Locale) string

	// Parse extracts at most limit results from a raw results-page body.
	// Malformed entries are skipped, never reported; every returned result
	// has a non-empty absolute http(s) URL.
	Parse(body []byte, limit int) []models.SearchResult
}

// firstText returns the trimmed text of the first matched element that has
// any, for selectors with alternative snippet classes.
func firstText(s *goquery.Selection, m goquery.Matcher) string {
	text := ""
	s.FindMatcher(m).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		text = strings.TrimSpace(el.Text())
		return text == ""
	})
	return text
}

// isAbsolute reports whether href is an absolute http(s) URL. Relative
// links, javascript: links and page anchors all fail this check.
func isAbsolute(href string) bool {
	return strings.HasPrefix(href, "http")
}
