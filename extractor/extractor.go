package extractor

import (
	"context"
	"log/slog"
	nurl "net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// minContentLength is the minimum extracted text length (in characters) for
// readability output to be considered valid. Below this threshold we assume
// the algorithm failed to locate the main content. Extraction favors
// precision: a short, uncertain result is reported as nothing at all.
const minContentLength = 50

// Fetcher is the page-fetch capability the extractor depends on.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor fetches a page and reduces it to a bounded plain-text excerpt of
// its main content.
type Extractor struct {
	fetcher  Fetcher
	timeout  time.Duration
	maxChars int
}

// New creates an Extractor. timeout bounds each content fetch; maxChars is
// the character budget applied to every excerpt.
func New(f Fetcher, timeout time.Duration, maxChars int) *Extractor {
	return &Extractor{fetcher: f, timeout: timeout, maxChars: maxChars}
}

// Extract fetches pageURL and returns its main-content text, truncated to
// the character budget. The second return value is false when the fetch or
// the extraction yields nothing usable — an expected, frequent outcome
// (paywalls, non-HTML content, bot blocking), never an error.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	body, err := e.fetcher.Fetch(fetchCtx, pageURL)
	if err != nil {
		slog.Debug("content fetch failed", "url", pageURL, "error", err)
		return "", false
	}

	text, ok := ExtractText(string(body), pageURL)
	if !ok {
		slog.Debug("content extraction yielded nothing usable", "url", pageURL)
		return "", false
	}

	return Truncate(text, e.maxChars), true
}

// ExtractText strips boilerplate from rawHTML and runs the Readability
// algorithm on what remains. Returns the plain text of the main content, or
// ("", false) when extraction fails or the result is too short to trust.
func ExtractText(rawHTML, sourceURL string) (string, bool) {
	parsedURL, err := nurl.Parse(sourceURL)
	if err != nil {
		return "", false
	}

	stripped := StripBoilerplate(rawHTML)

	article, err := readability.FromReader(strings.NewReader(stripped), parsedURL)
	if err != nil {
		return "", false
	}

	text := strings.TrimSpace(article.TextContent)
	if len(text) < minContentLength {
		return "", false
	}
	return text, true
}

// Truncate cuts text to at most max characters, on a rune boundary.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
