package backend

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/use-agent/scour/models"
)

// Brave tags organic web results with data-type="web". The snippet class has
// changed between rollouts, so both known variants are tried.
var (
	braveResult  = cascadia.MustCompile(`[data-type="web"]`)
	braveAnchor  = cascadia.MustCompile("a")
	braveSnippet = cascadia.MustCompile(".snippet-description, .snippet-content")
)

// Brave queries search.brave.com. Secondary backend; its HTML exposes no
// stable locale parameter, so locale hints are ignored.
type Brave struct{}

func (Brave) Name() string { return "brave" }

func (Brave) QueryURL(query string, limit int, loc Locale) string {
	v := url.Values{}
	v.Set("q", query)
	return "https://search.brave.com/search?" + v.Encode()
}

func (Brave) Parse(body []byte, limit int) []models.SearchResult {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var results []models.SearchResult
	doc.FindMatcher(braveResult).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := s.FindMatcher(braveAnchor).First()
		if title.Length() == 0 {
			return true
		}

		href, _ := title.Attr("href")
		if !isAbsolute(href) {
			return true
		}

		results = append(results, models.SearchResult{
			Title:   strings.TrimSpace(title.Text()),
			URL:     href,
			Snippet: firstText(s, braveSnippet),
		})
		return len(results) < limit
	})

	return results
}
