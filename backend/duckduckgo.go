package backend

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/use-agent/scour/models"
)

// Precompiled selectors for the DuckDuckGo HTML interface. Results live in
// divs with class "result"; the title anchor doubles as the link.
var (
	ddgResult  = cascadia.MustCompile(".result")
	ddgTitle   = cascadia.MustCompile(".result__a")
	ddgSnippet = cascadia.MustCompile(".result__snippet")
)

// DuckDuckGo queries the html.duckduckgo.com interface. It is the primary
// backend: no API key, stable markup, rarely rate limited.
type DuckDuckGo struct{}

func (DuckDuckGo) Name() string { return "duckduckgo" }

func (DuckDuckGo) QueryURL(query string, limit int, loc Locale) string {
	v := url.Values{}
	v.Set("q", query)
	// DuckDuckGo takes a single region code, e.g. kl=us-en.
	if loc.Language != "" && loc.Country != "" {
		v.Set("kl", strings.ToLower(loc.Country+"-"+loc.Language))
	}
	return "https://html.duckduckgo.com/html/?" + v.Encode()
}

func (DuckDuckGo) Parse(body []byte, limit int) []models.SearchResult {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var results []models.SearchResult
	doc.FindMatcher(ddgResult).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := s.FindMatcher(ddgTitle).First()
		if title.Length() == 0 {
			return true
		}

		href, _ := title.Attr("href")
		target := unwrapRedirect(href)
		if !isAbsolute(target) {
			return true
		}

		results = append(results, models.SearchResult{
			Title:   strings.TrimSpace(title.Text()),
			URL:     target,
			Snippet: strings.TrimSpace(s.FindMatcher(ddgSnippet).First().Text()),
		})
		return len(results) < limit
	})

	return results
}

// unwrapRedirect extracts the real target from DuckDuckGo's redirect wrapper
// (//duckduckgo.com/l/?uddg=<encoded target>). Hrefs without the uddg
// parameter are returned as-is.
func unwrapRedirect(href string) string {
	if href == "" || !strings.Contains(href, "uddg=") {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
