package backend

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/use-agent/scour/models"
)

// Google result blocks carry the generic "g" class. Both the heading and the
// link must be present; the snippet class has two generations in the wild.
var (
	googleResult  = cascadia.MustCompile(".g")
	googleHeading = cascadia.MustCompile("h3")
	googleAnchor  = cascadia.MustCompile("a")
	googleSnippet = cascadia.MustCompile(".VwiC3b, .st")
)

// Google queries www.google.com/search. Last-resort backend: it rate limits
// scrapers aggressively, so it only runs when the others came up empty.
type Google struct{}

func (Google) Name() string { return "google" }

func (Google) QueryURL(query string, limit int, loc Locale) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("num", strconv.Itoa(limit))
	if loc.Language != "" {
		v.Set("hl", loc.Language)
	}
	if loc.Country != "" {
		v.Set("gl", loc.Country)
	}
	return "https://www.google.com/search?" + v.Encode()
}

func (Google) Parse(body []byte, limit int) []models.SearchResult {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var results []models.SearchResult
	doc.FindMatcher(googleResult).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		heading := s.FindMatcher(googleHeading).First()
		link := s.FindMatcher(googleAnchor).First()
		if heading.Length() == 0 || link.Length() == 0 {
			return true
		}

		href, _ := link.Attr("href")
		if !isAbsolute(href) {
			return true
		}

		results = append(results, models.SearchResult{
			Title:   strings.TrimSpace(heading.Text()),
			URL:     href,
			Snippet: firstText(s, googleSnippet),
		})
		return len(results) < limit
	})

	return results
}
