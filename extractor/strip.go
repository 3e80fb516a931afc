package extractor

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// boilerplateSelector matches nodes excluded from extraction up front:
// images and figures, navigation chrome, forms, and comment threads.
// Readability removes most of these on its own, but comment sections on
// blogs and news sites often score as content, so they are cut before the
// algorithm ever sees them.
var boilerplateSelector = cascadia.MustCompile(
	"img, picture, figure, svg, nav, aside, footer, form, iframe, " +
		`#comments, .comments, .comment, [id*="disqus"], [class*="comment-list"]`,
)

// StripBoilerplate removes comment sections, navigation chrome and images
// from rawHTML and returns the re-rendered document. On any parse or render
// failure the input is returned unchanged so extraction can still proceed.
func StripBoilerplate(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	for _, node := range boilerplateSelector.MatchAll(doc) {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return rawHTML
	}
	return buf.String()
}
