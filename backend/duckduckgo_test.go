package backend

import (
	"strings"
	"testing"
)

const ddgFixture = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fone&rut=abc">First Result</a>
  <a class="result__snippet">Snippet one.</a>
</div>
<div class="result">
  <span class="result__snippet">No title here.</span>
</div>
<div class="result">
  <a class="result__a" href="https://example.org/two">Second Result</a>
  <a class="result__snippet">Snippet two.</a>
</div>
<div class="result">
  <a class="result__a" href="/relative/link">Relative Link</a>
</div>
</body></html>`

func TestDuckDuckGoParse(t *testing.T) {
	results := DuckDuckGo{}.Parse([]byte(ddgFixture), 10)

	if len(results) != 2 {
		t.Fatalf("expected 2 results (missing-title and relative-href blocks skipped), got %d", len(results))
	}

	if results[0].URL != "https://example.com/one" {
		t.Errorf("redirect wrapper not unwrapped: got %q", results[0].URL)
	}
	if results[0].Title != "First Result" {
		t.Errorf("title = %q, want %q", results[0].Title, "First Result")
	}
	if results[0].Snippet != "Snippet one." {
		t.Errorf("snippet = %q, want %q", results[0].Snippet, "Snippet one.")
	}

	if results[1].URL != "https://example.org/two" {
		t.Errorf("plain href should be kept as-is: got %q", results[1].URL)
	}
}

func TestDuckDuckGoParse_Limit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 5; i++ {
		sb.WriteString(`<div class="result"><a class="result__a" href="https://example.com/">R</a></div>`)
	}
	sb.WriteString("</body></html>")

	results := DuckDuckGo{}.Parse([]byte(sb.String()), 3)
	if len(results) != 3 {
		t.Errorf("expected parse to stop at limit 3, got %d results", len(results))
	}
}

func TestDuckDuckGoParse_EmptyBody(t *testing.T) {
	if results := (DuckDuckGo{}).Parse([]byte("<html><body></body></html>"), 5); len(results) != 0 {
		t.Errorf("expected no results for empty page, got %d", len(results))
	}
}

func TestUnwrapRedirect(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{"wrapped", "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage&rut=x", "https://example.com/page"},
		{"no uddg param", "https://example.com/direct", "https://example.com/direct"},
		{"empty", "", ""},
		{"uddg empty value", "//duckduckgo.com/l/?uddg=", "//duckduckgo.com/l/?uddg="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unwrapRedirect(tt.href); got != tt.want {
				t.Errorf("unwrapRedirect(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestDuckDuckGoQueryURL(t *testing.T) {
	u := DuckDuckGo{}.QueryURL("go testing", 5, Locale{})
	if !strings.Contains(u, "html.duckduckgo.com/html/") {
		t.Errorf("unexpected host in %q", u)
	}
	if !strings.Contains(u, "q=go+testing") {
		t.Errorf("query not encoded in %q", u)
	}
	if strings.Contains(u, "kl=") {
		t.Errorf("kl should be absent without locale hints: %q", u)
	}

	u = DuckDuckGo{}.QueryURL("go testing", 5, Locale{Language: "EN", Country: "US"})
	if !strings.Contains(u, "kl=us-en") {
		t.Errorf("expected lowercased region code kl=us-en in %q", u)
	}
}
