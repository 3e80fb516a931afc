package enrich

import (
	"context"
	"sync"

	"github.com/use-agent/scour/models"
)

// Extractor is the content-extraction capability used for enrichment.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, bool)
}

// Enricher replaces result snippets with extracted page text. Per-result
// fetches are independent, so they run on a bounded worker pool; results are
// collected by original index, never by completion order.
type Enricher struct {
	extractor Extractor
	workers   int
}

// New creates an Enricher running at most workers concurrent extractions.
func New(ex Extractor, workers int) *Enricher {
	if workers < 1 {
		workers = 1
	}
	return &Enricher{extractor: ex, workers: workers}
}

// Enrich returns a copy of results where each snippet is replaced by the
// page's extracted main-content text when extraction succeeds. A failed
// extraction keeps the original snippet. Order is preserved, no result is
// ever dropped, and URL and Title are never touched.
func (e *Enricher) Enrich(ctx context.Context, results []models.SearchResult) []models.SearchResult {
	if len(results) == 0 {
		return results
	}

	enriched := make([]models.SearchResult, len(results))
	copy(enriched, results)

	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i := range enriched {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// Each goroutine writes only its own slot.
			if text, ok := e.extractor.Extract(ctx, enriched[idx].URL); ok {
				enriched[idx].Snippet = text
			}
		}(i)
	}

	wg.Wait()
	return enriched
}
