package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/use-agent/scour/models"
)

// Fetcher is the page-fetch capability the chain depends on.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Chain tries backends in a fixed priority order until one yields results.
//
// The order of the backend slice is the fallback priority and never changes
// mid-request. Attempts are strictly sequential: racing the backends would
// throw away the short-circuit benefit and multiply rate-limit exposure.
type Chain struct {
	fetcher  Fetcher
	timeout  time.Duration
	backends []Backend
}

// NewChain creates a Chain over the given backends in priority order.
// timeout bounds each backend's fetch.
func NewChain(f Fetcher, timeout time.Duration, backends ...Backend) *Chain {
	return &Chain{fetcher: f, timeout: timeout, backends: backends}
}

// Search runs the fallback chain and returns the first backend's non-empty
// parse, capped at limit. Fetch failures and empty parses are logged and
// swallowed; when every backend fails the result is an empty slice, which
// the caller turns into a "no results" condition. No error ever escapes.
func (c *Chain) Search(ctx context.Context, query string, limit int, loc Locale) []models.SearchResult {
	for _, b := range c.backends {
		results, err := c.attempt(ctx, b, query, limit, loc)
		if err != nil {
			slog.Warn("backend fetch failed, trying next",
				"backend", b.Name(), "query", query, "error", err,
			)
			continue
		}
		if len(results) == 0 {
			slog.Warn("backend parsed no results, trying next",
				"backend", b.Name(), "query", query,
			)
			continue
		}

		slog.Info("backend succeeded",
			"backend", b.Name(), "query", query, "results", len(results),
		)
		return results
	}

	return nil
}

// attempt runs a single backend: build URL, fetch with the chain's timeout,
// parse. One try per backend; retry policy is deliberately absent.
func (c *Chain) attempt(ctx context.Context, b Backend, query string, limit int, loc Locale) ([]models.SearchResult, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.fetcher.Fetch(fetchCtx, b.QueryURL(query, limit, loc))
	if err != nil {
		return nil, err
	}
	return b.Parse(body, limit), nil
}
