package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/use-agent/scour/backend"
	"github.com/use-agent/scour/models"
)

// Searcher runs the backend fallback chain.
type Searcher interface {
	Search(ctx context.Context, query string, limit int, loc backend.Locale) []models.SearchResult
}

// Enricher replaces snippets with extracted page content.
type Enricher interface {
	Enrich(ctx context.Context, results []models.SearchResult) []models.SearchResult
}

// SearchQuery binds the GET /search query parameters.
type SearchQuery struct {
	// Q is the search query.
	Q string `form:"q" binding:"required,min=2"`

	// K is the requested result count.
	K int `form:"k,default=2" binding:"min=1,max=10"`

	// MaxResults overrides K when present.
	MaxResults int `form:"max_results" binding:"omitempty,min=1,max=10"`

	// Language is an optional locale hint, e.g. "en" or "en-US".
	Language string `form:"language" binding:"omitempty,min=2,max=10"`

	// Country is an optional locale hint, e.g. "US", "IN".
	Country string `form:"country" binding:"omitempty,min=2,max=10"`
}

// Search returns a handler for GET /search.
//
// Flow:
//  1. Bind & validate query parameters.
//  2. Run the fallback chain; empty → 404.
//  3. Enrich snippets with extracted page content (best effort).
//  4. Respond with the ordered results and a fresh request ID.
func Search(searcher Searcher, enricher Enricher) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var q SearchQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		limit := q.K
		if q.MaxResults > 0 {
			limit = q.MaxResults
		}
		loc := backend.Locale{Language: q.Language, Country: q.Country}

		results := searcher.Search(c.Request.Context(), q.Q, limit, loc)
		if len(results) == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeNoResults,
					Message: fmt.Sprintf("no search results found for query: %s. Try a different query.", q.Q),
				},
			})
			return
		}

		enriched := enricher.Enrich(c.Request.Context(), results)

		slog.Info("search completed",
			"query", q.Q,
			"results", len(enriched),
			"total_ms", time.Since(start).Milliseconds(),
		)

		c.JSON(http.StatusOK, models.SearchResponse{
			Results: enriched,
			ID:      uuid.NewString(),
		})
	}
}
