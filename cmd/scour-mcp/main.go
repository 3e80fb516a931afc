package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// searchResponse mirrors the scour API response model.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Snippet string `json:"snippet"`
	} `json:"results"`
	ID    string `json:"id"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	apiURL := os.Getenv("SCOUR_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8000"
	}

	s := server.NewMCPServer(
		"scour",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	webSearchTool := mcp.NewTool("web_search",
		mcp.WithDescription("Search the web and return ranked results whose snippets are replaced with extracted main-page content. Tries multiple search backends with automatic fallback."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search query (at least 2 characters)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (1-10, default: 2)"),
		),
		mcp.WithString("language",
			mcp.Description("Locale language hint, e.g. 'en' or 'en-US'"),
		),
		mcp.WithString("country",
			mcp.Description("Locale country hint, e.g. 'US', 'IN'"),
		),
	)

	s.AddTool(webSearchTool, handleWebSearch(apiURL))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleWebSearch(apiURL string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 120 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError("query is required"), nil
		}

		params := url.Values{}
		params.Set("q", query)
		if maxResults := request.GetInt("max_results", 0); maxResults > 0 {
			params.Set("max_results", strconv.Itoa(maxResults))
		}
		if language := request.GetString("language", ""); language != "" {
			params.Set("language", language)
		}
		if country := request.GetString("country", ""); country != "" {
			params.Set("country", country)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"/search?"+params.Encode(), nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		var searchResp searchResponse
		if err := json.Unmarshal(respBody, &searchResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if searchResp.Error != nil {
			return mcp.NewToolResultError(fmt.Sprintf("[%s] %s", searchResp.Error.Code, searchResp.Error.Message)), nil
		}
		if len(searchResp.Results) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("no results found for query: %s", query)), nil
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Found %d results:\n\n", len(searchResp.Results)))
		for i, r := range searchResp.Results {
			sb.WriteString(fmt.Sprintf("--- [%d] %s (%s) ---\n%s\n\n", i+1, r.Title, r.URL, r.Snippet))
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}
