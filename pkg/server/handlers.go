package server

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gbaeke/mcp-demo/pkg/search"
	"github.com/gbaeke/mcp-demo/pkg/toolspec"
)

// SearchArgs are the arguments of the search tool.
type SearchArgs struct {
	Query string `json:"query"`
}

// ScrapeArgs are the arguments of the scrape tool. IncludeMetadata
// defaults to true when omitted.
type ScrapeArgs struct {
	URL             string `json:"url"`
	IncludeMetadata *bool  `json:"include_metadata,omitempty"`
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	log := s.callLogger(toolspec.SearchName)
	start := time.Now()
	text := s.runSearch(ctx, log, args.Query)
	log.Debug().Int64("took_ms", time.Since(start).Milliseconds()).Msg("search call finished")
	return textResult(text), nil, nil
}

// runSearch absorbs every failure class into the call's result string:
// the protocol has no separate error channel for this tool.
func (s *Server) runSearch(ctx context.Context, log zerolog.Logger, query string) string {
	resp, err := s.searcher.Search(ctx, query)
	if err != nil {
		msg := searchErrorMessage(err)
		log.Error().Err(err).Str("query", query).Msg(msg)
		return msg
	}
	text, err := resp.FormatOrganic()
	if err != nil {
		msg := "Error parsing API response: " + err.Error()
		log.Error().Err(err).Str("query", query).Msg(msg)
		return msg
	}
	return text
}

// searchErrorMessage maps the search error taxonomy onto the fixed
// user-facing strings.
func searchErrorMessage(err error) string {
	var parseErr *search.ParseError
	switch {
	case errors.Is(err, search.ErrMissingAPIKey):
		return "Error: " + search.ErrMissingAPIKey.Error()
	case errors.As(err, &parseErr):
		return "Error parsing API response: " + parseErr.Error()
	default:
		return "Error making API request: " + err.Error()
	}
}

func (s *Server) handleScrape(ctx context.Context, _ *mcp.CallToolRequest, args ScrapeArgs) (*mcp.CallToolResult, any, error) {
	log := s.callLogger(toolspec.ScrapeName)
	include := args.IncludeMetadata == nil || *args.IncludeMetadata

	start := time.Now()
	outcome := s.scraper.Scrape(ctx, args.URL, include)
	if outcome.Failure != nil {
		log.Error().Str("url", args.URL).Msg(outcome.Failure.Error)
	} else {
		log.Debug().
			Str("url", args.URL).
			Int("status", outcome.Page.Status).
			Int64("took_ms", time.Since(start).Milliseconds()).
			Msg("scrape call finished")
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(data)}},
		StructuredContent: outcome,
	}, nil, nil
}

func (s *Server) callLogger(tool string) zerolog.Logger {
	return s.log.With().Str("tool", tool).Str("request_id", uuid.NewString()).Logger()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
