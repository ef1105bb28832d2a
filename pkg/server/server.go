// Package server wires the search and scrape operations into an MCP
// server served over stdio.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gbaeke/mcp-demo/pkg/scrape"
	"github.com/gbaeke/mcp-demo/pkg/search"
	"github.com/gbaeke/mcp-demo/pkg/toolspec"
)

const (
	Name    = "search-and-scrape"
	Version = "0.1.0"
)

// Server hosts the two tools. Operations are stateless; concurrent tool
// invocations share only the injected collaborators.
type Server struct {
	log      zerolog.Logger
	searcher search.Provider
	scraper  *scrape.Scraper
}

// New builds a server around the given search provider and scraper.
func New(log zerolog.Logger, searcher search.Provider, scraper *scrape.Scraper) *Server {
	return &Server{
		log:      log.With().Str("component", "mcp-server").Logger(),
		searcher: searcher,
		scraper:  scraper,
	}
}

// Build assembles the MCP server with both tools registered.
func (s *Server) Build() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: Version,
	}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        toolspec.SearchName,
		Description: toolspec.SearchDescription,
		Annotations: &mcp.ToolAnnotations{Title: "Web Search"},
		InputSchema: toolspec.SearchSchema(),
	}, s.handleSearch)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        toolspec.ScrapeName,
		Description: toolspec.ScrapeDescription,
		Annotations: &mcp.ToolAnnotations{Title: "Web Scrape"},
		InputSchema: toolspec.ScrapeSchema(),
	}, s.handleScrape)
	return srv
}

// Run serves tool calls over stdio until the client disconnects. Stdout
// carries the protocol; diagnostics go to the logger only.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().Msg("Starting MCP server run")
	return s.Build().Run(ctx, &mcp.StdioTransport{})
}
