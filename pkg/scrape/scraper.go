// Package scrape fetches a single page and extracts readable text plus
// optional head metadata.
package scrape

import (
	"bytes"
	"context"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/gbaeke/mcp-demo/pkg/httputil"
)

// Scraper fetches pages over the shared HTTP client and extracts their
// visible text. It holds no per-call state and is safe for concurrent use.
type Scraper struct {
	cfg    Config
	client *httputil.Client
}

// NewScraper builds a scraper with the given config and shared client.
func NewScraper(cfg *Config, client *httputil.Client) *Scraper {
	return &Scraper{cfg: *cfg.WithDefaults(), client: client}
}

// Scrape fetches rawURL and returns a well-formed outcome. It never
// returns an error: transport and parse failures become the failure arm,
// while non-2xx statuses still produce a success record carrying the
// real status code.
func (s *Scraper) Scrape(ctx context.Context, rawURL string, includeMetadata bool) Outcome {
	resp, err := s.client.Get(ctx, rawURL)
	if err != nil {
		return failure("Error fetching URL: "+err.Error(), rawURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("Error fetching URL: "+err.Error(), rawURL)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return failure("Error scraping content: "+err.Error(), rawURL)
	}

	// Prune before any text extraction so removed-element text can never
	// leak into the content, inline scripts included.
	doc.Find("script, style, iframe").Remove()

	page := &Page{
		Content: truncate(visibleText(doc), s.cfg.MaxChars),
		URL:     rawURL,
		Status:  resp.StatusCode,
	}
	if includeMetadata {
		page.Metadata = extractMetadata(doc, body)
	}
	return Outcome{Page: page}
}
