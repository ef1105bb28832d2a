package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gbaeke/mcp-demo/pkg/httputil"
	"github.com/gbaeke/mcp-demo/pkg/scrape"
	"github.com/gbaeke/mcp-demo/pkg/search"
)

type fakeProvider struct {
	resp *search.Response
	err  error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Search(ctx context.Context, query string) (*search.Response, error) {
	return f.resp, f.err
}

func newTestServer(provider search.Provider) *Server {
	scraper := scrape.NewScraper(&scrape.Config{}, httputil.NewClient(&httputil.Config{TimeoutSecs: 2}))
	return New(zerolog.Nop(), provider, scraper)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("expected a content block")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestHandleSearchErrorStrings(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing credential",
			err:  search.ErrMissingAPIKey,
			want: "Error: SERPER_API_KEY environment variable is not set",
		},
		{
			name: "transport failure",
			err:  &search.RequestError{Err: errors.New("dial tcp: timeout")},
			want: "Error making API request: dial tcp: timeout",
		},
		{
			name: "malformed response",
			err:  &search.ParseError{Err: errors.New("unexpected end of JSON input")},
			want: "Error parsing API response: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&fakeProvider{err: tt.err})
			res, _, err := srv.handleSearch(context.Background(), nil, SearchArgs{Query: "q"})
			if err != nil {
				t.Fatalf("handler must absorb operation failures, got %v", err)
			}
			if got := resultText(t, res); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHandleSearchNoResultsSentinel(t *testing.T) {
	srv := newTestServer(&fakeProvider{resp: &search.Response{NoResults: true}})
	res, _, err := srv.handleSearch(context.Background(), nil, SearchArgs{Query: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != search.NoResultsMessage {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestHandleSearchSerializesOrganicResults(t *testing.T) {
	srv := newTestServer(&fakeProvider{resp: &search.Response{
		Organic: []map[string]any{{"title": "t", "link": "https://example.com", "snippet": "s", "position": 1}},
	}})
	res, _, err := srv.handleSearch(context.Background(), nil, SearchArgs{Query: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, res)
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("expected JSON result, got %q: %v", text, err)
	}
	if len(decoded) != 1 || decoded[0]["title"] != "t" {
		t.Fatalf("unexpected result payload: %q", text)
	}
}

func TestHandleScrapeMetadataDefaultsOn(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><head><title>T</title></head><body><p>hi</p></body></html>"))
	}))
	defer page.Close()

	srv := newTestServer(&fakeProvider{})
	res, _, err := srv.handleScrape(context.Background(), nil, ScrapeArgs{URL: page.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(resultText(t, res)), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	meta, ok := decoded["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("expected metadata by default, got %#v", decoded)
	}
	if meta["title"] != "T" {
		t.Fatalf("expected title metadata, got %#v", meta)
	}
}

func TestHandleScrapeMetadataCanBeDisabled(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><head><title>T</title></head><body><p>hi</p></body></html>"))
	}))
	defer page.Close()

	srv := newTestServer(&fakeProvider{})
	off := false
	res, _, err := srv.handleScrape(context.Background(), nil, ScrapeArgs{URL: page.URL, IncludeMetadata: &off})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(resultText(t, res)), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["metadata"]; ok {
		t.Fatalf("expected no metadata key, got %#v", decoded)
	}
}

func TestHandleScrapeFailureIsWellFormedResult(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := page.URL
	page.Close()

	srv := newTestServer(&fakeProvider{})
	res, _, err := srv.handleScrape(context.Background(), nil, ScrapeArgs{URL: url})
	if err != nil {
		t.Fatalf("handler must absorb scrape failures, got %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(resultText(t, res)), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["url"] != url {
		t.Fatalf("expected input URL in failure record, got %#v", decoded)
	}
	if msg, _ := decoded["error"].(string); !strings.HasPrefix(msg, "Error fetching URL: ") {
		t.Fatalf("unexpected error message: %#v", decoded)
	}
}

func TestBuildRegistersBothTools(t *testing.T) {
	srv := newTestServer(&fakeProvider{}).Build()
	if srv == nil {
		t.Fatalf("expected a server")
	}
}
