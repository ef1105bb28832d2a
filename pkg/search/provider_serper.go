package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gbaeke/mcp-demo/pkg/httputil"
)

type serperProvider struct {
	cfg    Config
	client *httputil.Client
}

// NewSerperProvider builds the Serper-backed search provider. A missing
// API key is not an error here; Search reports it per call without
// touching the network.
func NewSerperProvider(cfg *Config, client *httputil.Client) Provider {
	return &serperProvider{cfg: *cfg.WithDefaults(), client: client}
}

func (p *serperProvider) Name() string {
	return ProviderSerper
}

func (p *serperProvider) Search(ctx context.Context, query string) (*Response, error) {
	if p.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload := map[string]any{
		"q":   query,
		"num": p.cfg.NumResults,
	}

	start := time.Now()
	data, _, err := p.client.PostJSON(ctx, p.cfg.BaseURL, map[string]string{
		"X-API-KEY": p.cfg.APIKey,
	}, payload)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	var resp struct {
		Organic []map[string]any `json:"organic"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &ParseError{Err: err}
	}

	return &Response{
		Query:     query,
		Provider:  ProviderSerper,
		TookMs:    time.Since(start).Milliseconds(),
		Organic:   resp.Organic,
		NoResults: len(resp.Organic) == 0,
	}, nil
}
