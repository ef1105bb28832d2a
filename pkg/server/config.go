package server

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gbaeke/mcp-demo/pkg/httputil"
	"github.com/gbaeke/mcp-demo/pkg/scrape"
	"github.com/gbaeke/mcp-demo/pkg/search"
)

// Config aggregates per-component configuration.
type Config struct {
	LogLevel string           `yaml:"log_level"`
	HTTP     *httputil.Config `yaml:"http"`
	Search   *search.Config   `yaml:"search"`
	Scrape   *scrape.Config   `yaml:"scrape"`
}

// LoadConfig reads the optional YAML file named by CONFIG_FILE, then
// overlays environment variables and defaults. A missing search
// credential is not an error here; it is reported per call.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	}
	cfg.HTTP = httputil.ApplyEnvDefaults(cfg.HTTP)
	cfg.Search = search.ApplyEnvDefaults(cfg.Search)
	cfg.Scrape = scrape.ApplyEnvDefaults(cfg.Scrape)
	return cfg, nil
}
