package search

import (
	"os"
	"strconv"
	"strings"
)

// ConfigFromEnv builds a search config using environment variables.
func ConfigFromEnv() *Config {
	return ApplyEnvDefaults(&Config{})
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.APIKey = envOr(cfg.APIKey, os.Getenv("SERPER_API_KEY"))
	cfg.BaseURL = envOr(cfg.BaseURL, os.Getenv("SERPER_BASE_URL"))
	if cfg.NumResults <= 0 {
		if raw := strings.TrimSpace(os.Getenv("SEARCH_NUM_RESULTS")); raw != "" {
			if num, err := strconv.Atoi(raw); err == nil && num > 0 {
				cfg.NumResults = num
			}
		}
	}
	return cfg.WithDefaults()
}

func envOr(existing, value string) string {
	if existing != "" {
		return existing
	}
	return strings.TrimSpace(value)
}
