package httputil

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.TimeoutSecs <= 0 {
		if raw := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT_SECONDS")); raw != "" {
			if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
				cfg.TimeoutSecs = secs
			}
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = strings.TrimSpace(os.Getenv("SCRAPE_USER_AGENT"))
	}
	return cfg.WithDefaults()
}
