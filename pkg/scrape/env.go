package scrape

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
	if cfg.MaxChars <= 0 {
		if raw := strings.TrimSpace(os.Getenv("SCRAPE_MAX_CHARS")); raw != "" {
			if max, err := strconv.Atoi(raw); err == nil && max > 0 {
				cfg.MaxChars = max
			}
		}
	}
	return cfg.WithDefaults()
}
