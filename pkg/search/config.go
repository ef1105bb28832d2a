package search

const (
	ProviderSerper = "serper"

	DefaultBaseURL    = "https://google.serper.dev/search"
	DefaultNumResults = 2
)

// Config controls the search provider and its credential.
type Config struct {
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"`
	NumResults int    `yaml:"num_results"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.NumResults <= 0 {
		c.NumResults = DefaultNumResults
	}
	return c
}
