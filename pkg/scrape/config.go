package scrape

// DefaultMaxChars caps extracted content length, counted in characters
// after whitespace normalization.
const DefaultMaxChars = 5000

// Config controls content extraction.
type Config struct {
	MaxChars int `yaml:"max_chars"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.MaxChars <= 0 {
		c.MaxChars = DefaultMaxChars
	}
	return c
}
