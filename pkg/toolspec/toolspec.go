// Package toolspec holds the shared tool definitions: names,
// descriptions, and JSON input schemas.
package toolspec

const (
	SearchName        = "search"
	SearchDescription = "Search the web for information using the Serper API. Returns the organic results as JSON, or an error message."

	ScrapeName        = "scrape"
	ScrapeDescription = "Scrape content from a given URL. Returns the page text and, optionally, page metadata (title, description, keywords, Open Graph fields)."
)

// SearchSchema returns the JSON schema for the search tool.
func SearchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The query to search for",
			},
		},
		"required": []string{"query"},
	}
}

// ScrapeSchema returns the JSON schema for the scrape tool.
func ScrapeSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "The URL to scrape",
			},
			"include_metadata": map[string]any{
				"type":        "boolean",
				"description": "Whether to include page metadata (title, description, etc.)",
				"default":     true,
			},
		},
		"required": []string{"url"},
	}
}
