package scrape

import "encoding/json"

// Metadata keys. A key is present only when the source element exists and
// carries a value; absent keys are omitted, never set to null or empty.
const (
	MetaTitle         = "title"
	MetaDescription   = "description"
	MetaKeywords      = "keywords"
	MetaOGTitle       = "og_title"
	MetaOGDescription = "og_description"
)

// Metadata holds the optional page-level descriptive fields.
type Metadata map[string]string

// Page is the success arm of a scrape outcome. Metadata is nil when the
// caller did not ask for it; when requested it is always attached, even
// when no field resolved.
type Page struct {
	Content  string
	URL      string
	Status   int
	Metadata Metadata
}

// Failure is the failure arm of a scrape outcome. The input URL is kept
// for caller correlation.
type Failure struct {
	Error string `json:"error"`
	URL   string `json:"url"`
}

// Outcome is the tagged result of one scrape call: exactly one arm is
// set. Its JSON form is either {content, url, status[, metadata]} or
// {error, url} — never both.
type Outcome struct {
	Page    *Page
	Failure *Failure
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Failure != nil {
		return json.Marshal(o.Failure)
	}
	if o.Page.Metadata == nil {
		return json.Marshal(struct {
			Content string `json:"content"`
			URL     string `json:"url"`
			Status  int    `json:"status"`
		}{o.Page.Content, o.Page.URL, o.Page.Status})
	}
	return json.Marshal(struct {
		Content  string   `json:"content"`
		URL      string   `json:"url"`
		Status   int      `json:"status"`
		Metadata Metadata `json:"metadata"`
	}{o.Page.Content, o.Page.URL, o.Page.Status, o.Page.Metadata})
}

func failure(msg, url string) Outcome {
	return Outcome{Failure: &Failure{Error: msg, URL: url}}
}
