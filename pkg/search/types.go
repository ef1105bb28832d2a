package search

import "encoding/json"

// NoResultsMessage is returned verbatim when the upstream organic list is
// empty or absent. Callers receive this plain string, not an empty array.
const NoResultsMessage = "No results found for the query"

// Response is the outcome of one search call. Organic entries keep the
// upstream API's fields and order; nothing is renamed or deduplicated.
type Response struct {
	Query     string
	Provider  string
	TookMs    int64
	Organic   []map[string]any
	NoResults bool
}

// FormatOrganic renders the organic result list the way callers receive
// it: indented JSON, or the no-results sentinel.
func (r *Response) FormatOrganic() (string, error) {
	if r == nil || r.NoResults || len(r.Organic) == 0 {
		return NoResultsMessage, nil
	}
	data, err := json.MarshalIndent(r.Organic, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
