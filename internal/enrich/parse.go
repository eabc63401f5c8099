package enrich

import (
	"encoding/json"
	"strings"
)

// payload is the JSON shape the model is instructed to return. Pointer
// fields distinguish a missing key from an empty string.
type payload struct {
	Translate  *string `json:"translate"`
	Definition *string `json:"definition"`
}

// parseEntry try-parses a model response into an Entry. It returns
// ok=false when content is not a JSON object, leaving the drop-the-word
// policy to the caller. A parsed object with a missing field gets the
// NotFound sentinel instead.
func parseEntry(word, content string) (Entry, bool) {
	content = strings.TrimSpace(content)

	// Only a JSON object conforms; a bare "null" or other scalar would
	// otherwise unmarshal into an all-sentinel entry.
	if !strings.HasPrefix(content, "{") {
		return Entry{}, false
	}

	var p payload
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return Entry{}, false
	}

	entry := Entry{
		Word:        word,
		Translation: NotFound,
		Definition:  NotFound,
	}
	if p.Translate != nil {
		entry.Translation = *p.Translate
	}
	if p.Definition != nil {
		entry.Definition = *p.Definition
	}

	return entry, true
}
