package output

import (
	"encoding/json"
	"fmt"
)

// PrintJSON writes v to Writer as one JSON document, indented when pretty
// is set and on a single line otherwise. Window titles are not HTML-escaped.
func PrintJSON(v interface{}, pretty bool) error {
	enc := json.NewEncoder(Writer)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
