// Package output renders command results to stdout as YAML (the default) or
// JSON. Logs go to stderr, so stdout stays machine-readable.
package output

import (
	"fmt"
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput indents JSON results. YAML ignores it.
var PrettyOutput bool

// Writer receives every printed result. Tests swap it for a buffer.
var Writer io.Writer = os.Stdout

// ParseFormat converts a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatYAML, nil
	case FormatYAML, FormatJSON:
		return f, nil
	}
	return FormatYAML, fmt.Errorf("unsupported format: %s (use yaml or json)", s)
}

// Print writes a single result document in OutputFormat.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatYAML:
		return PrintYAML(v)
	case FormatJSON:
		return PrintJSON(v, PrettyOutput)
	}
	return fmt.Errorf("unsupported output format: %s", OutputFormat)
}
