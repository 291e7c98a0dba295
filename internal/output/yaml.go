package output

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PrintYAML writes v to Writer as a YAML document with two-space indentation.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
