// Package output renders command results in machine-readable formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Print formats data according to format and writes it to w.
func Print(w io.Writer, format string, data interface{}) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		return printJSON(w, data)
	case FormatYAML, "yml":
		return printYAML(w, data)
	case FormatText, "":
		_, err := fmt.Fprintf(w, "%+v\n", data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Validate returns an error for any format Print cannot render.
func Validate(format string) error {
	switch strings.ToLower(format) {
	case FormatText, "", FormatJSON, FormatYAML, "yml":
		return nil
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// Structured reports whether format selects a machine-readable rendering.
func Structured(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, "yml":
		return true
	}
	return false
}

func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}
