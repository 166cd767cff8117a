package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ideal-institute/bookstall/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter writes indented JSON using the Catalog API field names.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) encode(v any, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// FormatListings writes listings as a JSON array; no listings is "[]".
func (f *JSONFormatter) FormatListings(listings []domain.Listing, writer io.Writer) error {
	if listings == nil {
		listings = []domain.Listing{}
	}
	return f.encode(listings, writer)
}

// FormatUser writes the user as a JSON object.
func (f *JSONFormatter) FormatUser(user domain.User, writer io.Writer) error {
	return f.encode(user, writer)
}

// YAMLFormatter writes YAML using the Catalog API field names.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) encode(v any, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// FormatListings writes listings as a YAML sequence; no listings is "[]".
func (f *YAMLFormatter) FormatListings(listings []domain.Listing, writer io.Writer) error {
	if listings == nil {
		listings = []domain.Listing{}
	}
	return f.encode(listings, writer)
}

// FormatUser writes the user as a YAML mapping.
func (f *YAMLFormatter) FormatUser(user domain.User, writer io.Writer) error {
	return f.encode(user, writer)
}

// Encode writes any value in the json or yaml format.
func Encode(t FormatterType, v any, writer io.Writer) error {
	switch t {
	case FormatterTypeJSON:
		return NewJSONFormatter().encode(v, writer)
	case FormatterTypeYAML:
		return NewYAMLFormatter().encode(v, writer)
	}
	return fmt.Errorf("format %q cannot encode values", t)
}
