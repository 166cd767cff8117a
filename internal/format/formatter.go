// Package format renders listings and profiles for the CLI.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/ideal-institute/bookstall/internal/domain"
)

// Formatter writes listings and users in one output style.
type Formatter interface {
	FormatListings(listings []domain.Listing, writer io.Writer) error
	FormatUser(user domain.User, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple displays one card per listing.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable displays listings in a table with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON displays listings as a JSON array.
	FormatterTypeJSON FormatterType = "json"

	// FormatterTypeYAML displays listings as a YAML sequence.
	FormatterTypeYAML FormatterType = "yaml"
)

// Types lists the supported formatter types.
var Types = []FormatterType{FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON, FormatterTypeYAML}

// ImageResolver turns a listing's relative image path into a URL.
type ImageResolver func(rel string) string

// ParseType validates a formatter name.
func ParseType(name string) (FormatterType, error) {
	t := FormatterType(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: expected simple, table, json or yaml", name)
}

// NewFormatter creates a new formatter of the specified type. images may be
// nil, in which case image paths are printed unresolved.
func NewFormatter(formatterType FormatterType, images ImageResolver) Formatter {
	if images == nil {
		images = func(rel string) string { return rel }
	}
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	case FormatterTypeYAML:
		return NewYAMLFormatter()
	default:
		return NewSimpleFormatter(images)
	}
}
