// Package formatter renders listings through user templates with ${variable}
// placeholders and a registry of named presets.
package formatter

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ideal-institute/bookstall/internal/domain"
)

// TemplateEngine provides template parsing and variable substitution.
type TemplateEngine interface {
	// Parse returns the variables found in the template.
	Parse(template string) ([]string, error)

	// Substitute replaces variables in the template with values from the context.
	Substitute(template string, ctx VariableContext) (string, error)
}

type templateEngine struct {
	variablePattern *regexp.Regexp
	resolver        VariableResolver
}

// NewTemplateEngine creates a new template engine instance.
func NewTemplateEngine() TemplateEngine {
	return &templateEngine{
		variablePattern: regexp.MustCompile(`\$\{([a-z0-9-]+)\}`),
		resolver:        NewVariableResolver(),
	}
}

// Parse identifies all variables in a template string using ${variable-name} syntax.
// Returns the variable names without duplicates, in order of appearance.
func (te *templateEngine) Parse(template string) ([]string, error) {
	if err := te.validate(template); err != nil {
		return nil, err
	}
	variables := []string{}
	seen := make(map[string]bool)
	for _, match := range te.variablePattern.FindAllStringSubmatch(template, -1) {
		if !seen[match[1]] {
			variables = append(variables, match[1])
			seen[match[1]] = true
		}
	}
	return variables, nil
}

// Substitute replaces all variables in the template with values from the context.
func (te *templateEngine) Substitute(template string, ctx VariableContext) (string, error) {
	if err := te.validate(template); err != nil {
		return "", err
	}
	var firstErr error
	result := te.variablePattern.ReplaceAllStringFunc(template, func(m string) string {
		value, err := te.resolver.Resolve(te.variablePattern.FindStringSubmatch(m)[1], ctx)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

func (te *templateEngine) validate(template string) error {
	open := strings.Count(template, "${")
	closed := len(te.variablePattern.FindAllString(template, -1))
	if open != closed {
		return fmt.Errorf("malformed template: %d of %d variables are not ${name}", open-closed, open)
	}
	return nil
}

// Resolve turns a --template value into a template string. A preset name
// wins over a literal template.
func Resolve(registry PresetRegistry, value string) string {
	if preset, err := registry.Get(value); err == nil {
		return preset.Template
	}
	return value
}

// WriteListings renders each listing on its own line.
func WriteListings(engine TemplateEngine, template string, listings []domain.Listing, images func(string) string, w io.Writer) error {
	for _, l := range listings {
		line, err := engine.Substitute(template, VariableContext{Listing: l, Images: images})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
