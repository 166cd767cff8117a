// Package app provides TUI application adapters for command wiring.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideal-institute/bookstall/internal/tui/state"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner is the default implementation of ProgramRunner
// that wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program in the alternate screen with mouse cell
// motion enabled.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// DepsLoader provides the use cases and environment of the TUI model.
type DepsLoader interface {
	Load() (state.Deps, error)
}

// DepsLoaderFunc adapts a function to DepsLoader.
type DepsLoaderFunc func() (state.Deps, error)

// Load calls f.
func (f DepsLoaderFunc) Load() (state.Deps, error) {
	return f()
}
