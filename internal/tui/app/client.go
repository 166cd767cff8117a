package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/tui/state"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	// Close releases the viewport subscription.
	Close()
}

// Client defines dependencies needed by the tui command.
type Client interface {
	CreateModel() (Model, error)
	RunProgram(model Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	depsLoader    DepsLoader
	programRunner ProgramRunner
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
func NewDefaultClient(depsLoader DepsLoader, programRunner ProgramRunner) *DefaultClient {
	if depsLoader == nil {
		panic("NewDefaultClient: depsLoader dependency cannot be nil")
	}
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{
		depsLoader:    depsLoader,
		programRunner: programRunner,
	}
}

// CreateModel builds a TUI model implementation.
func (d *DefaultClient) CreateModel() (Model, error) {
	deps, err := d.depsLoader.Load()
	if err != nil {
		return nil, err
	}
	model, err := state.NewModel(deps)
	if err != nil {
		return nil, err
	}
	return model, nil
}

// RunProgram starts the bubbletea program using the configured ProgramRunner
// and closes the model when it exits.
func (d *DefaultClient) RunProgram(model Model) error {
	defer model.Close()
	err := d.programRunner.Run(model)
	if err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
