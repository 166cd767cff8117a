package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideal-institute/bookstall/internal/tui/render"
)

// field is either a text input or, when options is set, an option cycler.
type field struct {
	key     string
	label   string
	input   textinput.Model
	options []string
	index   int
	// label shown for an empty option
	emptyLabel func(string) string
}

func newTextField(key, label, placeholder string, limit int) *field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	return &field{key: key, label: label, input: ti}
}

func newPasswordField(key, label string) *field {
	f := newTextField(key, label, "", 0)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func newCyclerField(key, label string, options []string, emptyLabel func(string) string) *field {
	return &field{key: key, label: label, options: options, emptyLabel: emptyLabel}
}

func (f *field) isCycler() bool {
	return f.options != nil
}

func (f *field) value() string {
	if f.isCycler() {
		if f.index < 0 || f.index >= len(f.options) {
			return ""
		}
		return f.options[f.index]
	}
	return f.input.Value()
}

func (f *field) cycle(delta int) {
	n := len(f.options)
	if n == 0 {
		return
	}
	f.index = ((f.index+delta)%n + n) % n
}

func (f *field) reset() {
	if f.isCycler() {
		f.index = 0
		return
	}
	f.input.Reset()
}

// form is an ordered set of fields with one focused field.
type form struct {
	fields []*field
	focus  int
}

func newForm(fields ...*field) *form {
	f := &form{fields: fields}
	f.focusAt(0)
	return f
}

func (f *form) focused() *field {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	return f.fields[f.focus]
}

func (f *form) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return fl.value()
		}
	}
	return ""
}

func (f *form) set(key, value string) {
	for _, fl := range f.fields {
		if fl.key != key {
			continue
		}
		if !fl.isCycler() {
			fl.input.SetValue(value)
			return
		}
		for i, opt := range fl.options {
			if opt == value {
				fl.index = i
				return
			}
		}
	}
}

// focusAt focuses field i; -1 blurs every field.
func (f *form) focusAt(i int) tea.Cmd {
	f.focus = i
	var cmd tea.Cmd
	for idx, fl := range f.fields {
		if fl.isCycler() {
			continue
		}
		if idx == i {
			cmd = fl.input.Focus()
		} else {
			fl.input.Blur()
		}
	}
	return cmd
}

func (f *form) blur() {
	f.focusAt(-1)
}

func (f *form) atLast() bool {
	return f.focus == len(f.fields)-1
}

func (f *form) next() tea.Cmd {
	return f.focusAt((f.focus + 1) % len(f.fields))
}

func (f *form) prev() tea.Cmd {
	i := f.focus - 1
	if i < 0 {
		i = len(f.fields) - 1
	}
	return f.focusAt(i)
}

func (f *form) reset() {
	for _, fl := range f.fields {
		fl.reset()
	}
	f.focusAt(0)
}

// update routes a key to the focused field: left/right cycle option fields,
// everything else goes to the text input.
func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	fl := f.focused()
	if fl == nil {
		return nil
	}
	if fl.isCycler() {
		switch msg.String() {
		case "left", "h":
			fl.cycle(-1)
		case "right", "l", " ":
			fl.cycle(1)
		}
		return nil
	}
	var cmd tea.Cmd
	fl.input, cmd = fl.input.Update(msg)
	return cmd
}

func (f *form) view() string {
	lines := make([]string, 0, len(f.fields))
	for i, fl := range f.fields {
		state := render.FieldState{Label: fl.label, Focused: i == f.focus}
		if fl.isCycler() {
			state.Cycler = true
			state.Value = fl.value()
			if fl.emptyLabel != nil {
				state.Placeholder = fl.emptyLabel("")
			}
		} else {
			state.Value = fl.input.View()
		}
		lines = append(lines, render.Field(state))
	}
	return strings.Join(lines, "\n")
}

// withEmpty prepends the empty option to opts.
func withEmpty(opts []string) []string {
	out := make([]string, 0, len(opts)+1)
	out = append(out, "")
	return append(out, opts...)
}
