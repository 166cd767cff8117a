package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideal-institute/bookstall/internal/tui/render"
	"github.com/stretchr/testify/assert"
)

func TestCyclerWrapsBothWays(t *testing.T) {
	f := newCyclerField("regulation", "Regulation", withEmpty([]string{"R20", "R23"}), render.OptionLabel)

	f.cycle(-1)
	assert.Equal(t, "R23", f.value())
	f.cycle(1)
	assert.Equal(t, "", f.value())
	f.cycle(2)
	assert.Equal(t, "R23", f.value())

	f.reset()
	assert.Equal(t, "", f.value())
}

func TestFormFocusWrapsAndRoutesKeys(t *testing.T) {
	f := newForm(
		newTextField("search", "Search", "", 0),
		newCyclerField("branch", "Branch", withEmpty([]string{"CSE", "ECE"}), render.OptionLabel),
	)

	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("graph")})
	assert.Equal(t, "graph", f.value("search"))

	f.next()
	assert.True(t, f.atLast())
	f.update(tea.KeyMsg{Type: tea.KeyRight})
	f.update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "ECE", f.value("branch"))

	// keys typed while a cycler is focused do not reach the text input
	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "graph", f.value("search"))

	f.next()
	assert.Equal(t, 0, f.focus)
	f.prev()
	assert.Equal(t, 1, f.focus)

	f.reset()
	assert.Empty(t, f.value("search"))
	assert.Empty(t, f.value("branch"))
	assert.Equal(t, 0, f.focus)
}

func TestFormSetAndView(t *testing.T) {
	f := newForm(
		newTextField("name", "Name", "", 0),
		newCyclerField("condition", "Condition", withEmpty([]string{"New", "Used"}), render.SelectLabel),
	)

	assert.Contains(t, f.view(), "< Select >")

	f.set("name", "Asha")
	f.set("condition", "Used")
	f.set("condition", "Broken")

	assert.Equal(t, "Asha", f.value("name"))
	assert.Equal(t, "Used", f.value("condition"))
	assert.Contains(t, f.view(), "< Used >")
	assert.Empty(t, f.value("missing"))
}

func TestUIStateCursorAndSize(t *testing.T) {
	u := NewUIState()
	assert.Equal(t, defaultViewportWidth, u.GetWidth())

	u.SetSize(0, -1)
	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight, u.GetHeight())

	u.MoveCursor(5, 3)
	assert.Equal(t, 2, u.GetCursor())
	u.MoveCursor(-10, 3)
	assert.Equal(t, 0, u.GetCursor())
	u.MoveCursor(1, 0)
	assert.Equal(t, 0, u.GetCursor())

	u.SetSize(120, 30)
	u.SetBodyHeight(40)
	assert.Equal(t, 1, u.GetViewport().Height)
}
