package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// UIState manages the terminal size, the scrollable body viewport and the
// cursor over the rows of the current page.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int
	cursor   int
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// GetViewport returns the body viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the terminal width in columns.
func (u *UIState) GetWidth() int {
	return u.width
}

// GetHeight returns the terminal height in rows.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetSize records the terminal size. Non-positive values fall back to the
// defaults.
func (u *UIState) SetSize(width, height int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
	u.viewport.Width = u.width
}

// SetBodyHeight sizes the viewport to the rows left after reserved lines.
func (u *UIState) SetBodyHeight(reserved int) {
	h := u.height - reserved
	if h < 1 {
		h = 1
	}
	u.viewport.Height = h
}

// GetCursor returns the selected row.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// ResetCursor moves the cursor to the first row and scrolls to the top.
func (u *UIState) ResetCursor() {
	u.cursor = 0
	u.viewport.SetYOffset(0)
}

// MoveCursor moves the cursor by delta, clamped to [0, count).
func (u *UIState) MoveCursor(delta, count int) {
	if count <= 0 {
		u.cursor = 0
		return
	}
	u.cursor += delta
	if u.cursor < 0 {
		u.cursor = 0
	}
	if u.cursor >= count {
		u.cursor = count - 1
	}
}

// ClampCursor keeps the cursor inside a list of count rows.
func (u *UIState) ClampCursor(count int) {
	u.MoveCursor(0, count)
}

// EnsureVisible scrolls the viewport so that lines [start, end) are shown.
func (u *UIState) EnsureVisible(start, end int) {
	top := u.viewport.YOffset
	height := u.viewport.Height
	switch {
	case start < top:
		u.viewport.SetYOffset(start)
	case end > top+height:
		u.viewport.SetYOffset(end - height)
	}
}
