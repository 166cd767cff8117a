// Package display classifies the viewport into mobile, tablet and desktop tiers
// and notifies subscribers when it is resized.
package display

import "fmt"

// Tier boundaries in pixels. A width equal to a boundary belongs to the
// larger tier.
const (
	TabletMinWidth  = 768
	DesktopMinWidth = 1024
)

// Tier is a device class derived from the viewport width.
type Tier int

const (
	TierMobile Tier = iota
	TierTablet
	TierDesktop
)

func (t Tier) String() string {
	switch t {
	case TierMobile:
		return "mobile"
	case TierTablet:
		return "tablet"
	case TierDesktop:
		return "desktop"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// State is the classification of a viewport. Exactly one of the tier flags
// is set.
type State struct {
	Width     int  `json:"width" yaml:"width"`
	Height    int  `json:"height" yaml:"height"`
	IsMobile  bool `json:"isMobile" yaml:"isMobile"`
	IsTablet  bool `json:"isTablet" yaml:"isTablet"`
	IsDesktop bool `json:"isDesktop" yaml:"isDesktop"`
}

// Classify derives the viewport state from its pixel width. Height is
// recorded but does not influence the tier.
func Classify(width, height int) State {
	return State{
		Width:     width,
		Height:    height,
		IsMobile:  width < TabletMinWidth,
		IsTablet:  width >= TabletMinWidth && width < DesktopMinWidth,
		IsDesktop: width >= DesktopMinWidth,
	}
}

// Tier returns the tier flagged in s.
func (s State) Tier() Tier {
	switch {
	case s.IsDesktop:
		return TierDesktop
	case s.IsTablet:
		return TierTablet
	default:
		return TierMobile
	}
}

// Blocked reports whether the application must show the desktop-required
// placeholder instead of its pages.
func Blocked(s State) bool {
	return s.IsMobile || s.IsTablet
}

// CellsToPixels converts a terminal size in cells into pixels.
func CellsToPixels(cols, rows, cellWidth, cellHeight int) (width, height int) {
	return cols * cellWidth, rows * cellHeight
}

// RequiredColumns is the narrowest terminal, in columns, that classifies as
// desktop for the given cell width.
func RequiredColumns(cellWidth int) int {
	if cellWidth <= 0 {
		return 0
	}
	return (DesktopMinWidth + cellWidth - 1) / cellWidth
}
