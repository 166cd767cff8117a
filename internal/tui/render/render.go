package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/display"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/errors"
	"github.com/ideal-institute/bookstall/internal/format"
)

const (
	// NoImage is shown in place of a listing photo that does not exist.
	NoImage          = "No Image"
	allOption        = "All"
	selectOption     = "Select"
	defaultCardWidth = 60
	labelWidth       = 12
)

// BlockerState defines the inputs needed to render the desktop-required view.
type BlockerState struct {
	Display         display.State
	Columns         int
	Rows            int
	RequiredColumns int
}

// CardState defines the inputs needed to render a listing card.
type CardState struct {
	Listing  domain.Listing
	ImageURL string
	Width    int
	Selected bool
	// ShowSeller adds the seller roll number line.
	ShowSeller bool
}

// FieldState defines the inputs needed to render a form field.
type FieldState struct {
	Label   string
	Value   string
	Focused bool
	// Cycler marks option fields, drawn as "< value >".
	Cycler bool
	// Placeholder is shown by cyclers whose value is empty.
	Placeholder string
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Help  []string
	Width int
}

// StatusState defines the inputs needed to render the status line.
type StatusState struct {
	Text string
	Type errors.MessageType
}

// Header renders the page title with the signed-in roll number.
func Header(title, rollNumber string, width int) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))

	text := "📚 Ideal Bookstore · " + title
	if rollNumber != "" {
		user := "👤 " + rollNumber
		gap := width - utf8.RuneCountInString(text) - utf8.RuneCountInString(user)
		if gap < 2 {
			gap = 2
		}
		text += strings.Repeat(" ", gap) + user
	}
	return headerStyle.Render(text)
}

// Blocker renders the placeholder shown when the terminal is too narrow.
func Blocker(state BlockerState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	lines := []string{
		"💻",
		"",
		titleStyle.Render("Desktop Mode Required"),
		"",
		"Ideal Bookstore is optimized for desktop experience only.",
		fmt.Sprintf("Please widen the terminal to at least %d columns to access all features.", state.RequiredColumns),
		"",
		dimStyle.Render(fmt.Sprintf("Current: %d columns (%dpx, %s)", state.Columns, state.Display.Width, state.Display.Tier())),
		"",
		"📚 Browse Books   💰 Buy & Sell   🎓 Student Community",
		"",
		dimStyle.Render("Ideal Institute of Technology · Making textbooks affordable for every student"),
	}
	content := strings.Join(lines, "\n")

	if state.Columns <= 0 || state.Rows <= 0 {
		return content
	}
	return lipgloss.Place(state.Columns, state.Rows, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(content))
}

// Card renders a single listing.
func Card(state CardState) string {
	width := state.Width
	if width <= 0 {
		width = defaultCardWidth
	}
	border := lipgloss.RoundedBorder()
	cardStyle := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1).
		Width(width - 2)
	if state.Selected {
		cardStyle = cardStyle.BorderForeground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	}
	titleStyle := lipgloss.NewStyle().Bold(true)

	l := state.Listing
	image := state.ImageURL
	if !l.HasImage() || image == "" {
		image = NoImage
	}
	lines := []string{
		titleStyle.Render(truncate(l.Title, width-6)),
		line("Subject", l.Subject),
		line("Branch", l.Branch()),
		line("Regulation", l.Regulation),
		line("Year", l.BookYear.String()),
		line("Condition", l.Condition),
		line("Price", format.Price(l.Price)),
		line("Image", truncate(image, width-labelWidth-6)),
	}
	if l.Description != "" {
		lines = append(lines, line("About", truncate(l.Description, width-labelWidth-6)))
	}
	if state.ShowSeller {
		lines = append(lines, line("Seller", l.SellerRollNo))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Field renders a labelled form field.
func Field(state FieldState) string {
	labelStyle := lipgloss.NewStyle().Width(labelWidth)
	if state.Focused {
		labelStyle = labelStyle.Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	}
	value := state.Value
	if state.Cycler {
		if value == "" {
			value = state.Placeholder
		}
		value = "< " + value + " >"
		if !state.Focused {
			value = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(value)
		}
	}
	return labelStyle.Render(state.Label) + " " + value
}

// OptionLabel is the text shown for a filter option; the empty option means
// no filter.
func OptionLabel(value string) string {
	if value == "" {
		return allOption
	}
	return value
}

// SelectLabel is the text shown for an unset form option.
func SelectLabel(value string) string {
	if value == "" {
		return selectOption
	}
	return value
}

// Status renders the status line.
func Status(state StatusState) string {
	if state.Text == "" {
		return ""
	}
	style := lipgloss.NewStyle()
	prefix := ""
	switch state.Type {
	case errors.MessageTypeError:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
		prefix = "✗ "
	case errors.MessageTypeWarning:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
		prefix = "⚠ "
	case errors.MessageTypeSuccess:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
		prefix = "✓ "
	default:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	}
	return style.Render(prefix + state.Text)
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	text := strings.Join(state.Help, "  |  ")
	if state.Width > 0 {
		text = truncate(text, state.Width)
	}
	return helpStyle.Render(text)
}

func line(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%-*s %s", labelWidth, label+":", value)
}

func truncate(value string, width int) string {
	if width <= 3 || utf8.RuneCountInString(value) <= width {
		return value
	}
	return string([]rune(value)[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
