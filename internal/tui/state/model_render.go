package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/display"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.blocked {
		return render.Blocker(render.BlockerState{
			Display:         m.display,
			Columns:         m.uiState.GetWidth(),
			Rows:            m.uiState.GetHeight(),
			RequiredColumns: display.RequiredColumns(m.deps.CellWidth),
		})
	}

	width := m.uiState.GetWidth()
	var s strings.Builder

	s.WriteString(render.Header(m.page.String(), m.deps.Session.RollNumber(), width))
	s.WriteString("\n\n")

	top := m.pageTop()
	if top != "" {
		s.WriteString(top)
		s.WriteString("\n\n")
	}

	// header, blank, blank after top, status, footer
	reserved := 5 + lipgloss.Height(top)
	if top == "" {
		reserved = 4
	}
	m.uiState.SetBodyHeight(reserved)
	m.updateViewportContent()
	s.WriteString(m.uiState.GetViewport().View())

	s.WriteString("\n")
	s.WriteString(render.Status(render.StatusState{Text: m.statusMessage, Type: m.statusMessageType}))
	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{Help: m.help(), Width: width}))

	return s.String()
}

// pageTop is the fixed part of the page above the scrolling body.
func (m *Model) pageTop() string {
	switch m.page {
	case PageLogin:
		return m.loginForm.view()
	case PageRegister:
		return m.registerForm.view()
	case PageBuy:
		return m.filterForm.view()
	case PageSellerProfile, PageMyProfile:
		return m.profileHeader()
	}
	return ""
}

func (m *Model) profileHeader() string {
	if m.loading || m.pageErr != "" {
		return ""
	}
	u := m.profile.User
	name := u.Name
	if name == "" {
		name = "-"
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(name) + " (" + u.RollNumber + ")",
	}
	if u.CreatedAt != "" {
		lines = append(lines, "Member since: "+u.CreatedAt)
	}
	lines = append(lines, fmt.Sprintf("Books listed: %d", len(m.profile.Books)))
	return strings.Join(lines, "\n")
}

// updateViewportContent fills the viewport with the page body and keeps the
// selected row in view.
func (m *Model) updateViewportContent() {
	vp := m.uiState.GetViewport()
	if m.loading {
		vp.SetContent(loadingText(m.page))
		return
	}
	if m.pageErr != "" {
		vp.SetContent(m.pageErr + "\n\nPress esc to go back.")
		return
	}

	switch m.page {
	case PageChoose:
		vp.SetContent(m.chooseBody())
	case PageSell:
		vp.SetContent(m.sellForm.view())
	case PageBuy:
		m.setCards(m.visibleListings(), m.resultsFocused, true, app.MsgNoBooks)
	case PageSellerProfile:
		m.setCards(m.profile.Books, true, false, "This seller has no books listed.")
	case PageMyProfile:
		m.setCards(m.profile.Books, true, false, "You have not listed any books yet.")
	default:
		vp.SetContent("")
	}
}

func loadingText(page Page) string {
	switch page {
	case PageBuy:
		return app.MsgLoadingBooks
	case PageSellerProfile, PageMyProfile:
		return "Loading profile..."
	}
	return "Please wait..."
}

func (m *Model) chooseBody() string {
	cursor := m.uiState.GetCursor()
	selected := lipgloss.NewStyle().Bold(true).Reverse(true)
	lines := make([]string, 0, len(chooseOptions))
	for i, opt := range chooseOptions {
		label := "  " + opt + "  "
		if i == cursor {
			label = selected.Render(label)
		}
		lines = append(lines, label)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) setCards(listings []domain.Listing, showCursor, showSeller bool, empty string) {
	vp := m.uiState.GetViewport()
	if len(listings) == 0 {
		vp.SetContent(empty)
		return
	}
	m.uiState.ClampCursor(len(listings))
	cursor := m.uiState.GetCursor()

	var (
		cards    []string
		lineNo   int
		selStart int
		selEnd   int
	)
	cardWidth := m.uiState.GetWidth()
	if cardWidth > 100 {
		cardWidth = 100
	}
	for i, l := range listings {
		image := ""
		if l.HasImage() {
			image = m.deps.Images(l.ImageURL)
		}
		card := render.Card(render.CardState{
			Listing:    l,
			ImageURL:   image,
			Width:      cardWidth,
			Selected:   showCursor && i == cursor,
			ShowSeller: showSeller,
		})
		if m.page == PageMyProfile && m.confirmDelete && i == cursor {
			card += "\n" + lipgloss.NewStyle().Bold(true).Render("Delete \""+l.Title+"\"? (y/n)")
		}
		h := lipgloss.Height(card)
		if i == cursor {
			selStart, selEnd = lineNo, lineNo+h
		}
		lineNo += h
		cards = append(cards, card)
	}
	vp.SetContent(strings.Join(cards, "\n"))
	if showCursor {
		m.uiState.EnsureVisible(selStart, selEnd)
	}
}

func (m *Model) help() []string {
	switch m.page {
	case PageLogin:
		return []string{"tab: next field", "Enter: login", "ctrl+n: register", "ctrl+c: quit"}
	case PageRegister:
		return []string{"tab: next field", "Enter: register", "esc: back", "ctrl+c: quit"}
	case PageChoose:
		return []string{"j/k: move", "Enter: open", "b: buy", "s: sell", "p: profile", "o: logout", "q: quit"}
	case PageBuy:
		if m.resultsFocused {
			return []string{"j/k: move", "Enter: seller profile", "tab: filters", "ctrl+r: clear", "esc: back"}
		}
		return []string{"tab: next filter", "←/→: change option", "Enter: search", "ctrl+r: clear", "esc: back"}
	case PageSell:
		return []string{"tab: next field", "←/→: change option", "ctrl+s: submit", "esc: back"}
	case PageSellerProfile:
		return []string{"j/k: move", "esc: back", "q: quit"}
	case PageMyProfile:
		if m.confirmDelete {
			return []string{"y: delete", "n: cancel"}
		}
		return []string{"j/k: move", "d: delete", "s: sell", "r: reload", "esc: back", "q: quit"}
	}
	return []string{"ctrl+c: quit"}
}
