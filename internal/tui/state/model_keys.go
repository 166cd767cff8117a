package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/logging"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	// Only quitting works behind the desktop-required view.
	if m.blocked {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		if m.confirmDelete {
			m.confirmDelete = false
			return m, nil
		}
		return m, m.back()
	}
	if m.loading {
		return m, nil
	}

	switch m.page {
	case PageLogin:
		return m.handleLoginKeys(msg)
	case PageRegister:
		return m.handleRegisterKeys(msg)
	case PageChoose:
		return m.handleChooseKeys(msg)
	case PageBuy:
		return m.handleBuyKeys(msg)
	case PageSell:
		return m.handleSellKeys(msg)
	case PageSellerProfile:
		return m.handleSellerProfileKeys(msg)
	case PageMyProfile:
		return m.handleMyProfileKeys(msg)
	}
	return m, nil
}

// handleFormNavigation moves focus with tab, shift+tab, up and down. It
// reports whether the key was consumed.
func handleFormNavigation(f *form, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		return f.next(), true
	case "shift+tab", "up":
		return f.prev(), true
	}
	return nil, false
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := handleFormNavigation(m.loginForm, msg); ok {
		return m, cmd
	}
	switch msg.String() {
	case "ctrl+n":
		return m, m.navigate(PageRegister)
	case "enter":
		if !m.loginForm.atLast() {
			return m, m.loginForm.next()
		}
		roll := strings.TrimSpace(m.loginForm.value("roll_number"))
		m.loading = true
		return m, loginCmd(m.ctx, m.deps.Auth, roll, m.loginForm.value("password"))
	}
	return m, m.loginForm.update(msg)
}

func (m *Model) handleRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := handleFormNavigation(m.registerForm, msg); ok {
		return m, cmd
	}
	if msg.String() == "enter" {
		if !m.registerForm.atLast() {
			return m, m.registerForm.next()
		}
		input := app.RegisterInput{
			RollNumber:      strings.TrimSpace(m.registerForm.value("roll_number")),
			Name:            strings.TrimSpace(m.registerForm.value("name")),
			Password:        m.registerForm.value("password"),
			ConfirmPassword: m.registerForm.value("confirm"),
		}
		m.loading = true
		return m, registerCmd(m.ctx, m.deps.Auth, input)
	}
	return m, m.registerForm.update(msg)
}

func (m *Model) handleChooseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.uiState.MoveCursor(-1, len(chooseOptions))
	case "down", "j":
		m.uiState.MoveCursor(1, len(chooseOptions))
	case "b":
		return m, m.navigate(PageBuy)
	case "s":
		return m, m.navigate(PageSell)
	case "p":
		return m, m.navigate(PageMyProfile)
	case "o":
		return m, m.logout()
	case "enter":
		switch m.uiState.GetCursor() {
		case 0:
			return m, m.navigate(PageBuy)
		case 1:
			return m, m.navigate(PageSell)
		case 2:
			return m, m.navigate(PageMyProfile)
		case 3:
			return m, m.logout()
		}
	}
	return m, nil
}

func (m *Model) logout() tea.Cmd {
	if err := m.deps.Auth.Logout(); err != nil {
		m.errorHandler.Handle(err)
		return clearStatusCmd(m.statusSeq)
	}
	m.errorHandler.Info("Logged out")
	return tea.Batch(m.replace(PageLogin), clearStatusCmd(m.statusSeq))
}

func (m *Model) handleBuyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		m.filterForm.reset()
		m.resultsFocused = false
		if m.catalog != nil {
			m.catalog.Reset()
		}
		m.uiState.ResetCursor()
		return m, nil
	case "tab":
		if m.resultsFocused {
			m.resultsFocused = false
			return m, m.filterForm.focusAt(0)
		}
		if m.filterForm.atLast() {
			m.resultsFocused = true
			m.filterForm.blur()
			return m, nil
		}
		return m, m.filterForm.next()
	case "shift+tab":
		if m.resultsFocused {
			m.resultsFocused = false
			return m, m.filterForm.focusAt(len(m.filterForm.fields) - 1)
		}
		if m.filterForm.focus == 0 {
			m.resultsFocused = true
			m.filterForm.blur()
			return m, nil
		}
		return m, m.filterForm.prev()
	case "up":
		m.uiState.MoveCursor(-1, len(m.visibleListings()))
		return m, nil
	case "down":
		m.uiState.MoveCursor(1, len(m.visibleListings()))
		return m, nil
	case "enter":
		if m.resultsFocused {
			return m, m.openSeller()
		}
		m.search()
		return m, nil
	}
	if m.resultsFocused {
		switch msg.String() {
		case "k":
			m.uiState.MoveCursor(-1, len(m.visibleListings()))
		case "j":
			m.uiState.MoveCursor(1, len(m.visibleListings()))
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.filterForm.update(msg)
}

func (m *Model) search() {
	if m.catalog == nil {
		return
	}
	criteria := m.criteria()
	visible := m.catalog.Search(criteria)
	m.uiState.ResetCursor()
	logging.Debug("catalog search", "text", criteria.Text, "regulation", criteria.Regulation,
		"branch", criteria.Branch, "year", criteria.Year, "matches", len(visible))
}

func (m *Model) openSeller() tea.Cmd {
	listings := m.visibleListings()
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(listings) {
		return nil
	}
	m.profileRoll = listings[cursor].SellerRollNo
	return m.navigate(PageSellerProfile)
}

func (m *Model) handleSellKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := handleFormNavigation(m.sellForm, msg); ok {
		return m, cmd
	}
	switch msg.String() {
	case "ctrl+s":
		return m, m.submitListing()
	case "enter":
		if !m.sellForm.atLast() {
			return m, m.sellForm.next()
		}
		return m, m.submitListing()
	}
	return m, m.sellForm.update(msg)
}

func (m *Model) submitListing() tea.Cmd {
	f := m.sellForm
	listing := domain.NewListing{
		Title:       strings.TrimSpace(f.value("book_name")),
		BookYear:    f.value("book_year"),
		Subject:     strings.TrimSpace(f.value("subject")),
		Category:    f.value("category"),
		Regulation:  f.value("regulation"),
		Condition:   f.value("condition"),
		Price:       strings.TrimSpace(f.value("price")),
		Description: strings.TrimSpace(f.value("description")),
	}
	var photos []string
	for _, key := range []string{"photo1", "photo2"} {
		if p := strings.TrimSpace(f.value(key)); p != "" {
			photos = append(photos, p)
		}
	}
	m.loading = true
	return submitListingCmd(m.ctx, m.deps.Sell, listing, photos, m.deps.ReadFile)
}

func (m *Model) handleSellerProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.uiState.MoveCursor(-1, len(m.profile.Books))
	case "down", "j":
		m.uiState.MoveCursor(1, len(m.profile.Books))
	}
	return m, nil
}

func (m *Model) handleMyProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	books := m.profile.Books
	if m.confirmDelete {
		switch msg.String() {
		case "y", "Y":
			m.confirmDelete = false
			cursor := m.uiState.GetCursor()
			if cursor < 0 || cursor >= len(books) {
				return m, nil
			}
			m.loading = true
			return m, deleteListingCmd(m.ctx, m.deps.Delete, books[cursor].ID)
		case "n", "N":
			m.confirmDelete = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.uiState.MoveCursor(-1, len(books))
	case "down", "j":
		m.uiState.MoveCursor(1, len(books))
	case "d":
		if len(books) > 0 {
			m.confirmDelete = true
		}
	case "s":
		return m, m.navigate(PageSell)
	case "r":
		return m, m.enter(PageMyProfile)
	}
	return m, nil
}
