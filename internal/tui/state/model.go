package state

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/display"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/errors"
	"github.com/ideal-institute/bookstall/internal/logging"
	"github.com/ideal-institute/bookstall/internal/tui/render"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 22
	defaultCellWidth      = 8
	defaultCellHeight     = 16
	statusClearDuration   = 5 * time.Second
)

// Page identifies a TUI screen.
type Page int

const (
	PageLogin Page = iota
	PageRegister
	PageChoose
	PageBuy
	PageSell
	PageSellerProfile
	PageMyProfile
)

var pageTitles = map[Page]string{
	PageLogin:         "Login",
	PageRegister:      "Register",
	PageChoose:        "What would you like to do?",
	PageBuy:           "Buy Books",
	PageSell:          "Sell a Book",
	PageSellerProfile: "Seller Profile",
	PageMyProfile:     "My Profile",
}

func (p Page) String() string {
	if title, ok := pageTitles[p]; ok {
		return title
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

func (p Page) requiresAuth() bool {
	return p != PageLogin && p != PageRegister
}

var chooseOptions = []string{"🛒 Buy Book", "🏷️ Sell Book", "👤 My Profile", "🚪 Logout"}

// Deps are the use cases and environment the model drives.
type Deps struct {
	Browse  *app.BrowseUseCase
	Auth    *app.AuthUseCase
	Sell    *app.SellUseCase
	Profile *app.ProfileUseCase
	Delete  *app.DeleteUseCase
	Session app.Session
	// Images resolves a listing image path to its URL.
	Images func(rel string) string
	// Monitor receives every terminal resize. A private monitor is created
	// when nil.
	Monitor    *display.Monitor
	CellWidth  int
	CellHeight int
	ReadFile   func(path string) ([]byte, error)
	Context    context.Context
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx  context.Context
	deps Deps

	uiState           *UIState
	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
	statusSeq         int

	monitor     *display.Monitor
	unsubscribe display.Unsubscribe
	display     display.State
	blocked     bool

	page    Page
	history []Page
	loading bool
	// pageErr replaces the page body when its data could not be loaded.
	pageErr string

	loginForm    *form
	registerForm *form
	filterForm   *form
	sellForm     *form

	resultsFocused bool
	catalog        *domain.Catalog
	profile        app.Profile
	profileRoll    string
	confirmDelete  bool
}

// NewModel creates a new TUI model and subscribes it to viewport changes.
// Close must be called when the program exits.
func NewModel(deps Deps) (*Model, error) {
	if deps.Browse == nil || deps.Auth == nil || deps.Sell == nil || deps.Profile == nil || deps.Delete == nil {
		return nil, fmt.Errorf("tui: use case dependencies are required")
	}
	if deps.Session == nil {
		return nil, fmt.Errorf("tui: session dependency is required")
	}
	if deps.Images == nil {
		deps.Images = func(rel string) string { return rel }
	}
	if deps.Monitor == nil {
		deps.Monitor = display.NewMonitor(0, 0)
	}
	if deps.CellWidth <= 0 {
		deps.CellWidth = defaultCellWidth
	}
	if deps.CellHeight <= 0 {
		deps.CellHeight = defaultCellHeight
	}
	if deps.ReadFile == nil {
		deps.ReadFile = os.ReadFile
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}

	m := &Model{
		ctx:          deps.Context,
		deps:         deps,
		uiState:      NewUIState(),
		monitor:      deps.Monitor,
		display:      deps.Monitor.Current(),
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		filterForm:   newFilterForm(),
		sellForm:     newSellForm(),
	}
	m.blocked = display.Blocked(m.display)
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.statusSeq++
	})
	m.unsubscribe = m.monitor.Subscribe(m.onViewportChange)

	m.page = PageLogin
	if deps.Session.IsAuthenticated() {
		m.page = PageChoose
	}
	return m, nil
}

func newLoginForm() *form {
	return newForm(
		newTextField("roll_number", "Roll Number", "10-character roll number", domain.RollNumberLength),
		newPasswordField("password", "Password"),
	)
}

func newRegisterForm() *form {
	return newForm(
		newTextField("roll_number", "Roll Number", "10-character roll number", domain.RollNumberLength),
		newTextField("name", "Name", "Full name", 0),
		newPasswordField("password", "Password"),
		newPasswordField("confirm", "Confirm"),
	)
}

func newFilterForm() *form {
	return newForm(
		newTextField("search", "Search", "Search by book name", 0),
		newCyclerField("regulation", "Regulation", withEmpty(domain.Regulations), render.OptionLabel),
		newCyclerField("branch", "Branch", withEmpty(domain.Branches), render.OptionLabel),
		newCyclerField("year", "Year", withEmpty(domain.FilterYears), render.OptionLabel),
	)
}

func newSellForm() *form {
	return newForm(
		newTextField("book_name", "Book Name", "", 0),
		newTextField("subject", "Subject", "", 0),
		newCyclerField("category", "Branch", withEmpty(domain.Branches), render.SelectLabel),
		newCyclerField("regulation", "Regulation", withEmpty(domain.Regulations), render.SelectLabel),
		newCyclerField("book_year", "Year", withEmpty(domain.ListingYears), render.SelectLabel),
		newCyclerField("condition", "Condition", withEmpty(domain.Conditions), render.SelectLabel),
		newTextField("price", "Price (₹)", "0", 8),
		newTextField("description", "Description", "", 500),
		newTextField("photo1", "Photo 1", "path to image (optional)", 0),
		newTextField("photo2", "Photo 2", "path to image (optional)", 0),
	)
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close detaches the model from the viewport monitor.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Page returns the current page.
func (m *Model) Page() Page {
	return m.page
}

// Blocked reports whether the desktop-required view is shown.
func (m *Model) Blocked() bool {
	return m.blocked
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case BooksLoadedMsg:
		return m.handleBooksLoaded(msg)
	case ProfileLoadedMsg:
		return m.handleProfileLoaded(msg)
	case AuthCompletedMsg:
		return m.handleAuthCompleted(msg)
	case ListingSubmittedMsg:
		return m.handleListingSubmitted(msg)
	case ListingDeletedMsg:
		return m.handleListingDeleted(msg)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil
	}
	return m, nil
}

// handleWindowSizeMsg converts the terminal size to pixels and feeds the
// monitor; onViewportChange runs synchronously from Resize.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetSize(msg.Width, msg.Height)
	width, height := display.CellsToPixels(msg.Width, msg.Height, m.deps.CellWidth, m.deps.CellHeight)
	m.monitor.Resize(width, height)
	return m, nil
}

func (m *Model) onViewportChange(state display.State, width int) {
	blocked := display.Blocked(state)
	if blocked != m.blocked || state.Tier() != m.display.Tier() {
		logging.Debug("viewport changed", "tier", state.Tier().String(), "width_px", width, "blocked", blocked)
	}
	m.display = state
	m.blocked = blocked
}

// navigate opens page, remembering the current one for esc.
func (m *Model) navigate(page Page) tea.Cmd {
	if page.requiresAuth() && !m.deps.Session.IsAuthenticated() {
		m.history = nil
		m.page = PageLogin
		m.loginForm.reset()
		m.errorHandler.Warning("Please log in to continue")
		return clearStatusCmd(m.statusSeq)
	}
	if page != m.page {
		m.history = append(m.history, m.page)
	}
	return m.enter(page)
}

// replace opens page without keeping the current one in the history.
func (m *Model) replace(page Page) tea.Cmd {
	m.history = nil
	return m.enter(page)
}

func (m *Model) back() tea.Cmd {
	if len(m.history) == 0 {
		return nil
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.enter(prev)
}

// enter switches to page and starts the fetch the page owns.
func (m *Model) enter(page Page) tea.Cmd {
	m.page = page
	m.pageErr = ""
	m.loading = false
	m.confirmDelete = false
	m.resultsFocused = false
	m.uiState.ResetCursor()

	switch page {
	case PageLogin:
		m.loginForm.reset()
	case PageRegister:
		m.registerForm.reset()
	case PageBuy:
		m.filterForm.reset()
		m.catalog = nil
		m.loading = true
		return loadBooksCmd(m.ctx, m.deps.Browse)
	case PageSell:
		m.sellForm.reset()
	case PageSellerProfile, PageMyProfile:
		roll := m.profileRoll
		if page == PageMyProfile {
			roll = ""
		}
		m.profile = app.Profile{}
		m.loading = true
		return loadProfileCmd(m.ctx, m.deps.Profile, roll)
	}
	return nil
}

func (m *Model) handleBooksLoaded(msg BooksLoadedMsg) (tea.Model, tea.Cmd) {
	if m.page != PageBuy {
		return m, nil
	}
	m.loading = false
	if msg.Err != nil {
		m.pageErr = errors.Describe(msg.Err)
		logging.Error("failed to load books", "error", msg.Err)
		return m, nil
	}
	m.catalog = msg.Catalog
	m.uiState.ResetCursor()
	return m, nil
}

func (m *Model) handleProfileLoaded(msg ProfileLoadedMsg) (tea.Model, tea.Cmd) {
	if m.page != PageSellerProfile && m.page != PageMyProfile {
		return m, nil
	}
	m.loading = false
	if msg.Err != nil {
		m.pageErr = errors.Describe(msg.Err)
		logging.Warn("failed to load profile", "roll_number", msg.Roll, "error", msg.Err)
		return m, nil
	}
	m.profile = msg.Profile
	m.uiState.ClampCursor(len(m.profile.Books))
	return m, nil
}

func (m *Model) handleAuthCompleted(msg AuthCompletedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.errorHandler.Handle(msg.Err)
		return m, clearStatusCmd(m.statusSeq)
	}
	m.errorHandler.Success("Welcome, " + msg.User.RollNumber)
	return m, tea.Batch(m.replace(PageChoose), clearStatusCmd(m.statusSeq))
}

func (m *Model) handleListingSubmitted(msg ListingSubmittedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.errorHandler.Handle(msg.Err)
		return m, clearStatusCmd(m.statusSeq)
	}
	m.errorHandler.Success(msg.Result.Message)
	m.sellForm.reset()
	return m, tea.Batch(m.replace(PageChoose), clearStatusCmd(m.statusSeq))
}

func (m *Model) handleListingDeleted(msg ListingDeletedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.errorHandler.Handle(msg.Err)
		return m, clearStatusCmd(m.statusSeq)
	}
	m.errorHandler.Success(msg.Result.Message)
	cmds := []tea.Cmd{clearStatusCmd(m.statusSeq)}
	if m.page == PageMyProfile {
		m.loading = true
		cmds = append(cmds, loadProfileCmd(m.ctx, m.deps.Profile, ""))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) criteria() domain.Criteria {
	return domain.Criteria{
		Text:       m.filterForm.value("search"),
		Regulation: m.filterForm.value("regulation"),
		Branch:     m.filterForm.value("branch"),
		Year:       m.filterForm.value("year"),
	}
}

func (m *Model) visibleListings() []domain.Listing {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.Visible()
}
