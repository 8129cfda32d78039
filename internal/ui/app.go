package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/waypoint/internal/locale"
	"github.com/five82/waypoint/internal/pages"
	"github.com/five82/waypoint/internal/prefs"
	"github.com/five82/waypoint/internal/router"
	"github.com/five82/waypoint/internal/state"
	"github.com/five82/waypoint/internal/theme"
)

// Options configures the shell.
type Options struct {
	Context    context.Context
	Router     *router.Router[pages.Page]
	Themes     *theme.Manager
	Store      *state.Store
	Translator *locale.Translator
	Prefs      prefs.Prefs
	PrefsPath  string // empty disables saving
	Logger     zerolog.Logger
}

// Model is the root Bubble Tea model: a header with the breadcrumb, a route
// sidebar, the current page and a footer.
type Model struct {
	// Collaborators
	ctx    context.Context
	router *router.Router[pages.Page]
	themes *theme.Manager
	store  *state.Store
	tr     *locale.Translator
	logger zerolog.Logger

	// Preferences
	prefs     prefs.Prefs
	prefsPath string

	// UI state
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates the shell model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.New(theme.Light)
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	m := Model{
		ctx:       ctx,
		router:    opts.Router,
		themes:    themes,
		store:     store,
		tr:        opts.Translator,
		logger:    opts.Logger,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.syncKeys()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.initPage()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, m.refreshPage()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pages.NavigateMsg:
		return m.navigate(msg.Route, msg.Param)

	case pages.SetThemeMsg:
		m.setTheme(msg.Kind)
		return m, nil
	}

	return m.updatePage(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes global keys and forwards the rest to the page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m.goBack()

	case key.Matches(msg, m.keys.Forward):
		return m.goForward()

	case key.Matches(msg, m.keys.Clear):
		m.clearHistory()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(theme.Next(m.themes.Current()))
		return m, nil
	}

	for _, rb := range m.keys.routeBindings() {
		if key.Matches(msg, rb.binding) {
			return m.navigate(rb.route, nil)
		}
	}

	return m.updatePage(msg)
}

func (m Model) navigate(route string, param any) (tea.Model, tea.Cmd) {
	if m.router == nil {
		return m, nil
	}
	if err := m.router.NavigateTo(route, param); err != nil {
		m.store.RecordError(err)
		m.logger.Warn().Str("Function", "ui.navigate").Str("Route", route).Err(err).Msg("navigation rejected")
		return m, nil
	}
	m.syncKeys()
	return m, tea.Batch(m.refreshPage(), m.initPage())
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	if m.router == nil || !m.router.CanGoBack() {
		return m, nil
	}
	m.router.GoBack()
	m.syncKeys()
	return m, tea.Batch(m.refreshPage(), m.initPage())
}

func (m Model) goForward() (tea.Model, tea.Cmd) {
	if m.router == nil || !m.router.CanGoForward() {
		return m, nil
	}
	m.router.GoForward()
	m.syncKeys()
	return m, tea.Batch(m.refreshPage(), m.initPage())
}

// clearHistory empties both stacks. The router emits no event for this, so
// the store is updated directly.
func (m *Model) clearHistory() {
	if m.router == nil {
		return
	}
	m.router.ClearHistory()
	m.store.RecordHistory(nil, nil)
	m.syncKeys()
	m.refreshPage()
}

func (m *Model) setTheme(kind theme.Kind) {
	m.themes.SetTheme(kind)
	m.prefs.Theme = m.themes.Current().String()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn().Str("Function", "ui.setTheme").Err(err).Msg("save preferences")
	}
}

// syncKeys enables the history bindings only when the move is possible.
func (m *Model) syncKeys() {
	canBack, canForward := false, false
	if m.router != nil {
		canBack = m.router.CanGoBack()
		canForward = m.router.CanGoForward()
	}
	m.keys.Back.SetEnabled(canBack)
	m.keys.Forward.SetEnabled(canForward)
}

func (m Model) currentPage() (pages.Page, bool) {
	if m.router == nil {
		return nil, false
	}
	page, ok := m.router.CurrentView()
	if !ok || page == nil {
		return nil, false
	}
	return page, true
}

func (m Model) initPage() tea.Cmd {
	page, ok := m.currentPage()
	if !ok {
		return nil
	}
	return page.Init()
}

// refreshPage hands the current page its content size. It runs inside
// Update so the page's View stays free of side effects.
func (m Model) refreshPage() tea.Cmd {
	page, ok := m.currentPage()
	if !ok || !m.ready {
		return nil
	}
	width, height := m.contentSize()
	_, cmd := page.Update(pages.RefreshMsg{Width: width, Height: height})
	return cmd
}

// updatePage forwards msg to the current page. Pages are pointers kept in
// router history, so the returned Page is not stored.
func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := m.currentPage()
	if !ok {
		return m, nil
	}
	_, cmd := page.Update(msg)
	return m, cmd
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
