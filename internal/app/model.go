// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model. It mounts the page for the
// controller's current view and draws the header, footer and toasts around
// it.
package app

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/logging"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/telemetry"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
	"github.com/jeranaias/pokedex-tui/internal/ui/views"
)

// Toast texts.
const (
	MsgSessionExpired = "Your session has expired. Please log in again."
	MsgLoggedOut      = "You have been logged out."
	MsgLoggedIn       = "Welcome back, trainer!"
)

// Options wires the model to its collaborators.
type Options struct {
	Nav       *nav.Controller
	Session   views.Session
	API       views.API
	Telemetry *telemetry.Recorder
	Theme     *styles.Theme
	PageSize  int
	// Server is shown in the footer.
	Server string
}

// Model is the root model.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	deps    *views.Deps
	page    views.Page
	mounted uint64

	header *components.Header
	footer *components.StatusBar
	toast  *components.Toast

	// pending is set by the controller observer and shown on the next mount.
	pending    *components.Toast
	loggingOut bool

	width  int
	height int
	log    *slog.Logger
}

// New creates the model and mounts the page for the current view.
func New(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ModeAuto)
	}

	m := &Model{
		ctx:    ctx,
		cancel: cancel,
		deps: &views.Deps{
			Ctx:      ctx,
			Nav:      opts.Nav,
			Session:  opts.Session,
			API:      opts.API,
			Settler:  fetch.NewSettler(opts.Nav, opts.Telemetry),
			Theme:    theme,
			Keys:     views.DefaultKeyMap(),
			PageSize: opts.PageSize,
		},
		header: components.NewHeader(theme),
		footer: components.NewStatusBar(theme),
		log:    logging.Get("app"),
	}
	m.footer.Server = opts.Server

	opts.Nav.OnChange(m.observe)
	m.mount()
	return m
}

// observe queues a toast for session transitions the pages cannot see.
func (m *Model) observe(old, next nav.ViewState) {
	switch {
	case next.Active == nav.Dashboard && old.Active == nav.Login:
		t := components.NewSuccessToast(MsgLoggedIn)
		m.pending = &t
	case next.Active == nav.Home && m.loggingOut:
		t := components.NewStatusToast(MsgLoggedOut)
		m.pending = &t
	case next.Active == nav.Home && old.Active.RequiresSession() && !m.deps.Session.HasSession():
		t := components.NewErrorToast(MsgSessionExpired)
		m.pending = &t
	}
}

// Init starts the first page.
func (m *Model) Init() tea.Cmd {
	return m.page.Init()
}

// Page returns the mounted page.
func (m *Model) Page() views.Page {
	return m.page
}

// Toast returns the visible toast, or nil.
func (m *Model) Toast() *components.Toast {
	return m.toast
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.deps.Theme.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.footer.SetWidth(msg.Width)
		m.page.SetSize(msg.Width, m.bodyHeight())
		return m, nil

	case components.ToastDismissMsg:
		if m.toast != nil && m.toast.ID == msg.ID {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		var handled bool
		cmd, handled = m.handleKey(msg)
		if !handled {
			m.page, cmd = m.page.Update(msg)
		}

	default:
		m.page, cmd = m.page.Update(msg)
	}

	return m, tea.Batch(cmd, m.sync())
}

// handleKey applies the global shortcuts. Pages that capture input only
// see ctrl+c taken away from them.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := m.deps.Keys
	if key.Matches(msg, k.ForceQuit) {
		return m.quit(), true
	}
	if m.page.Capturing() {
		return nil, false
	}

	signedIn := m.deps.Session.HasSession()
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit(), true
	case key.Matches(msg, k.Home):
		m.navigate(nav.Home)
		return nil, true
	case key.Matches(msg, k.Logout) && signedIn:
		m.loggingOut = true
		m.deps.Nav.ReportLogout()
		m.loggingOut = false
		return nil, true
	case key.Matches(msg, k.Login) && !signedIn:
		m.navigate(nav.Login)
		return nil, true
	}
	return nil, false
}

func (m *Model) navigate(target nav.View) {
	if err := m.deps.Nav.Navigate(target); err != nil {
		m.log.Error("navigation failed", "target", target, "error", err)
	}
}

func (m *Model) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}

// sync mounts a new page when the controller moved since the last mount.
func (m *Model) sync() tea.Cmd {
	if m.deps.Nav.IsCurrent(m.mounted) {
		return nil
	}
	m.mount()

	cmds := []tea.Cmd{m.page.Init()}
	if m.pending != nil {
		m.toast = m.pending
		m.pending = nil
		cmds = append(cmds, m.toast.DismissCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) mount() {
	state := m.deps.Nav.CurrentView()
	m.mounted = m.deps.Nav.Generation()
	m.page = views.New(state, m.deps)
	if m.width > 0 {
		m.page.SetSize(m.width, m.bodyHeight())
	}
	m.log.Debug("mounted page", "view", state.String(), "gen", m.mounted)
}

// bodyHeight is the height left for the page: header one line, footer two.
func (m *Model) bodyHeight() int {
	h := m.height - 3
	if h < 5 {
		h = 5
	}
	return h
}

// View renders header, page, toast and footer.
func (m *Model) View() string {
	state := m.deps.Nav.CurrentView()
	signedIn := m.deps.Session.HasSession()

	m.header.Set(m.page.Title(), headerLinks(state.Active, signedIn)...)
	m.footer.SignedIn = signedIn
	m.footer.SetBindings(m.page.Bindings()...)

	parts := []string{m.header.View(), m.page.View()}
	if m.toast != nil {
		parts = append(parts, m.toast.View())
	}
	parts = append(parts, m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// headerLinks are the navigation entries for a view: protected pages
// offer home and logout, the login page offers home, anything else login.
func headerLinks(v nav.View, signedIn bool) []components.NavLink {
	switch {
	case v.RequiresSession():
		return []components.NavLink{{Key: "h", Label: "Home"}, {Key: "o", Label: "Logout"}}
	case v == nav.Login || v == nav.Register:
		return []components.NavLink{{Key: "esc", Label: "Home"}}
	case signedIn:
		return []components.NavLink{{Key: "d", Label: "Dashboard"}, {Key: "o", Label: "Logout"}}
	default:
		return []components.NavLink{{Key: "l", Label: "Login"}}
	}
}
