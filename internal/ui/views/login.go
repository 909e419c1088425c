// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
)

const (
	loginKey = "login"

	msgLoginMissing   = "Please enter username and password"
	msgLoginBadFormat = "Invalid response format"
	msgLoginFailed    = "Login failed"
)

// Login asks for credentials and stores the token on success.
type Login struct {
	d       *Deps
	gen     uint64
	form    form
	spinner components.Spinner
	pending bool
	err     string
	log     *slog.Logger
}

// NewLogin creates the login page.
func NewLogin(d *Deps) *Login {
	return &Login{
		d:   d,
		gen: d.Nav.Generation(),
		form: newForm(
			field{label: "Username", limit: 64},
			field{label: "Password", secret: true, limit: 128},
		),
		spinner: components.NewSpinner(d.Theme, "Signing in..."),
		log:     pageLogger("login"),
	}
}

func (p *Login) Init() tea.Cmd { return nil }

func (p *Login) Title() string { return "Login Pokemon" }

func (p *Login) Capturing() bool { return true }

func (p *Login) SetSize(int, int) {}

func (p *Login) Bindings() []key.Binding {
	k := p.d.Keys
	return []key.Binding{
		k.Submit, k.NextField,
		key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("C-r", "register")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
	}
}

func (p *Login) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.Result[string]:
		if msg.Key != loginKey {
			return p, nil
		}
		return p, p.finish(msg)

	case tea.KeyMsg:
		if p.pending {
			return p, nil
		}
		switch msg.String() {
		case "esc":
			navigate(p.d, p.log, nav.Home)
			return p, nil
		case "ctrl+r":
			navigate(p.d, p.log, nav.Register)
			return p, nil
		case "enter":
			return p, p.submit()
		case "tab", "down":
			return p, p.form.move(1)
		case "shift+tab", "up":
			return p, p.form.move(-1)
		}
	}

	if p.pending {
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, p.form.update(msg)
}

func (p *Login) submit() tea.Cmd {
	username := strings.TrimSpace(p.form.value(0))
	password := p.form.value(1)
	if username == "" || password == "" {
		p.err = msgLoginMissing
		return nil
	}

	p.err = ""
	p.pending = true
	return tea.Batch(
		p.spinner.Start(),
		fetch.Run(p.d.Ctx, p.gen, loginKey, func(ctx context.Context) (string, error) {
			return p.d.API.Login(ctx, username, password)
		}),
	)
}

func (p *Login) finish(res fetch.Result[string]) tea.Cmd {
	if !p.d.Nav.IsCurrent(res.Gen) {
		return nil
	}
	p.pending = false
	p.spinner.Stop()

	if res.Err != nil {
		p.err = loginError(res.Err)
		p.log.Info("login refused", "error", res.Err)
		return nil
	}

	if err := p.d.Session.SetSession(res.Value); err != nil {
		p.err = "Could not save the session: " + err.Error()
		p.log.Error("storing session failed", "error", err)
		return nil
	}
	p.d.Nav.ReportLoginSuccess()
	return nil
}

func loginError(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrConnectivity):
		return fetch.MsgConnectivity
	case errors.Is(err, api.ErrMalformedResponse):
		return msgLoginBadFormat
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	default:
		return msgLoginFailed
	}
}

func (p *Login) View() string {
	t := p.d.Theme
	var b strings.Builder
	b.WriteString(t.Title.Render("Login"))
	b.WriteString("\n")
	if p.err != "" {
		b.WriteString(t.ErrorText.Render(p.err))
		b.WriteString("\n\n")
	}
	b.WriteString(p.form.view(t))
	if p.pending {
		b.WriteString("\n")
		b.WriteString(p.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(t.Muted.Render("No account? Press ctrl+r to register."))

	return lipgloss.NewStyle().Padding(1, 2).Render(t.Form.Render(b.String()))
}
