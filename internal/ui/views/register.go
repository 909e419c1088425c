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
	registerKey = "register"

	msgRegisterConfirm = "Are you sure you want to register?"
	msgRegisterDone    = "Registration completed successfully!"
	msgRegisterFailed  = "There was a problem during registration"
	msgRegisterMissing = "Please fill in every field"
)

// Register creates an account. It never touches the session.
type Register struct {
	d       *Deps
	gen     uint64
	form    form
	confirm *components.Confirm
	err     string
	log     *slog.Logger
}

// NewRegister creates the registration page.
func NewRegister(d *Deps) *Register {
	return &Register{
		d:   d,
		gen: d.Nav.Generation(),
		form: newForm(
			field{label: "Username", limit: 64},
			field{label: "Password", secret: true, limit: 128},
			field{label: "Email", limit: 128},
		),
		confirm: components.NewConfirm(d.Theme),
		log:     pageLogger("register"),
	}
}

func (p *Register) Init() tea.Cmd { return nil }

func (p *Register) Title() string { return "Register Pokemon" }

func (p *Register) Capturing() bool { return true }

func (p *Register) SetSize(width, height int) {
	p.confirm.SetSize(width, height)
}

func (p *Register) Bindings() []key.Binding {
	k := p.d.Keys
	return []key.Binding{
		k.Submit, k.NextField,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
	}
}

func (p *Register) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ConfirmResponseMsg:
		if msg.ID != registerKey || !msg.Confirmed {
			return p, nil
		}
		return p, p.send()

	case components.ConfirmClosedMsg:
		if msg.ID == registerKey && msg.Success {
			navigate(p.d, p.log, nav.Home)
		}
		return p, nil

	case fetch.Result[string]:
		if msg.Key == registerKey {
			p.finish(msg)
		}
		return p, nil

	case tea.KeyMsg:
		if cmd, handled := p.confirm.Update(msg); handled {
			return p, cmd
		}
		switch msg.String() {
		case "esc":
			navigate(p.d, p.log, nav.Home)
			return p, nil
		case "enter":
			p.ask()
			return p, nil
		case "tab", "down":
			return p, p.form.move(1)
		case "shift+tab", "up":
			return p, p.form.move(-1)
		}
	}
	return p, p.form.update(msg)
}

func (p *Register) ask() {
	if p.form.missing() != "" {
		p.err = msgRegisterMissing
		return
	}
	p.err = ""
	p.confirm.Show(registerKey, msgRegisterConfirm)
}

func (p *Register) send() tea.Cmd {
	username := strings.TrimSpace(p.form.value(0))
	password := p.form.value(1)
	email := strings.TrimSpace(p.form.value(2))
	return fetch.Run(p.d.Ctx, p.gen, registerKey, func(ctx context.Context) (string, error) {
		return p.d.API.Register(ctx, username, password, email)
	})
}

func (p *Register) finish(res fetch.Result[string]) {
	if !p.d.Nav.IsCurrent(res.Gen) {
		return
	}
	if res.Err == nil {
		p.log.Debug("registration accepted", "server", res.Value)
		p.confirm.SetResult(true, msgRegisterDone)
		return
	}

	p.log.Info("registration refused", "error", res.Err)
	var apiErr *api.APIError
	switch {
	case errors.Is(res.Err, api.ErrConnectivity):
		p.confirm.SetResult(false, fetch.MsgConnectivity)
	case errors.As(res.Err, &apiErr) && apiErr.Message != "":
		p.confirm.SetResult(false, apiErr.Message)
	default:
		p.confirm.SetResult(false, msgRegisterFailed)
	}
}

func (p *Register) View() string {
	if p.confirm.IsVisible() {
		return p.confirm.View()
	}

	t := p.d.Theme
	var b strings.Builder
	b.WriteString(t.Title.Render("Registration"))
	b.WriteString("\n")
	if p.err != "" {
		b.WriteString(t.ErrorText.Render(p.err))
		b.WriteString("\n\n")
	}
	b.WriteString(p.form.view(t))
	b.WriteString("\n")
	b.WriteString(t.Muted.Render("Press esc to go back home."))

	return lipgloss.NewStyle().Padding(1, 2).Render(t.Form.Render(b.String()))
}
