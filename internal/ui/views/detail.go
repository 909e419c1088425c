// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

const (
	detailKey = "detail"

	statBarWidth = 24
)

// Detail shows one entry and returns to the page it was opened from.
type Detail struct {
	d       *Deps
	gen     uint64
	ctx     nav.DetailContext
	entry   *api.Pokemon
	spinner components.Spinner
	vp      viewport.Model
	loading bool
	err     string
	width   int
	height  int
	log     *slog.Logger
}

// NewDetail creates the detail page for ctx.EntityID.
func NewDetail(d *Deps, ctx nav.DetailContext) *Detail {
	return &Detail{
		d:       d,
		gen:     d.Nav.Generation(),
		ctx:     ctx,
		spinner: components.NewSpinner(d.Theme, "Loading details..."),
		vp:      viewport.New(80, 20),
		log:     pageLogger("detail"),
	}
}

func (p *Detail) Init() tea.Cmd {
	p.loading = true
	id := p.ctx.EntityID
	return tea.Batch(
		p.spinner.Start(),
		fetch.Run(p.d.Ctx, p.gen, detailKey, func(ctx context.Context) (*api.Pokemon, error) {
			return p.d.API.GetPokemon(ctx, id)
		}),
	)
}

func (p *Detail) Title() string {
	if p.entry != nil {
		return "Details " + p.entry.EnglishName
	}
	return "Details Pokemon"
}

func (p *Detail) Capturing() bool { return false }

func (p *Detail) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.vp.Width = width
	p.vp.Height = height
	if p.entry != nil {
		p.vp.SetContent(p.render())
	}
}

func (p *Detail) Bindings() []key.Binding {
	k := p.d.Keys
	return []key.Binding{k.Up, k.Down, k.Back, k.Logout}
}

// Entry returns the loaded entry, or nil.
func (p *Detail) Entry() *api.Pokemon { return p.entry }

// ReturnView is where Back goes.
func (p *Detail) ReturnView() nav.View { return p.ctx.ReturnView }

func (p *Detail) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.Result[*api.Pokemon]:
		if msg.Key != detailKey {
			return p, nil
		}
		outcome, text := fetch.Settle(p.d.Settler, msg, fetch.MsgLoadDetail)
		if outcome == fetch.Stale {
			return p, nil
		}
		p.loading = false
		p.spinner.Stop()
		switch outcome {
		case fetch.Deliver:
			p.entry = msg.Value
			p.vp.SetContent(p.render())
			p.vp.GotoTop()
		case fetch.Failed:
			p.err = text
		}
		return p, nil

	case tea.KeyMsg:
		if key.Matches(msg, p.d.Keys.Back) {
			if err := p.d.Nav.Back(); err != nil {
				p.log.Error("back navigation failed", "error", err)
			}
			return p, nil
		}
		var cmd tea.Cmd
		p.vp, cmd = p.vp.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

func (p *Detail) View() string {
	t := p.d.Theme
	pad := lipgloss.NewStyle().Padding(1, 2)
	switch {
	case p.loading:
		return pad.Render(p.spinner.View())
	case p.err != "":
		return pad.Render(t.ErrorText.Render(p.err) + "\n\n" + t.Muted.Render("Press esc to go back."))
	case p.entry == nil:
		return pad.Render(t.Muted.Render("Pokémon not found"))
	}
	return p.vp.View()
}

// render lays out the loaded entry.
func (p *Detail) render() string {
	t := p.d.Theme
	e := p.entry

	var b strings.Builder

	// Title block
	b.WriteString(t.Title.Render(e.EnglishName) + "  " + t.Number.Render(e.Number()))
	b.WriteString("\n")
	if e.Classification != "" {
		b.WriteString(t.Subtitle.Render(e.Classification))
		b.WriteString("\n")
	}
	b.WriteString(t.Muted.Render(components.Sprite(*e)))
	b.WriteString("\n")

	// Basic info
	b.WriteString(t.Section.Render("Basic information"))
	b.WriteString("\n")
	b.WriteString(infoLine(t, "Generation", e.Gen))
	b.WriteString(infoLine(t, "Height", components.FormatMeasure(e.HeightM, "m")))
	b.WriteString(infoLine(t, "Weight", components.FormatMeasure(e.WeightKg, "kg")))
	b.WriteString(infoLine(t, "Capture rate", strconv.Itoa(e.CaptureRate)))
	b.WriteString(infoLine(t, "Gender", genderText(*e)))
	b.WriteString(t.Label.Render("Types:") + " " + components.TypeBadges(t, e.Types()))
	b.WriteString("\n")

	// Abilities
	b.WriteString(t.Section.Render("Abilities"))
	b.WriteString("\n")
	for _, a := range e.Abilities() {
		b.WriteString("  - " + t.Body.Render(a) + "\n")
	}
	if e.AbilitySpecial != "" {
		b.WriteString("  - " + t.Special.Render(e.AbilitySpecial+" (Special)") + "\n")
	}

	// Evolution chain
	if chain := e.EvolutionChain(); len(chain) > 0 {
		b.WriteString(t.Section.Render("Evolution chain"))
		b.WriteString("\n  ")
		b.WriteString(t.Body.Render(strings.Join(chain, " → ")))
		b.WriteString("\n")
	}

	// Stats
	b.WriteString(t.Section.Render("Base stats"))
	b.WriteString("\n")
	b.WriteString(statLine(t, "HP", e.HP, styles.BadgeSuccess))
	b.WriteString(statLine(t, "Attack", e.Attack, styles.BadgeError))
	b.WriteString(statLine(t, "Defense", e.Defense, styles.BadgeWarning))
	b.WriteString(statLine(t, "Speed", e.Speed, styles.BadgeInfo))

	switch {
	case e.Legendary():
		b.WriteString("\n" + t.Legendary.Render("★ Legendary Pokémon") + "\n")
	case e.Mythical():
		b.WriteString("\n" + t.Legendary.Render("★ Mythical Pokémon") + "\n")
	}

	// Description
	if e.Description != "" {
		b.WriteString(t.Section.Render("Description"))
		b.WriteString("\n")
		b.WriteString(p.renderDescription(e.Description))
	}

	b.WriteString("\n")
	b.WriteString(t.Muted.Render(fmt.Sprintf("Press esc to go back to %s.", p.ctx.ReturnView)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderDescription renders the description as markdown, falling back to
// plain wrapped text if glamour fails.
func (p *Detail) renderDescription(text string) string {
	wrap := p.width - 8
	if wrap < 30 {
		wrap = 30
	}
	style := "light"
	if p.d.Theme.IsDark {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, err := r.Render(text); err == nil {
			return strings.Trim(out, "\n") + "\n"
		}
	}
	return p.d.Theme.Body.Width(wrap).Render(text) + "\n"
}

func infoLine(t *styles.Theme, label, value string) string {
	return t.Label.Render(label+":") + " " + t.Value.Render(value) + "\n"
}

func genderText(e api.Pokemon) string {
	if e.Genderless() {
		return "Genderless"
	}
	return "♂" + components.FormatPercent(e.PercentMale) + " ♀" + components.FormatPercent(e.PercentFemale)
}

func statLine(t *styles.Theme, label string, value int, color lipgloss.AdaptiveColor) string {
	filled, empty := styles.StatBarCells(statBarWidth, value, styles.MaxBaseStat)
	bar := t.StatBarFilled.Foreground(color).Render(strings.Repeat(styles.ProgressFull, filled)) +
		t.StatBarEmpty.Render(strings.Repeat(styles.ProgressEmpty, empty))
	return fmt.Sprintf("  %-8s %3d  %s\n", label, value, bar)
}
