// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

const catalogKey = "catalog"

// Catalog lists every entry and opens the detail page.
type Catalog struct {
	d       *Deps
	gen     uint64
	list    entryList
	spinner components.Spinner
	loading bool
	loaded  bool
	err     string
	width   int
	log     *slog.Logger
}

// NewCatalog creates the catalog page.
func NewCatalog(d *Deps) *Catalog {
	return &Catalog{
		d:       d,
		gen:     d.Nav.Generation(),
		list:    newEntryList(d.PageSize),
		spinner: components.NewSpinner(d.Theme, "Loading Pokémon..."),
		log:     pageLogger("catalog"),
	}
}

func (p *Catalog) Init() tea.Cmd { return p.load() }

func (p *Catalog) Title() string { return "Catalog Pokemon" }

func (p *Catalog) Capturing() bool { return false }

func (p *Catalog) SetSize(width, _ int) { p.width = width }

func (p *Catalog) Bindings() []key.Binding {
	k := p.d.Keys
	return []key.Binding{k.Up, k.Down, k.NextPage, k.Open, k.Reload, k.Back, k.Logout}
}

// load starts the fetch unless one is already running.
func (p *Catalog) load() tea.Cmd {
	if p.loading {
		return nil
	}
	p.loading = true
	p.err = ""
	return tea.Batch(
		p.spinner.Start(),
		fetch.Run(p.d.Ctx, p.gen, catalogKey, p.d.API.ListPokemon),
	)
}

func (p *Catalog) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.Result[[]api.Pokemon]:
		if msg.Key != catalogKey {
			return p, nil
		}
		outcome, text := fetch.Settle(p.d.Settler, msg, fetch.MsgLoadList)
		if outcome == fetch.Stale {
			return p, nil
		}
		p.loading = false
		p.spinner.Stop()
		switch outcome {
		case fetch.Deliver:
			p.list.set(msg.Value)
			p.loaded = true
		case fetch.Failed:
			p.err = text
		}
		return p, nil

	case tea.KeyMsg:
		k := p.d.Keys
		switch {
		case key.Matches(msg, k.Up):
			p.list.move(-1)
		case key.Matches(msg, k.Down):
			p.list.move(1)
		case key.Matches(msg, k.PrevPage):
			p.list.turn(-1)
		case key.Matches(msg, k.NextPage):
			p.list.turn(1)
		case key.Matches(msg, k.Reload):
			return p, p.load()
		case key.Matches(msg, k.Back):
			navigate(p.d, p.log, nav.Dashboard)
		case key.Matches(msg, k.Open):
			if e, ok := p.list.selected(); ok {
				navigate(p.d, p.log, nav.Detail, nav.Params{EntityID: e.NationalNumber})
			}
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

func (p *Catalog) View() string {
	return listPage(p.d.Theme, p.width, listState{
		title:   "All Pokémon",
		empty:   "No Pokémon found",
		spinner: p.spinner,
		loading: p.loading,
		loaded:  p.loaded,
		err:     p.err,
		list:    &p.list,
	})
}

// listState is what listPage needs from a list page.
type listState struct {
	title   string
	empty   string
	spinner components.Spinner
	loading bool
	loaded  bool
	err     string
	list    *entryList
}

// listPage renders the shared layout of the catalog and wishlist: the rows
// on the left and the selected entry's card on the right when wide enough.
func listPage(t *styles.Theme, width int, s listState) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(s.title))
	b.WriteString("\n")

	switch {
	case s.loading:
		b.WriteString(s.spinner.View())
	case s.err != "":
		b.WriteString(t.ErrorText.Render(s.err))
		b.WriteString("\n")
		b.WriteString(t.Muted.Render("Press r to retry."))
	case s.loaded && s.list.len() == 0:
		b.WriteString(t.Muted.Render(s.empty))
	case s.loaded:
		rows := s.list.view(t, width-34)
		sel, ok := s.list.selected()
		if ok && width >= 80 {
			card := components.Card(t, sel, 28, true)
			rows = lipgloss.JoinHorizontal(lipgloss.Top, rows, "  ", card)
		}
		b.WriteString(rows)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
