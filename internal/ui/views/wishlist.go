// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
)

const (
	wishlistKey       = "wishlist"
	wishlistRemoveKey = "wishlist-remove"
)

// Wishlist lists the user's wishlist and removes entries from it.
type Wishlist struct {
	d       *Deps
	gen     uint64
	list    entryList
	spinner components.Spinner
	confirm *components.Confirm
	loading bool
	loaded  bool
	err     string
	width   int

	// removing is the entry the confirm dialog is about.
	removing api.Pokemon
	log      *slog.Logger
}

// NewWishlist creates the wishlist page.
func NewWishlist(d *Deps) *Wishlist {
	return &Wishlist{
		d:       d,
		gen:     d.Nav.Generation(),
		list:    newEntryList(d.PageSize),
		spinner: components.NewSpinner(d.Theme, "Loading wishlist..."),
		confirm: components.NewConfirm(d.Theme),
		log:     pageLogger("wishlist"),
	}
}

func (p *Wishlist) Init() tea.Cmd { return p.load() }

func (p *Wishlist) Title() string { return "Wishlist Pokemon" }

func (p *Wishlist) Capturing() bool { return p.confirm.IsVisible() }

func (p *Wishlist) SetSize(width, height int) {
	p.width = width
	p.confirm.SetSize(width, height)
}

func (p *Wishlist) Bindings() []key.Binding {
	k := p.d.Keys
	return []key.Binding{k.Up, k.Down, k.Open, k.Remove, k.Reload, k.Back, k.Logout}
}

func (p *Wishlist) load() tea.Cmd {
	if p.loading {
		return nil
	}
	p.loading = true
	p.err = ""
	return tea.Batch(
		p.spinner.Start(),
		fetch.Run(p.d.Ctx, p.gen, wishlistKey, p.d.API.ListWishlist),
	)
}

func (p *Wishlist) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.Result[[]api.Pokemon]:
		if msg.Key != wishlistKey {
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

	case fetch.Result[string]:
		if msg.Key == wishlistRemoveKey {
			p.finishRemove(msg)
		}
		return p, nil

	case components.ConfirmResponseMsg:
		if msg.ID == p.confirmID() && msg.Confirmed {
			return p, p.remove()
		}
		return p, nil

	case components.ConfirmClosedMsg:
		if msg.ID == p.confirmID() && msg.Success {
			p.list.remove(p.removing.NationalNumber)
		}
		return p, nil

	case tea.KeyMsg:
		if cmd, handled := p.confirm.Update(msg); handled {
			return p, cmd
		}
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
		case key.Matches(msg, k.Remove):
			if e, ok := p.list.selected(); ok {
				p.removing = e
				p.confirm.Show(p.confirmID(),
					fmt.Sprintf("Are you sure you want to remove %s from the Wishlist?", e.EnglishName))
			}
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

func (p *Wishlist) confirmID() string {
	return wishlistRemoveKey + ":" + strconv.Itoa(p.removing.NationalNumber)
}

func (p *Wishlist) remove() tea.Cmd {
	target := p.removing
	return fetch.Run(p.d.Ctx, p.gen, wishlistRemoveKey, func(ctx context.Context) (string, error) {
		return p.d.API.RemoveFromWishlist(ctx, target.NationalNumber, target.EnglishName)
	})
}

func (p *Wishlist) finishRemove(res fetch.Result[string]) {
	outcome, text := fetch.Settle(p.d.Settler, res, fetch.MsgOperationError)
	switch outcome {
	case fetch.Deliver:
		p.confirm.SetResult(true, res.Value)
	case fetch.Failed:
		// Show the server's text without the generic prefix.
		var apiErr *api.APIError
		if errors.As(res.Err, &apiErr) && apiErr.Message != "" {
			text = apiErr.Message
		}
		p.confirm.SetResult(false, text)
	}
}

func (p *Wishlist) View() string {
	if p.confirm.IsVisible() {
		return p.confirm.View()
	}
	return listPage(p.d.Theme, p.width, listState{
		title:   "Your wishlist",
		empty:   "Your wishlist is empty",
		spinner: p.spinner,
		loading: p.loading,
		loaded:  p.loaded,
		err:     p.err,
		list:    &p.list,
	})
}
