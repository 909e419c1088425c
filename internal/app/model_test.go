// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/apitest"
	"github.com/jeranaias/pokedex-tui/internal/config"
	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/session"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
	"github.com/jeranaias/pokedex-tui/internal/ui/views"
)

type harness struct {
	srv   *apitest.Server
	slot  *session.MemorySlot
	store *session.Store
	ctrl  *nav.Controller
	model *Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	srv := apitest.NewServer(t)
	srv.AddUser("ash", "pikachu")

	slot := session.NewMemorySlot()
	store := session.NewStore(slot)
	require.NoError(t, store.Initialize(context.Background()))

	cfg := config.Default().API
	cfg.BaseURL = srv.URL
	cfg.RateLimitRPS = 1000
	cfg.RateLimitBurst = 100
	client := api.New(cfg, store)

	ctrl := nav.NewController(store)
	m := New(Options{
		Nav:      ctrl,
		Session:  store,
		API:      client,
		Theme:    styles.NewTheme(styles.ModeDark),
		PageSize: 20,
		Server:   srv.URL,
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return &harness{srv: srv, slot: slot, store: store, ctrl: ctrl, model: m}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (h *harness) press(t *testing.T, msgs ...tea.KeyMsg) {
	t.Helper()
	for _, msg := range msgs {
		_, cmd := h.model.Update(msg)
		h.drain(t, cmd)
	}
}

func (h *harness) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		h.press(t, runes(string(r)))
	}
}

// drain runs cmd and every command it leads to, feeding the results the
// pages care about back into the model. Timers and spinner ticks are
// abandoned after a short wait.
func (h *harness) drain(t *testing.T, cmd tea.Cmd) {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := runCmd(next, time.Second)
		if !ok {
			continue
		}

		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case fetch.Result[string], fetch.Result[[]api.Pokemon], fetch.Result[*api.Pokemon],
			components.ConfirmResponseMsg, components.ConfirmClosedMsg:
			_, follow := h.model.Update(msg)
			queue = append(queue, follow)
		}
	}
}

func runCmd(cmd tea.Cmd, timeout time.Duration) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(timeout):
		return nil, false
	}
}

func TestModel_StartsOnHome(t *testing.T) {
	h := newHarness(t)

	_, ok := h.model.Page().(*views.Home)
	assert.True(t, ok)
	assert.Contains(t, h.model.View(), "[l] Login")
	assert.Contains(t, h.model.View(), components.Copyright)
}

func TestModel_SessionExpiryDuringDetailLoad(t *testing.T) {
	h := newHarness(t)

	// Guarded view without a session lands on login.
	h.press(t, runes("w"))
	require.Equal(t, nav.Login, h.ctrl.CurrentView().Active)
	_, ok := h.model.Page().(*views.Login)
	require.True(t, ok)

	h.typeText(t, "ash")
	h.press(t, tea.KeyMsg{Type: tea.KeyTab})
	h.typeText(t, "pikachu")
	h.press(t, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, nav.Dashboard, h.ctrl.CurrentView().Active)
	require.True(t, h.store.HasSession())
	require.NotNil(t, h.model.Toast())
	assert.Equal(t, MsgLoggedIn, h.model.Toast().Message)

	h.press(t, runes("c"))
	require.Equal(t, nav.Catalog, h.ctrl.CurrentView().Active)
	assert.Contains(t, h.model.View(), "Pikachu")

	// Bulbasaur, Charizard, Pikachu.
	h.press(t, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})

	h.srv.RevokeAll()
	h.press(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.Home, h.ctrl.CurrentView().Active)
	assert.False(t, h.store.HasSession())
	_, err := h.slot.Get(context.Background())
	assert.ErrorIs(t, err, session.ErrSlotEmpty)

	_, ok = h.model.Page().(*views.Home)
	assert.True(t, ok)
	require.NotNil(t, h.model.Toast())
	assert.Equal(t, MsgSessionExpired, h.model.Toast().Message)
	assert.Equal(t, 1, h.srv.Hits(apitest.RouteGetPokemon))
}

func TestModel_StaleRejectionIsIgnored(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SetSession(h.srv.IssueToken("ash")))
	h.srv.Force(apitest.RouteListPokemon, http.StatusUnauthorized, `{"error":"expired"}`)

	_, cmd := h.model.Update(runes("c"))
	require.Equal(t, nav.Catalog, h.ctrl.CurrentView().Active)

	// Leave before the catalog answers.
	_, _ = h.model.Update(runes("h"))
	require.Equal(t, nav.Home, h.ctrl.CurrentView().Active)
	gen := h.ctrl.Generation()

	h.drain(t, cmd)

	assert.True(t, h.store.HasSession(), "a result for an unmounted page must not end the session")
	assert.Equal(t, gen, h.ctrl.Generation())
	assert.Nil(t, h.model.Toast())
}

func TestModel_Logout(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SetSession(h.srv.IssueToken("ash")))
	h.press(t, runes("d"))
	require.Equal(t, nav.Dashboard, h.ctrl.CurrentView().Active)
	assert.Contains(t, h.model.View(), "[o] Logout")

	h.press(t, runes("o"))

	assert.Equal(t, nav.Home, h.ctrl.CurrentView().Active)
	assert.False(t, h.store.HasSession())
	require.NotNil(t, h.model.Toast())
	assert.Equal(t, MsgLoggedOut, h.model.Toast().Message)
}

func TestModel_LogoutKeyIgnoredWhenSignedOut(t *testing.T) {
	h := newHarness(t)
	gen := h.ctrl.Generation()

	h.press(t, runes("o"))

	assert.Equal(t, gen, h.ctrl.Generation())
	assert.Nil(t, h.model.Toast())
}

func TestModel_LoginPageKeepsGlobalKeys(t *testing.T) {
	h := newHarness(t)
	h.press(t, runes("l"))
	require.Equal(t, nav.Login, h.ctrl.CurrentView().Active)

	// "q" and "h" are text on the login form.
	h.typeText(t, "qh")
	assert.Equal(t, nav.Login, h.ctrl.CurrentView().Active)

	h.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, nav.Home, h.ctrl.CurrentView().Active)
}

func TestModel_WishlistRemove(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SetSession(h.srv.IssueToken("ash")))
	h.srv.SetWishlist("ash", 6, 25)

	h.press(t, runes("w"))
	require.Equal(t, nav.Wishlist, h.ctrl.CurrentView().Active)
	require.Contains(t, h.model.View(), "Charizard")

	h.press(t, runes("x"))
	require.True(t, h.model.Page().Capturing(), "confirmation is open")

	h.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{25}, h.srv.Wishlist("ash"))

	h.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	view := h.model.View()
	assert.NotContains(t, view, "Charizard")
	assert.Contains(t, view, "Pikachu")
	assert.Equal(t, 1, h.srv.Hits(apitest.RouteListWishlist), "removal does not reload the list")
}

func TestModel_QuitCancelsContext(t *testing.T) {
	h := newHarness(t)

	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	_, ok := msg.(tea.QuitMsg)
	assert.True(t, ok)
	assert.Error(t, h.model.ctx.Err())
}

func TestHeaderLinks(t *testing.T) {
	tests := []struct {
		view     nav.View
		signedIn bool
		want     string
	}{
		{nav.Home, false, "Login"},
		{nav.Home, true, "Dashboard,Logout"},
		{nav.Login, false, "Home"},
		{nav.Register, false, "Home"},
		{nav.Catalog, true, "Home,Logout"},
		{nav.Detail, true, "Home,Logout"},
	}
	for _, tt := range tests {
		var labels []string
		for _, l := range headerLinks(tt.view, tt.signedIn) {
			labels = append(labels, l.Label)
		}
		assert.Equal(t, tt.want, strings.Join(labels, ","), "%s signedIn=%v", tt.view, tt.signedIn)
	}
}
