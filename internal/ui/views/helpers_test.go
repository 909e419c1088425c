// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/fetch"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// fakeSession satisfies both Session and nav.SessionStore.
type fakeSession struct {
	mu    sync.Mutex
	token string
}

func (s *fakeSession) HasSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *fakeSession) SetSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *fakeSession) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// fakeAPI answers from fixed values; nil funcs return zero values.
type fakeAPI struct {
	login    func(username, password string) (string, error)
	register func(username, password, email string) (string, error)
	catalog  []api.Pokemon
	wishlist []api.Pokemon
	listErr  error
	detail   map[int]*api.Pokemon
	getErr   error
	remove   func(id int, name string) (string, error)
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (string, error) {
	if f.login == nil {
		return "token", nil
	}
	return f.login(username, password)
}

func (f *fakeAPI) Register(_ context.Context, username, password, email string) (string, error) {
	if f.register == nil {
		return "ok", nil
	}
	return f.register(username, password, email)
}

func (f *fakeAPI) ListPokemon(context.Context) ([]api.Pokemon, error) {
	return f.catalog, f.listErr
}

func (f *fakeAPI) ListWishlist(context.Context) ([]api.Pokemon, error) {
	return f.wishlist, f.listErr
}

func (f *fakeAPI) GetPokemon(_ context.Context, id int) (*api.Pokemon, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.detail[id], nil
}

func (f *fakeAPI) RemoveFromWishlist(_ context.Context, id int, name string) (string, error) {
	if f.remove == nil {
		return name + " removed from the Wishlist", nil
	}
	return f.remove(id, name)
}

var testTheme = styles.NewTheme(styles.ModeDark)

func newDeps(t *testing.T, signedIn bool, fake *fakeAPI) (*Deps, *fakeSession) {
	t.Helper()
	sess := &fakeSession{}
	if signedIn {
		sess.token = "token"
	}
	ctrl := nav.NewController(sess)
	return &Deps{
		Ctx:      context.Background(),
		Nav:      ctrl,
		Session:  sess,
		API:      fake,
		Settler:  fetch.NewSettler(ctrl, nil),
		Theme:    testTheme,
		Keys:     DefaultKeyMap(),
		PageSize: 3,
	}, sess
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

// collect runs cmd and returns the messages it yields, expanding batches.
// Commands that block, such as timers, are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(500 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// pump feeds the results and dialog messages cmd yields back into the
// page until nothing new comes out.
func pump(p Page, cmd tea.Cmd) Page {
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		switch msg.(type) {
		case fetch.Result[string], fetch.Result[[]api.Pokemon], fetch.Result[*api.Pokemon],
			components.ConfirmResponseMsg, components.ConfirmClosedMsg:
			var next tea.Cmd
			p, next = p.Update(msg)
			queue = append(queue, collect(next)...)
		}
	}
	return p
}

// press sends keys one at a time and pumps what each produces.
func press(p Page, keys ...tea.KeyMsg) Page {
	for _, k := range keys {
		var cmd tea.Cmd
		p, cmd = p.Update(k)
		p = pump(p, cmd)
	}
	return p
}

func typeText(p Page, s string) Page {
	for _, r := range s {
		p = press(p, runes(string(r)))
	}
	return p
}

func sampleCatalog() []api.Pokemon {
	return []api.Pokemon{
		{NationalNumber: 1, EnglishName: "Bulbasaur", PrimaryType: "grass", SecondaryType: "poison"},
		{NationalNumber: 6, EnglishName: "Charizard", PrimaryType: "fire", SecondaryType: "flying"},
		{NationalNumber: 25, EnglishName: "Pikachu", PrimaryType: "electric"},
		{NationalNumber: 150, EnglishName: "Mewtwo", PrimaryType: "psychic"},
	}
}
