// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pokedex-tui/internal/session"
	"github.com/jeranaias/pokedex-tui/internal/telemetry"
)

func newStore(t *testing.T, token string) *session.Store {
	t.Helper()
	store := session.NewStore(session.NewMemorySlot())
	if token != "" {
		require.NoError(t, store.SetSession(token))
	}
	return store
}

var guarded = []View{Dashboard, Catalog, Wishlist, Detail}
var unguarded = []View{Home, Login, Register}

func TestController_InitialState(t *testing.T) {
	c := NewController(newStore(t, ""))
	assert.Equal(t, ViewState{Active: Home}, c.CurrentView())
	assert.Zero(t, c.Generation())
}

func TestNavigate_GuardedWithoutSessionRedirectsToLogin(t *testing.T) {
	for _, v := range guarded {
		t.Run(string(v), func(t *testing.T) {
			rec := telemetry.NewRecorder(nil)
			c := NewController(newStore(t, ""), WithTelemetry(rec))

			require.NoError(t, c.Navigate(v, Params{EntityID: 7}))
			assert.Equal(t, ViewState{Active: Login}, c.CurrentView())
			assert.Equal(t, 1, rec.Count(telemetry.EventRedirect))
		})
	}
}

func TestNavigate_DetailWithoutSessionSkipsParamCheck(t *testing.T) {
	c := NewController(newStore(t, ""))
	require.NoError(t, c.Navigate(Detail), "guard runs before parameter validation")
	assert.Equal(t, ViewState{Active: Login}, c.CurrentView())
}

func TestNavigate_UnguardedAlwaysSucceeds(t *testing.T) {
	for _, token := range []string{"", "tok"} {
		for _, v := range unguarded {
			c := NewController(newStore(t, token))
			require.NoError(t, c.Navigate(v))
			assert.Equal(t, ViewState{Active: v}, c.CurrentView(), "view %s session %q", v, token)
		}
	}
}

func TestNavigate_GuardedWithSession(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	for _, v := range []View{Dashboard, Catalog, Wishlist} {
		require.NoError(t, c.Navigate(v))
		assert.Equal(t, ViewState{Active: v}, c.CurrentView())
	}
}

func TestNavigate_DetailFromCatalog(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	require.NoError(t, c.Navigate(Catalog))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 7}))

	want := ViewState{Active: Detail, Detail: &DetailContext{EntityID: 7, ReturnView: Catalog}}
	assert.Equal(t, want, c.CurrentView())
}

func TestNavigate_DetailWithoutIDLeavesStateUnchanged(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	require.NoError(t, c.Navigate(Wishlist))
	before := c.CurrentView()
	gen := c.Generation()

	assert.ErrorIs(t, c.Navigate(Detail), ErrMissingParameter)
	assert.ErrorIs(t, c.Navigate(Detail, Params{}), ErrMissingParameter)
	assert.ErrorIs(t, c.Navigate(Detail, Params{EntityID: -3}), ErrMissingParameter)

	assert.Equal(t, before, c.CurrentView())
	assert.Equal(t, gen, c.Generation())
}

func TestNavigate_DetailFromDetailKeepsOriginalReturn(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	require.NoError(t, c.Navigate(Wishlist))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 1}))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 2}))

	got := c.CurrentView()
	require.NotNil(t, got.Detail)
	assert.Equal(t, 2, got.Detail.EntityID)
	assert.Equal(t, Wishlist, got.Detail.ReturnView)
}

func TestNavigate_LeavingDetailClearsContext(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 4}))
	require.NoError(t, c.Navigate(Catalog))
	assert.Nil(t, c.CurrentView().Detail)
}

func TestNavigate_UnknownView(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	err := c.Navigate(View("pokeball"))
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Equal(t, ViewState{Active: Home}, c.CurrentView())
}

func TestReportLoginSuccess_AlwaysDashboard(t *testing.T) {
	for _, from := range []View{Home, Login, Register, Catalog, Wishlist} {
		store := newStore(t, "tok")
		c := NewController(store)
		require.NoError(t, c.Navigate(from))
		c.ReportLoginSuccess()
		assert.Equal(t, ViewState{Active: Dashboard}, c.CurrentView(), "from %s", from)
	}

	c := NewController(newStore(t, "tok"))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 9}))
	c.ReportLoginSuccess()
	assert.Equal(t, ViewState{Active: Dashboard}, c.CurrentView())
}

func TestReportLogoutAndExpiry(t *testing.T) {
	tests := []struct {
		name  string
		call  func(*Controller)
		event telemetry.Event
	}{
		{"logout", (*Controller).ReportLogout, telemetry.EventLogout},
		{"expired", (*Controller).ReportSessionExpired, telemetry.EventExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t, "tok")
			rec := telemetry.NewRecorder(nil)
			c := NewController(store, WithTelemetry(rec))
			require.NoError(t, c.Navigate(Catalog))
			require.NoError(t, c.Navigate(Detail, Params{EntityID: 3}))

			tt.call(c)

			assert.False(t, store.HasSession())
			assert.Equal(t, ViewState{Active: Home}, c.CurrentView())
			assert.Equal(t, 1, rec.Count(tt.event))
			assert.Zero(t, rec.Count(telemetry.EventLogin))
		})
	}
}

func TestBack(t *testing.T) {
	c := NewController(newStore(t, "tok"))

	require.NoError(t, c.Navigate(Catalog))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 5}))
	require.NoError(t, c.Back())
	assert.Equal(t, ViewState{Active: Catalog}, c.CurrentView())

	require.NoError(t, c.Back())
	assert.Equal(t, ViewState{Active: Dashboard}, c.CurrentView())

	require.NoError(t, c.Back())
	assert.Equal(t, ViewState{Active: Home}, c.CurrentView())
}

func TestBack_FromDetailAfterExpiryIsGuarded(t *testing.T) {
	store := newStore(t, "tok")
	c := NewController(store)
	require.NoError(t, c.Navigate(Wishlist))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 5}))

	store.ClearSession()
	require.NoError(t, c.Back())
	assert.Equal(t, ViewState{Active: Login}, c.CurrentView())
}

func TestGeneration_BumpsOnEveryTransition(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	g0 := c.Generation()

	require.NoError(t, c.Navigate(Catalog))
	g1 := c.Generation()
	require.NoError(t, c.Navigate(Catalog))
	g2 := c.Generation()

	assert.Greater(t, g1, g0)
	assert.Greater(t, g2, g1, "re-entering a view is a new instance")
	assert.True(t, c.IsCurrent(g2))
	assert.False(t, c.IsCurrent(g1))
}

func TestOnChange_ObservesTransitions(t *testing.T) {
	c := NewController(newStore(t, ""))
	var seen [][2]View
	c.OnChange(func(old, new ViewState) {
		seen = append(seen, [2]View{old.Active, new.Active})
		// Observers may read back without deadlocking.
		_ = c.CurrentView()
	})

	require.NoError(t, c.Navigate(Wishlist))
	require.NoError(t, c.Navigate(Register))

	assert.Equal(t, [][2]View{{Home, Login}, {Login, Register}}, seen)
}

func TestCurrentView_ReturnsCopy(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 1}))

	got := c.CurrentView()
	got.Detail.EntityID = 999
	assert.Equal(t, 1, c.CurrentView().Detail.EntityID)
}

func TestReturnViewNeverDetail(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	seq := []struct {
		v  View
		id int
	}{
		{Dashboard, 0}, {Detail, 1}, {Detail, 2}, {Catalog, 0}, {Detail, 3}, {Detail, 4}, {Detail, 5},
	}
	for _, s := range seq {
		require.NoError(t, c.Navigate(s.v, Params{EntityID: s.id}))
		st := c.CurrentView()
		assert.Equal(t, st.Active == Detail, st.Detail != nil)
		if st.Detail != nil {
			assert.NotEqual(t, Detail, st.Detail.ReturnView)
		}
	}
}

func TestParseView(t *testing.T) {
	v, err := ParseView(" Wishlist ")
	require.NoError(t, err)
	assert.Equal(t, Wishlist, v)

	_, err = ParseView("settings")
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestViewState_Equal(t *testing.T) {
	a := ViewState{Active: Detail, Detail: &DetailContext{EntityID: 1, ReturnView: Catalog}}
	b := ViewState{Active: Detail, Detail: &DetailContext{EntityID: 1, ReturnView: Catalog}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(ViewState{Active: Detail}))
	assert.True(t, ViewState{Active: Home}.Equal(ViewState{Active: Home}))
}

func TestNavigate_DetailFromDashboardReturnsToDashboard(t *testing.T) {
	c := NewController(newStore(t, "tok"))
	require.NoError(t, c.Navigate(Dashboard))
	require.NoError(t, c.Navigate(Detail, Params{EntityID: 25}))

	assert.Equal(t, ViewState{
		Active: Detail,
		Detail: &DetailContext{EntityID: 25, ReturnView: Dashboard},
	}, c.CurrentView())

	require.NoError(t, c.Back())
	assert.Equal(t, ViewState{Active: Dashboard}, c.CurrentView())
}
