// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/jeranaias/pokedex-tui/internal/apitest"
	"github.com/jeranaias/pokedex-tui/internal/config"
)

type staticCreds string

func (s staticCreds) Token() string { return string(s) }

func newClient(t *testing.T, srv *apitest.Server, token string) *Client {
	t.Helper()
	cfg := config.Default().API
	cfg.BaseURL = srv.URL
	return New(cfg, staticCreds(token), WithLimiter(rate.NewLimiter(rate.Inf, 1)))
}

func TestLogin_Success(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser("ash", "pikachu")
	c := newClient(t, srv, "")

	tok, err := c.Login(context.Background(), "ash", "pikachu")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].Authorization, "login is not a bearer call")
	assert.NotEmpty(t, reqs[0].RequestID)
	assert.Equal(t, DefaultUserAgent, reqs[0].UserAgent)
}

func TestLogin_RejectedCarriesServerText(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser("ash", "pikachu")
	c := newClient(t, srv, "")

	_, err := c.Login(context.Background(), "ash", "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
	assert.False(t, IsCredentialRejected(err), "a failed login is not a session expiry")
}

func TestLogin_MalformedResponses(t *testing.T) {
	for name, body := range map[string]string{
		"not json": "welcome!",
		"no token": `{"user":"ash"}`,
		"blank":    `{"token":"  "}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := apitest.NewServer(t)
			srv.Force(apitest.RouteLogin, http.StatusOK, body)
			_, err := newClient(t, srv, "").Login(context.Background(), "a", "b")
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestRegister(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, "")

	msg, err := c.Register(context.Background(), "misty", "starmie", "misty@cerulean.gym")
	require.NoError(t, err)
	assert.Equal(t, "user registered", msg)

	_, err = c.Register(context.Background(), "misty", "x", "y@z")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "username already taken", apiErr.Message)
}

func TestListPokemon_SendsBearer(t *testing.T) {
	srv := apitest.NewServer(t)
	tok := srv.IssueToken("ash")
	c := newClient(t, srv, tok)

	list, err := c.ListPokemon(context.Background())
	require.NoError(t, err)
	require.Len(t, list, len(apitest.DefaultCatalog()))
	assert.Equal(t, "Bulbasaur", list[0].EnglishName)
	assert.Equal(t, []string{"grass", "poison"}, list[0].Types())

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer "+tok, reqs[0].Authorization)
}

func TestProtected_NoCredentialMakesNoRequest(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, "")

	_, err := c.ListWishlist(context.Background())
	assert.ErrorIs(t, err, ErrCredentialRejected)
	assert.Empty(t, srv.Requests())
}

func TestProtected_401IsCredentialRejected(t *testing.T) {
	srv := apitest.NewServer(t)
	tok := srv.IssueToken("ash")
	srv.RevokeAll()
	c := newClient(t, srv, tok)

	_, err := c.ListPokemon(context.Background())
	assert.ErrorIs(t, err, ErrCredentialRejected)
	_, err = c.GetPokemon(context.Background(), 25)
	assert.ErrorIs(t, err, ErrCredentialRejected)
	_, err = c.RemoveFromWishlist(context.Background(), 25, "Pikachu")
	assert.ErrorIs(t, err, ErrCredentialRejected)
}

func TestListWishlist_NonArrayIsMalformed(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, srv.IssueToken("ash"))
	srv.Force(apitest.RouteListWishlist, http.StatusOK, `{"items":[]}`)

	_, err := c.ListWishlist(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestListWishlist_EmptyArray(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, srv.IssueToken("ash"))

	list, err := c.ListWishlist(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetPokemon_Detail(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, srv.IssueToken("ash"))

	p, err := c.GetPokemon(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, "Ho-Oh", p.EnglishName)
	assert.True(t, p.Legendary())
	assert.True(t, p.Genderless())
	assert.Equal(t, "#250", p.Number())

	p, err = c.GetPokemon(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bulbasaur", "Ivysaur", "Venusaur"}, p.EvolutionChain())
	assert.Equal(t, []string{"Overgrow"}, p.Abilities())
}

func TestGetPokemon_NotFoundIsAPIError(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, srv.IssueToken("ash"))

	_, err := c.GetPokemon(context.Background(), 9999)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.NotErrorIs(t, err, ErrCredentialRejected)
}

func TestGetPokemon_ArrayIsMalformed(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, srv.IssueToken("ash"))
	srv.Force(apitest.RouteGetPokemon, http.StatusOK, `[1,2,3]`)

	_, err := c.GetPokemon(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRemoveFromWishlist(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv, srv.IssueToken("ash"))
	srv.SetWishlist("ash", 6, 25)

	msg, err := c.RemoveFromWishlist(context.Background(), 25, "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "Pokemon removed from wishlist", msg)
	assert.Equal(t, []int{6}, srv.Wishlist("ash"))

	_, err = c.RemoveFromWishlist(context.Background(), 25, "Pikachu")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Pikachu not in wishlist", apiErr.Message)
}

func TestConnectivityError(t *testing.T) {
	srv := apitest.NewServer(t)
	url := srv.URL
	srv.Close()

	cfg := config.Default().API
	cfg.BaseURL = url
	c := New(cfg, staticCreds("tok"))

	_, err := c.ListPokemon(context.Background())
	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestTimeoutIsConnectivity(t *testing.T) {
	blocked := make(chan struct{})
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-blocked:
		case <-r.Context().Done():
		}
	})
	ts := newRawServer(t, slow)
	defer close(blocked)

	cfg := config.Default().API
	cfg.BaseURL = ts
	c := New(cfg, staticCreds("tok"))
	c.protected.Timeout = 50 * time.Millisecond

	_, err := c.ListPokemon(context.Background())
	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestLimiterRefusalIsConnectivity(t *testing.T) {
	srv := apitest.NewServer(t)
	cfg := config.Default().API
	cfg.BaseURL = srv.URL
	c := New(cfg, staticCreds("tok"), WithLimiter(rate.NewLimiter(1, 0)))

	_, err := c.ListPokemon(context.Background())
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.Zero(t, srv.Hits(apitest.RouteListPokemon), "request must not reach the server")
}

func TestNew_Defaults(t *testing.T) {
	c := New(config.APIConfig{BaseURL: "http://x/"}, nil)
	assert.Equal(t, "http://x", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.False(t, c.HasCredential())
}
