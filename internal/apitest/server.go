// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package apitest runs an in-memory Pokédex API for tests.
//
// The server speaks the same /api/v1 routes as the real backend, keeps
// users, tokens and wishlists in memory, and lets a test force any route
// to answer with a fixed status and body.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Route names a server endpoint for Force and Hits.
type Route string

const (
	RouteLogin          Route = "login"
	RouteRegister       Route = "register"
	RouteListPokemon    Route = "list_pokemon"
	RouteGetPokemon     Route = "get_pokemon"
	RouteListWishlist   Route = "list_wishlist"
	RouteRemoveWishlist Route = "remove_wishlist"
)

// Pokemon is the server-side record.
type Pokemon struct {
	NationalNumber int     `json:"national_number"`
	Gen            string  `json:"gen"`
	EnglishName    string  `json:"english_name"`
	PrimaryType    string  `json:"primary_type"`
	SecondaryType  *string `json:"secondary_type"`
	Ability0       string  `json:"abilities_0,omitempty"`
	AbilitySpecial string  `json:"abilities_special,omitempty"`
	Attack         int     `json:"attack,omitempty"`
	Defense        int     `json:"defense,omitempty"`
	HP             int     `json:"hp,omitempty"`
	Speed          int     `json:"speed,omitempty"`
	HeightM        float64 `json:"height_m,omitempty"`
	WeightKg       float64 `json:"weight_kg,omitempty"`
	Description    string  `json:"description,omitempty"`
	Classification string  `json:"classification,omitempty"`
	CaptureRate    int     `json:"capture_rate,omitempty"`
	PercentMale    float64 `json:"percent_male,omitempty"`
	PercentFemale  float64 `json:"percent_female,omitempty"`
	IsLegendary    int     `json:"is_legendary"`
	IsMythical     int     `json:"is_mythical"`
	EvoChain0      string  `json:"evochain_0,omitempty"`
	EvoChain2      string  `json:"evochain_2,omitempty"`
	EvoChain4      string  `json:"evochain_4,omitempty"`
}

// Request is one recorded call.
type Request struct {
	Route         Route
	Method        string
	Path          string
	Authorization string
	RequestID     string
	UserAgent     string
}

type forced struct {
	status int
	body   string
}

type account struct {
	password string
	email    string
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	users     map[string]account
	tokens    map[string]string // token -> username
	catalog   map[int]Pokemon
	order     []int
	wishlists map[string][]int
	forced    map[Route]forced
	requests  []Request
}

// NewServer starts a server seeded with DefaultCatalog and closes it when
// the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		users:     make(map[string]account),
		tokens:    make(map[string]string),
		catalog:   make(map[int]Pokemon),
		wishlists: make(map[string][]int),
		forced:    make(map[Route]forced),
	}
	for _, p := range DefaultCatalog() {
		s.catalog[p.NationalNumber] = p
		s.order = append(s.order, p.NationalNumber)
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/login", s.track(RouteLogin, s.handleLogin)).Methods("POST")
	v1.HandleFunc("/register", s.track(RouteRegister, s.handleRegister)).Methods("POST")

	protected := v1.PathPrefix("/protected").Subrouter()
	protected.HandleFunc("/pokemons", s.track(RouteListPokemon, s.auth(s.handleListPokemon))).Methods("GET")
	protected.HandleFunc("/pokemons/{id:[0-9]+}", s.track(RouteGetPokemon, s.auth(s.handleGetPokemon))).Methods("GET")
	protected.HandleFunc("/wishlist", s.track(RouteListWishlist, s.auth(s.handleListWishlist))).Methods("GET")
	protected.HandleFunc("/wishlist/{id:[0-9]+}", s.track(RouteRemoveWishlist, s.auth(s.handleRemoveWishlist))).Methods("DELETE")
	return r
}

// =============================================================================
// TEST CONTROLS
// =============================================================================

// AddUser registers an account.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = account{password: password}
}

// IssueToken returns a valid token for username without a login call.
func (s *Server) IssueToken(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok := uuid.New().String()
	s.tokens[tok] = username
	return tok
}

// RevokeAll invalidates every token, as if they expired server-side.
func (s *Server) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}

// SetWishlist replaces username's wishlist.
func (s *Server) SetWishlist(username string, ids ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlists[username] = append([]int(nil), ids...)
}

// Wishlist returns username's wishlist ids.
func (s *Server) Wishlist(username string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.wishlists[username]...)
}

// Force makes route answer status/body regardless of its normal logic.
func (s *Server) Force(route Route, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced[route] = forced{status: status, body: body}
}

// Unforce restores route's normal behaviour.
func (s *Server) Unforce(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forced, route)
}

// Requests returns every recorded call in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Hits counts calls to route.
func (s *Server) Hits(route Route) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Route == route {
			n++
		}
	}
	return n
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

func (s *Server) track(route Route, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Route:         route,
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			UserAgent:     r.Header.Get("User-Agent"),
		})
		f, isForced := s.forced[route]
		s.mu.Unlock()

		if isForced {
			w.WriteHeader(f.status)
			fmt.Fprint(w, f.body)
			return
		}
		next(w, r)
	}
}

func (s *Server) auth(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		user, valid := s.tokens[tok]
		s.mu.Unlock()
		if !found || !valid {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}
		next(w, r, user)
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	s.mu.Lock()
	acct, exists := s.users[username]
	s.mu.Unlock()

	if !exists || acct.password != password {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": s.IssueToken(username)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	email := r.FormValue("email")
	if username == "" || password == "" || email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username, password and email are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[username]; taken {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "username already taken"})
		return
	}
	s.users[username] = account{password: password, email: email}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "user registered"})
}

func (s *Server) handleListPokemon(w http.ResponseWriter, _ *http.Request, _ string) {
	s.mu.Lock()
	list := make([]Pokemon, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, summary(s.catalog[id]))
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPokemon(w http.ResponseWriter, r *http.Request, _ string) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	p, exists := s.catalog[id]
	s.mu.Unlock()
	if !exists {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "pokemon not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListWishlist(w http.ResponseWriter, _ *http.Request, user string) {
	s.mu.Lock()
	list := make([]Pokemon, 0, len(s.wishlists[user]))
	for _, id := range s.wishlists[user] {
		if p, exists := s.catalog[id]; exists {
			list = append(list, summary(p))
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRemoveWishlist(w http.ResponseWriter, r *http.Request, user string) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.wishlists[user]
	for i, have := range ids {
		if have == id {
			s.wishlists[user] = append(ids[:i:i], ids[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{
				"message":         "Pokemon removed from wishlist",
				"national_number": id,
			})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": fmt.Sprintf("national_number %d not in wishlist", id),
	})
}

func summary(p Pokemon) Pokemon {
	return Pokemon{
		NationalNumber: p.NationalNumber,
		Gen:            p.Gen,
		EnglishName:    p.EnglishName,
		PrimaryType:    p.PrimaryType,
		SecondaryType:  p.SecondaryType,
		IsLegendary:    p.IsLegendary,
		IsMythical:     p.IsMythical,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
