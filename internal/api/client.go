// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/jeranaias/pokedex-tui/internal/config"
	"github.com/jeranaias/pokedex-tui/internal/logging"
	"github.com/jeranaias/pokedex-tui/internal/util"
)

// Configuration constants.
const (
	// DefaultTimeout applies when the config leaves the timeout unset.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps how much of a body is read.
	MaxResponseSize = 10 * 1024 * 1024

	// DefaultUserAgent identifies the client to the server.
	DefaultUserAgent = "pokedex-tui/0.1.0"

	apiPrefix = "/api/v1"
)

// Credentials supplies the bearer token. session.Store implements it.
type Credentials interface {
	Token() string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the base round tripper (tests, proxies).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.base = rt }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLimiter replaces the request rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the Pokédex API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	creds     Credentials
	base      http.RoundTripper
	limiter   *rate.Limiter

	public    *http.Client
	protected *http.Client

	log *slog.Logger
}

// New creates a client for cfg. creds may be nil when only public calls
// are made.
func New(cfg config.APIConfig, creds Credentials, opts ...Option) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 5
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   timeout,
		userAgent: DefaultUserAgent,
		creds:     creds,
		base:      http.DefaultTransport,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		log:       logging.Get("api"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.public = &http.Client{Transport: c.base, Timeout: c.timeout}
	c.protected = &http.Client{
		Transport: &oauth2.Transport{
			Source: credentialSource{creds: c.creds},
			Base:   c.base,
		},
		Timeout: c.timeout,
	}
	return c
}

// BaseURL returns the server root.
func (c *Client) BaseURL() string { return c.baseURL }

// HasCredential reports whether a protected call would send a token.
func (c *Client) HasCredential() bool {
	return c.creds != nil && c.creds.Token() != ""
}

// credentialSource adapts Credentials to oauth2. The token is read on
// every request so a new login takes effect immediately.
type credentialSource struct {
	creds Credentials
}

func (s credentialSource) Token() (*oauth2.Token, error) {
	if s.creds == nil {
		return nil, ErrCredentialRejected
	}
	tok := s.creds.Token()
	if tok == "" {
		return nil, ErrCredentialRejected
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

// =============================================================================
// PUBLIC ENDPOINTS
// =============================================================================

// Login exchanges credentials for a token. A refusal is returned as an
// *APIError carrying the server's text.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	status, body, err := c.do(ctx, c.public, http.MethodPost, "/login", form)
	if err != nil {
		return "", err
	}
	if !ok(status) {
		return "", &APIError{Status: status, Message: errorText(body)}
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: login: %v", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", fmt.Errorf("%w: login response has no token", ErrMalformedResponse)
	}
	return resp.Token, nil
}

// Register creates an account. It never touches the session. The returned
// message is the server's acknowledgement, cleaned for display.
func (c *Client) Register(ctx context.Context, username, password, email string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("email", email)

	status, body, err := c.do(ctx, c.public, http.MethodPost, "/register", form)
	if err != nil {
		return "", err
	}
	msg := CleanMessage(string(body), "")
	if !ok(status) {
		return "", &APIError{Status: status, Message: msg}
	}
	return msg, nil
}

// =============================================================================
// PROTECTED ENDPOINTS
// =============================================================================

// ListPokemon returns the whole catalog.
func (c *Client) ListPokemon(ctx context.Context) ([]Pokemon, error) {
	return c.getList(ctx, "/protected/pokemons")
}

// ListWishlist returns the user's wishlist.
func (c *Client) ListWishlist(ctx context.Context) ([]Pokemon, error) {
	return c.getList(ctx, "/protected/wishlist")
}

// GetPokemon returns one entry with its detail fields.
func (c *Client) GetPokemon(ctx context.Context, id int) (*Pokemon, error) {
	body, err := c.protectedCall(ctx, http.MethodGet, "/protected/pokemons/"+strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedResponse)
	}
	var p Pokemon
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &p, nil
}

// RemoveFromWishlist deletes id from the wishlist. name replaces the
// national number in the acknowledgement shown to the user.
func (c *Client) RemoveFromWishlist(ctx context.Context, id int, name string) (string, error) {
	body, err := c.protectedCall(ctx, http.MethodDelete, "/protected/wishlist/"+strconv.Itoa(id))
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.Message = CleanMessage(apiErr.Message, name)
		}
		return "", err
	}
	return CleanMessage(string(body), name), nil
}

func (c *Client) getList(ctx context.Context, path string) ([]Pokemon, error) {
	body, err := c.protectedCall(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected an array", ErrMalformedResponse)
	}
	var list []Pokemon
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return list, nil
}

// protectedCall sends a bearer request and maps 401 and other non-2xx
// statuses to errors. Without a credential no request is made.
func (c *Client) protectedCall(ctx context.Context, method, path string) ([]byte, error) {
	if !c.HasCredential() {
		c.log.Debug("protected call without credential", "path", path)
		return nil, ErrCredentialRejected
	}

	status, body, err := c.do(ctx, c.protected, method, path, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, ErrCredentialRejected
	}
	if !ok(status) {
		return nil, &APIError{Status: status, Message: errorText(body)}
	}
	return body, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, form url.Values) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	reqID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)

	log := c.log.With("method", method, "path", req.URL.Path, "request_id", reqID)
	log.Debug("API request")

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, ErrCredentialRejected) {
			return 0, nil, ErrCredentialRejected
		}
		log.Warn("API request failed", "error", err, "duration", time.Since(start))
		if errors.Is(err, context.Canceled) {
			return 0, nil, err
		}
		return 0, nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		log.Warn("API response unreadable", "status", resp.StatusCode, "error", err)
		return 0, nil, fmt.Errorf("%w: reading body: %v", ErrConnectivity, err)
	}
	log.Debug("API response", "status", resp.StatusCode, "bytes", len(data), "duration", time.Since(start))
	return resp.StatusCode, data, nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}

// errorText extracts a readable message from an error body: the "error"
// or "message" field of a JSON object, otherwise the trimmed text.
func errorText(body []byte) string {
	var obj map[string]any
	if json.Unmarshal(body, &obj) == nil {
		for _, key := range []string{"error", "message"} {
			if s, isStr := obj[key].(string); isStr && s != "" {
				return s
			}
		}
	}
	return util.Truncate(strings.TrimSpace(string(body)), 200)
}
