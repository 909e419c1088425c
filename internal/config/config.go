// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jeranaias/pokedex-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete pokedex configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Remote API
	API APIConfig `toml:"api" json:"api"`

	// Where the session token is persisted
	Session SessionConfig `toml:"session" json:"session"`

	UI UIConfig `toml:"ui" json:"ui"`

	Log LogConfig `toml:"log" json:"log"`
}

// APIConfig contains settings for the remote Pokédex API.
type APIConfig struct {
	// BaseURL is the scheme+host the /api/v1 paths are appended to
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs bounds every request; 0 means the default
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// RateLimitRPS is the client-side request rate limit
	RateLimitRPS float64 `toml:"rate_limit_rps" json:"rate_limit_rps"`
	// RateLimitBurst is the limiter burst size
	RateLimitBurst int `toml:"rate_limit_burst" json:"rate_limit_burst"`
}

// SessionConfig selects and configures the session slot backend.
type SessionConfig struct {
	// Backend is one of: file, sqlite, redis, memory
	Backend string `toml:"backend" json:"backend"`
	// Path is the slot file (file backend) or database (sqlite backend).
	// Empty means a default inside the config directory.
	Path string `toml:"path" json:"path"`
	// RedisAddr is host:port for the redis backend
	RedisAddr string `toml:"redis_addr" json:"redis_addr"`
	// RedisDB selects the redis logical database
	RedisDB int `toml:"redis_db" json:"redis_db"`
	// RedisPrefix namespaces the slot key
	RedisPrefix string `toml:"redis_prefix" json:"redis_prefix"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "dark", "light" or "auto"
	Theme string `toml:"theme" json:"theme"`
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
	// PageSize is the number of rows shown per page in lists
	PageSize int `toml:"page_size" json:"page_size"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `toml:"level" json:"level"`
	// Path is the log file; "stderr" and "discard" are also accepted.
	// The TUI owns the terminal, so the default is a file.
	Path string `toml:"path" json:"path"`
	// JSON switches to JSON records
	JSON bool `toml:"json" json:"json"`
}

// Session backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1",
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSecs:    30,
			RateLimitRPS:   10,
			RateLimitBurst: 5,
		},
		Session: SessionConfig{
			Backend:     BackendFile,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "pokedex:",
		},
		UI: UIConfig{
			Theme:     "dark",
			AltScreen: true,
			PageSize:  20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// Dir returns the pokedex configuration directory.
func Dir() (string, error) {
	if home := os.Getenv("POKEDEX_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".pokedex"), nil
}

// PathTOML returns the path to the TOML config file.
func PathTOML() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureDir ensures the config directory exists.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// SessionPath returns the configured slot path, or the backend default
// inside the config directory.
func (c *Config) SessionPath() (string, error) {
	if c.Session.Path != "" {
		return c.Session.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if c.Session.Backend == BackendSQLite {
		return filepath.Join(dir, "session.db"), nil
	}
	return filepath.Join(dir, "session"), nil
}

// LogPath returns the configured log destination, or the default log file.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pokedex.log"), nil
}

// Timeout returns the API request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load builds the effective configuration: defaults, then the TOML file if
// present, then environment overrides. The result is validated.
func Load() (*Config, error) {
	path, err := PathTOML()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit config file. A missing file is not
// an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		fmt.Fprintf(os.Stderr, "Warning: unknown config keys ignored: %s\n", strings.Join(keys, ", "))
	}
	return nil
}

// loadDotEnv reads ./.env when present. Existing environment variables win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}
	return nil
}

// ensureSecurePermissions tightens the config file to 0600.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to the default TOML location.
func Save(cfg *Config) error {
	path, err := PathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode renders cfg as a commented TOML document.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# pokedex configuration file\n")
	buf.WriteString("# Generated by pokedex - edit with care\n\n")
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("must be an absolute http(s) URL, got %q", c.API.BaseURL),
		})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("unsupported scheme %q", u.Scheme),
		})
	}
	if c.API.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{Field: "api.timeout_secs", Message: "must be non-negative"})
	}
	if c.API.RateLimitRPS <= 0 {
		errs = append(errs, ValidationError{Field: "api.rate_limit_rps", Message: "must be positive"})
	}
	if c.API.RateLimitBurst < 1 {
		errs = append(errs, ValidationError{Field: "api.rate_limit_burst", Message: "must be at least 1"})
	}

	switch c.Session.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Session.RedisAddr == "" {
			errs = append(errs, ValidationError{Field: "session.redis_addr", Message: "required for the redis backend"})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "session.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: file, sqlite, redis, memory", c.Session.Backend),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}
	if c.UI.PageSize < 1 || c.UI.PageSize > 200 {
		errs = append(errs, ValidationError{
			Field:   "ui.page_size",
			Message: fmt.Sprintf("must be 1-200, got %d", c.UI.PageSize),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero-valued fields from Default.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.TimeoutSecs == 0 {
		c.API.TimeoutSecs = defaults.API.TimeoutSecs
	}
	if c.API.RateLimitRPS == 0 {
		c.API.RateLimitRPS = defaults.API.RateLimitRPS
	}
	if c.API.RateLimitBurst == 0 {
		c.API.RateLimitBurst = defaults.API.RateLimitBurst
	}
	if c.Session.Backend == "" {
		c.Session.Backend = defaults.Session.Backend
	}
	c.Session.Backend = strings.ToLower(c.Session.Backend)
	if c.Session.RedisPrefix == "" {
		c.Session.RedisPrefix = defaults.Session.RedisPrefix
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.PageSize == 0 {
		c.UI.PageSize = defaults.UI.PageSize
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// envOverrides lists the supported environment variables. Pointer fields
// stay nil when the variable is unset.
type envOverrides struct {
	APIURL         *string  `env:"POKEDEX_API_URL"`
	APITimeoutSecs *int     `env:"POKEDEX_API_TIMEOUT_SECS"`
	RateLimitRPS   *float64 `env:"POKEDEX_RATE_LIMIT_RPS"`
	SessionBackend *string  `env:"POKEDEX_SESSION_BACKEND"`
	SessionPath    *string  `env:"POKEDEX_SESSION_PATH"`
	RedisAddr      *string  `env:"POKEDEX_REDIS_ADDR"`
	RedisDB        *int     `env:"POKEDEX_REDIS_DB"`
	Theme          *string  `env:"POKEDEX_THEME"`
	LogLevel       *string  `env:"POKEDEX_LOG_LEVEL"`
	LogPath        *string  `env:"POKEDEX_LOG_PATH"`
	LogJSON        *bool    `env:"POKEDEX_LOG_JSON"`
}

// ApplyEnvOverrides applies POKEDEX_* environment variables to the config.
//
// Supported environment variables:
//   - POKEDEX_API_URL, POKEDEX_API_TIMEOUT_SECS, POKEDEX_RATE_LIMIT_RPS
//   - POKEDEX_SESSION_BACKEND, POKEDEX_SESSION_PATH
//   - POKEDEX_REDIS_ADDR, POKEDEX_REDIS_DB
//   - POKEDEX_THEME
//   - POKEDEX_LOG_LEVEL, POKEDEX_LOG_PATH, POKEDEX_LOG_JSON
func (c *Config) ApplyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return err
	}

	if o.APIURL != nil {
		c.API.BaseURL = *o.APIURL
	}
	if o.APITimeoutSecs != nil {
		c.API.TimeoutSecs = *o.APITimeoutSecs
	}
	if o.RateLimitRPS != nil {
		c.API.RateLimitRPS = *o.RateLimitRPS
	}
	if o.SessionBackend != nil {
		c.Session.Backend = *o.SessionBackend
	}
	if o.SessionPath != nil {
		c.Session.Path = *o.SessionPath
	}
	if o.RedisAddr != nil {
		c.Session.RedisAddr = *o.RedisAddr
	}
	if o.RedisDB != nil {
		c.Session.RedisDB = *o.RedisDB
	}
	if o.Theme != nil {
		c.UI.Theme = *o.Theme
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
	if o.LogPath != nil {
		c.Log.Path = *o.LogPath
	}
	if o.LogJSON != nil {
		c.Log.JSON = *o.LogJSON
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
