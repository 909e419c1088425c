// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// runtime.go - shared setup for the TUI and the subcommands.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/config"
	"github.com/jeranaias/pokedex-tui/internal/logging"
	"github.com/jeranaias/pokedex-tui/internal/session"
	"github.com/jeranaias/pokedex-tui/internal/telemetry"
)

// Runtime is everything a command needs, built once from the config.
type Runtime struct {
	Config    *config.Config
	Store     *session.Store
	Client    *api.Client
	Telemetry *telemetry.Recorder

	Out io.Writer
	Err io.Writer

	closers []func() error
}

// LoadConfig loads the configuration and applies the global flags on top.
func LoadConfig(args Args) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if err := ApplyFlags(cfg, args); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}

// ApplyFlags overrides cfg with command line flags and validates the result.
func ApplyFlags(cfg *config.Config, args Args) error {
	if args.APIURL != "" {
		cfg.API.BaseURL = strings.TrimRight(args.APIURL, "/")
	}
	if args.Backend != "" {
		cfg.Session.Backend = args.Backend
	}
	if args.Ephemeral {
		cfg.Session.Backend = config.BackendMemory
	}
	if args.Verbose {
		cfg.Log.Level = "debug"
	}
	cfg.SetDefaults()
	return cfg.Validate()
}

// Open builds a Runtime. When tui is set, logs always go to a file because
// the terminal belongs to Bubble Tea; otherwise --verbose logs to stderr.
func Open(ctx context.Context, args Args, tui bool) (*Runtime, error) {
	cfg, err := LoadConfig(args)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{Config: cfg, Out: os.Stdout, Err: os.Stderr}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if args.Verbose && !tui {
		logPath = "stderr"
	}
	logCloser, err := logging.Configure(logging.Options{
		Output: logPath,
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
	})
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	rt.closers = append(rt.closers, logCloser.Close)
	log := logging.Get("cli")

	rt.Telemetry = openTelemetry()
	rt.closers = append(rt.closers, rt.Telemetry.Flush)

	slot, err := session.OpenSlot(cfg)
	if err != nil {
		rt.Close()
		return nil, &ConfigError{Err: err}
	}
	rt.Store = session.NewStore(slot)
	rt.closers = append(rt.closers, rt.Store.Close)
	if err := rt.Store.Initialize(ctx); err != nil {
		log.Warn("starting without a session", "error", err)
	}

	rt.Client = api.New(cfg.API, rt.Store, api.WithUserAgent("pokedex-tui/"+Version))
	log.Debug("runtime ready",
		"api", rt.Client.BaseURL(),
		"backend", cfg.Session.Backend,
		"signed_in", rt.Store.HasSession())
	return rt, nil
}

// openTelemetry returns a recorder persisted under the config directory,
// or a memory-only one if that directory is unusable.
func openTelemetry() *telemetry.Recorder {
	dir, err := config.Dir()
	if err != nil {
		return telemetry.NewRecorder(nil)
	}
	storage, err := telemetry.NewStorage(filepath.Join(dir, "telemetry"))
	if err != nil {
		logging.Get("cli").Warn("telemetry disabled", "error", err)
		return telemetry.NewRecorder(nil)
	}
	return telemetry.NewRecorder(storage)
}

// Close flushes telemetry and releases the session backend and log file,
// in reverse order of opening.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}
