// pokedex - a terminal client for the Pokédex web API.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pokedex-tui/internal/app"
	"github.com/jeranaias/pokedex-tui/internal/cli"
	"github.com/jeranaias/pokedex-tui/internal/nav"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cmd, args)
	stop()

	if err != nil {
		cli.DisplayError(os.Stderr, err, args.JSON)
		os.Exit(cli.GetExitCode(err))
	}
}

func run(ctx context.Context, cmd cli.Command, args cli.Args) error {
	switch cmd {
	case cli.CmdTUI:
		return runTUI(ctx, args)
	case cli.CmdVersion:
		return cli.HandleVersion(os.Stdout, args)
	case cli.CmdHelp:
		cli.PrintUsage()
		return nil
	case cli.CmdUnknown:
		return &cli.UsageError{
			Reason:  fmt.Sprintf("unknown command %q", args.Subcommand),
			Example: "pokedex help",
		}
	}

	rt, err := cli.Open(ctx, args, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	switch cmd {
	case cli.CmdLogin:
		return cli.HandleLogin(ctx, rt, args)
	case cli.CmdLogout:
		return cli.HandleLogout(rt)
	case cli.CmdStatus:
		return cli.HandleStatus(ctx, rt, args)
	case cli.CmdConfig:
		return cli.HandleConfig(rt, args)
	}
	return fmt.Errorf("unhandled command %s", cmd)
}

// runTUI starts the interactive client on the view the navigation
// controller boots into.
func runTUI(ctx context.Context, args cli.Args) error {
	if err := cli.RequiresTTY("the interactive client"); err != nil {
		return err
	}

	rt, err := cli.Open(ctx, args, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg := rt.Config
	controller := nav.NewController(rt.Store, nav.WithTelemetry(rt.Telemetry))
	m := app.New(app.Options{
		Nav:       controller,
		Session:   rt.Store,
		API:       rt.Client,
		Telemetry: rt.Telemetry,
		Theme:     styles.NewTheme(cfg.UI.Theme),
		PageSize:  cfg.UI.PageSize,
		Server:    rt.Client.BaseURL(),
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running pokedex: %w", err)
	}
	return nil
}
