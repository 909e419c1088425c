// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session_cmd.go - login and logout commands.
//
// Examples:
//
//	pokedex login               Prompt for username and password
//	pokedex login --user ash    Prompt for the password only
//	pokedex logout              Forget the stored token
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/pokedex-tui/internal/telemetry"
)

// Prompter reads a visible and a hidden line. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	PasswordPrompt(prompt string) (string, error)
}

// ErrLoginAborted is returned when the user cancels a prompt.
var ErrLoginAborted = errors.New("login aborted")

// HandleLogin prompts on the terminal and stores the token on success.
func HandleLogin(ctx context.Context, rt *Runtime, args Args) error {
	if err := RequiresTTY("log in"); err != nil {
		return &UsageError{Reason: err.Error(), Example: "pokedex login --user ash"}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	return Login(ctx, rt, line, args.User)
}

// Login signs in with credentials read from p. user may be preset.
func Login(ctx context.Context, rt *Runtime, p Prompter, user string) error {
	var err error
	if strings.TrimSpace(user) == "" {
		user, err = p.Prompt("Username: ")
		if err != nil {
			return promptError(err)
		}
	}
	user = strings.TrimSpace(user)
	if user == "" {
		return &UsageError{Reason: "username is required", Example: "pokedex login --user ash"}
	}

	password, err := p.PasswordPrompt("Password: ")
	if err != nil {
		return promptError(err)
	}
	if password == "" {
		return &UsageError{Reason: "password is required"}
	}

	token, err := rt.Client.Login(ctx, user, password)
	if err != nil {
		return NewCommandError("login", "sign in", err)
	}
	if err := rt.Store.SetSession(token); err != nil {
		return NewCommandError("login", "store session", err)
	}
	rt.Telemetry.Record(telemetry.EventLogin)

	fmt.Fprintf(rt.Out, "%s Signed in as %s\n", SuccessStyle.Render("[OK]"), user)
	return nil
}

func promptError(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) {
		return ErrLoginAborted
	}
	return fmt.Errorf("read input: %w", err)
}

// HandleLogout clears the stored session. Logging out without a session
// is not an error.
func HandleLogout(rt *Runtime) error {
	if !rt.Store.HasSession() {
		fmt.Fprintln(rt.Out, DimStyle.Render("Not signed in."))
		return nil
	}
	rt.Store.ClearSession()
	rt.Telemetry.Record(telemetry.EventLogout)
	fmt.Fprintf(rt.Out, "%s Signed out\n", SuccessStyle.Render("[OK]"))
	return nil
}
