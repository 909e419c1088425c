// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - error types and exit codes for pokedex commands.
//
// Handlers return errors; main displays them once and exits with
// GetExitCode.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/config"
	"github.com/jeranaias/pokedex-tui/internal/session"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
	// ExitAuthError indicates a refused login or a rejected session
	ExitAuthError = 4
	// ExitNetworkError indicates the server could not be reached
	ExitNetworkError = 5
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // e.g. "status"
	Action  string // e.g. "fetch counts"
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Command, e.Action, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError represents bad arguments.
type UsageError struct {
	Reason  string
	Example string
}

func (e *UsageError) Error() string {
	if e.Example != "" {
		return fmt.Sprintf("%s\nExample: %s", e.Reason, e.Example)
	}
	return e.Reason
}

// ConfigError wraps a failure to load or apply the configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "configuration: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrNotSignedIn is returned by commands that need a stored session.
var ErrNotSignedIn = errors.New("not signed in; run 'pokedex login' first")

// NewCommandError creates a new command error.
func NewCommandError(command, action string, err error) error {
	return &CommandError{Command: command, Action: action, Err: err}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode determines the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var configErr *ConfigError
	var validateErrs config.ValidateErrors
	var apiErr *api.APIError

	switch {
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.As(err, &configErr), errors.As(err, &validateErrs):
		return ExitConfigError
	case errors.Is(err, api.ErrCredentialRejected),
		errors.Is(err, session.ErrInvalidCredential),
		errors.Is(err, ErrNotSignedIn):
		return ExitAuthError
	case errors.As(err, &apiErr) && (apiErr.Status == 401 || apiErr.Status == 403):
		return ExitAuthError
	case errors.Is(err, api.ErrConnectivity):
		return ExitNetworkError
	default:
		return ExitGeneralError
	}
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError writes err to w, as JSON when jsonMode is set.
func DisplayError(w io.Writer, err error, jsonMode bool) {
	if err == nil {
		return
	}
	if jsonMode {
		displayErrorJSON(w, err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// ErrorDetail is the data of a failed --json command.
type ErrorDetail struct {
	ExitCode int    `json:"exit_code"`
	Type     string `json:"error_type"`
	Status   int    `json:"status,omitempty"`
	Action   string `json:"action,omitempty"`
}

func displayErrorJSON(w io.Writer, err error) {
	detail := ErrorDetail{ExitCode: GetExitCode(err), Type: "generic_error"}
	command := ""

	var cmdErr *CommandError
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		detail.Type = "api_error"
		detail.Status = apiErr.Status
	case errors.As(err, &cmdErr):
		detail.Type = "command_error"
		detail.Action = cmdErr.Action
		command = cmdErr.Command
	}

	resp := NewJSONErrorResponse(command, err)
	resp.Data = detail
	_ = resp.Write(w)
}
