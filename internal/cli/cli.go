// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - command line parsing and help for pokedex.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdLogout
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdLogin:
		return "login"
	case CmdLogout:
		return "logout"
	case CmdStatus:
		return "status"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Verbose   bool
	JSON      bool
	APIURL    string
	Backend   string
	Ephemeral bool

	// Command-specific
	Subcommand string
	User       string

	// Raw args (remaining after global flag parsing)
	Raw []string
}

const usageText = `pokedex - terminal Pokédex client

Browse the Pokédex catalog and your wishlist from the terminal. Catalog,
wishlist and detail pages need a session; without one you are sent to the
login page first.

Usage:
  pokedex                    Start the TUI (default)
  pokedex tui                Start the TUI
  pokedex login [--user U]   Sign in and store the session token
  pokedex logout             Clear the stored session
  pokedex status, s          Show session state and server counts
  pokedex config [show|path] Show the effective configuration
  pokedex version            Show version information
  pokedex help               Show this help

Global Flags:
  --api URL                  API base URL (overrides config and env)
  --backend NAME             Session backend: file, sqlite, redis, memory
  --ephemeral                Keep the session in memory only
  -v, --verbose              Debug logging (to stderr outside the TUI)
  --json                     JSON output for status and version

TUI Keys:
  h home   l login   o logout   q quit   ctrl+c force quit
  Home:      r register  d dashboard  c catalog  w wishlist
  Lists:     up/down select  left/right page  enter open  r reload  esc back
  Wishlist:  x remove (asks for confirmation)

Configuration:
  ~/.pokedex/config.toml (POKEDEX_HOME moves the directory). POKEDEX_*
  environment variables and a .env file override the file.

Examples:
  pokedex --api http://localhost:8080
  pokedex login --user ash
  pokedex status --json
`

// PrintUsage writes the help text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "pokedex %s\n", Version)
	fmt.Fprintf(w, "  commit:  %s\n", GitCommit)
	fmt.Fprintf(w, "  built:   %s\n", BuildDate)
	fmt.Fprintf(w, "  go:      %s\n", runtime.Version())
}

// VersionData is the JSON form of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// HandleVersion handles the "version" command.
func HandleVersion(w io.Writer, args Args) error {
	if args.JSON {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Write(w)
	}
	PrintVersion(w)
	return nil
}

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the arguments after the program name.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	rest := remaining[1:]
	parsedArgs.Raw = rest
	p := NewArgParser(rest)

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "login", "signin":
		parsedArgs.User = p.FlagOrDefault("user", p.Flag("u"))
		return CmdLogin, parsedArgs

	case "logout", "signout":
		return CmdLogout, parsedArgs

	case "status", "s":
		parsedArgs.JSON = parsedArgs.JSON || p.BoolFlag("json")
		return CmdStatus, parsedArgs

	case "config":
		parsedArgs.Subcommand = p.Subcommand()
		return CmdConfig, parsedArgs

	case "version", "--version":
		parsedArgs.JSON = parsedArgs.JSON || p.BoolFlag("json")
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Subcommand = remaining[0]
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--ephemeral":
			parsedArgs.Ephemeral = true
		case "--api":
			if i+1 < len(args) {
				i++
				parsedArgs.APIURL = args[i]
			}
		case "--backend":
			if i+1 < len(args) {
				i++
				parsedArgs.Backend = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--api="):
				parsedArgs.APIURL = strings.TrimPrefix(arg, "--api=")
			case strings.HasPrefix(arg, "--backend="):
				parsedArgs.Backend = strings.TrimPrefix(arg, "--backend=")
			default:
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsedArgs
}
