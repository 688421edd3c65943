package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/bookmark/internal/config"
	"github.com/hpungsan/bookmark/internal/db"
	"github.com/hpungsan/bookmark/internal/interpret"
	"github.com/hpungsan/bookmark/internal/logging"
	"github.com/hpungsan/bookmark/internal/mcp"
	"github.com/hpungsan/bookmark/internal/ops"
	"github.com/hpungsan/bookmark/internal/prompt"
	"github.com/hpungsan/bookmark/internal/system"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"add-clipboard": true, "add-selection": true, "add-input": true,
	"list": true, "clear": true, "select": true, "select-interactive": true,
	"classify": true, "help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode(args []string) bool {
	for _, arg := range args[1:] {
		switch {
		case cliCommands[arg]:
			return true
		case arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v":
			return true
		case arg == "--verbose":
			continue
		}
		return false
	}
	return false // No args → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion(args []string) bool {
	if len(args) < 2 {
		return false
	}
	arg := args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _                 _                    _
  | |__   ___   ___ | | ___ __ ___   __ _| |__
  | '_ \ / _ \ / _ \| |/ / '_ ' _ \ / _' | '__|
  | |_) | (_) | (_) |   <| | | | | | (_| | |
  |_.__/ \___/ \___/|_|\_\_| |_| |_|\__,_|_|

  Clipboard bookmarks

  Usage: bookmark <command> [options]
         bookmark --help

  MCP server mode requires piped input.`)
}

// newEnv wires the production capabilities into an ops.Env.
func newEnv(store *db.Store, cfg *config.Config) *ops.Env {
	return &ops.Env{
		OS:      system.Detect(cfg),
		Storage: store,
		Prompter: &prompt.Terminal{
			In:       os.Stdin,
			Out:      os.Stderr,
			MaxChars: cfg.ShortMaxChars,
		},
		DisabledInterpreters: cfg.DisabledInterpreters,
		ShortMaxChars:        cfg.ShortMaxChars,
	}
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion(os.Args) {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".bookmark")

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logging.Init(cfg.LogLevel, os.Stderr)
	db.ConfigurePool(database, cfg)

	if invalid := interpret.ValidateDisabled(cfg.DisabledInterpreters); len(invalid) > 0 {
		logging.Warn("ignoring disabled_interpreters entries", "names", invalid)
	}
	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		logging.Warn("unknown disabled_tools entries", "names", unknown)
	}

	env := newEnv(db.NewStore(database), cfg)

	// CLI mode: known subcommand
	if isCLIMode(os.Args) {
		app := newCLIApp(env)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'bookmark --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(env, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
