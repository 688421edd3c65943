package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/bookmark/internal/errors"
	"github.com/hpungsan/bookmark/internal/logging"
	"github.com/hpungsan/bookmark/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(env *ops.Env) *cli.App {
	app := &cli.App{
		Name:    "bookmark",
		Usage:   "Save clipboard content and copy it back later",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Log debug output to stderr"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logging.Init("debug", c.App.ErrWriter)
			}
			return nil
		},
		Commands: []*cli.Command{
			addClipboardCmd(env),
			addSelectionCmd(env),
			addInputCmd(env),
			listCmd(env),
			clearCmd(env),
			selectCmd(env),
			selectInteractiveCmd(env),
			classifyCmd(env),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addClipboardCmd creates the add-clipboard command.
func addClipboardCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "add-clipboard",
		Usage: "Bookmark the clipboard content",
		Action: func(c *cli.Context) error {
			output, err := ops.AddClipboard(c.Context, env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, output)
		},
	}
}

// addSelectionCmd creates the add-selection command.
func addSelectionCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "add-selection",
		Usage: "Bookmark the primary selection",
		Action: func(c *cli.Context) error {
			output, err := ops.AddSelection(c.Context, env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, output)
		},
	}
}

// addInputCmd creates the add-input command.
func addInputCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "add-input",
		Usage:     "Bookmark the given text (reads stdin when no argument is given)",
		ArgsUsage: "[text]",
		Action: func(c *cli.Context) error {
			var input string
			switch {
			case c.NArg() > 1:
				return outputError(errors.NewInvalidRequest("add-input takes a single argument; quote text containing spaces"))
			case c.NArg() == 1:
				input = c.Args().First()
			case stdinHasData(c.App.Reader):
				text, err := readStdin(c.App.Reader)
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				input = text
			}

			output, err := ops.AddInput(c.Context, env, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, output)
		},
	}
}

// listCmd creates the list command.
func listCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List bookmarks with their ids",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of one line per bookmark"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, env)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			for _, item := range output.Items {
				fmt.Fprintf(c.App.Writer, "%3d  %-5s  %s\n", item.Position, item.Kind, item.Short)
			}
			return nil
		},
	}
}

// clearCmd creates the clear command.
func clearCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Permanently delete all bookmarks",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Clear(c.Context, env, c.Bool("yes"))
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, output)
		},
	}
}

// selectCmd creates the select command.
func selectCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "Copy a bookmark to the clipboard by id",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "print", Aliases: []string{"p"}, Usage: "Print the text instead of copying it"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("select requires exactly one id"))
			}
			id, err := parseID(c.Args().First())
			if err != nil {
				return outputError(errors.NewInvalidRequest(err.Error()))
			}

			if c.Bool("print") {
				output, err := ops.GetOutput(c.Context, env, id)
				if err != nil {
					return outputError(err)
				}
				_, err = io.WriteString(c.App.Writer, output.Text)
				return err
			}

			output, err := ops.Select(c.Context, env, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, output)
		},
	}
}

// selectInteractiveCmd creates the select-interactive command.
func selectInteractiveCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "select-interactive",
		Usage: "Pick a bookmark from a list and copy it to the clipboard",
		Action: func(c *cli.Context) error {
			output, err := ops.SelectInteractive(c.Context, env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, output)
		},
	}
}

// classifyCmd creates the classify command.
func classifyCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Show how text would be bookmarked without storing it",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("classify requires exactly one argument"))
			}

			output, err := ops.Classify(env, c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, output)
		},
	}
}

// Helper functions

// outputJSON marshals result to w as JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	var bmErr *errors.BookmarkError
	if !stderrors.As(err, &bmErr) {
		logging.Error("command failed", "error", err)
		return cli.Exit(err.Error(), 1)
	}
	if bmErr.Code == errors.ErrInternal {
		logging.Error("command failed", "code", bmErr.Code, "error", bmErr.Message)
	}
	return cli.Exit(fmt.Sprintf("[%s] %s", bmErr.Code, bmErr.Message), 1)
}

// stdinHasData returns true if r is piped data rather than a terminal.
func stdinHasData(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from r, dropping the trailing newline that
// pipes and heredocs append.
func readStdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text, ok := strings.CutSuffix(string(data), "\n")
	if ok {
		text = strings.TrimSuffix(text, "\r")
	}
	return text, nil
}

// parseID parses a listing position.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	if id < 0 {
		return 0, fmt.Errorf("id must be non-negative")
	}
	return id, nil
}
