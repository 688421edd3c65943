// Package prompt talks to the user on the terminal: yes/no confirmation
// and the interactive bookmark picker.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// Terminal prompts on a terminal. Prompts and the picker are drawn on Out
// (normally stderr) so stdout only carries command results.
type Terminal struct {
	In       io.Reader
	Out      io.Writer
	MaxChars int
}

// Confirm asks a yes/no question. Anything but "y" or "yes" is a no,
// including end of input.
func (t *Terminal) Confirm(msg string) bool {
	fmt.Fprintf(t.Out, "%s [y/N] ", msg)

	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.Out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// SelectBookmark runs the picker. ok is false when the user cancels or
// there is nothing to pick.
func (t *Terminal) SelectBookmark(ctx context.Context, items []*bookmark.Bookmark) (*bookmark.Bookmark, bool, error) {
	if len(items) == 0 {
		return nil, false, nil
	}

	program := tea.NewProgram(
		NewPicker(items, t.MaxChars),
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)
	final, err := program.Run()
	if err != nil {
		return nil, false, err
	}

	picked, ok := final.(Picker).Chosen()
	return picked, ok, nil
}
