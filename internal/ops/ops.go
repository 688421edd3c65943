package ops

import (
	"context"
	"iter"
	"strings"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// Storage persists bookmarks. Implementations assign identity on append.
type Storage interface {
	// StoreBookmark appends b and sets its ID and CreatedAt.
	StoreBookmark(ctx context.Context, b *bookmark.Bookmark) error

	// Bookmarks yields stored bookmarks lazily in insertion order, with
	// Position set. Each call starts a fresh iteration.
	Bookmarks(ctx context.Context) iter.Seq2[*bookmark.Bookmark, error]

	// Clear removes every bookmark and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}

// OS gives access to the desktop clipboard. ok is false when there is
// nothing to read.
type OS interface {
	Clipboard(ctx context.Context) (string, bool)
	Selection(ctx context.Context) (string, bool)
	WriteClipboard(ctx context.Context, text string) error
}

// Prompter asks the user for decisions.
type Prompter interface {
	Confirm(msg string) bool
	SelectBookmark(ctx context.Context, items []*bookmark.Bookmark) (*bookmark.Bookmark, bool, error)
}

// Env bundles the capabilities every command runs against.
type Env struct {
	OS       OS
	Storage  Storage
	Prompter Prompter

	// DisabledInterpreters are left out of classification
	DisabledInterpreters []string

	// ShortMaxChars is the listing width of short forms
	ShortMaxChars int
}

// shortMaxChars returns the configured listing width or the default.
func (e *Env) shortMaxChars() int {
	if e.ShortMaxChars > 0 {
		return e.ShortMaxChars
	}
	return bookmark.DefaultShortMaxChars
}

// isBlank reports whether captured text carries nothing worth storing.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
