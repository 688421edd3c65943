// Package interpret classifies raw captured text into bookmark content.
//
// Interpreters are consulted in a fixed priority order and the first one
// whose Matches returns true wins. Matching and conversion of a given
// interpreter agree: Interpret is only ever called with a string that the
// same interpreter matched, and it cannot fail on such a string.
package interpret

import (
	"github.com/hpungsan/bookmark/internal/bookmark"
)

// Interpreter recognizes one content shape.
type Interpreter interface {
	// Name identifies the interpreter in config and diagnostics.
	Name() string

	// Matches reports whether raw has this interpreter's shape.
	Matches(raw string) bool

	// Interpret converts raw into Content. raw must satisfy Matches.
	Interpret(raw string) bookmark.Content
}

// Match returns the first interpreter in order whose Matches accepts raw.
// Later interpreters are not consulted once one matches.
func Match(interpreters []Interpreter, raw string) (Interpreter, bool) {
	for _, in := range interpreters {
		if in.Matches(raw) {
			return in, true
		}
	}
	return nil, false
}

// Interpret converts raw with in and wraps the result in an unstored Bookmark.
func Interpret(in Interpreter, raw string) *bookmark.Bookmark {
	return bookmark.New(in.Interpret(raw))
}

// Classify matches raw against the registry (minus disabled interpreters)
// and interprets it with the winner. ok is false when nothing matched.
func Classify(raw string, disabled ...string) (b *bookmark.Bookmark, name string, ok bool) {
	in, ok := Match(All(disabled...), raw)
	if !ok {
		return nil, "", false
	}
	return Interpret(in, raw), in.Name(), true
}
