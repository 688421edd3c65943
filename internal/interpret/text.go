package interpret

import (
	"github.com/hpungsan/bookmark/internal/bookmark"
)

// Text matches anything. It is the last registry entry, so classification
// of ordinary input always succeeds.
type Text struct{}

func (Text) Name() string { return NameText }

func (Text) Matches(string) bool { return true }

func (Text) Interpret(raw string) bookmark.Content {
	return bookmark.Text{Raw: raw}
}
