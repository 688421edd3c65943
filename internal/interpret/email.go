package interpret

import (
	"net/mail"
	"strings"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// Email matches one RFC 5322 address such as "jane@example.com" or
// "Jane Doe <jane@example.com>".
type Email struct{}

func (Email) Name() string { return NameEmail }

func (Email) Matches(raw string) bool {
	_, ok := parseEmail(raw)
	return ok
}

func (Email) Interpret(raw string) bookmark.Content {
	addr, ok := parseEmail(raw)
	if !ok {
		return bookmark.Text{Raw: raw}
	}
	return bookmark.Email{Raw: raw, Address: addr.Address}
}

func parseEmail(raw string) (*mail.Address, bool) {
	// Slashes are legal in a local part but in practice mean a path or URL.
	if raw == "" || strings.ContainsAny(raw, "\r\n/") || strings.TrimSpace(raw) != raw {
		return nil, false
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return nil, false
	}
	return addr, true
}
