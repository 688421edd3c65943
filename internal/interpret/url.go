package interpret

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// URL matches a single whitespace-free token with a scheme and a host,
// e.g. "https://example.com/path". The text is kept byte-for-byte.
type URL struct{}

func (URL) Name() string { return NameURL }

func (URL) Matches(raw string) bool {
	_, ok := parseURL(raw)
	return ok
}

func (URL) Interpret(raw string) bookmark.Content {
	u, ok := parseURL(raw)
	if !ok {
		return bookmark.Text{Raw: raw}
	}
	return bookmark.URL{Raw: raw, Host: u.Host, Path: u.EscapedPath()}
}

// parseURL accepts only absolute URLs with a host. Opaque forms such as
// "mailto:a@b.c" and Windows drive paths ("C:\dir") have no host and are
// rejected.
func parseURL(raw string) (*url.URL, bool) {
	if raw == "" || strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}
