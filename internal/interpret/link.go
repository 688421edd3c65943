package interpret

import (
	"github.com/hpungsan/bookmark/internal/bookmark"
)

// Link matches exactly one Markdown inline link whose destination is a
// URL, e.g. "[Go](https://go.dev)". Checked before URL so the title
// survives.
type Link struct{}

func (Link) Name() string { return NameLink }

func (Link) Matches(raw string) bool {
	_, _, ok := parseLink(raw)
	return ok
}

func (Link) Interpret(raw string) bookmark.Content {
	title, dest, ok := parseLink(raw)
	if !ok {
		return bookmark.Text{Raw: raw}
	}
	return bookmark.Link{Raw: raw, Title: title, Destination: dest}
}

func parseLink(raw string) (title, dest string, ok bool) {
	title, dest, ok = bookmark.ParseMarkdownLink(raw)
	if !ok {
		return "", "", false
	}
	if _, isURL := parseURL(dest); !isURL {
		return "", "", false
	}
	return title, dest, true
}
