package bookmark

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Kind names a content variant. It is persisted alongside the raw text.
type Kind string

const (
	KindURL   Kind = "url"
	KindLink  Kind = "link"
	KindEmail Kind = "email"
	KindPath  Kind = "path"
	KindText  Kind = "text"
)

// Content is the classified representation of captured text.
// The set of implementations is closed: only this package can add variants.
type Content interface {
	// Kind reports which variant this is.
	Kind() Kind

	// Short is the single-line form shown in listings. Callers fit it to
	// a width with Display.
	Short() string

	// Long is the exact text restored to the clipboard on selection.
	Long() string

	content()
}

// URL is a scheme+host URL such as "https://example.com/path".
type URL struct {
	Raw  string
	Host string
	Path string
}

func (u URL) Kind() Kind   { return KindURL }
func (u URL) Long() string { return u.Raw }
func (URL) content()       {}

// Short drops the scheme, query and fragment.
func (u URL) Short() string {
	return u.Host + strings.TrimSuffix(u.Path, "/")
}

// Link is a single Markdown inline link, "[title](destination)".
type Link struct {
	Raw         string
	Title       string
	Destination string
}

func (l Link) Kind() Kind   { return KindLink }
func (l Link) Long() string { return l.Raw }
func (Link) content()       {}

// Short shows the link title, or the destination when the title is blank.
func (l Link) Short() string {
	if strings.TrimSpace(l.Title) == "" {
		return l.Destination
	}
	return CollapseSpace(l.Title)
}

// Email is a single mail address, optionally with a display name.
type Email struct {
	Raw     string
	Address string
}

func (e Email) Kind() Kind    { return KindEmail }
func (e Email) Short() string { return e.Address }
func (e Email) Long() string  { return e.Raw }
func (Email) content()        {}

// Path is a filesystem path in platform syntax.
type Path struct {
	Raw string
}

func (p Path) Kind() Kind    { return KindPath }
func (p Path) Short() string { return p.Raw }
func (p Path) Long() string  { return p.Raw }
func (Path) content()        {}

// Text is opaque captured text.
type Text struct {
	Raw string
}

func (t Text) Kind() Kind    { return KindText }
func (t Text) Short() string { return CollapseSpace(FirstLine(t.Raw)) }
func (t Text) Long() string  { return t.Raw }
func (Text) content()        {}

// Decode rebuilds a Content from its persisted kind and raw text.
// Derived fields are recomputed; Long() of the result equals raw.
func Decode(kind Kind, raw string) (Content, error) {
	switch kind {
	case KindURL:
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("decode url: %w", err)
		}
		return URL{Raw: raw, Host: u.Host, Path: u.EscapedPath()}, nil
	case KindLink:
		title, dest, ok := ParseMarkdownLink(raw)
		if !ok {
			return nil, fmt.Errorf("decode link: not a markdown link: %q", raw)
		}
		return Link{Raw: raw, Title: title, Destination: dest}, nil
	case KindEmail:
		addr, err := mail.ParseAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("decode email: %w", err)
		}
		return Email{Raw: raw, Address: addr.Address}, nil
	case KindPath:
		return Path{Raw: raw}, nil
	case KindText:
		return Text{Raw: raw}, nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
}
