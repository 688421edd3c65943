package interpret

import (
	"strings"

	"github.com/hpungsan/bookmark/internal/bookmark"
)

// Path matches a single-line filesystem path that is absolute ("/usr/bin",
// `C:\Users`, `\\server\share`), home-relative ("~", "~/notes") or
// explicitly relative ("./a", "../b"). Bare words like "notes.txt" are
// left to the text interpreter.
type Path struct{}

func (Path) Name() string { return NamePath }

func (Path) Matches(raw string) bool {
	return isPath(raw)
}

func (Path) Interpret(raw string) bookmark.Content {
	if !isPath(raw) {
		return bookmark.Text{Raw: raw}
	}
	return bookmark.Path{Raw: raw}
}

// pathPrefixes are the leading forms accepted on every platform.
var pathPrefixes = []string{"/", `\\`, "~/", `~\`, "./", `.\`, "../", `..\`}

func isPath(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, "\r\n\x00") || strings.TrimSpace(raw) != raw {
		return false
	}
	if strings.Contains(raw, "://") {
		return false
	}
	switch raw {
	case "~", ".", "..":
		return true
	}
	for _, prefix := range pathPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return true
		}
	}
	return isDrivePath(raw)
}

// isDrivePath reports whether raw starts with a Windows drive root, "C:\" or "C:/".
func isDrivePath(raw string) bool {
	if len(raw) < 3 || raw[1] != ':' || (raw[2] != '\\' && raw[2] != '/') {
		return false
	}
	c := raw[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
