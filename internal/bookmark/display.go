package bookmark

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultShortMaxChars is the listing width used when none is configured.
const DefaultShortMaxChars = 60

// whitespaceRegex matches one or more whitespace characters
var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseSpace trims s and collapses internal whitespace to single spaces.
func CollapseSpace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// FirstLine returns the first non-blank line of s.
func FirstLine(s string) string {
	for line := range strings.Lines(s) {
		if strings.TrimSpace(line) != "" {
			return strings.TrimRight(line, "\r\n")
		}
	}
	return ""
}

// CountChars returns the character count as runes (not bytes).
func CountChars(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate shortens s to at most maxChars runes, ending with "…" when cut.
// maxChars <= 0 disables truncation.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 || CountChars(s) <= maxChars {
		return s
	}
	if maxChars == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:maxChars-1]) + "…"
}

// ElideMiddle shortens s to at most maxChars runes by replacing its middle
// with "…", keeping both the root and the final component of a path visible.
func ElideMiddle(s string, maxChars int) string {
	if maxChars <= 0 || CountChars(s) <= maxChars {
		return s
	}
	if maxChars < 3 {
		return Truncate(s, maxChars)
	}
	runes := []rune(s)
	keep := maxChars - 1
	head := keep / 2
	tail := keep - head
	return string(runes[:head]) + "…" + string(runes[len(runes)-tail:])
}

// Display fits c.Short() into maxChars runes. Paths lose their middle,
// everything else loses its end.
func Display(c Content, maxChars int) string {
	if c.Kind() == KindPath {
		return ElideMiddle(c.Short(), maxChars)
	}
	return Truncate(c.Short(), maxChars)
}
