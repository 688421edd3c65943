package bookmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdown is shared; goldmark parsers are safe for concurrent use.
var markdown = goldmark.New()

// ParseMarkdownLink reports whether raw is exactly one Markdown inline link,
// "[title](destination)", and returns its link text and destination.
// Anything else in the document (surrounding prose, a second link, a list)
// makes it not a link.
func ParseMarkdownLink(raw string) (title, destination string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "\r\n") || !strings.HasPrefix(s, "[") {
		return "", "", false
	}

	source := []byte(s)
	doc := markdown.Parser().Parse(text.NewReader(source))
	if doc.ChildCount() != 1 {
		return "", "", false
	}
	para := doc.FirstChild()
	if para.Kind() != ast.KindParagraph || para.ChildCount() != 1 {
		return "", "", false
	}
	link, isLink := para.FirstChild().(*ast.Link)
	if !isLink {
		return "", "", false
	}

	var buf bytes.Buffer
	_ = ast.Walk(link, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})

	return buf.String(), string(link.Destination), true
}
