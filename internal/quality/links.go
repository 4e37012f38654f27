package quality

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is an inline markdown link: [Text](Destination).
type Link struct {
	Text        string
	Destination string
}

var markdown = goldmark.New()

// ExtractLinks walks the markdown AST and returns all inline links.
// Images are not links; a badge image wrapped in a link contributes the
// link with empty text.
func ExtractLinks(source []byte) []Link {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var links []Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if l, ok := n.(*ast.Link); ok {
			links = append(links, Link{
				Text:        nodeText(l, source),
				Destination: string(l.Destination),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := c.(*ast.Image); ok {
			return ast.WalkSkipChildren, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
