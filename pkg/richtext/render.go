package richtext

import (
	"html"
	"strings"

	"github.com/dmitrymomot/richmail/pkg/variable"
)

// markTags lists mark wrappers from outermost to innermost.
var markTags = []struct {
	mark Marks
	open string
	shut string
}{
	{Bold, "<strong>", "</strong>"},
	{Italic, "<em>", "</em>"},
	{Underline, "<u>", "</u>"},
}

// Render converts d to HTML. It is pure and deterministic.
func Render(d Document) string {
	var b strings.Builder
	for _, n := range d {
		renderNode(&b, n)
	}
	return b.String()
}

// RenderNode converts a single node to HTML.
func RenderNode(n Node) string {
	var b strings.Builder
	renderNode(&b, n)
	return b.String()
}

func renderNode(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindParagraph:
		b.WriteString("<p>")
		for _, child := range n.Children {
			renderNode(b, child)
		}
		b.WriteString("</p>")
	case KindPlaceholder:
		// Marks are not applied: the marker must stay one contiguous string.
		b.WriteString(variable.Marker(n.Token))
	case KindText:
		renderText(b, n)
	default:
		for _, child := range n.Children {
			renderNode(b, child)
		}
	}
}

func renderText(b *strings.Builder, n Node) {
	if n.Text == "" {
		return
	}

	for _, t := range markTags {
		if n.Marks.Has(t.mark) {
			b.WriteString(t.open)
		}
	}
	b.WriteString(html.EscapeString(n.Text))
	for i := len(markTags) - 1; i >= 0; i-- {
		if n.Marks.Has(markTags[i].mark) {
			b.WriteString(markTags[i].shut)
		}
	}
}
