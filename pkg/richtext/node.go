package richtext

import "strings"

// Kind identifies the logical type of a Node.
type Kind uint8

const (
	// KindText is a literal text run. It is the zero Kind.
	KindText Kind = iota
	// KindParagraph is a block container.
	KindParagraph
	// KindPlaceholder stands for a variable resolved after rendering.
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindParagraph:
		return "paragraph"
	case KindPlaceholder:
		return "placeholder"
	}
	return "unknown"
}

// Marks is a set of inline text styles.
type Marks uint8

const (
	Bold Marks = 1 << iota
	Italic
	Underline
)

// Has reports whether all marks in m are set.
func (s Marks) Has(m Marks) bool {
	return s&m == m
}

func (s Marks) String() string {
	var parts []string
	if s.Has(Bold) {
		parts = append(parts, "bold")
	}
	if s.Has(Italic) {
		parts = append(parts, "italic")
	}
	if s.Has(Underline) {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, "|")
}

// Node is a single document node. Which fields are meaningful depends on Kind:
// paragraphs use Children, text runs use Text and Marks, placeholders use
// Token, Marks and Label.
type Node struct {
	Children []Node
	Text     string
	Token    string
	Label    string
	Kind     Kind
	Marks    Marks
}

// Placeholder reports whether n is a placeholder and returns its token.
func (n Node) Placeholder() (string, bool) {
	if n.Kind != KindPlaceholder {
		return "", false
	}
	return n.Token, true
}

// Document is an ordered list of top-level nodes, normally paragraphs.
type Document []Node

// NewParagraph creates a paragraph node.
func NewParagraph(children ...Node) Node {
	return Node{Kind: KindParagraph, Children: children}
}

// NewText creates a text run with the given marks.
func NewText(text string, marks ...Marks) Node {
	return Node{Kind: KindText, Text: text, Marks: joinMarks(marks)}
}

// NewPlaceholder creates a placeholder for token.
func NewPlaceholder(token string, marks ...Marks) Node {
	return Node{Kind: KindPlaceholder, Token: token, Marks: joinMarks(marks)}
}

func joinMarks(marks []Marks) Marks {
	var m Marks
	for _, mk := range marks {
		m |= mk
	}
	return m
}

// HasContent reports whether the document contains a non-blank text run or
// any placeholder.
func (d Document) HasContent() bool {
	found := false
	Walk(d, func(_ string, n Node) bool {
		switch n.Kind {
		case KindPlaceholder:
			found = true
		case KindText:
			found = strings.TrimSpace(n.Text) != ""
		}
		return !found
	})
	return found
}

// Placeholders returns the token of every placeholder in document order,
// including repeats.
func (d Document) Placeholders() []string {
	var tokens []string
	Walk(d, func(_ string, n Node) bool {
		if tok, ok := n.Placeholder(); ok {
			tokens = append(tokens, tok)
		}
		return true
	})
	return tokens
}

// Walk visits every node depth-first in document order, passing its path
// ("content[0].children[1]"). Returning false from fn stops the walk.
func Walk(d Document, fn func(path string, n Node) bool) {
	for i, n := range d {
		if !walk(indexPath(rootPath, i), n, fn) {
			return
		}
	}
}

func walk(path string, n Node, fn func(string, Node) bool) bool {
	if !fn(path, n) {
		return false
	}
	for i, child := range n.Children {
		if !walk(indexPath(path+".children", i), child, fn) {
			return false
		}
	}
	return true
}
