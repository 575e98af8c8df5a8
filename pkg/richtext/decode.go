package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Surface element types understood by the decoder.
const (
	TypeParagraph = "paragraph"
	TypeVariable  = "variable"
)

// RawNode is a node as produced by the editor. A node with a "text" field is
// a leaf; otherwise "type" selects the element kind.
type RawNode struct {
	Text       *string   `json:"text,omitempty"`
	Type       string    `json:"type,omitempty"`
	Variable   string    `json:"variable,omitempty"`
	Label      string    `json:"label,omitempty"`
	Children   []RawNode `json:"children,omitempty"`
	Bold       bool      `json:"bold,omitempty"`
	Italic     bool      `json:"italic,omitempty"`
	Underline  bool      `json:"underline,omitempty"`
	IsVariable bool      `json:"isVariable,omitempty"`
}

// Classify returns the logical kind of a raw node, whichever surface shape
// encodes it. Unrecognized shapes classify as KindText.
func Classify(raw RawNode) Kind {
	k, _ := classify(raw)
	return k
}

func classify(raw RawNode) (kind Kind, known bool) {
	if raw.Text != nil {
		if raw.IsVariable {
			return KindPlaceholder, true
		}
		return KindText, true
	}
	switch raw.Type {
	case TypeParagraph:
		return KindParagraph, true
	case TypeVariable:
		return KindPlaceholder, true
	}
	return KindText, false
}

// Placeholder reports whether raw is a placeholder in either surface shape,
// returning its token and marks.
func (raw RawNode) Placeholder() (token string, marks Marks, ok bool) {
	if Classify(raw) != KindPlaceholder {
		return "", 0, false
	}
	marks = raw.marks()
	if raw.Text == nil {
		for _, child := range raw.Children {
			marks |= child.marks()
		}
	}
	return raw.Variable, marks, true
}

func (raw RawNode) marks() Marks {
	var m Marks
	if raw.Bold {
		m |= Bold
	}
	if raw.Italic {
		m |= Italic
	}
	if raw.Underline {
		m |= Underline
	}
	return m
}

// carrierText is the human-readable text carried by a node and its leaves.
func (raw RawNode) carrierText() string {
	if raw.Text != nil {
		return *raw.Text
	}
	var b strings.Builder
	for _, child := range raw.Children {
		b.WriteString(child.carrierText())
	}
	return b.String()
}

// Normalize converts raw nodes to canonical nodes, preserving order.
// An unknown element is replaced by its normalized children; an unknown
// node without children becomes an empty text run.
func Normalize(raws ...RawNode) []Node {
	out := make([]Node, 0, len(raws))
	for _, raw := range raws {
		out = append(out, normalize(raw)...)
	}
	return out
}

func normalize(raw RawNode) []Node {
	kind, known := classify(raw)
	if !known {
		if len(raw.Children) > 0 {
			return Normalize(raw.Children...)
		}
		return []Node{{Kind: KindText}}
	}

	switch kind {
	case KindPlaceholder:
		token, marks, _ := raw.Placeholder()
		label := raw.Label
		if label == "" {
			label = raw.carrierText()
		}
		return []Node{{Kind: KindPlaceholder, Token: token, Marks: marks, Label: label}}
	case KindParagraph:
		return []Node{{Kind: KindParagraph, Children: Normalize(raw.Children...)}}
	default:
		return []Node{{Kind: KindText, Text: *raw.Text, Marks: raw.marks()}}
	}
}

// Raw converts n to its canonical surface shape. Placeholders are emitted
// element-shaped.
func (n Node) Raw() RawNode {
	switch n.Kind {
	case KindParagraph:
		children := make([]RawNode, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.Raw()
		}
		return RawNode{Type: TypeParagraph, Children: children}
	case KindPlaceholder:
		empty := ""
		return RawNode{
			Type:     TypeVariable,
			Variable: n.Token,
			Label:    n.Label,
			Children: []RawNode{{
				Text:      &empty,
				Bold:      n.Marks.Has(Bold),
				Italic:    n.Marks.Has(Italic),
				Underline: n.Marks.Has(Underline),
			}},
		}
	default:
		text := n.Text
		return RawNode{
			Text:      &text,
			Bold:      n.Marks.Has(Bold),
			Italic:    n.Marks.Has(Italic),
			Underline: n.Marks.Has(Underline),
		}
	}
}

// MarshalJSON encodes n in its canonical surface shape.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Raw())
}

// UnmarshalJSON decodes editor JSON (an array of nodes) into d.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raws []RawNode
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	*d = Normalize(raws...)
	return nil
}

// ParseDocument decodes editor JSON into a Document.
func ParseDocument(data []byte) (Document, error) {
	var d Document
	if err := d.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return d, nil
}
