package richtext_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/richmail/pkg/richtext"
)

func strPtr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  richtext.RawNode
		want richtext.Kind
	}{
		{"paragraph", richtext.RawNode{Type: "paragraph"}, richtext.KindParagraph},
		{"text leaf", richtext.RawNode{Text: strPtr("hi")}, richtext.KindText},
		{"empty text leaf", richtext.RawNode{Text: strPtr("")}, richtext.KindText},
		{"element placeholder", richtext.RawNode{Type: "variable", Variable: "user.email"}, richtext.KindPlaceholder},
		{"flagged leaf placeholder", richtext.RawNode{Text: strPtr("Email"), IsVariable: true, Variable: "user.email"}, richtext.KindPlaceholder},
		{"unknown element", richtext.RawNode{Type: "heading"}, richtext.KindText},
		{"empty node", richtext.RawNode{}, richtext.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, richtext.Classify(tt.raw))
		})
	}
}

func TestRawNode_Placeholder(t *testing.T) {
	t.Parallel()

	element := richtext.RawNode{
		Type:     "variable",
		Variable: "user.firstName",
		Children: []richtext.RawNode{{Text: strPtr(""), Bold: true}},
	}
	leaf := richtext.RawNode{
		Text:       strPtr("First Name"),
		IsVariable: true,
		Variable:   "user.firstName",
		Bold:       true,
	}

	for _, raw := range []richtext.RawNode{element, leaf} {
		tok, marks, ok := raw.Placeholder()
		require.True(t, ok)
		assert.Equal(t, "user.firstName", tok)
		assert.Equal(t, richtext.Bold, marks)
	}

	_, _, ok := richtext.RawNode{Text: strPtr("plain")}.Placeholder()
	assert.False(t, ok)
}

func TestParseDocument_BothPlaceholderShapes(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"type": "paragraph", "children": [
			{"text": "Hello "},
			{"type": "variable", "variable": "user.firstName", "children": [{"text": ""}]},
			{"text": " and "},
			{"text": "Last Name", "isVariable": true, "variable": "user.lastName", "italic": true},
			{"text": "!", "bold": true, "underline": true}
		]}
	]`)

	doc, err := richtext.ParseDocument(data)
	require.NoError(t, err)
	require.Len(t, doc, 1)

	p := doc[0]
	assert.Equal(t, richtext.KindParagraph, p.Kind)
	require.Len(t, p.Children, 5)

	assert.Equal(t, richtext.NewText("Hello "), p.Children[0])

	tok, ok := p.Children[1].Placeholder()
	require.True(t, ok)
	assert.Equal(t, "user.firstName", tok)
	assert.Empty(t, p.Children[1].Label)

	tok, ok = p.Children[3].Placeholder()
	require.True(t, ok)
	assert.Equal(t, "user.lastName", tok)
	assert.Equal(t, "Last Name", p.Children[3].Label)
	assert.Equal(t, richtext.Italic, p.Children[3].Marks)

	assert.Equal(t, richtext.Bold|richtext.Underline, p.Children[4].Marks)
}

func TestParseDocument_UnknownNodes(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"type": "block-quote", "children": [
			{"type": "paragraph", "children": [{"text": "quoted"}]}
		]},
		{"type": "paragraph", "children": [
			{"type": "link", "children": [{"text": "a"}, {"text": "b"}]},
			{"type": "image"}
		]}
	]`)

	doc, err := richtext.ParseDocument(data)
	require.NoError(t, err)

	want := richtext.Document{
		richtext.NewParagraph(richtext.NewText("quoted")),
		richtext.NewParagraph(
			richtext.NewText("a"),
			richtext.NewText("b"),
			richtext.Node{Kind: richtext.KindText},
		),
	}
	assert.Equal(t, want, doc)
}

func TestParseDocument_Invalid(t *testing.T) {
	t.Parallel()

	for _, data := range []string{`{"type":"paragraph"}`, `not json`, `[{"text": 5}]`} {
		_, err := richtext.ParseDocument([]byte(data))
		require.ErrorIs(t, err, richtext.ErrInvalidDocument, data)
	}
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	doc := richtext.Document{
		richtext.NewParagraph(
			richtext.NewText("Hi ", richtext.Bold),
			richtext.NewPlaceholder("user.firstName", richtext.Italic),
		),
		richtext.NewParagraph(),
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"variable"`)
	assert.Contains(t, string(data), `"variable":"user.firstName"`)

	var back richtext.Document
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, richtext.Render(doc), richtext.Render(back))

	tok, ok := back[0].Children[1].Placeholder()
	require.True(t, ok)
	assert.Equal(t, "user.firstName", tok)
	assert.Equal(t, richtext.Italic, back[0].Children[1].Marks)
}

func TestMarks_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", richtext.Marks(0).String())
	assert.Equal(t, "bold|underline", (richtext.Bold | richtext.Underline).String())
	assert.Equal(t, "placeholder", richtext.KindPlaceholder.String())
}
