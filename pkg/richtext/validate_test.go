package richtext_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/richmail/pkg/richtext"
	"github.com/dmitrymomot/richmail/pkg/validator"
	"github.com/dmitrymomot/richmail/pkg/variable"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	reg := variable.Default()

	tests := []struct {
		name       string
		doc        richtext.Document
		wantEmpty  int
		wantTokens []string
	}{
		{
			name:      "empty text paragraph",
			doc:       richtext.Document{richtext.NewParagraph(richtext.NewText(""))},
			wantEmpty: 1,
		},
		{
			name:      "whitespace only",
			doc:       richtext.Document{richtext.NewParagraph(richtext.NewText("  \n\t"))},
			wantEmpty: 1,
		},
		{
			name:      "no nodes",
			doc:       richtext.Document{},
			wantEmpty: 1,
		},
		{
			name: "valid placeholder alone",
			doc:  richtext.Document{richtext.NewParagraph(richtext.NewText(""), richtext.NewPlaceholder("user.firstName"))},
		},
		{
			name:       "unknown placeholder",
			doc:        richtext.Document{richtext.NewParagraph(richtext.NewText("Hi "), richtext.NewPlaceholder("foo.bar"))},
			wantTokens: []string{"foo.bar"},
		},
		{
			name: "repeated unknown token is not deduplicated",
			doc: richtext.Document{
				richtext.NewParagraph(richtext.NewPlaceholder("foo.bar")),
				richtext.NewParagraph(richtext.NewPlaceholder("foo.bar"), richtext.NewPlaceholder("baz.qux")),
			},
			wantTokens: []string{"foo.bar", "foo.bar", "baz.qux"},
		},
		{
			name:       "unknown placeholder still counts as content",
			doc:        richtext.Document{richtext.NewParagraph(richtext.NewPlaceholder("foo.bar"))},
			wantTokens: []string{"foo.bar"},
		},
		{
			name: "text and valid placeholders",
			doc: richtext.Document{richtext.NewParagraph(
				richtext.NewText("Hello "),
				richtext.NewPlaceholder("user.firstName"),
				richtext.NewText(", welcome!"),
			)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vs := richtext.Validate(tt.doc, reg)
			assert.Equal(t, tt.wantEmpty, vs.Count(richtext.EmptyContent))

			var tokens []string
			for _, v := range vs {
				if v.Kind == richtext.UnknownVariable {
					tokens = append(tokens, v.Token)
				}
			}
			assert.Equal(t, tt.wantTokens, tokens)
		})
	}
}

func TestValidate_UnknownKindIsInert(t *testing.T) {
	t.Parallel()

	doc := richtext.Document{richtext.NewParagraph(richtext.NewText(" "))}
	doc = append(doc, richtext.Node{Kind: richtext.Kind(42), Children: []richtext.Node{richtext.NewText("")}})

	vs := richtext.Validate(doc, nil)
	require.Len(t, vs, 1)
	assert.Equal(t, richtext.EmptyContent, vs[0].Kind)
	assert.Equal(t, "content", vs[0].Path)
	assert.Equal(t, "Content cannot be empty.", vs[0].Message)
}

func TestValidate_UnknownVariableAcrossSurfaceShapes(t *testing.T) {
	t.Parallel()

	shapes := map[string]string{
		"element": `[{"type":"paragraph","children":[{"type":"variable","variable":"foo.bar","children":[{"text":""}]}]}]`,
		"leaf":    `[{"type":"paragraph","children":[{"text":"Foo","isVariable":true,"variable":"foo.bar"}]}]`,
	}

	for name, data := range shapes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := richtext.ParseDocument([]byte(data))
			require.NoError(t, err)

			vs := richtext.Validate(doc, variable.Default())
			require.Len(t, vs, 1)
			assert.Equal(t, richtext.Violation{
				Path:    "content[0].children[0]",
				Kind:    richtext.UnknownVariable,
				Message: `Invalid variable "foo.bar" found in content.`,
				Token:   "foo.bar",
			}, vs[0])
		})
	}
}

func TestValidate_DocumentOrderPaths(t *testing.T) {
	t.Parallel()

	doc := richtext.Document{
		richtext.NewParagraph(richtext.NewText("a"), richtext.NewPlaceholder("x.one")),
		richtext.NewParagraph(
			richtext.Node{Kind: richtext.Kind(9), Children: []richtext.Node{richtext.NewPlaceholder("x.two")}},
			richtext.NewPlaceholder("x.three"),
		),
	}

	vs := richtext.Validate(doc, variable.Default())
	require.Len(t, vs, 3)
	assert.Equal(t, "content[0].children[1]", vs[0].Path)
	assert.Equal(t, "content[1].children[0].children[0]", vs[1].Path)
	assert.Equal(t, "content[1].children[1]", vs[2].Path)
	assert.Equal(t, []string{"x.one", "x.two", "x.three"}, []string{vs[0].Token, vs[1].Token, vs[2].Token})
}

func TestValidate_DoesNotMutate(t *testing.T) {
	t.Parallel()

	doc := richtext.Document{richtext.NewParagraph(richtext.NewText("Hello"), richtext.NewPlaceholder("foo.bar"))}
	before := richtext.Render(doc)
	_ = richtext.Validate(doc, variable.Default())
	assert.Equal(t, before, richtext.Render(doc))
}

func TestViolations_Error(t *testing.T) {
	t.Parallel()

	vs := richtext.Validate(richtext.Document{richtext.NewParagraph(richtext.NewPlaceholder("foo.bar"))}, nil)
	var err error = vs

	assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	assert.Equal(t, vs, richtext.ExtractViolations(err))
	assert.Contains(t, err.Error(), `content[0].children[0]: Invalid variable "foo.bar" found in content.`)
	assert.Nil(t, richtext.ExtractViolations(errors.New("other")))
}

func TestViolations_ValidationErrors(t *testing.T) {
	t.Parallel()

	vs := richtext.Violations{
		{Path: "content", Kind: richtext.EmptyContent, Message: richtext.MsgEmptyContent},
		{Path: "content[0].children[0]", Kind: richtext.UnknownVariable, Message: "bad", Token: "foo.bar"},
	}

	ve := vs.ValidationErrors()
	require.Len(t, ve, 2)
	assert.Equal(t, "content", ve[0].Field)
	assert.Equal(t, richtext.KeyEmptyContent, ve[0].TranslationKey)
	assert.Equal(t, richtext.KeyUnknownVariable, ve[1].TranslationKey)
	assert.Equal(t, "foo.bar", ve[1].TranslationValues["variable"])

	assert.Nil(t, richtext.Violations(nil).ValidationErrors())
}
