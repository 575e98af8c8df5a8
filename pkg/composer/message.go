package composer

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/richmail/pkg/richtext"
	"github.com/dmitrymomot/richmail/pkg/validator"
)

// Length bounds for title and subject, in characters.
const (
	MinTextLength = 3
	MaxTextLength = 255
)

// Message is an email composed in the editor.
type Message struct {
	Title      string            `json:"title"`
	Subject    string            `json:"subject"`
	Recipients []string          `json:"recipients"`
	Content    richtext.Document `json:"content"`
}

// Normalize trims recipients and drops blank ones.
func (m Message) Normalize() Message {
	recipients := make([]string, 0, len(m.Recipients))
	for _, r := range m.Recipients {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	m.Recipients = recipients
	return m
}

// Validate checks the envelope and the content. It returns nil or
// validator.ValidationErrors; content violations keep their document paths
// as field names.
func (m Message) Validate(schema richtext.Schema) error {
	m = m.Normalize()

	rules := append(textRules("title", m.Title), textRules("subject", m.Subject)...)
	rules = append(rules, validator.MinLenSlice("recipients", m.Recipients, 1))
	for i, r := range m.Recipients {
		rules = append(rules, validator.ValidEmail(fmt.Sprintf("recipients[%d]", i), r))
	}

	errs := validator.ExtractValidationErrors(validator.Apply(rules...))
	errs = append(errs, richtext.Validate(m.Content, schema).ValidationErrors()...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// textRules requires a value and bounds its length once present.
func textRules(field, value string) []validator.Rule {
	if strings.TrimSpace(value) == "" {
		return []validator.Rule{validator.RequiredString(field, value)}
	}
	return []validator.Rule{
		validator.MinLenString(field, value, MinTextLength),
		validator.MaxLenString(field, value, MaxTextLength),
	}
}
