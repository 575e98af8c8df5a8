package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/richmail/pkg/i18n"
)

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		template     string
		placeholders i18n.M
		want         string
	}{
		{name: "nil map", template: "Hello, {{name}}!", want: "Hello, {{name}}!"},
		{name: "single", template: "Hello, {{name}}!", placeholders: i18n.M{"name": "John"}, want: "Hello, John!"},
		{name: "numbers", template: "at least {{min}} items", placeholders: i18n.M{"min": 3}, want: "at least 3 items"},
		{name: "unknown stays", template: "{{a}} {{b}}", placeholders: i18n.M{"a": "x"}, want: "x {{b}}"},
		{name: "repeated", template: "{{a}}{{a}}", placeholders: i18n.M{"a": "x"}, want: "xx"},
		{name: "values are not rescanned", template: "{{a}}", placeholders: i18n.M{"a": "{{b}}", "b": "y"}, want: "{{b}}"},
		{name: "no markers", template: "plain", placeholders: i18n.M{"a": "x"}, want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ReplacePlaceholders(tt.template, tt.placeholders))
		})
	}
}
