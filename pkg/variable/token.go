package variable

import (
	"regexp"
	"strings"
)

// Separator splits a token into entity and property.
const Separator = "."

// markerPattern matches "{{", optional whitespace, the token, optional whitespace, "}}".
var markerPattern = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// Marker returns the canonical rendered marker for a token.
func Marker(token string) string {
	return "{{ " + token + " }}"
}

// SplitToken splits a token into its entity and property parts.
// Returns false unless the token has exactly one separator and both parts are non-empty.
func SplitToken(token string) (entity, property string, ok bool) {
	parts := strings.Split(token, Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Tokens returns the distinct tokens referenced by markers in s, in order of first appearance.
func Tokens(s string) []string {
	var tokens []string
	seen := make(map[string]struct{})
	for _, m := range markerPattern.FindAllStringSubmatch(s, -1) {
		tok := m[1]
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// scan groups every distinct marker spelling by its token.
// Tokens keep first-appearance order; "{{x}}" and "{{ x }}" map to the same token.
func scan(s string) (order []string, spellings map[string][]string) {
	spellings = make(map[string][]string)
	seen := make(map[string]struct{})
	for _, m := range markerPattern.FindAllStringSubmatch(s, -1) {
		marker, tok := m[0], m[1]
		if _, ok := spellings[tok]; !ok {
			order = append(order, tok)
		}
		if _, ok := seen[marker]; ok {
			continue
		}
		seen[marker] = struct{}{}
		spellings[tok] = append(spellings[tok], marker)
	}
	return order, spellings
}
