package richtext

import (
	"fmt"

	"github.com/dmitrymomot/richmail/pkg/variable"
)

// Schema reports whether a variable token is known.
// *variable.Registry satisfies it.
type Schema interface {
	Has(token string) bool
}

// Validate checks d and returns every violation found. It never stops early:
// the emptiness check and the variable check both run, and each placeholder
// with an unknown token yields its own violation. A nil schema means
// variable.Default().
func Validate(d Document, schema Schema) Violations {
	if schema == nil {
		schema = variable.Default()
	}

	var vs Violations
	if !d.HasContent() {
		vs = append(vs, Violation{
			Path:    rootPath,
			Kind:    EmptyContent,
			Message: MsgEmptyContent,
		})
	}

	Walk(d, func(path string, n Node) bool {
		tok, ok := n.Placeholder()
		if ok && !schema.Has(tok) {
			vs = append(vs, Violation{
				Path:    path,
				Kind:    UnknownVariable,
				Message: fmt.Sprintf(MsgUnknownVariable, tok),
				Token:   tok,
			})
		}
		return true
	})

	return vs
}
