package richtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/richmail/pkg/validator"
)

// ViolationKind classifies a content violation.
type ViolationKind string

const (
	// EmptyContent: the document has no visible text and no placeholder.
	EmptyContent ViolationKind = "empty_content"
	// UnknownVariable: a placeholder references a token outside the schema.
	UnknownVariable ViolationKind = "unknown_variable"
)

// Violation messages.
const (
	MsgEmptyContent    = "Content cannot be empty."
	MsgUnknownVariable = "Invalid variable %q found in content."
)

// Translation keys carried when violations are exposed as field errors.
const (
	KeyEmptyContent    = "validation.content_empty"
	KeyUnknownVariable = "validation.unknown_variable"
)

// Violation is a single content validation failure.
type Violation struct {
	Path    string        `json:"path"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
}

// Violations is the result of Validate. A nil or empty value means valid.
// It implements error so it can travel through (string, error) returns.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "content is valid"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%s: %s", v.Path, v.Message)
	}
	return "invalid content: " + strings.Join(parts, "; ")
}

// Is makes violations match validator.ErrValidationFailed.
func (vs Violations) Is(target error) bool {
	return target == validator.ErrValidationFailed
}

// HasKind reports whether any violation is of kind k.
func (vs Violations) HasKind(k ViolationKind) bool {
	for _, v := range vs {
		if v.Kind == k {
			return true
		}
	}
	return false
}

// Count returns the number of violations of kind k.
func (vs Violations) Count(k ViolationKind) int {
	n := 0
	for _, v := range vs {
		if v.Kind == k {
			n++
		}
	}
	return n
}

// ValidationErrors converts violations to field errors. Paths become fields.
func (vs Violations) ValidationErrors() validator.ValidationErrors {
	if len(vs) == 0 {
		return nil
	}
	out := make(validator.ValidationErrors, 0, len(vs))
	for _, v := range vs {
		ve := validator.ValidationError{
			Field:             v.Path,
			Message:           v.Message,
			TranslationValues: map[string]any{"field": v.Path},
		}
		switch v.Kind {
		case EmptyContent:
			ve.TranslationKey = KeyEmptyContent
		case UnknownVariable:
			ve.TranslationKey = KeyUnknownVariable
			ve.TranslationValues["variable"] = v.Token
		}
		out = append(out, ve)
	}
	return out
}

// ExtractViolations returns the Violations wrapped by err, if any.
func ExtractViolations(err error) Violations {
	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}
	return nil
}
