package variable

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/richmail/pkg/logger"
)

// Resolver substitutes variable markers with values from a Context.
// It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	registry *Registry
	logger   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used to report markers left unresolved.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a resolver backed by registry.
// A nil registry falls back to Default().
func NewResolver(registry *Registry, opts ...ResolverOption) *Resolver {
	if registry == nil {
		registry = Default()
	}
	r := &Resolver{
		registry: registry,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve replaces every resolvable marker in markup with its formatted value.
//
// Each distinct token is looked up once. All spellings of its marker are then
// replaced in a single pass over the original markup, so text produced by a
// substitution is never matched again.
func (r *Resolver) Resolve(markup string, vars Context) string {
	order, spellings := scan(markup)
	if len(order) == 0 {
		return markup
	}

	pairs := make([]string, 0, len(order)*2)
	for _, tok := range order {
		value, ok := r.value(tok, vars)
		if !ok {
			r.logger.LogAttrs(context.Background(), slog.LevelDebug, "variable left unresolved",
				slog.String("token", tok),
			)
			continue
		}
		for _, marker := range spellings[tok] {
			pairs = append(pairs, marker, value)
		}
	}

	if len(pairs) == 0 {
		return markup
	}
	return strings.NewReplacer(pairs...).Replace(markup)
}

// value resolves a single token. The second result is false when the marker
// must stay in place; a registered token with no property value yields "".
func (r *Resolver) value(token string, vars Context) (string, bool) {
	entity, property, ok := SplitToken(token)
	if !ok {
		return "", false
	}
	provider, ok := vars[entity]
	if !ok || provider == nil {
		return "", false
	}
	if !r.registry.Has(token) {
		return "", false
	}

	v, ok := provider.Property(property)
	if !ok {
		return "", true
	}
	return FormatValue(v), true
}

// Resolve substitutes markers using the default registry.
func Resolve(markup string, vars Context) string {
	return NewResolver(Default()).Resolve(markup, vars)
}
