package composer

import (
	"github.com/dmitrymomot/richmail/pkg/richtext"
	"github.com/dmitrymomot/richmail/pkg/variable"
)

// Pipeline runs validate, render and resolve over a document.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	registry *variable.Registry
	resolver *variable.Resolver
}

// NewPipeline creates a pipeline over registry. A nil registry uses
// variable.Default().
func NewPipeline(registry *variable.Registry, opts ...variable.ResolverOption) *Pipeline {
	if registry == nil {
		registry = variable.Default()
	}
	return &Pipeline{
		registry: registry,
		resolver: variable.NewResolver(registry, opts...),
	}
}

// Registry returns the registry the pipeline validates against.
func (p *Pipeline) Registry() *variable.Registry {
	return p.registry
}

// Validate checks doc without rendering it.
func (p *Pipeline) Validate(doc richtext.Document) richtext.Violations {
	return richtext.Validate(doc, p.registry)
}

// Process validates doc and, when valid, returns the rendered markup with
// every resolvable marker substituted from vars. On failure the error is
// richtext.Violations and the markup is empty.
func (p *Pipeline) Process(doc richtext.Document, vars variable.Context) (string, error) {
	if vs := p.Validate(doc); len(vs) > 0 {
		return "", vs
	}
	return p.resolver.Resolve(richtext.Render(doc), vars), nil
}

// Resolve substitutes markers in free text such as a subject line.
func (p *Pipeline) Resolve(text string, vars variable.Context) string {
	return p.resolver.Resolve(text, vars)
}

// Process runs the default pipeline.
func Process(doc richtext.Document, vars variable.Context) (string, error) {
	return NewPipeline(nil).Process(doc, vars)
}
