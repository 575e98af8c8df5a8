package variable

import (
	"fmt"
	"slices"
	"sync"
)

// Entry describes one known variable.
type Entry struct {
	Token    string `json:"key" yaml:"key"`
	Category string `json:"category" yaml:"category"`
	Label    string `json:"label" yaml:"label"`
}

// Group is a category with its entries, in registration order.
type Group struct {
	Category string  `json:"category"`
	Entries  []Entry `json:"variables"`
}

// Registry is an immutable set of known variables.
// It is safe for concurrent use.
type Registry struct {
	index   map[string]int
	entries []Entry
	groups  []Group
}

// NewRegistry builds a registry from the given entries.
// Every token must split into entity and property, and tokens must be unique.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		index:   make(map[string]int, len(entries)),
		entries: make([]Entry, 0, len(entries)),
	}

	groupIdx := make(map[string]int)
	for _, e := range entries {
		if _, _, ok := SplitToken(e.Token); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, e.Token)
		}
		if _, dup := r.index[e.Token]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, e.Token)
		}

		r.index[e.Token] = len(r.entries)
		r.entries = append(r.entries, e)

		gi, ok := groupIdx[e.Category]
		if !ok {
			gi = len(r.groups)
			groupIdx[e.Category] = gi
			r.groups = append(r.groups, Group{Category: e.Category})
		}
		r.groups[gi].Entries = append(r.groups[gi].Entries, e)
	}

	return r, nil
}

// MustRegistry works like NewRegistry but panics on invalid entries.
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultEntries returns the built-in variable schema.
func DefaultEntries() []Entry {
	return []Entry{
		{Token: "user.firstName", Category: "User", Label: "First Name"},
		{Token: "user.lastName", Category: "User", Label: "Last Name"},
		{Token: "user.email", Category: "User", Label: "Email"},
		{Token: "company.name", Category: "Company", Label: "Company Name"},
		{Token: "company.address", Category: "Company", Label: "Company Address"},
		{Token: "order.id", Category: "Order", Label: "Order ID"},
		{Token: "order.total", Category: "Order", Label: "Order Total"},
		{Token: "product.name", Category: "Product", Label: "Product Name"},
	}
}

// Default returns the process-wide registry built from DefaultEntries.
var Default = sync.OnceValue(func() *Registry {
	return MustRegistry(DefaultEntries()...)
})

// Has reports whether token is registered.
func (r *Registry) Has(token string) bool {
	_, ok := r.index[token]
	return ok
}

// Lookup returns the entry for token.
func (r *Registry) Lookup(token string) (Entry, bool) {
	i, ok := r.index[token]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of all entries in registration order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Groups returns entries grouped by category, in first-seen category order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = Group{Category: g.Category, Entries: slices.Clone(g.Entries)}
	}
	return out
}

// Len returns the number of registered variables.
func (r *Registry) Len() int {
	return len(r.entries)
}
