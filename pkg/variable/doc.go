// Package variable defines the closed set of template variables and resolves
// their markers against a runtime context.
//
// A variable is identified by a token of the form "entity.property", for
// example "user.firstName". Rendered documents carry variables as markers:
//
//	{{ user.firstName }}
//
// # Registry
//
// The Registry is the schema of known tokens. It is built once and is
// read-only afterwards, so a single instance can be shared by concurrent
// validators and resolvers without locking:
//
//	reg := variable.Default()
//	reg.Has("user.firstName") // true
//	reg.Has("foo.bar")        // false
//
// # Context
//
// A Context maps entity names to value providers. Typed entities cover the
// built-in schema; Values adapts arbitrary maps:
//
//	ctx := variable.Context{
//		"user":  variable.User{FirstName: "Ada"},
//		"order": variable.Values{"id": 42, "total": 1299.5},
//	}
//
// # Resolving
//
// Resolver scans markup for markers and substitutes each distinct token once:
//
//	r := variable.NewResolver(reg)
//	out := r.Resolve("<p>Hello {{ user.firstName }}</p>", ctx)
//	// <p>Hello Ada</p>
//
// Resolution never fails. A marker is left untouched when its token is
// malformed, unknown to the registry, or its entity is missing from the
// context. A registered token whose provider has no value for the property
// resolves to an empty string. Resolved values are never re-scanned for
// further markers.
package variable
