// Package richtext implements the rich-text document model used to author
// email content: paragraphs of styled text runs and variable placeholders.
//
// # Model
//
// A Document is an ordered list of nodes. Every node has one of three kinds:
//
//   - KindParagraph: a block container with children
//   - KindText: a run of literal text with optional Bold, Italic, Underline marks
//   - KindPlaceholder: a variable token ("entity.property") resolved later
//
// Documents arrive as editor JSON. Placeholders come in two surface shapes
// and both decode to the same KindPlaceholder node:
//
//	{"type": "variable", "variable": "user.firstName", "children": [{"text": ""}]}
//	{"text": "First Name", "isVariable": true, "variable": "user.firstName", "bold": true}
//
// Unknown element types are replaced by their children; unknown leaves become
// empty text runs.
//
// # Validation
//
// Validate reports every problem at once: an EmptyContent violation when the
// document has no visible text and no placeholder, and one UnknownVariable
// violation per placeholder whose token the schema does not know.
//
//	if vs := richtext.Validate(doc, variable.Default()); len(vs) > 0 {
//		return vs
//	}
//
// # Rendering
//
// Render is a pure, deterministic transform to HTML. Text is escaped and
// wrapped in mark tags (strong, then em, then u). Placeholders render as the
// literal marker "{{ token }}", unescaped and without mark tags, so the
// markup can be handed to variable.Resolver afterwards.
//
//	richtext.Render(doc) // <p>Hello {{ user.firstName }}, welcome!</p>
package richtext
