// Package composer turns editor documents into delivered emails.
//
// A Pipeline validates a rich-text document against the variable registry,
// renders it to HTML and resolves placeholder markers against a variable
// context. Validation failure is returned as richtext.Violations and nothing
// is rendered.
//
//	html, err := composer.NewPipeline(nil).Process(doc, variable.Context{
//		"user": variable.User{FirstName: "Ada"},
//	})
//
// A Composer adds the message envelope: it validates a Message (title,
// subject, recipients and content), resolves the subject, wraps the body in
// the mailer layout and sends one email per recipient concurrently.
package composer
