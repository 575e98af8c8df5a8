// Package mailer wraps rendered message bodies in an email layout and hands
// the result to a delivery provider.
//
// A message body arrives as HTML produced by the rich-text renderer. The
// Renderer places it inside a markdown template (YAML frontmatter plus a
// text/template body), converts the markdown with goldmark while passing raw
// HTML through, sanitizes the result for email clients and finally executes
// an optional html/template layout around it.
//
//	renderer := mailer.NewRenderer(mailer.DefaultTemplates())
//	m := mailer.New(sender, renderer, mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultTemplate: "message.md",
//		DefaultLayout:   "base.html",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:      "ada@example.com",
//		Title:   "Welcome",
//		Subject: "Hello Ada",
//		Content: "<p>Hello <strong>Ada</strong></p>",
//	})
//
// Template files live in the root of the filesystem, layouts under layouts/.
// Both are parsed once and cached; rendered output is never cached.
//
// Providers implement Sender. The resend subpackage ships one backed by the
// Resend API.
package mailer
