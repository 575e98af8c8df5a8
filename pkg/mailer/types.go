package mailer

import (
	"fmt"
	"maps"
)

// HeaderMessageID carries the per-recipient message identifier.
const HeaderMessageID = "X-Message-ID"

// Tags are provider tags. A struct{}{} value marks a presence-only tag.
type Tags map[string]any

// SimpleTags creates presence-only tags.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and address as "Name <email>".
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a message ready for delivery.
type Email struct {
	Headers     map[string]string
	Tags        Tags
	Subject     string
	HTML        string
	Text        string
	From        string // overrides the provider default sender
	ReplyTo     string
	To          []string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Header returns the value of a custom header.
func (e *Email) Header(name string) string {
	return e.Headers[name]
}

// Clone returns a copy that can be addressed to another recipient without
// sharing headers or recipient slices.
func (e *Email) Clone() *Email {
	c := *e
	c.Headers = maps.Clone(e.Headers)
	c.Tags = maps.Clone(e.Tags)
	c.To = append([]string(nil), e.To...)
	c.CC = append([]string(nil), e.CC...)
	c.BCC = append([]string(nil), e.BCC...)
	c.Attachments = append([]Attachment(nil), e.Attachments...)
	return &c
}

// Attachment is a file attached to an Email.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string // set for inline attachments
	Content     []byte
}
