package resend

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/richmail/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a Resend sender after validating cfg.
func New(cfg Config) (*Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if _, err := s.client.Emails.SendWithContext(ctx, s.request(email)); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

func (s *Sender) request(email *mailer.Email) *resend.SendEmailRequest {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	for _, a := range email.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		})
	}

	req.Tags = tags(email)
	return req
}

// MessageIDTag carries the message ID so webhook events can be matched to
// deliveries.
const MessageIDTag = "message_id"

// maxTagLength is the longest tag name or value the API accepts.
const maxTagLength = 256

// tags converts email tags, sorted by name. The message ID header is added
// as MessageIDTag unless a tag of that name already exists.
func tags(email *mailer.Email) []resend.Tag {
	out := make([]resend.Tag, 0, len(email.Tags)+1)
	for _, name := range slices.Sorted(maps.Keys(email.Tags)) {
		out = append(out, resend.Tag{Name: tagText(name), Value: tagText(tagValue(email.Tags[name]))})
	}
	if id := email.Header(mailer.HeaderMessageID); id != "" {
		if _, ok := email.Tags[MessageIDTag]; !ok {
			out = append(out, resend.Tag{Name: MessageIDTag, Value: tagText(id)})
		}
	}
	return out
}

// tagText replaces characters outside [A-Za-z0-9_-] with "_" and truncates
// to maxTagLength.
func tagText(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, s)
	if len(s) > maxTagLength {
		s = s[:maxTagLength]
	}
	return s
}

// tagValue renders a tag value for Resend. Presence-only tags become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
