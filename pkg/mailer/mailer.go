package mailer

import (
	"context"
	"errors"
	"maps"

	"github.com/dmitrymomot/richmail/pkg/sanitizer"
)

// Mailer builds emails from rendered bodies and delivers them.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer. A nil renderer sends bodies without a template or
// layout, sanitized only.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams describes one email addressed to a single recipient.
type SendParams struct {
	Headers map[string]string
	Tags    Tags

	To      string
	Title   string
	Subject string // takes precedence over template metadata
	Content string // body HTML

	// Optional overrides
	Template    string
	Layout      string
	From        string
	ReplyTo     string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Build renders params into an Email without sending it.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Build(params SendParams) (*Email, error) {
	if params.To == "" {
		return nil, ErrNoRecipient
	}
	if params.Content == "" {
		return nil, ErrNoContent
	}

	data := LayoutData{Title: params.Title, Subject: params.Subject, Content: params.Content}

	var result *RenderResult
	if m.renderer == nil {
		body := sanitizer.SanitizeHTML(params.Content)
		result = &RenderResult{HTML: body, Text: sanitizer.PlainText(body)}
	} else {
		if params.Template == "" {
			params.Template = m.config.DefaultTemplate
		}
		if params.Layout == "" {
			params.Layout = m.config.DefaultLayout
		}

		var err error
		result, err = m.renderer.Render(params.Layout, params.Template, data)
		if err != nil {
			return nil, errors.Join(ErrRenderFailed, err)
		}
	}

	subject := Subject(params.Subject, result.Metadata, m.config.FallbackSubject)
	if subject == "" {
		return nil, ErrNoSubject
	}

	return &Email{
		Headers:     maps.Clone(params.Headers),
		Tags:        params.Tags,
		To:          []string{params.To},
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Attachments: params.Attachments,
	}, nil
}

// Send builds and delivers a single email.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	email, err := m.Build(params)
	if err != nil {
		return err
	}
	return m.SendRaw(ctx, email)
}

// SendRaw delivers a pre-built email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
