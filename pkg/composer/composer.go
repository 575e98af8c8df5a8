package composer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/richmail/pkg/logger"
	"github.com/dmitrymomot/richmail/pkg/mailer"
	"github.com/dmitrymomot/richmail/pkg/variable"
)

// Composer validates messages, renders them and hands them to the mailer.
type Composer struct {
	mailer   *mailer.Mailer
	pipeline *Pipeline
	logger   *slog.Logger
	newID    func() string
	config   Config
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPipeline replaces the default pipeline.
func WithPipeline(p *Pipeline) Option {
	return func(c *Composer) {
		if p != nil {
			c.pipeline = p
		}
	}
}

// WithIDGenerator overrides message ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(c *Composer) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a Composer delivering through m.
func New(m *mailer.Mailer, cfg Config, opts ...Option) *Composer {
	c := &Composer{
		mailer:   m,
		pipeline: NewPipeline(nil),
		logger:   logger.NewNope(),
		newID:    uuid.NewString,
		config:   cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Composed is a validated message with its content resolved.
type Composed struct {
	Title      string
	Subject    string
	Body       string // resolved body HTML, before layout
	Recipients []string
}

// Compose validates msg and resolves its title, subject and body against vars.
// A validation failure returns validator.ValidationErrors.
func (c *Composer) Compose(msg Message, vars variable.Context) (*Composed, error) {
	msg = msg.Normalize()
	if err := msg.Validate(c.pipeline.Registry()); err != nil {
		return nil, err
	}

	body, err := c.pipeline.Process(msg.Content, vars)
	if err != nil {
		return nil, err
	}

	return &Composed{
		Title:      c.pipeline.Resolve(msg.Title, vars),
		Subject:    c.pipeline.Resolve(msg.Subject, vars),
		Body:       body,
		Recipients: msg.Recipients,
	}, nil
}

// Preview composes msg and builds the email for its first recipient without
// sending it.
func (c *Composer) Preview(msg Message, vars variable.Context) (*mailer.Email, error) {
	composed, err := c.Compose(msg, vars)
	if err != nil {
		return nil, err
	}
	return c.mailer.Build(composed.params(composed.Recipients[0], ""))
}

// Delivery records one email handed to the provider.
type Delivery struct {
	Recipient string `json:"recipient"`
	MessageID string `json:"message_id"`
}

// Send composes msg and delivers one email per recipient, at most
// Config.Concurrency at a time. The first delivery error cancels the
// remaining ones; deliveries that completed are still returned.
func (c *Composer) Send(ctx context.Context, msg Message, vars variable.Context) ([]Delivery, error) {
	composed, err := c.Compose(msg, vars)
	if err != nil {
		return nil, err
	}

	done := make([]bool, len(composed.Recipients))
	deliveries := make([]Delivery, len(composed.Recipients))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.concurrency())

	for i, to := range composed.Recipients {
		id := c.newID()
		deliveries[i] = Delivery{Recipient: to, MessageID: id}

		g.Go(func() error {
			sctx := logger.WithMessageID(gctx, id)
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := c.mailer.Send(sctx, composed.params(to, id)); err != nil {
				c.logger.ErrorContext(sctx, "email delivery failed", slog.String("recipient", to), slog.Any("error", err))
				return err
			}
			done[i] = true
			c.logger.InfoContext(sctx, "email sent", slog.String("recipient", to))
			return nil
		})
	}

	err = g.Wait()

	sent := make([]Delivery, 0, len(deliveries))
	for i, d := range deliveries {
		if done[i] {
			sent = append(sent, d)
		}
	}

	if err != nil {
		return sent, errors.Join(ErrSendFailed, err)
	}
	return sent, nil
}

func (m *Composed) params(to, id string) mailer.SendParams {
	p := mailer.SendParams{
		To:      to,
		Title:   m.Title,
		Subject: m.Subject,
		Content: m.Body,
	}
	if id != "" {
		p.Headers = map[string]string{mailer.HeaderMessageID: id}
	}
	return p
}
