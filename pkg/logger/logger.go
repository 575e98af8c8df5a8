package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	output     io.Writer
	extractors []ContextExtractor
	level      slog.Level
}

// Option configures a logger built by New or NewWithSentry.
type Option func(*options)

// WithLevel sets the minimum level written to the output.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput sets the destination of JSON log lines. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithExtractors appends context extractors.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		output: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	return slog.NewJSONHandler(o.output, &slog.HandlerOptions{Level: o.level})
}

// New creates a JSON logger.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts)
	return slog.New(NewContextHandler(o.handler(), o.extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
