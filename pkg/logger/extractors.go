package logger

import (
	"context"
	"log/slog"
)

type messageIDKey struct{}

// WithMessageID stores the outgoing message ID in ctx.
func WithMessageID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, messageIDKey{}, id)
}

// MessageID returns the message ID stored in ctx, if any.
func MessageID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(messageIDKey{}).(string)
	return id, ok && id != ""
}

// MessageIDExtractor adds "message_id" to records logged with a context
// carrying a message ID.
func MessageIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := MessageID(ctx); ok {
		return slog.String("message_id", id), true
	}
	return slog.Attr{}, false
}
