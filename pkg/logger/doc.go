// Package logger builds the structured loggers used across richmail.
//
// Loggers are plain *slog.Logger values. Two things are layered on top of
// log/slog: context extractors that add request-scoped attributes on every
// call, and an optional Sentry fan-out for warnings and errors.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(logger.MessageIDExtractor),
//	)
//
//	ctx := logger.WithMessageID(context.Background(), "9f8c...")
//	log.InfoContext(ctx, "email sent", slog.String("to", "ada@example.com"))
//	// {"level":"INFO","msg":"email sent","to":"ada@example.com","message_id":"9f8c..."}
//
// Components that accept a logger default to NewNope, so logging is opt-in.
//
// # Sentry
//
// NewWithSentry sends errors to Sentry as issues and keeps warnings as
// breadcrumbs. With an empty DSN it behaves exactly like New.
package logger
