// Package logging is the structured logger every shouxkream component
// receives. SlogLogger backs it with log/slog.
package logging

import "context"

// Logger takes a message plus alternating key and value arguments:
//
//	log.Info(ctx, "user signed up", "user_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record,
	// e.g. With("module", "grpc_server").
	With(args ...any) Logger
}
