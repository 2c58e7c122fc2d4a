package port

import (
	"context"

	"github.com/rs/zerolog"
)

// LoggerFromContext resolves the logger attached to a resolution context.
// Use cases take one of these instead of importing the logging package, so
// tests can capture log output per call.
type LoggerFromContext func(ctx context.Context) *zerolog.Logger

// ContextLogger is the default LoggerFromContext (zerolog.Ctx).
func ContextLogger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
