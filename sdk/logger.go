package sdk

import (
	"context"

	"go.uber.org/zap"
)

type Logger interface {
	Infof(template string, args ...any)
}

type contextLoggerValueT string

const ContextLoggerValue = contextLoggerValueT("bridgevote-logger")

// LoggerFrom extracts the logger carried on the context, falling back to a
// production zap logger when none is set. Handlers use this to log without
// taking a logger dependency of their own.
func LoggerFrom(ctx context.Context) Logger {
	value := ctx.Value(ContextLoggerValue)
	logger, ok := value.(Logger)
	if !ok {
		logger = zap.Must(zap.NewProduction()).Sugar()
	}

	return logger
}

// WithLogger returns a context carrying the given logger for LoggerFrom.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ContextLoggerValue, logger)
}
