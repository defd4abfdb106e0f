package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// contextKey is the type of the keys stored in a context.Context by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey      = contextKey("logger")
	operationIDCtxKey = contextKey("operationID")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the operation-scoped logger from ctx.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// GetOperationIDFromCtx returns the id assigned by StartOperation.
func GetOperationIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(operationIDCtxKey).(string)
	return id, ok && id != ""
}

// StartOperation tags ctx with a fresh operation id and a logger enriched with it and the command
// name. The returned func logs completion with the latency and the outcome.
func StartOperation(ctx context.Context, baseLogger *slog.Logger, command string) (context.Context, func(err error)) {
	start := time.Now()
	operationID := uuid.NewString()

	opLogger := baseLogger.With(
		slog.String("operation_id", operationID),
		slog.String("command", command),
	)
	ctx = context.WithValue(ctx, operationIDCtxKey, operationID)
	ctx = WithLogger(ctx, opLogger)

	return ctx, func(err error) {
		logger := GetLoggerFromCtx(ctx)
		latency := time.Since(start)
		if err != nil {
			logger.Warn("Operation failed", slog.String("error", err.Error()), slog.Duration("latency", latency))
			return
		}
		logger.Info("Operation completed", slog.Duration("latency", latency))
	}
}
