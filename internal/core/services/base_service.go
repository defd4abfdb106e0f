package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerbook/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time; time.Now when nil.
	Clock func() time.Time
}

// now returns the current UTC time from the service clock.
func (s *BaseService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	if code := errorCode(err); code != "" {
		args = append(args, slog.String("code", code))
	}
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// LogRejected logs a business rule rejection. Rule violations are expected outcomes, so they are
// logged at debug level and unexpected store failures at error level.
func (s *BaseService) LogRejected(ctx context.Context, err error, msg string, keyvals ...any) {
	if isFatal(err) {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("code", errorCode(err)))
	args = append(args, keyvals...)
	s.LogDebug(ctx, msg, args...)
}
