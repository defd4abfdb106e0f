package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// CredentialVerifier checks a username and password pair.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*domain.User, error)
}

// Authenticate verifies the credentials and, on success, returns a context carrying the user and a
// logger enriched with it.
func Authenticate(ctx context.Context, verifier CredentialVerifier, username, password string) (context.Context, error) {
	logger := GetLoggerFromCtx(ctx)

	user, err := verifier.Verify(ctx, username, password)
	if err != nil {
		logger.Warn("Authentication failed", slog.String("username", username), slog.String("error", err.Error()))
		return ctx, err
	}

	ctx = WithUser(ctx, user.Username)

	// Store the *enriched* logger back into the context
	enrichedLogger := logger.With(slog.String("user", user.Username))
	return WithLogger(ctx, enrichedLogger), nil
}
