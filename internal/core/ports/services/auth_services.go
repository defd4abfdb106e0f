package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// AuthSvc is the credential store guarding a ledger file.
type AuthSvc interface {
	// HasAnyUser reports whether the first administrator has been created.
	HasAnyUser(ctx context.Context) (bool, error)

	// Verify checks a username and password. Returns INVALID_CREDENTIALS on any mismatch.
	Verify(ctx context.Context, username, password string) (*domain.User, error)

	// CreateFirstAdmin creates the administrator of a fresh ledger file. Returns USER_EXISTS when a
	// user already exists.
	CreateFirstAdmin(ctx context.Context, req dto.CredentialsRequest) (*domain.User, error)
}
