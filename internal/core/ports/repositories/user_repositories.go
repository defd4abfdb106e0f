package repositories

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByUsername retrieves a user. Returns apperrors.ErrNotFound when absent.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CountUsers returns the number of stored users.
	CountUsers(ctx context.Context) (int, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns its id. Returns USER_EXISTS on a taken username.
	SaveUser(ctx context.Context, user domain.User) (int64, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
