package repositories

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByNumber retrieves an account by its number. Returns ACCOUNT_NOT_FOUND when absent.
	FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts ordered by number.
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)

	// SearchAccounts matches term against number and label, ordered by relevance tier then number.
	SearchAccounts(ctx context.Context, term string, limit int) ([]domain.Account, error)

	// LabelTaken reports whether another active account already carries label, compared case-insensitively.
	LabelTaken(ctx context.Context, label string, exceptNumber string) (bool, error)

	// CountEntryReferences counts journal entries using the account on either leg.
	CountEntryReferences(ctx context.Context, number string) (int, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount persists a new account. Returns DUPLICATE_NUMBER when the number is taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates label and kind of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, number string) error

	// DeleteAccount removes an account row.
	DeleteAccount(ctx context.Context, number string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
