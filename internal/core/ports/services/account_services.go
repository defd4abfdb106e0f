package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account by its number.
	GetAccount(ctx context.Context, number string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts ordered by number.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)

	// SearchAccounts matches term against number and label. A limit <= 0 uses the configured default.
	SearchAccounts(ctx context.Context, term string, limit int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount changes label and kind of an existing account.
	UpdateAccount(ctx context.Context, number string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeactivateAccount hides an account from new entries while keeping its history.
	DeactivateAccount(ctx context.Context, number string) error

	// DeleteAccount removes an account no journal entry references.
	DeleteAccount(ctx context.Context, number string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
