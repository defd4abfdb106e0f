package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// defaultSearchLimit applies when neither the caller nor the configuration sets one.
const defaultSearchLimit = 20

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	searchLimit int
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithSearchLimit sets the default number of search results.
func WithSearchLimit(limit int) AccountServiceOption {
	return func(s *accountService) {
		if limit > 0 {
			s.searchLimit = limit
		}
	}
}

// WithAccountClock sets the clock used to stamp creation times.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.Clock = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		searchLimit: defaultSearchLimit,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.LogRejected(ctx, err, "Invalid account request", slog.String("number", req.Number))
		return nil, err
	}

	// The primary key catches a taken number on insert; check first so the caller gets the
	// number error before the label one.
	if _, err := s.accountRepo.FindAccountByNumber(ctx, req.Number); err == nil {
		return nil, apperrors.Newf(apperrors.CodeDuplicateNumber, "account %s already exists", req.Number)
	} else if apperrors.CodeOf(err) != apperrors.CodeAccountNotFound {
		s.LogError(ctx, err, "Failed to look up account", slog.String("number", req.Number))
		return nil, err
	}

	if err := s.ensureLabelFree(ctx, req.Label, ""); err != nil {
		return nil, err
	}

	account := domain.Account{
		Number:    req.Number,
		Label:     req.Label,
		Kind:      req.Kind,
		Active:    true,
		CreatedAt: s.now(),
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogRejected(ctx, err, "Failed to save account", slog.String("number", account.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("number", account.Number))
	return &account, nil
}

// ensureLabelFree rejects a label already carried by another active account.
func (s *accountService) ensureLabelFree(ctx context.Context, label, exceptNumber string) error {
	taken, err := s.accountRepo.LabelTaken(ctx, label, exceptNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account label", slog.String("label", label))
		return err
	}
	if taken {
		return apperrors.Newf(apperrors.CodeDuplicateLabel, "an active account is already labelled %q", label)
	}
	return nil
}

func (s *accountService) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		s.LogRejected(ctx, err, "Failed to get account", slog.String("number", number))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, params.ToFilter())
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) SearchAccounts(ctx context.Context, term string, limit int) ([]domain.Account, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Account{}, nil
	}
	if limit <= 0 {
		limit = s.searchLimit
	}
	accounts, err := s.accountRepo.SearchAccounts(ctx, term, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to search accounts", slog.String("term", term))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, number string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		s.LogRejected(ctx, err, "Failed to find account for update", slog.String("number", number))
		return nil, err
	}

	updated := false
	if req.Label != nil && *req.Label != account.Label {
		if account.Active {
			if err := s.ensureLabelFree(ctx, *req.Label, account.Number); err != nil {
				return nil, err
			}
		}
		account.Label = *req.Label
		updated = true
	}
	switch {
	case req.ClearKind && account.Kind != nil:
		account.Kind = nil
		updated = true
	case req.Kind != nil && !account.HasKind(*req.Kind):
		account.Kind = req.Kind
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No changes detected for account update", slog.String("number", account.Number))
		return account, nil
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("number", account.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("number", account.Number))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, number string) error {
	number = strings.TrimSpace(number)
	if err := s.accountRepo.DeactivateAccount(ctx, number); err != nil {
		s.LogRejected(ctx, err, "Failed to deactivate account", slog.String("number", number))
		return err
	}
	s.LogInfo(ctx, "Account deactivated successfully", slog.String("number", number))
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, number string) error {
	number = strings.TrimSpace(number)
	if _, err := s.accountRepo.FindAccountByNumber(ctx, number); err != nil {
		s.LogRejected(ctx, err, "Failed to find account for delete", slog.String("number", number))
		return err
	}

	refs, err := s.accountRepo.CountEntryReferences(ctx, number)
	if err != nil {
		s.LogError(ctx, err, "Failed to count account references", slog.String("number", number))
		return err
	}
	if refs > 0 {
		err := apperrors.AccountInUse(number, refs)
		s.LogRejected(ctx, err, "Account still referenced", slog.String("number", number), slog.Int("references", refs))
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, number); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("number", number))
		return err
	}
	s.LogInfo(ctx, "Account deleted successfully", slog.String("number", number))
	return nil
}
