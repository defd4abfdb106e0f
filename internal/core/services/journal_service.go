package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	periodRepo  portsrepo.FiscalPeriodReader
	pageSize    int
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithPageSize sets the default page size of entry listings.
func WithPageSize(size int) JournalServiceOption {
	return func(s *journalService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithJournalClock sets the clock used to stamp creation times.
func WithJournalClock(clock func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.Clock = clock
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	periodRepo portsrepo.FiscalPeriodReader,
	options ...JournalServiceOption,
) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
		pageSize:    pagination.DefaultLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// resolvePeriod finds the period an entry dated date targets and checks the date lies inside it.
func (s *journalService) resolvePeriod(ctx context.Context, date time.Time, periodID *int64) (*domain.FiscalPeriod, error) {
	if periodID != nil {
		period, err := s.periodRepo.FindPeriodByID(ctx, *periodID)
		if err != nil {
			return nil, err
		}
		if !period.Contains(date) {
			return nil, outOfPeriod(date, period)
		}
		return period, nil
	}

	period, err := s.periodRepo.FindPeriodContaining(ctx, date)
	if err != nil || period != nil {
		return period, err
	}

	open, err := s.periodRepo.FindOpenPeriod(ctx)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperrors.New(apperrors.CodeNoOpenPeriod, "no open fiscal period; create one first")
	}
	return nil, outOfPeriod(date, open)
}

func outOfPeriod(date time.Time, p *domain.FiscalPeriod) error {
	return apperrors.Newf(apperrors.CodeDateOutOfPeriod, "date %s is outside period %q (%s to %s)",
		domain.FormatDate(date), p.PeriodName, domain.FormatDate(p.StartDate), domain.FormatDate(p.EndDate))
}

// checkAccount verifies one leg's account. An inactive account is only accepted when the entry being
// updated already used it on that leg.
func (s *journalService) checkAccount(ctx context.Context, number, kept string, missing func(string) *apperrors.Error) error {
	if number == "" {
		return missing(number)
	}
	account, err := s.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeAccountNotFound {
			return missing(number)
		}
		return err
	}
	if !account.Active && number != kept {
		return apperrors.AccountInactive(number)
	}
	return nil
}

// parseAmount accepts a comma as the decimal separator when the text has no dot.
func parseAmount(raw string) (decimal.Decimal, error) {
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, apperrors.Newf(apperrors.CodeAmountInvalid, "amount %q must be a number greater than zero", raw)
	}
	return amount, nil
}

// validate runs the entry rules in their fixed order and stops at the first failure. existing is the
// entry being updated, nil on creation.
func (s *journalService) validate(ctx context.Context, req dto.EntryRequest, existing *domain.JournalEntry) (*domain.JournalEntry, error) {
	if req.Label == "" {
		return nil, apperrors.New(apperrors.CodeLabelRequired, "label is required")
	}

	if err := dto.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	date, _ := domain.ParseDate(req.Date)

	period, err := s.resolvePeriod(ctx, date, req.PeriodID)
	if err != nil {
		return nil, err
	}

	var keptDebit, keptCredit string
	if existing != nil {
		keptDebit, keptCredit = existing.DebitAccount, existing.CreditAccount
	}
	if err := s.checkAccount(ctx, req.DebitAccount, keptDebit, apperrors.DebitAccountMissing); err != nil {
		return nil, err
	}
	if err := s.checkAccount(ctx, req.CreditAccount, keptCredit, apperrors.CreditAccountMissing); err != nil {
		return nil, err
	}
	if req.DebitAccount == req.CreditAccount {
		return nil, apperrors.Newf(apperrors.CodeAccountsIdentical, "debit and credit account are both %s", req.DebitAccount)
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if period.Closed {
		return nil, apperrors.Newf(apperrors.CodePeriodClosed, "period %q is closed", period.PeriodName)
	}

	var exceptID int64
	if existing != nil {
		exceptID = existing.ID
	}
	if req.PieceNumber != nil && !req.AllowDuplicatePiece {
		exists, err := s.journalRepo.PieceNumberExists(ctx, *req.PieceNumber, exceptID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.Newf(apperrors.CodeDuplicatePieceNumber, "piece number %s is already used", *req.PieceNumber)
		}
	}

	return &domain.JournalEntry{
		ID:            exceptID,
		Date:          date,
		Label:         req.Label,
		DebitAccount:  req.DebitAccount,
		CreditAccount: req.CreditAccount,
		Amount:        amount,
		PieceNumber:   req.PieceNumber,
		Note:          req.Note,
	}, nil
}

func (s *journalService) ValidateEntry(ctx context.Context, req dto.EntryRequest, exceptID int64) (*domain.JournalEntry, error) {
	req.Normalize()
	var existing *domain.JournalEntry
	if exceptID != 0 {
		e, err := s.journalRepo.FindEntryByID(ctx, exceptID)
		if err != nil {
			return nil, err
		}
		existing = e
	}
	entry, err := s.validate(ctx, req, existing)
	if err != nil {
		s.LogRejected(ctx, err, "Journal entry rejected")
		return nil, err
	}
	return entry, nil
}

func (s *journalService) CreateEntry(ctx context.Context, req dto.EntryRequest) (*domain.JournalEntry, error) {
	req.Normalize()
	entry, err := s.validate(ctx, req, nil)
	if err != nil {
		s.LogRejected(ctx, err, "Journal entry rejected",
			slog.String("debit", req.DebitAccount),
			slog.String("credit", req.CreditAccount))
		return nil, err
	}

	entry.CreatedAt = s.now()
	id, err := s.journalRepo.SaveEntry(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journal entry")
		return nil, err
	}
	entry.ID = id

	s.LogInfo(ctx, "Journal entry created successfully",
		slog.Int64("entry_id", id),
		slog.String("amount", entry.Amount.String()))
	return entry, nil
}

// ensureEntryEditable loads an entry and rejects it when the period holding it is closed.
func (s *journalService) ensureEntryEditable(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	existing, err := s.journalRepo.FindEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	period, err := s.periodRepo.FindPeriodContaining(ctx, existing.Date)
	if err != nil {
		return nil, err
	}
	if period != nil && period.Closed {
		return nil, apperrors.Newf(apperrors.CodePeriodClosed, "entry %d belongs to closed period %q", id, period.PeriodName)
	}
	return existing, nil
}

func (s *journalService) UpdateEntry(ctx context.Context, id int64, req dto.EntryRequest) (*domain.JournalEntry, error) {
	req.Normalize()
	existing, err := s.ensureEntryEditable(ctx, id)
	if err != nil {
		s.LogRejected(ctx, err, "Journal entry update rejected", slog.Int64("entry_id", id))
		return nil, err
	}

	entry, err := s.validate(ctx, req, existing)
	if err != nil {
		s.LogRejected(ctx, err, "Journal entry update rejected", slog.Int64("entry_id", id))
		return nil, err
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt

	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.Int64("entry_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry updated successfully", slog.Int64("entry_id", id))
	return entry, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, id int64) error {
	if _, err := s.ensureEntryEditable(ctx, id); err != nil {
		s.LogRejected(ctx, err, "Journal entry delete rejected", slog.Int64("entry_id", id))
		return err
	}
	if err := s.journalRepo.DeleteEntry(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete journal entry", slog.Int64("entry_id", id))
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.Int64("entry_id", id))
	return nil
}

func (s *journalService) GetEntry(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, id)
	if err != nil {
		s.LogRejected(ctx, err, "Failed to get journal entry", slog.Int64("entry_id", id))
		return nil, err
	}
	return entry, nil
}

// listFingerprint identifies the filter a page token was issued for.
func listFingerprint(p dto.ListEntriesParams) string {
	periodID := ""
	if p.PeriodID != nil {
		periodID = strconv.FormatInt(*p.PeriodID, 10)
	}
	return pagination.Fingerprint(p.From, p.To, periodID, p.Mode, strings.TrimSpace(p.Term), p.AmountMin, p.AmountMax)
}

func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}

	fingerprint := listFingerprint(params)
	offset := params.Offset
	if params.PageToken != nil && *params.PageToken != "" {
		offset, err = pagination.DecodeOffsetToken(*params.PageToken, fingerprint)
		if err != nil {
			return nil, apperrors.Newf(apperrors.CodeSearchInvalid, "invalid page token: %v", err)
		}
	}
	limit, offset := pagination.Normalize(params.Limit, offset, s.pageSize)

	total, err := s.journalRepo.CountEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count journal entries")
		return nil, err
	}
	entries, err := s.journalRepo.ListEntries(ctx, filter, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}
	if params.SortBy != "" {
		domain.SortEntries(entries, domain.EntrySortKey(params.SortBy), params.Descending)
	}

	resp := &dto.ListEntriesResponse{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	if next := pagination.NextOffset(offset, limit, total); next >= 0 {
		token := pagination.EncodeOffsetToken(next, fingerprint)
		resp.NextPageToken = &token
	}

	s.LogDebug(ctx, "Journal entries listed",
		slog.Int("count", len(entries)),
		slog.Int("total", total),
		slog.String("page", fmt.Sprintf("%d/%d", offset/limit+1, pagination.PageCount(total, limit))))
	return resp, nil
}
