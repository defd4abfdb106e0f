package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	classifier    accounting.Classifier
	capital       decimal.Decimal
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClassifier sets how the balance sheet recognises revenue and expense accounts.
func WithClassifier(c accounting.Classifier) ReportingServiceOption {
	return func(s *reportingService) {
		s.classifier = c
	}
}

// WithCapital sets the amount shown on the balance sheet "Capital" line.
func WithCapital(capital decimal.Decimal) ReportingServiceOption {
	return func(s *reportingService) {
		s.capital = capital
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		accountRepo:   accountRepo,
		classifier:    accounting.NewClassifier(accounting.ClassifyByPrefix),
		capital:       decimal.Zero,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates the trial balance over an optional kind and date range
func (s *reportingService) TrialBalance(ctx context.Context, params dto.TrialBalanceParams) (*domain.TrialBalance, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.ListAccountPostings(ctx, filter.Kind, filter.Dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to get trial balance data")
		return nil, err
	}

	tb := accounting.BuildTrialBalance(rows)
	if !tb.Balanced {
		s.LogInfo(ctx, "Trial balance is out of equilibrium", slog.String("gap", tb.Gap.String()))
	}
	s.LogDebug(ctx, "Trial balance generated", slog.Int("accounts", len(tb.Rows)))
	return &tb, nil
}

// GeneralLedger generates the history of one account. With a limit, only the requested page is
// returned and its running balance starts from the lines that precede it in the window; the debit
// and credit totals then cover that page only.
func (s *reportingService) GeneralLedger(ctx context.Context, params dto.GeneralLedgerParams) (*domain.GeneralLedger, error) {
	dates, err := params.Validate()
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByNumber(ctx, params.Account)
	if err != nil {
		s.LogRejected(ctx, err, "Failed to find ledger account", slog.String("number", params.Account))
		return nil, err
	}

	postings, err := s.reportingRepo.ListAccountLedger(ctx, account.Number, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to get ledger data", slog.String("number", account.Number))
		return nil, err
	}

	gl := domain.GeneralLedger{
		Account:    *account,
		Dates:      dates,
		TotalLines: len(postings),
	}

	page := postings
	if params.Limit > 0 {
		start := min(params.Offset, len(postings))
		end := min(start+params.Limit, len(postings))
		gl.OpeningBalance = accounting.CarryIn(postings[:start])
		page = postings[start:end]
	}

	var final decimal.Decimal
	gl.Lines, gl.TotalDebit, gl.TotalCredit, final = accounting.BuildLedgerLines(gl.OpeningBalance, page)
	gl.FinalBalance = final.Abs()
	gl.FinalSide = domain.SideOf(final)

	s.LogDebug(ctx, "General ledger generated",
		slog.String("number", account.Number),
		slog.Int("lines", len(gl.Lines)))
	return &gl, nil
}

// BalanceSheet generates the comparative sheet at the initial and final dates
func (s *reportingService) BalanceSheet(ctx context.Context, params dto.BalanceSheetParams) (*domain.BalanceSheet, error) {
	initial, final, err := params.Dates()
	if err != nil {
		return nil, err
	}

	upTo := final
	if initial.After(final) {
		upTo = initial
	}
	rows, err := s.reportingRepo.ListAccountPostings(ctx, nil, domain.DateRange{To: &upTo})
	if err != nil {
		s.LogError(ctx, err, "Failed to get balance sheet data")
		return nil, err
	}

	bs := accounting.BuildBalanceSheet(initial, final, rows, s.capital, s.classifier)
	if !bs.Balanced {
		s.LogInfo(ctx, "Balance sheet is not balanced at the final date",
			slog.String("assets", bs.TotalAssetsFinal.String()),
			slog.String("liabilities_equity", bs.TotalLiabilitiesEquityFinal.String()))
	}
	return &bs, nil
}

// IncomeStatement generates revenues, expenses and the result over the resolved window
func (s *reportingService) IncomeStatement(ctx context.Context, params dto.IncomeStatementParams) (*domain.IncomeStatement, error) {
	spec, err := params.ToPeriodSpec()
	if err != nil {
		return nil, err
	}
	from, to, err := accounting.ResolvePeriodWindow(spec)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.ListAccountPostings(ctx, nil, domain.DateRange{From: &from, To: &to})
	if err != nil {
		s.LogError(ctx, err, "Failed to get income statement data")
		return nil, err
	}

	is := accounting.BuildIncomeStatement(from, to, rows)
	s.LogDebug(ctx, "Income statement generated",
		slog.String("from", domain.FormatDate(from)),
		slog.String("to", domain.FormatDate(to)),
		slog.String("result", string(is.Result)))
	return &is, nil
}
