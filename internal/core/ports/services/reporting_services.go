package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// ReportingService defines operations for generating financial reports. Every report is recomputed
// from the journal on each call.
type ReportingService interface {
	// TrialBalance generates the per-account totals and the equilibrium check.
	TrialBalance(ctx context.Context, params dto.TrialBalanceParams) (*domain.TrialBalance, error)

	// GeneralLedger generates the running-balance history of one account. A non-zero limit returns
	// one page whose running balance carries in the lines before it.
	GeneralLedger(ctx context.Context, params dto.GeneralLedgerParams) (*domain.GeneralLedger, error)

	// BalanceSheet generates the comparative snapshot at two dates.
	BalanceSheet(ctx context.Context, params dto.BalanceSheetParams) (*domain.BalanceSheet, error)

	// IncomeStatement generates revenue, expense and the result over a resolved window.
	IncomeStatement(ctx context.Context, params dto.IncomeStatementParams) (*domain.IncomeStatement, error)
}
