package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account line of a trial balance.
type TrialBalanceRow struct {
	AccountNumber   string          `json:"accountNumber"`
	AccountLabel    string          `json:"accountLabel"`
	AccountKind     *AccountKind    `json:"accountKind,omitempty"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	Balance         decimal.Decimal `json:"balance"`         // TotalDebit - TotalCredit
	DebtorBalance   decimal.Decimal `json:"debtorBalance"`   // max(Balance, 0)
	CreditorBalance decimal.Decimal `json:"creditorBalance"` // max(-Balance, 0)
}

// TrialBalance is the full report: one row per account plus column totals and the equilibrium check.
type TrialBalance struct {
	Rows                 []TrialBalanceRow `json:"rows"`
	TotalDebit           decimal.Decimal   `json:"totalDebit"`
	TotalCredit          decimal.Decimal   `json:"totalCredit"`
	TotalDebtorBalance   decimal.Decimal   `json:"totalDebtorBalance"`
	TotalCreditorBalance decimal.Decimal   `json:"totalCreditorBalance"`
	Balanced             bool              `json:"balanced"`
	Gap                  decimal.Decimal   `json:"gap"` // |TotalDebit - TotalCredit|
}

// TrialBalanceFilter restricts the accounts and the entries considered.
type TrialBalanceFilter struct {
	Kind  *AccountKind
	Dates DateRange
}

// BalanceSide labels the sign of a running balance.
type BalanceSide string

const (
	Debtor   BalanceSide = "Debtor"
	Creditor BalanceSide = "Creditor"
)

// SideOf returns Debtor for a balance >= 0, Creditor otherwise.
func SideOf(balance decimal.Decimal) BalanceSide {
	if balance.IsNegative() {
		return Creditor
	}
	return Debtor
}

// LedgerLine is one posting of the general ledger with the running balance after it.
type LedgerLine struct {
	EntryID        int64           `json:"entryID"`
	Date           time.Time       `json:"date"`
	Label          string          `json:"label"`
	PieceNumber    *string         `json:"pieceNumber,omitempty"`
	Side           EntrySide       `json:"side"`
	Debit          decimal.Decimal `json:"debit"`  // Zero on credit lines
	Credit         decimal.Decimal `json:"credit"` // Zero on debit lines
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Balance        decimal.Decimal `json:"balance"` // abs(RunningBalance)
	BalanceSide    BalanceSide     `json:"balanceSide"`
}

// GeneralLedger is the chronological history of one account. On a page, TotalDebit and TotalCredit
// sum the page's lines only, while FinalBalance is the running balance after the page's last line and
// so includes OpeningBalance.
type GeneralLedger struct {
	Account        Account         `json:"account"`
	Dates          DateRange       `json:"dates"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Carry-in; zero for a full ledger
	Lines          []LedgerLine    `json:"lines"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`   // Over Lines
	TotalCredit    decimal.Decimal `json:"totalCredit"`  // Over Lines
	FinalBalance   decimal.Decimal `json:"finalBalance"` // abs of the final running balance
	FinalSide      BalanceSide     `json:"finalSide"`
	TotalLines     int             `json:"totalLines"` // Lines in the whole window, for paging
}

// BalanceSheetLine carries an account's magnitude at both boundaries.
type BalanceSheetLine struct {
	AccountNumber string          `json:"accountNumber"`
	Label         string          `json:"label"`
	Initial       decimal.Decimal `json:"initial"`
	Final         decimal.Decimal `json:"final"`
}

// BalanceSheet is a comparative two-point snapshot.
type BalanceSheet struct {
	InitialDate                   time.Time          `json:"initialDate"`
	FinalDate                     time.Time          `json:"finalDate"`
	Assets                        []BalanceSheetLine `json:"assets"`
	Liabilities                   []BalanceSheetLine `json:"liabilities"`
	Equity                        []BalanceSheetLine `json:"equity"` // Capital, then Period Result
	TotalAssetsInitial            decimal.Decimal    `json:"totalAssetsInitial"`
	TotalAssetsFinal              decimal.Decimal    `json:"totalAssetsFinal"`
	TotalLiabilitiesEquityInitial decimal.Decimal    `json:"totalLiabilitiesEquityInitial"`
	TotalLiabilitiesEquityFinal   decimal.Decimal    `json:"totalLiabilitiesEquityFinal"`
	Balanced                      bool               `json:"balanced"` // Reported, never enforced
}

// Equity line labels.
const (
	CapitalLabel      = "Capital"
	PeriodResultLabel = "Period Result"
)

// PeriodSpecKind selects how an income statement window is specified.
type PeriodSpecKind string

const (
	PeriodMonth   PeriodSpecKind = "MONTH"
	PeriodQuarter PeriodSpecKind = "QUARTER"
	PeriodYear    PeriodSpecKind = "YEAR"
	PeriodCustom  PeriodSpecKind = "CUSTOM"
)

// PeriodSpec describes an income statement window before resolution.
type PeriodSpec struct {
	Kind    PeriodSpecKind
	Year    int
	Month   int // 1-12 for PeriodMonth
	Quarter int // 1-4 for PeriodQuarter
	From    time.Time
	To      time.Time
}

// ResultKind discriminates profit from loss.
type ResultKind string

const (
	Profit ResultKind = "PROFIT"
	Loss   ResultKind = "LOSS"
)

// IncomeStatementLine is one revenue or expense account.
type IncomeStatementLine struct {
	AccountNumber string          `json:"accountNumber"`
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`
}

// IncomeStatement is the revenue minus expense computation over a window.
type IncomeStatement struct {
	From         time.Time             `json:"from"`
	To           time.Time             `json:"to"`
	Revenues     []IncomeStatementLine `json:"revenues"`
	Expenses     []IncomeStatementLine `json:"expenses"`
	TotalRevenue decimal.Decimal       `json:"totalRevenue"`
	TotalExpense decimal.Decimal       `json:"totalExpense"`
	ProfitOrLoss decimal.Decimal       `json:"profitOrLoss"` // Signed
	Result       ResultKind            `json:"result"`
	ResultAmount decimal.Decimal       `json:"resultAmount"`         // abs(ProfitOrLoss)
	MarginRate   *decimal.Decimal      `json:"marginRate,omitempty"` // Only on profit with revenue > 0
}
