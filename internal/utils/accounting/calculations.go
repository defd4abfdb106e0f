package accounting

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance of every equilibrium check.
var Epsilon = decimal.New(1, -2)

// SplitBalance computes balance = debit - credit and splits it into its debtor and creditor parts.
// Exactly one of debtor and creditor is non-zero unless the balance is zero.
func SplitBalance(debit, credit decimal.Decimal) (balance, debtor, creditor decimal.Decimal) {
	balance = debit.Sub(credit)
	if balance.IsPositive() {
		return balance, balance, decimal.Zero
	}
	return balance, decimal.Zero, balance.Neg()
}

// CheckEquilibrium reports whether two totals agree within Epsilon, and the absolute gap.
func CheckEquilibrium(a, b decimal.Decimal) (bool, decimal.Decimal) {
	gap := a.Sub(b).Abs()
	return gap.LessThan(Epsilon), gap
}

// SignedAmount returns the posting amount with the sign it has on a running balance:
// positive for a debit, negative for a credit.
func SignedAmount(p domain.Posting) decimal.Decimal {
	if p.Side == domain.Credit {
		return p.Amount.Neg()
	}
	return p.Amount
}

// BuildTrialBalance folds account/posting join rows into one row per account, in input order.
// Accounts joined with a nil posting still produce a zero row.
func BuildTrialBalance(rows []domain.AccountPosting) domain.TrialBalance {
	tb := domain.TrialBalance{Rows: []domain.TrialBalanceRow{}}
	index := make(map[string]int, len(rows))

	for _, r := range rows {
		i, seen := index[r.Account.Number]
		if !seen {
			tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
				AccountNumber: r.Account.Number,
				AccountLabel:  r.Account.Label,
				AccountKind:   r.Account.Kind,
			})
			i = len(tb.Rows) - 1
			index[r.Account.Number] = i
		}
		if r.Posting == nil {
			continue
		}
		row := &tb.Rows[i]
		if r.Posting.Side == domain.Debit {
			row.TotalDebit = row.TotalDebit.Add(r.Posting.Amount)
		} else {
			row.TotalCredit = row.TotalCredit.Add(r.Posting.Amount)
		}
	}

	for i := range tb.Rows {
		row := &tb.Rows[i]
		row.Balance, row.DebtorBalance, row.CreditorBalance = SplitBalance(row.TotalDebit, row.TotalCredit)
		tb.TotalDebit = tb.TotalDebit.Add(row.TotalDebit)
		tb.TotalCredit = tb.TotalCredit.Add(row.TotalCredit)
		tb.TotalDebtorBalance = tb.TotalDebtorBalance.Add(row.DebtorBalance)
		tb.TotalCreditorBalance = tb.TotalCreditorBalance.Add(row.CreditorBalance)
	}
	tb.Balanced, tb.Gap = CheckEquilibrium(tb.TotalDebit, tb.TotalCredit)
	return tb
}

// BuildLedgerLines turns chronologically ordered postings into ledger lines, starting the running
// balance from carryIn. It returns the lines, the debit and credit totals of those lines, and the
// final signed running balance.
func BuildLedgerLines(carryIn decimal.Decimal, postings []domain.Posting) ([]domain.LedgerLine, decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	lines := make([]domain.LedgerLine, 0, len(postings))
	running := carryIn
	totalDebit, totalCredit := decimal.Zero, decimal.Zero

	for _, p := range postings {
		line := domain.LedgerLine{
			EntryID:     p.EntryID,
			Date:        p.Date,
			Label:       p.Label,
			PieceNumber: p.PieceNumber,
			Side:        p.Side,
		}
		if p.Side == domain.Debit {
			line.Debit = p.Amount
			totalDebit = totalDebit.Add(p.Amount)
		} else {
			line.Credit = p.Amount
			totalCredit = totalCredit.Add(p.Amount)
		}
		running = running.Add(SignedAmount(p))
		line.RunningBalance = running
		line.Balance = running.Abs()
		line.BalanceSide = domain.SideOf(running)
		lines = append(lines, line)
	}
	return lines, totalDebit, totalCredit, running
}

// CarryIn sums the signed amounts of the postings preceding a ledger page.
func CarryIn(postings []domain.Posting) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range postings {
		sum = sum.Add(SignedAmount(p))
	}
	return sum
}
