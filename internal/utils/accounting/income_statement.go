package accounting

import (
	"cmp"
	"slices"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// expectedLine is a whitelisted account always shown on the income statement.
type expectedLine struct {
	number string
	label  string
}

// Expected revenue accounts (class 7 of the SYSCOHADA chart).
var expectedRevenues = []expectedLine{
	{"701", "Ventes de marchandises"},
	{"702", "Ventes de produits finis"},
	{"706", "Services vendus"},
	{"707", "Produits accessoires"},
	{"75", "Autres produits"},
	{"77", "Revenus financiers et produits assimilés"},
}

// Expected expense accounts (class 6 of the SYSCOHADA chart).
var expectedExpenses = []expectedLine{
	{"601", "Achats de marchandises"},
	{"604", "Achats stockés de matières et fournitures"},
	{"605", "Autres achats"},
	{"61", "Transports"},
	{"62", "Services extérieurs A"},
	{"63", "Services extérieurs B"},
	{"64", "Impôts et taxes"},
	{"66", "Charges de personnel"},
	{"67", "Frais financiers et charges assimilées"},
}

var revenuePriority = map[string]int{"70": 1, "75": 2, "77": 3}

var expensePriority = map[string]int{"60": 1, "61": 2, "62": 3, "63": 4, "64": 5, "65": 6, "66": 7, "67": 8}

// otherPriority sorts accounts without a listed prefix last.
const otherPriority = 9

func priorityOf(table map[string]int, number string) int {
	if len(number) >= 2 {
		if p, ok := table[number[:2]]; ok {
			return p
		}
	}
	return otherPriority
}

// RevenuePriority returns the display rank of a revenue account.
func RevenuePriority(number string) int { return priorityOf(revenuePriority, number) }

// ExpensePriority returns the display rank of an expense account.
func ExpensePriority(number string) int { return priorityOf(expensePriority, number) }

type lineAccumulator struct {
	lines map[string]*domain.IncomeStatementLine
}

func (a *lineAccumulator) add(number, label string, amount decimal.Decimal) {
	if line, ok := a.lines[number]; ok {
		line.Amount = line.Amount.Add(amount)
		return
	}
	a.lines[number] = &domain.IncomeStatementLine{AccountNumber: number, Label: label, Amount: amount}
}

func (a *lineAccumulator) has(number string) bool {
	_, ok := a.lines[number]
	return ok
}

func (a *lineAccumulator) sorted(priority func(string) int) ([]domain.IncomeStatementLine, decimal.Decimal) {
	out := make([]domain.IncomeStatementLine, 0, len(a.lines))
	total := decimal.Zero
	for _, l := range a.lines {
		out = append(out, *l)
		total = total.Add(l.Amount)
	}
	slices.SortFunc(out, func(x, y domain.IncomeStatementLine) int {
		if c := cmp.Compare(priority(x.AccountNumber), priority(y.AccountNumber)); c != 0 {
			return c
		}
		return cmp.Compare(x.AccountNumber, y.AccountNumber)
	})
	return out, total
}

// BuildIncomeStatement aggregates the credit legs of revenue accounts and the debit legs of expense
// accounts over rows already restricted to [from, to]. Revenue and expense are recognised by account
// kind; the expected accounts are always present, with zero when unused.
func BuildIncomeStatement(from, to time.Time, rows []domain.AccountPosting) domain.IncomeStatement {
	byKind := NewClassifier(ClassifyByKind)
	revenues := &lineAccumulator{lines: map[string]*domain.IncomeStatementLine{}}
	expenses := &lineAccumulator{lines: map[string]*domain.IncomeStatementLine{}}

	expectedRevenue := make(map[string]bool, len(expectedRevenues))
	for _, e := range expectedRevenues {
		expectedRevenue[e.number] = true
	}
	expectedExpense := make(map[string]bool, len(expectedExpenses))
	for _, e := range expectedExpenses {
		expectedExpense[e.number] = true
	}

	for _, r := range rows {
		acc := r.Account
		revenue := byKind.IsRevenue(acc) || (!byKind.IsExpense(acc) && expectedRevenue[acc.Number])
		expense := !revenue && (byKind.IsExpense(acc) || expectedExpense[acc.Number])
		switch {
		case revenue:
			amount := decimal.Zero
			if r.Posting != nil && r.Posting.Side == domain.Credit {
				amount = r.Posting.Amount
			}
			revenues.add(acc.Number, acc.Label, amount)
		case expense:
			amount := decimal.Zero
			if r.Posting != nil && r.Posting.Side == domain.Debit {
				amount = r.Posting.Amount
			}
			expenses.add(acc.Number, acc.Label, amount)
		}
	}
	// An expected number already listed on the other side keeps its single line.
	for _, e := range expectedRevenues {
		if !expenses.has(e.number) {
			revenues.add(e.number, e.label, decimal.Zero)
		}
	}
	for _, e := range expectedExpenses {
		if !revenues.has(e.number) {
			expenses.add(e.number, e.label, decimal.Zero)
		}
	}

	is := domain.IncomeStatement{From: from, To: to}
	is.Revenues, is.TotalRevenue = revenues.sorted(RevenuePriority)
	is.Expenses, is.TotalExpense = expenses.sorted(ExpensePriority)
	is.ProfitOrLoss = is.TotalRevenue.Sub(is.TotalExpense)
	is.ResultAmount = is.ProfitOrLoss.Abs()
	is.Result = domain.Profit
	if is.ProfitOrLoss.IsNegative() {
		is.Result = domain.Loss
	}
	if is.Result == domain.Profit && is.TotalRevenue.IsPositive() {
		margin := is.ProfitOrLoss.Mul(decimal.NewFromInt(100)).DivRound(is.TotalRevenue, 2)
		is.MarginRate = &margin
	}
	return is
}
