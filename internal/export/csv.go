// Package export renders accounts, entries and reports as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amount renders a decimal with two places, the precision every report displays.
func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func kind(k *domain.AccountKind) string {
	if k == nil {
		return ""
	}
	return string(*k)
}

// writeAll writes the header and rows, quoting fields that hold a separator, a quote or a newline.
func writeAll(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// Accounts writes the chart of accounts.
func Accounts(w io.Writer, accounts []domain.Account) error {
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{a.Number, a.Label, kind(a.Kind), strconv.FormatBool(a.Active)})
	}
	return writeAll(w, []string{"number", "label", "kind", "active"}, rows)
}

// Periods writes fiscal periods.
func Periods(w io.Writer, periods []domain.FiscalPeriod) error {
	rows := make([][]string, 0, len(periods))
	for _, p := range periods {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.CompanyName,
			p.PeriodName,
			domain.FormatDate(p.StartDate),
			domain.FormatDate(p.EndDate),
			strconv.FormatBool(p.Closed),
		})
	}
	return writeAll(w, []string{"id", "company", "period", "start", "end", "closed"}, rows)
}

// Entries writes journal entries.
func Entries(w io.Writer, entries []domain.JournalEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			domain.FormatDate(e.Date),
			e.Label,
			e.DebitAccount,
			e.CreditAccount,
			amount(e.Amount),
			optional(e.PieceNumber),
			optional(e.Note),
		})
	}
	return writeAll(w, []string{"id", "date", "label", "debit", "credit", "amount", "piece", "note"}, rows)
}

// TrialBalance writes one row per account followed by a totals row.
func TrialBalance(w io.Writer, tb *domain.TrialBalance) error {
	rows := make([][]string, 0, len(tb.Rows)+1)
	for _, r := range tb.Rows {
		rows = append(rows, []string{
			r.AccountNumber,
			r.AccountLabel,
			amount(r.TotalDebit),
			amount(r.TotalCredit),
			amount(r.DebtorBalance),
			amount(r.CreditorBalance),
		})
	}
	rows = append(rows, []string{
		"", "TOTAL",
		amount(tb.TotalDebit),
		amount(tb.TotalCredit),
		amount(tb.TotalDebtorBalance),
		amount(tb.TotalCreditorBalance),
	})
	return writeAll(w, []string{"account", "label", "debit", "credit", "debtor_balance", "creditor_balance"}, rows)
}

// GeneralLedger writes the ledger lines with their running balance.
func GeneralLedger(w io.Writer, gl *domain.GeneralLedger) error {
	rows := make([][]string, 0, len(gl.Lines))
	for _, l := range gl.Lines {
		rows = append(rows, []string{
			domain.FormatDate(l.Date),
			strconv.FormatInt(l.EntryID, 10),
			l.Label,
			optional(l.PieceNumber),
			amount(l.Debit),
			amount(l.Credit),
			amount(l.Balance),
			string(l.BalanceSide),
		})
	}
	return writeAll(w, []string{"date", "entry", "label", "piece", "debit", "credit", "balance", "side"}, rows)
}

// BalanceSheet writes every section as (section, account, label, initial, final) rows.
func BalanceSheet(w io.Writer, bs *domain.BalanceSheet) error {
	var rows [][]string
	section := func(name string, lines []domain.BalanceSheetLine) {
		for _, l := range lines {
			rows = append(rows, []string{name, l.AccountNumber, l.Label, amount(l.Initial), amount(l.Final)})
		}
	}
	section("ASSETS", bs.Assets)
	section("LIABILITIES", bs.Liabilities)
	section("EQUITY", bs.Equity)
	rows = append(rows,
		[]string{"TOTAL", "", "Assets", amount(bs.TotalAssetsInitial), amount(bs.TotalAssetsFinal)},
		[]string{"TOTAL", "", "Liabilities and equity", amount(bs.TotalLiabilitiesEquityInitial), amount(bs.TotalLiabilitiesEquityFinal)},
	)
	return writeAll(w, []string{"section", "account", "label", "initial", "final"}, rows)
}

// IncomeStatement writes revenues, expenses and the result.
func IncomeStatement(w io.Writer, is *domain.IncomeStatement) error {
	var rows [][]string
	for _, l := range is.Revenues {
		rows = append(rows, []string{"REVENUE", l.AccountNumber, l.Label, amount(l.Amount)})
	}
	for _, l := range is.Expenses {
		rows = append(rows, []string{"EXPENSE", l.AccountNumber, l.Label, amount(l.Amount)})
	}
	rows = append(rows,
		[]string{"TOTAL", "", "Revenue", amount(is.TotalRevenue)},
		[]string{"TOTAL", "", "Expense", amount(is.TotalExpense)},
		[]string{string(is.Result), "", "Result", amount(is.ResultAmount)},
	)
	if is.MarginRate != nil {
		rows = append(rows, []string{"MARGIN", "", "Margin rate (%)", amount(*is.MarginRate)})
	}
	return writeAll(w, []string{"section", "account", "label", "amount"}, rows)
}
