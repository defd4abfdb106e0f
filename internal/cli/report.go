package cli

import (
	"context"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/export"
)

// ReportCmd groups the financial statements.
type ReportCmd struct {
	TrialBalance ReportTrialBalanceCmd `cmd:"" help:"Totals and balances per account."`
	Ledger       ReportLedgerCmd       `cmd:"" help:"History of one account with its running balance."`
	BalanceSheet ReportBalanceSheetCmd `cmd:"" help:"Assets against liabilities and equity at two dates."`
	Income       ReportIncomeCmd       `cmd:"" help:"Revenues, expenses and result over a period."`
}

type ReportTrialBalanceCmd struct {
	Kind string `help:"Only accounts of this kind."`
	From string `help:"First date (YYYY-MM-DD)."`
	To   string `help:"Last date (YYYY-MM-DD)."`
}

func (cmd *ReportTrialBalanceCmd) Run(app *App, g *Globals) error {
	return app.run(g, "report trial-balance", func(ctx context.Context) error {
		tb, err := app.Services.Reporting.TrialBalance(ctx, dto.TrialBalanceParams{Kind: cmd.Kind, From: cmd.From, To: cmd.To})
		if err != nil {
			return err
		}
		if g.CSV {
			return export.TrialBalance(app.Stdout, tb)
		}

		t := newTable("Account", "Label", "Debit", "Credit", "Debtor", "Creditor").alignRight(2, 3, 4, 5)
		for _, r := range tb.Rows {
			t.add(r.AccountNumber, r.AccountLabel, cellOrBlank(r.TotalDebit), cellOrBlank(r.TotalCredit),
				cellOrBlank(r.DebtorBalance), cellOrBlank(r.CreditorBalance))
		}
		t.separator()
		t.add("", "Total", cell(tb.TotalDebit), cell(tb.TotalCredit), cell(tb.TotalDebtorBalance), cell(tb.TotalCreditorBalance))
		t.render(app.Stdout)

		if tb.Balanced {
			printSuccess(app.Stdout, "Debits equal credits")
		} else {
			printError(app.Stdout, "Out of balance by "+app.money(tb.Gap))
		}
		return nil
	})
}

type ReportLedgerCmd struct {
	Account string `arg:"" help:"Account number."`
	From    string `help:"First date (YYYY-MM-DD)."`
	To      string `help:"Last date (YYYY-MM-DD)."`
	Limit   int    `help:"Lines per page; the whole ledger when 0."`
	Offset  int    `help:"Lines to skip."`
}

func (cmd *ReportLedgerCmd) Run(app *App, g *Globals) error {
	return app.run(g, "report ledger", func(ctx context.Context) error {
		gl, err := app.Services.Reporting.GeneralLedger(ctx, dto.GeneralLedgerParams{
			Account: cmd.Account, From: cmd.From, To: cmd.To, Limit: cmd.Limit, Offset: cmd.Offset,
		})
		if err != nil {
			return err
		}
		if g.CSV {
			return export.GeneralLedger(app.Stdout, gl)
		}

		printInfof(app.Stdout, "%s %s", gl.Account.Number, gl.Account.Label)
		t := newTable("Date", "Entry", "Piece", "Label", "Debit", "Credit", "Balance", "").alignRight(1, 4, 5, 6)
		if !gl.OpeningBalance.IsZero() {
			t.add("", "", "", "Brought forward", "", "", cell(gl.OpeningBalance.Abs()), string(domain.SideOf(gl.OpeningBalance)))
		}
		for _, l := range gl.Lines {
			t.add(domain.FormatDate(l.Date), entryRef(l.EntryID), deref(l.PieceNumber), l.Label,
				cellOrBlank(l.Debit), cellOrBlank(l.Credit), cell(l.Balance), string(l.BalanceSide))
		}
		t.separator()
		totalLabel := "Total"
		if cmd.Limit > 0 {
			totalLabel = "Page total"
		}
		t.add("", "", "", totalLabel, cell(gl.TotalDebit), cell(gl.TotalCredit), cell(gl.FinalBalance), string(gl.FinalSide))
		t.render(app.Stdout)

		if cmd.Limit > 0 {
			printInfof(app.Stdout, "Lines %d-%d of %d", min(cmd.Offset+1, gl.TotalLines), min(cmd.Offset+len(gl.Lines), gl.TotalLines), gl.TotalLines)
		}
		return nil
	})
}

type ReportBalanceSheetCmd struct {
	Initial string `required:"" help:"Opening comparison date (YYYY-MM-DD)."`
	Final   string `required:"" help:"Closing comparison date (YYYY-MM-DD)."`
}

func (cmd *ReportBalanceSheetCmd) Run(app *App, g *Globals) error {
	return app.run(g, "report balance-sheet", func(ctx context.Context) error {
		bs, err := app.Services.Reporting.BalanceSheet(ctx, dto.BalanceSheetParams{Initial: cmd.Initial, Final: cmd.Final})
		if err != nil {
			return err
		}
		if g.CSV {
			return export.BalanceSheet(app.Stdout, bs)
		}

		t := newTable("Account", "Label", domain.FormatDate(bs.InitialDate), domain.FormatDate(bs.FinalDate)).alignRight(2, 3)
		section := func(title string, lines []domain.BalanceSheetLine) {
			t.add("", strings.ToUpper(title), "", "")
			for _, l := range lines {
				t.add(l.AccountNumber, l.Label, cell(l.Initial), cell(l.Final))
			}
		}
		section("Assets", bs.Assets)
		t.add("", "Total assets", cell(bs.TotalAssetsInitial), cell(bs.TotalAssetsFinal))
		t.separator()
		section("Liabilities", bs.Liabilities)
		section("Equity", bs.Equity)
		t.add("", "Total liabilities and equity", cell(bs.TotalLiabilitiesEquityInitial), cell(bs.TotalLiabilitiesEquityFinal))
		t.render(app.Stdout)

		if bs.Balanced {
			printSuccess(app.Stdout, "Balance sheet is balanced")
		} else {
			printError(app.Stdout, "Balance sheet is not balanced at "+domain.FormatDate(bs.FinalDate))
		}
		return nil
	})
}

type ReportIncomeCmd struct {
	Span    string `default:"YEAR" help:"MONTH, QUARTER, YEAR or CUSTOM."`
	Year    int    `help:"Calendar year."`
	Month   int    `help:"Month 1-12, with --span MONTH."`
	Quarter int    `help:"Quarter 1-4, with --span QUARTER."`
	From    string `help:"First date, with --span CUSTOM."`
	To      string `help:"Last date, with --span CUSTOM."`
}

func (cmd *ReportIncomeCmd) Run(app *App, g *Globals) error {
	return app.run(g, "report income", func(ctx context.Context) error {
		is, err := app.Services.Reporting.IncomeStatement(ctx, dto.IncomeStatementParams{
			Kind: cmd.Span, Year: cmd.Year, Month: cmd.Month, Quarter: cmd.Quarter, From: cmd.From, To: cmd.To,
		})
		if err != nil {
			return err
		}
		if g.CSV {
			return export.IncomeStatement(app.Stdout, is)
		}

		printInfof(app.Stdout, "Income statement %s to %s", domain.FormatDate(is.From), domain.FormatDate(is.To))
		t := newTable("Account", "Label", "Amount").alignRight(2)
		t.add("", "REVENUES", "")
		for _, l := range is.Revenues {
			t.add(l.AccountNumber, l.Label, cell(l.Amount))
		}
		t.add("", "Total revenues", cell(is.TotalRevenue))
		t.separator()
		t.add("", "EXPENSES", "")
		for _, l := range is.Expenses {
			t.add(l.AccountNumber, l.Label, cell(l.Amount))
		}
		t.add("", "Total expenses", cell(is.TotalExpense))
		t.render(app.Stdout)

		if is.Result == domain.Profit {
			printSuccessf(app.Stdout, "Profit of %s", app.money(is.ResultAmount))
		} else {
			printError(app.Stdout, "Loss of "+app.money(is.ResultAmount))
		}
		if is.MarginRate != nil {
			printInfof(app.Stdout, "Margin rate %s%%", is.MarginRate.StringFixed(2))
		}
		return nil
	})
}
