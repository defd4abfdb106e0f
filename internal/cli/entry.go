package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/export"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
)

// EntryCmd groups the journal commands.
type EntryCmd struct {
	Add    EntryAddCmd    `cmd:"" help:"Record a journal entry."`
	List   EntryListCmd   `cmd:"" help:"List and search journal entries, latest first."`
	Show   EntryShowCmd   `cmd:"" help:"Show one journal entry."`
	Update EntryUpdateCmd `cmd:"" help:"Replace a journal entry of an open period."`
	Delete EntryDeleteCmd `cmd:"" help:"Delete a journal entry of an open period."`
}

// EntryFields are the user-entered fields of an entry, shared by add and update.
type EntryFields struct {
	Date                string  `required:"" help:"Entry date (YYYY-MM-DD)."`
	Label               string  `required:"" help:"Description."`
	Debit               string  `required:"" help:"Debited account number."`
	Credit              string  `required:"" help:"Credited account number."`
	Amount              string  `required:"" help:"Amount, greater than zero."`
	Piece               *string `help:"Supporting document number."`
	Note                *string `help:"Free note."`
	Period              *int64  `help:"Target period id; resolved from the date when omitted."`
	AllowDuplicatePiece bool    `help:"Accept a piece number already used by another entry."`
}

func (f EntryFields) request() dto.EntryRequest {
	return dto.EntryRequest{
		Date:                f.Date,
		Label:               f.Label,
		DebitAccount:        f.Debit,
		CreditAccount:       f.Credit,
		Amount:              f.Amount,
		PieceNumber:         f.Piece,
		Note:                f.Note,
		PeriodID:            f.Period,
		AllowDuplicatePiece: f.AllowDuplicatePiece,
	}
}

// saveWithPieceOverride runs save and, on a duplicate piece number, asks once whether to keep it.
func (a *App) saveWithPieceOverride(req dto.EntryRequest, save func(dto.EntryRequest) (*domain.JournalEntry, error)) (*domain.JournalEntry, error) {
	entry, err := save(req)
	if apperrors.CodeOf(err) != apperrors.CodeDuplicatePieceNumber {
		return entry, err
	}
	ok, promptErr := a.Prompter.Confirm(fmt.Sprintf("Piece number %s is already used. Record it anyway?", deref(req.PieceNumber)))
	if promptErr != nil {
		return nil, promptErr
	}
	if !ok {
		return nil, err
	}
	req.AllowDuplicatePiece = true
	return save(req)
}

func entryRef(id int64) string {
	return "#" + strconv.FormatInt(id, 10)
}

func (a *App) printEntries(g *Globals, entries []domain.JournalEntry) error {
	if g.CSV {
		return export.Entries(a.Stdout, entries)
	}
	t := newTable("ID", "Date", "Piece", "Label", "Debit", "Credit", "Amount").alignRight(0, 6)
	for _, e := range entries {
		t.add(entryRef(e.ID), domain.FormatDate(e.Date), deref(e.PieceNumber), e.Label,
			e.DebitAccount, e.CreditAccount, cell(e.Amount))
	}
	t.render(a.Stdout)
	return nil
}

type EntryAddCmd struct {
	EntryFields `embed:""`
}

func (cmd *EntryAddCmd) Run(app *App, g *Globals) error {
	return app.run(g, "entry add", func(ctx context.Context) error {
		entry, err := app.saveWithPieceOverride(cmd.request(), func(req dto.EntryRequest) (*domain.JournalEntry, error) {
			return app.Services.Journal.CreateEntry(ctx, req)
		})
		if err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Entry %s recorded: %s debit %s / credit %s", entryRef(entry.ID),
			app.money(entry.Amount), entry.DebitAccount, entry.CreditAccount)
		return nil
	})
}

type EntryUpdateCmd struct {
	ID          int64 `arg:""`
	EntryFields `embed:""`
}

func (cmd *EntryUpdateCmd) Run(app *App, g *Globals) error {
	return app.run(g, "entry update", func(ctx context.Context) error {
		entry, err := app.saveWithPieceOverride(cmd.request(), func(req dto.EntryRequest) (*domain.JournalEntry, error) {
			return app.Services.Journal.UpdateEntry(ctx, cmd.ID, req)
		})
		if err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Entry %s updated", entryRef(entry.ID))
		return nil
	})
}

type EntryShowCmd struct {
	ID int64 `arg:""`
}

func (cmd *EntryShowCmd) Run(app *App, g *Globals) error {
	return app.run(g, "entry show", func(ctx context.Context) error {
		entry, err := app.Services.Journal.GetEntry(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := app.printEntries(g, []domain.JournalEntry{*entry}); err != nil {
			return err
		}
		if entry.Note != nil && !g.CSV {
			printInfof(app.Stdout, "%s", *entry.Note)
		}
		return nil
	})
}

type EntryDeleteCmd struct {
	ID  int64 `arg:""`
	Yes bool  `short:"y" help:"Do not ask for confirmation."`
}

func (cmd *EntryDeleteCmd) Run(app *App, g *Globals) error {
	return app.run(g, "entry delete", func(ctx context.Context) error {
		ok, err := app.confirm(cmd.Yes, "Delete entry "+entryRef(cmd.ID)+"?")
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		if err := app.Services.Journal.DeleteEntry(ctx, cmd.ID); err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Entry %s deleted", entryRef(cmd.ID))
		return nil
	})
}

type EntryListCmd struct {
	From      string  `help:"First date (YYYY-MM-DD)."`
	To        string  `help:"Last date (YYYY-MM-DD)."`
	Period    *int64  `help:"Only entries dated inside this period."`
	Text      string  `help:"Search label, note and piece number." xor:"search"`
	Account   string  `help:"Search debit or credit account by number or label." xor:"search"`
	Min       string  `help:"Smallest amount."`
	Max       string  `help:"Largest amount."`
	Limit     int     `help:"Page size (config default when 0)."`
	Offset    int     `help:"Entries to skip."`
	PageToken *string `help:"Continue from a previous page."`
	Sort      string  `help:"Re-sort the page by date, amount or label."`
	Desc      bool    `help:"Sort descending."`
}

// params maps the search flags onto the single active search mode.
func (cmd *EntryListCmd) params() dto.ListEntriesParams {
	p := dto.ListEntriesParams{
		From:       cmd.From,
		To:         cmd.To,
		PeriodID:   cmd.Period,
		Limit:      cmd.Limit,
		Offset:     cmd.Offset,
		PageToken:  cmd.PageToken,
		SortBy:     cmd.Sort,
		Descending: cmd.Desc,
	}
	switch {
	case cmd.Text != "":
		p.Mode, p.Term = string(domain.SearchText), cmd.Text
	case cmd.Account != "":
		p.Mode, p.Term = string(domain.SearchAccount), cmd.Account
	case cmd.Min != "" || cmd.Max != "":
		p.Mode = string(domain.SearchAmount)
		p.AmountMin, p.AmountMax = cmd.Min, cmd.Max
	}
	return p
}

func (cmd *EntryListCmd) Run(app *App, g *Globals) error {
	return app.run(g, "entry list", func(ctx context.Context) error {
		if cmd.Text+cmd.Account != "" && cmd.Min+cmd.Max != "" {
			return apperrors.New(apperrors.CodeSearchInvalid, "search by text, by account or by amount, one at a time")
		}
		resp, err := app.Services.Journal.ListEntries(ctx, cmd.params())
		if err != nil {
			return err
		}
		if err := app.printEntries(g, resp.Entries); err != nil {
			return err
		}
		if g.CSV {
			return nil
		}
		printInfof(app.Stdout, "Page %d of %d (%d entries)",
			resp.Offset/resp.Limit+1, max(pagination.PageCount(resp.Total, resp.Limit), 1), resp.Total)
		if resp.NextPageToken != nil {
			printInfof(app.Stdout, "Next page: --page-token %s", *resp.NextPageToken)
		}
		return nil
	})
}
