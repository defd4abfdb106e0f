package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/export"
)

// PeriodCmd groups the fiscal period commands.
type PeriodCmd struct {
	Create PeriodCreateCmd `cmd:"" help:"Open a new fiscal period."`
	List   PeriodListCmd   `cmd:"" help:"List fiscal periods, latest first."`
	Show   PeriodShowCmd   `cmd:"" help:"Show one fiscal period."`
	Close  PeriodCloseCmd  `cmd:"" help:"Close a fiscal period. This cannot be undone."`
}

func statusText(p domain.FiscalPeriod) string {
	if p.Closed {
		return "closed"
	}
	return "open"
}

func (a *App) printPeriods(g *Globals, periods []domain.FiscalPeriod) error {
	if g.CSV {
		return export.Periods(a.Stdout, periods)
	}
	t := newTable("ID", "Company", "Period", "Start", "End", "Status").alignRight(0)
	for _, p := range periods {
		t.add(periodRef(p.ID), p.CompanyName, p.PeriodName,
			domain.FormatDate(p.StartDate), domain.FormatDate(p.EndDate), statusText(p))
	}
	t.render(a.Stdout)
	return nil
}

type PeriodCreateCmd struct {
	Company        string `required:"" help:"Company name."`
	Name           string `required:"" help:"Period name, e.g. FY2024."`
	Start          string `required:"" help:"First day (YYYY-MM-DD)."`
	End            string `required:"" help:"Last day (YYYY-MM-DD)."`
	AllowWhileOpen bool   `help:"Open it even though another period is open, when the rule is advisory."`
}

func (cmd *PeriodCreateCmd) Run(app *App, g *Globals) error {
	return app.run(g, "period create", func(ctx context.Context) error {
		req := dto.CreatePeriodRequest{
			CompanyName:    cmd.Company,
			PeriodName:     cmd.Name,
			StartDate:      cmd.Start,
			EndDate:        cmd.End,
			AllowWhileOpen: cmd.AllowWhileOpen,
		}
		p, err := app.Services.FiscalPeriod.CreatePeriod(ctx, req)
		if apperrors.CodeOf(err) == apperrors.CodeOpenPeriodExists && !app.Config.EnforceSingleOpenPeriod {
			ok, promptErr := app.Prompter.Confirm("Another period is still open. Open this one as well?")
			if promptErr != nil {
				return promptErr
			}
			if !ok {
				return err
			}
			req.AllowWhileOpen = true
			p, err = app.Services.FiscalPeriod.CreatePeriod(ctx, req)
		}
		if err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Period %s %s opened (%s to %s)", periodRef(p.ID), p.PeriodName,
			domain.FormatDate(p.StartDate), domain.FormatDate(p.EndDate))
		return nil
	})
}

type PeriodListCmd struct{}

func (cmd *PeriodListCmd) Run(app *App, g *Globals) error {
	return app.run(g, "period list", func(ctx context.Context) error {
		periods, err := app.Services.FiscalPeriod.ListPeriods(ctx)
		if err != nil {
			return err
		}
		return app.printPeriods(g, periods)
	})
}

type PeriodShowCmd struct {
	ID int64 `arg:"" optional:"" help:"Period id; the open period when omitted."`
}

func (cmd *PeriodShowCmd) Run(app *App, g *Globals) error {
	return app.run(g, "period show", func(ctx context.Context) error {
		var (
			p   *domain.FiscalPeriod
			err error
		)
		if cmd.ID == 0 {
			p, err = app.Services.FiscalPeriod.GetOpenPeriod(ctx)
			if err == nil && p == nil {
				err = apperrors.New(apperrors.CodeNoOpenPeriod, "no fiscal period is open")
			}
		} else {
			p, err = app.Services.FiscalPeriod.GetPeriod(ctx, cmd.ID)
		}
		if err != nil {
			return err
		}
		if err := app.printPeriods(g, []domain.FiscalPeriod{*p}); err != nil {
			return err
		}
		if p.Closed && p.ClosedAt != nil && !g.CSV {
			printInfof(app.Stdout, "Closed on %s by %s", domain.FormatDate(*p.ClosedAt), firstNonEmpty(deref(p.ClosedBy), "unknown"))
		}
		return nil
	})
}

type PeriodCloseCmd struct {
	ID  int64 `arg:""`
	Yes bool  `short:"y" help:"Do not ask for confirmation."`
}

var errCancelled = errors.New("cancelled by operator")

func (cmd *PeriodCloseCmd) Run(app *App, g *Globals) error {
	return app.run(g, "period close", func(ctx context.Context) error {
		ok, err := app.confirm(cmd.Yes, "Closing a period is irreversible. Close period "+periodRef(cmd.ID)+"?")
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		p, err := app.Services.FiscalPeriod.ClosePeriod(ctx, cmd.ID)
		if err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Period %s %s closed", periodRef(p.ID), p.PeriodName)
		return nil
	})
}

// periodRef renders a period id for messages.
func periodRef(id int64) string {
	return "#" + strconv.FormatInt(id, 10)
}
