package cli

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/export"
)

// AccountCmd groups the chart of accounts commands.
type AccountCmd struct {
	Create     AccountCreateCmd     `cmd:"" help:"Create an account."`
	List       AccountListCmd       `cmd:"" help:"List accounts by number."`
	Show       AccountShowCmd       `cmd:"" help:"Show one account."`
	Search     AccountSearchCmd     `cmd:"" help:"Search accounts by number prefix or label."`
	Update     AccountUpdateCmd     `cmd:"" help:"Change the label or kind of an account."`
	Deactivate AccountDeactivateCmd `cmd:"" help:"Deactivate an account; its history is kept."`
	Delete     AccountDeleteCmd     `cmd:"" help:"Delete an account no entry references."`
}

func kindFlag(s string) *domain.AccountKind {
	if s == "" {
		return nil
	}
	return domain.KindPtr(domain.AccountKind(s))
}

func kindText(k *domain.AccountKind) string {
	if k == nil {
		return ""
	}
	return string(*k)
}

func activeText(active bool) string {
	if active {
		return "yes"
	}
	return "no"
}

func (a *App) printAccounts(g *Globals, accounts []domain.Account) error {
	if g.CSV {
		return export.Accounts(a.Stdout, accounts)
	}
	t := newTable("Number", "Label", "Kind", "Active")
	for _, acc := range accounts {
		t.add(acc.Number, acc.Label, kindText(acc.Kind), activeText(acc.Active))
	}
	t.render(a.Stdout)
	return nil
}

type AccountCreateCmd struct {
	Number string `arg:"" help:"Account number (digits only)."`
	Label  string `arg:"" help:"Account label."`
	Kind   string `help:"ASSET, LIABILITY, REVENUE, EXPENSE or TREASURY."`
}

func (cmd *AccountCreateCmd) Run(app *App, g *Globals) error {
	return app.run(g, "account create", func(ctx context.Context) error {
		acc, err := app.Services.Account.CreateAccount(ctx, dto.CreateAccountRequest{
			Number: cmd.Number,
			Label:  cmd.Label,
			Kind:   kindFlag(cmd.Kind),
		})
		if err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Account %s %s created", acc.Number, acc.Label)
		return nil
	})
}

type AccountListCmd struct {
	Kind string `help:"Only accounts of this kind."`
	All  bool   `help:"Include inactive accounts."`
}

func (cmd *AccountListCmd) Run(app *App, g *Globals) error {
	return app.run(g, "account list", func(ctx context.Context) error {
		accounts, err := app.Services.Account.ListAccounts(ctx, dto.ListAccountsParams{
			Kind:            kindFlag(cmd.Kind),
			IncludeInactive: cmd.All,
		})
		if err != nil {
			return err
		}
		return app.printAccounts(g, accounts)
	})
}

type AccountShowCmd struct {
	Number string `arg:""`
}

func (cmd *AccountShowCmd) Run(app *App, g *Globals) error {
	return app.run(g, "account show", func(ctx context.Context) error {
		acc, err := app.Services.Account.GetAccount(ctx, cmd.Number)
		if err != nil {
			return err
		}
		return app.printAccounts(g, []domain.Account{*acc})
	})
}

type AccountSearchCmd struct {
	Term  string `arg:""`
	Limit int    `help:"Maximum results (config default when 0)."`
}

func (cmd *AccountSearchCmd) Run(app *App, g *Globals) error {
	return app.run(g, "account search", func(ctx context.Context) error {
		accounts, err := app.Services.Account.SearchAccounts(ctx, cmd.Term, cmd.Limit)
		if err != nil {
			return err
		}
		if len(accounts) == 0 && !g.CSV {
			printInfof(app.Stdout, "No account matches %q", cmd.Term)
			return nil
		}
		return app.printAccounts(g, accounts)
	})
}

type AccountUpdateCmd struct {
	Number    string  `arg:""`
	Label     *string `help:"New label."`
	Kind      string  `help:"New kind."`
	ClearKind bool    `help:"Remove the kind."`
}

func (cmd *AccountUpdateCmd) Run(app *App, g *Globals) error {
	return app.run(g, "account update", func(ctx context.Context) error {
		acc, err := app.Services.Account.UpdateAccount(ctx, cmd.Number, dto.UpdateAccountRequest{
			Label:     cmd.Label,
			Kind:      kindFlag(cmd.Kind),
			ClearKind: cmd.ClearKind,
		})
		if err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Account %s updated", acc.Number)
		return nil
	})
}

type AccountDeactivateCmd struct {
	Number string `arg:""`
}

func (cmd *AccountDeactivateCmd) Run(app *App, g *Globals) error {
	return app.run(g, "account deactivate", func(ctx context.Context) error {
		if err := app.Services.Account.DeactivateAccount(ctx, cmd.Number); err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Account %s deactivated", cmd.Number)
		return nil
	})
}

type AccountDeleteCmd struct {
	Number string `arg:""`
	Yes    bool   `short:"y" help:"Do not ask for confirmation."`
}

func (cmd *AccountDeleteCmd) Run(app *App, g *Globals) error {
	return app.run(g, "account delete", func(ctx context.Context) error {
		ok, err := app.confirm(cmd.Yes, "Delete account "+cmd.Number+"?")
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		if err := app.Services.Account.DeleteAccount(ctx, cmd.Number); err != nil {
			return err
		}
		printSuccessf(app.Stdout, "Account %s deleted", cmd.Number)
		return nil
	})
}
