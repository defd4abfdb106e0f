package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/utils"
	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
)

// Globals are the flags shared by every command.
type Globals struct {
	DB       string `help:"Ledger file (one file per company)." name:"db" placeholder:"PATH"`
	User     string `help:"Operator username." short:"u"`
	Password string `help:"Operator password; prompted on a terminal when omitted."`
	CSV      bool   `help:"Print lists and reports as CSV." name:"csv"`
}

// CLI is the command tree.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version information."`

	Init    InitCmd    `cmd:"" help:"Create the first administrator of a ledger file."`
	Account AccountCmd `cmd:"" help:"Manage the chart of accounts."`
	Period  PeriodCmd  `cmd:"" help:"Manage fiscal periods."`
	Entry   EntryCmd   `cmd:"" help:"Record and search journal entries."`
	Report  ReportCmd  `cmd:"" help:"Print financial statements."`
}

// App carries what commands need: the services over the opened ledger file and the output streams.
type App struct {
	Config   *config.Config
	Services *portssvc.ServiceContainer
	Logger   *slog.Logger
	Prompter Prompter
	Stdout   io.Writer
	Stderr   io.Writer
}

// AppOption is a functional option for configuring the App
type AppOption func(*App)

// WithPrompter replaces the terminal prompter.
func WithPrompter(p Prompter) AppOption {
	return func(a *App) {
		a.Prompter = p
	}
}

// NewApp creates the command runtime.
func NewApp(cfg *config.Config, svc *portssvc.ServiceContainer, logger *slog.Logger, stdout, stderr io.Writer, options ...AppOption) *App {
	app := &App{
		Config:   cfg,
		Services: svc,
		Logger:   logger,
		Prompter: terminalPrompter{},
		Stdout:   stdout,
		Stderr:   stderr,
	}
	for _, option := range options {
		option(app)
	}
	return app
}

// run executes fn as one logged operation on behalf of an authenticated operator.
func (a *App) run(g *Globals, command string, fn func(ctx context.Context) error) error {
	ctx, finish := middleware.StartOperation(context.Background(), a.Logger, command)
	ctx, err := a.authenticate(ctx, g)
	if err == nil {
		err = fn(ctx)
	}
	finish(err)
	return err
}

func (a *App) authenticate(ctx context.Context, g *Globals) (context.Context, error) {
	hasUser, err := a.Services.Auth.HasAnyUser(ctx)
	if err != nil {
		return ctx, err
	}
	if !hasUser {
		return ctx, apperrors.New(apperrors.CodeCredentialsRequired, "this ledger has no operator yet; run `ledgerbook init` first")
	}

	username := firstNonEmpty(g.User, a.Config.User)
	password := firstNonEmpty(g.Password, a.Config.Password)
	if err := a.Prompter.Credentials("Sign in", &username, &password); err != nil {
		return ctx, err
	}
	return middleware.Authenticate(ctx, a.Services.Auth, username, password)
}

// confirm asks before an irreversible or overriding action. assumeYes skips the prompt.
func (a *App) confirm(assumeYes bool, question string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	return a.Prompter.Confirm(question)
}

// money formats a summary amount in the ledger currency.
func (a *App) money(d decimal.Decimal) string {
	return utils.FormatMoney(d, a.Config.CurrencyCode)
}

// cell formats a table amount with two places.
func cell(d decimal.Decimal) string {
	return utils.FormatWithPrecision(d, 2)
}

// cellOrBlank leaves zero amounts empty, as debit/credit columns usually are.
func cellOrBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return cell(d)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
