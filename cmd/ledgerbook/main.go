package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/ledgerbook/internal/cli"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledgerbook/pkg/database"
	"github.com/alecthomas/kong"
)

var (
	// Version is set via ldflags when building.
	Version = "dev"
)

// newLogger builds the root logger. Logs go to stderr so that stdout only carries command output.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, stderr)
	slog.SetDefault(logger)

	var root cli.CLI
	parser, err := kong.New(&root,
		kong.Name("ledgerbook"),
		kong.Description("Double-entry bookkeeping for small businesses, one ledger file per company."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		logger.Error("Failed to build command line", slog.String("error", err.Error()))
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	if root.DB != "" {
		cfg.DBPath = root.DB
	}

	ctx := context.Background()
	db, err := database.OpenAndMigrate(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Error("Failed to open ledger file", slog.String("path", cfg.DBPath), slog.String("error", err.Error()))
		return 1
	}
	defer database.Close(db, logger)

	repos := sqlite.NewRepositoryProvider(db)
	app := cli.NewApp(cfg, services.NewServiceContainer(cfg, repos), logger, stdout, stderr)

	if err := kctx.Run(app, &root.Globals); err != nil {
		cli.RenderError(stderr, err)
		return cli.ExitCode(err)
	}
	return 0
}
