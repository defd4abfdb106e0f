package cli

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledgerbook/internal/utils/accounting"
	"github.com/SscSPs/ledgerbook/pkg/database"
	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers every confirmation with answer and records the questions.
type scriptedPrompter struct {
	answer    bool
	questions []string
}

func (p *scriptedPrompter) Confirm(question string) (bool, error) {
	p.questions = append(p.questions, question)
	return p.answer, nil
}

func (p *scriptedPrompter) Credentials(string, *string, *string) error { return nil }

type harness struct {
	t        *testing.T
	app      *App
	prompter *scriptedPrompter
	stdout   *bytes.Buffer
}

func newHarness(t *testing.T, enforceSingleOpen bool) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "ledger.db")
	db, err := database.OpenAndMigrate(t.Context(), path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db, logger) })

	cfg := &config.Config{
		DBPath:                  path,
		CurrencyCode:            "EUR",
		EnforceSingleOpenPeriod: enforceSingleOpen,
		ResultClassification:    accounting.ClassifyByPrefix,
		CapitalAmount:           decimal.Zero,
		SearchLimit:             20,
		PageSize:                50,
	}
	h := &harness{t: t, prompter: &scriptedPrompter{answer: true}, stdout: &bytes.Buffer{}}
	h.app = NewApp(cfg, services.NewServiceContainer(cfg, sqlite.NewRepositoryProvider(db)), logger,
		h.stdout, io.Discard, WithPrompter(h.prompter))
	return h
}

// exec parses and runs one command line, returning its stdout.
func (h *harness) exec(args ...string) (string, error) {
	h.t.Helper()
	var root CLI
	parser, err := kong.New(&root, kong.Exit(func(int) { h.t.Fatalf("unexpected exit for %v", args) }))
	require.NoError(h.t, err)
	kctx, err := parser.Parse(args)
	require.NoError(h.t, err)

	h.stdout.Reset()
	err = kctx.Run(h.app, &root.Globals)
	return h.stdout.String(), err
}

func (h *harness) mustExec(args ...string) string {
	h.t.Helper()
	out, err := h.exec(args...)
	require.NoError(h.t, err, "%v", args)
	return out
}

var creds = []string{"--user", "admin", "--password", "s3cret"}

func (h *harness) as(args ...string) []string {
	return append(args, creds...)
}

func (h *harness) bootstrap() {
	h.mustExec(h.as("init")...)
	h.mustExec(h.as("account", "create", "601", "Achats", "--kind", "EXPENSE")...)
	h.mustExec(h.as("account", "create", "571", "Caisse", "--kind", "TREASURY")...)
	h.mustExec(h.as("period", "create", "--company", "Société Test", "--name", "FY2024", "--start", "2024-01-01", "--end", "2024-12-31")...)
}

func TestCommands_RequireOperator(t *testing.T) {
	h := newHarness(t, true)

	_, err := h.exec(h.as("account", "list")...)
	assert.Equal(t, apperrors.CodeCredentialsRequired, apperrors.CodeOf(err))

	h.mustExec(h.as("init")...)
	_, err = h.exec("account", "list", "--user", "admin", "--password", "wrong")
	assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.CodeOf(err))
	assert.Equal(t, 6, ExitCode(err))

	_, err = h.exec(h.as("init")...)
	assert.Equal(t, apperrors.CodeUserExists, apperrors.CodeOf(err))
}

func TestEntryAddAndTrialBalance(t *testing.T) {
	h := newHarness(t, true)
	h.bootstrap()

	out := h.mustExec(h.as("entry", "add", "--date", "2024-03-15", "--label", "Achat fournitures",
		"--debit", "601", "--credit", "571", "--amount", "150.25")...)
	assert.Contains(t, out, "Entry #1 recorded")

	out = h.mustExec(h.as("report", "trial-balance")...)
	assert.Contains(t, out, "Debits equal credits")
	assert.Contains(t, out, "150.25")

	out = h.mustExec(h.as("--csv", "report", "trial-balance")...)
	assert.Equal(t,
		"account,label,debit,credit,debtor_balance,creditor_balance\n"+
			"571,Caisse,0.00,150.25,0.00,150.25\n"+
			"601,Achats,150.25,0.00,150.25,0.00\n"+
			",TOTAL,150.25,150.25,150.25,150.25\n",
		out)
}

func TestEntryAdd_DuplicatePieceAsksBeforeRecording(t *testing.T) {
	h := newHarness(t, true)
	h.bootstrap()
	entry := h.as("entry", "add", "--date", "2024-03-15", "--label", "Achat", "--debit", "601", "--credit", "571",
		"--amount", "10", "--piece", "F-1")
	h.mustExec(entry...)

	h.prompter.answer = false
	_, err := h.exec(entry...)
	assert.Equal(t, apperrors.CodeDuplicatePieceNumber, apperrors.CodeOf(err))
	require.Len(t, h.prompter.questions, 1)

	h.prompter.answer = true
	out := h.mustExec(entry...)
	assert.Contains(t, out, "Entry #2 recorded")
}

func TestPeriodCreate_AdvisoryRuleConfirms(t *testing.T) {
	h := newHarness(t, false)
	h.bootstrap()
	next := h.as("period", "create", "--company", "Société Test", "--name", "FY2025", "--start", "2025-01-01", "--end", "2025-12-31")

	h.prompter.answer = false
	_, err := h.exec(next...)
	assert.Equal(t, apperrors.CodeOpenPeriodExists, apperrors.CodeOf(err))

	h.prompter.answer = true
	out := h.mustExec(next...)
	assert.Contains(t, out, "FY2025 opened")
}

func TestPeriodClose_CancelledWithoutConfirmation(t *testing.T) {
	h := newHarness(t, true)
	h.bootstrap()

	h.prompter.answer = false
	_, err := h.exec(h.as("period", "close", "1")...)
	assert.ErrorIs(t, err, errCancelled)

	out := h.mustExec(h.as("period", "close", "1", "--yes")...)
	assert.Contains(t, out, "FY2024 closed")

	_, err = h.exec(h.as("entry", "add", "--date", "2024-05-01", "--label", "x", "--debit", "601", "--credit", "571", "--amount", "1")...)
	assert.Equal(t, apperrors.CodePeriodClosed, apperrors.CodeOf(err))
	assert.Equal(t, 3, ExitCode(err))
}

func TestAccountDelete_InUseRendersHint(t *testing.T) {
	h := newHarness(t, true)
	h.bootstrap()
	h.mustExec(h.as("entry", "add", "--date", "2024-03-15", "--label", "Achat", "--debit", "601", "--credit", "571", "--amount", "10")...)

	_, err := h.exec(h.as("account", "delete", "571", "--yes")...)
	require.Error(t, err)

	var stderr bytes.Buffer
	RenderError(&stderr, err)
	assert.Contains(t, stderr.String(), "ACCOUNT_IN_USE")
	assert.Contains(t, stderr.String(), "1 journal entries reference account 571")
	assert.Equal(t, 5, ExitCode(err))
}

func TestEntryList_SearchModes(t *testing.T) {
	h := newHarness(t, true)
	h.bootstrap()
	h.mustExec(h.as("entry", "add", "--date", "2024-03-15", "--label", "Loyer mars", "--debit", "601", "--credit", "571", "--amount", "500")...)
	h.mustExec(h.as("entry", "add", "--date", "2024-03-20", "--label", "Papeterie", "--debit", "601", "--credit", "571", "--amount", "20")...)

	out := h.mustExec(h.as("--csv", "entry", "list", "--text", "loyer")...)
	assert.Contains(t, out, "Loyer mars")
	assert.NotContains(t, out, "Papeterie")

	out = h.mustExec(h.as("--csv", "entry", "list", "--max", "100")...)
	assert.Contains(t, out, "Papeterie")
	assert.NotContains(t, out, "Loyer mars")

	_, err := h.exec(h.as("entry", "list", "--text", "loyer", "--min", "1")...)
	assert.Equal(t, apperrors.CodeSearchInvalid, apperrors.CodeOf(err))
}

func TestTable_AlignsWideLabels(t *testing.T) {
	var buf bytes.Buffer
	tbl := newTable("N", "Label", "Amount").alignRight(2)
	tbl.add("445", "État", "1.00")
	tbl.add("401", "Fournisseurs", "10.00")
	tbl.render(&buf)

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "445  État            1.00", string(lines[2]))
	assert.Equal(t, "401  Fournisseurs   10.00", string(lines[3]))
}
