package sqlite

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestProvider migrates a fresh ledger file in a temp dir.
func newTestProvider(t *testing.T) (*portsrepo.RepositoryProvider, *sql.DB) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := database.OpenAndMigrate(context.Background(), filepath.Join(t.TempDir(), "ledger.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db, logger) })
	return NewRepositoryProvider(db), db
}

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustSaveAccount(t *testing.T, repo portsrepo.AccountWriter, number, label string, kind *domain.AccountKind) {
	t.Helper()
	require.NoError(t, repo.SaveAccount(context.Background(), domain.Account{
		Number:    number,
		Label:     label,
		Kind:      kind,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}))
}

func mustSaveEntry(t *testing.T, repo portsrepo.JournalWriter, date, label, debit, credit, amount string, piece *string) int64 {
	t.Helper()
	id, err := repo.SaveEntry(context.Background(), domain.JournalEntry{
		Date:          day(date),
		Label:         label,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        decimal.RequireFromString(amount),
		PieceNumber:   piece,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	return id
}
