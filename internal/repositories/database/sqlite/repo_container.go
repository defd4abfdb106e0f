package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository onto a single handle.
func NewRepositoryProvider(db *sql.DB) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:      newSQLiteAccountRepository(db),
		FiscalPeriodRepo: newSQLiteFiscalPeriodRepository(db),
		JournalRepo:      newSQLiteJournalRepository(db),
		ReportingRepo:    newSQLiteReportingRepository(db),
		UserRepo:         newSQLiteUserRepository(db),
	}
}
