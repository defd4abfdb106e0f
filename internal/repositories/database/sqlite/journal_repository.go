package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/SscSPs/ledgerbook/pkg/database"
)

type SQLiteJournalRepository struct {
	BaseRepository
}

// newSQLiteJournalRepository creates a new repository for journal entries.
func newSQLiteJournalRepository(db *sql.DB) portsrepo.JournalRepositoryFacade {
	return &SQLiteJournalRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*SQLiteJournalRepository)(nil)

const entryColumns = `id, date, label, debit_account, credit_account, amount, piece_number, note, created_at`

func scanEntry(row interface{ Scan(...any) error }) (domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(&m.ID, &m.Date, &m.Label, &m.DebitAccount, &m.CreditAccount,
		&m.Amount, &m.PieceNumber, &m.Note, &m.CreatedAt)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	return mapping.ToDomainJournalEntry(m)
}

// entryWhere translates a filter into SQL conditions.
func entryWhere(filter domain.EntryFilter) whereClause {
	var w whereClause
	if filter.Dates.From != nil {
		w.add("date >= ?", domain.FormatDate(*filter.Dates.From))
	}
	if filter.Dates.To != nil {
		w.add("date <= ?", domain.FormatDate(*filter.Dates.To))
	}
	if filter.PeriodID != nil {
		w.add(`EXISTS (
			SELECT 1 FROM fiscal_periods p
			WHERE p.id = ? AND journal_entries.date BETWEEN p.start_date AND p.end_date)`, *filter.PeriodID)
	}

	switch filter.Mode {
	case domain.SearchText:
		pattern := database.Contains(database.Fold(filter.Term))
		w.add(`(casefold(label) LIKE ? ESCAPE '\'
			OR casefold(COALESCE(note, '')) LIKE ? ESCAPE '\'
			OR casefold(COALESCE(piece_number, '')) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern)
	case domain.SearchAccount:
		number := database.Contains(filter.Term)
		label := database.Contains(database.Fold(filter.Term))
		w.add(`(debit_account LIKE ? ESCAPE '\'
			OR credit_account LIKE ? ESCAPE '\'
			OR debit_account IN (SELECT number FROM accounts WHERE label_key LIKE ? ESCAPE '\')
			OR credit_account IN (SELECT number FROM accounts WHERE label_key LIKE ? ESCAPE '\'))`,
			number, number, label, label)
	case domain.SearchAmount:
		if filter.AmountMin != nil {
			w.add("deccmp(amount, ?) >= 0", filter.AmountMin.String())
		}
		if filter.AmountMax != nil {
			w.add("deccmp(amount, ?) <= 0", filter.AmountMax.String())
		}
	}
	return w
}

// SaveEntry inserts a journal entry as a single row.
func (r *SQLiteJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (date, label, debit_account, credit_account, amount, piece_number, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query,
		m.Date, m.Label, m.DebitAccount, m.CreditAccount, m.Amount, m.PieceNumber, m.Note, m.CreatedAt,
	)
	if err != nil {
		return 0, apperrors.Store("save journal entry", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.Store("save journal entry", err)
	}
	return id, nil
}

// FindEntryByID retrieves a journal entry by id.
func (r *SQLiteJournalRepository) FindEntryByID(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	e, err := scanEntry(r.DB.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.CodeEntryNotFound, "journal entry %d not found", id)
		}
		return nil, apperrors.Store(fmt.Sprintf("find journal entry %d", id), err)
	}
	return &e, nil
}

// ListEntries retrieves one page of entries, newest first.
func (r *SQLiteJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, offset int) ([]domain.JournalEntry, error) {
	where := entryWhere(filter)
	query := `SELECT ` + entryColumns + ` FROM journal_entries` + where.String() +
		` ORDER BY date DESC, id DESC LIMIT ? OFFSET ?`
	args := append(where.args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Store("list journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.Store("list journal entries", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store("list journal entries", err)
	}
	return entries, nil
}

// CountEntries counts the entries matching filter.
func (r *SQLiteJournalRepository) CountEntries(ctx context.Context, filter domain.EntryFilter) (int, error) {
	where := entryWhere(filter)
	return r.count(ctx, "count journal entries", `SELECT COUNT(*) FROM journal_entries`+where.String(), where.args...)
}

// PieceNumberExists reports whether an entry other than exceptID uses piece.
func (r *SQLiteJournalRepository) PieceNumberExists(ctx context.Context, piece string, exceptID int64) (bool, error) {
	query := `SELECT 1 FROM journal_entries WHERE piece_number = ? AND id <> ? LIMIT 1`
	return r.exists(ctx, "check piece number", query, piece, exceptID)
}

// UpdateEntry rewrites an existing entry.
func (r *SQLiteJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	op := fmt.Sprintf("update journal entry %d", m.ID)
	query := `
		UPDATE journal_entries
		SET date = ?, label = ?, debit_account = ?, credit_account = ?, amount = ?, piece_number = ?, note = ?
		WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query,
		m.Date, m.Label, m.DebitAccount, m.CreditAccount, m.Amount, m.PieceNumber, m.Note, m.ID,
	)
	if err != nil {
		return apperrors.Store(op, err)
	}
	return affectedOne(op, res, apperrors.Newf(apperrors.CodeEntryNotFound, "journal entry %d not found", m.ID))
}

// DeleteEntry removes an entry.
func (r *SQLiteJournalRepository) DeleteEntry(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete journal entry %d", id)
	res, err := r.DB.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return apperrors.Store(op, err)
	}
	return affectedOne(op, res, apperrors.Newf(apperrors.CodeEntryNotFound, "journal entry %d not found", id))
}
