package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
)

type SQLiteReportingRepository struct {
	BaseRepository
}

// newSQLiteReportingRepository creates a new repository for report queries.
func newSQLiteReportingRepository(db *sql.DB) portsrepo.ReportingRepository {
	return &SQLiteReportingRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ReportingRepository = (*SQLiteReportingRepository)(nil)

// postingLegs expands each entry row into its debit and credit legs.
const postingLegs = `
	SELECT id AS entry_id, date, label, piece_number, debit_account AS account_number, 'DEBIT' AS side, amount
	FROM journal_entries
	UNION ALL
	SELECT id AS entry_id, date, label, piece_number, credit_account AS account_number, 'CREDIT' AS side, amount
	FROM journal_entries`

// dateConds builds the conditions on the posting date column col.
func dateConds(col string, dates domain.DateRange) (string, []any) {
	var cond string
	var args []any
	if dates.From != nil {
		cond += " AND " + col + " >= ?"
		args = append(args, domain.FormatDate(*dates.From))
	}
	if dates.To != nil {
		cond += " AND " + col + " <= ?"
		args = append(args, domain.FormatDate(*dates.To))
	}
	return cond, args
}

// ListAccountPostings joins every account with its postings inside dates. The date bounds sit in the
// join condition so that accounts without activity still come back once. Inactive accounts are kept
// since their past postings still count toward the totals.
func (r *SQLiteReportingRepository) ListAccountPostings(ctx context.Context, kind *domain.AccountKind, dates domain.DateRange) ([]domain.AccountPosting, error) {
	dateCond, args := dateConds("p.date", dates)
	query := `
		SELECT a.number, a.label, a.label_key, a.kind, a.active, a.created_at,
		       p.entry_id, p.date, p.label, p.piece_number, p.side, p.amount
		FROM accounts a
		LEFT JOIN (` + postingLegs + `) p ON p.account_number = a.number` + dateCond
	if kind != nil {
		query += ` WHERE a.kind = ?`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY a.number, p.date, p.entry_id, p.side DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Store("list account postings", err)
	}
	defer rows.Close()

	result := []domain.AccountPosting{}
	for rows.Next() {
		var acc models.Account
		var (
			entryID      sql.NullInt64
			date, label  sql.NullString
			piece        sql.NullString
			side, amount sql.NullString
		)
		if err := rows.Scan(&acc.Number, &acc.Label, &acc.LabelKey, &acc.Kind, &acc.Active, &acc.CreatedAt,
			&entryID, &date, &label, &piece, &side, &amount); err != nil {
			return nil, apperrors.Store("list account postings", err)
		}

		ap := domain.AccountPosting{Account: mapping.ToDomainAccount(acc)}
		if entryID.Valid {
			p, err := mapping.ToDomainPosting(models.Posting{
				EntryID:       entryID.Int64,
				Date:          date.String,
				Label:         label.String,
				PieceNumber:   piece,
				AccountNumber: acc.Number,
				Side:          side.String,
				Amount:        amount.String,
			})
			if err != nil {
				return nil, apperrors.Store("list account postings", err)
			}
			ap.Posting = &p
		}
		result = append(result, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store("list account postings", err)
	}
	return result, nil
}

// ListAccountLedger returns the postings of one account inside dates in chronological order.
func (r *SQLiteReportingRepository) ListAccountLedger(ctx context.Context, number string, dates domain.DateRange) ([]domain.Posting, error) {
	op := fmt.Sprintf("list ledger of account %s", number)
	dateCond, dateArgs := dateConds("p.date", dates)
	query := `
		SELECT p.entry_id, p.date, p.label, p.piece_number, p.account_number, p.side, p.amount
		FROM (` + postingLegs + `) p
		WHERE p.account_number = ?` + dateCond + `
		ORDER BY p.date, p.entry_id, p.side DESC`
	args := append([]any{number}, dateArgs...)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Store(op, err)
	}
	defer rows.Close()

	postings := []domain.Posting{}
	for rows.Next() {
		var m models.Posting
		if err := rows.Scan(&m.EntryID, &m.Date, &m.Label, &m.PieceNumber, &m.AccountNumber, &m.Side, &m.Amount); err != nil {
			return nil, apperrors.Store(op, err)
		}
		p, err := mapping.ToDomainPosting(m)
		if err != nil {
			return nil, apperrors.Store(op, err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store(op, err)
	}
	return postings, nil
}
