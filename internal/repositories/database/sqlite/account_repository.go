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

type SQLiteAccountRepository struct {
	BaseRepository
}

// newSQLiteAccountRepository creates a new repository for the chart of accounts.
func newSQLiteAccountRepository(db *sql.DB) portsrepo.AccountRepositoryFacade {
	return &SQLiteAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure SQLiteAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

const accountColumns = `number, label, label_key, kind, active, created_at`

func scanAccount(row interface{ Scan(...any) error }) (models.Account, error) {
	var m models.Account
	err := row.Scan(&m.Number, &m.Label, &m.LabelKey, &m.Kind, &m.Active, &m.CreatedAt)
	return m, err
}

func (r *SQLiteAccountRepository) queryAccounts(ctx context.Context, op string, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Store(op, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.Store(op, err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store(op, err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account.
func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	m.LabelKey = database.Fold(m.Label)

	query := `INSERT INTO accounts (` + accountColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, m.Number, m.Label, m.LabelKey, m.Kind, m.Active, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Newf(apperrors.CodeDuplicateNumber, "account %s already exists", m.Number)
		}
		return apperrors.Store(fmt.Sprintf("save account %s", m.Number), err)
	}
	return nil
}

// FindAccountByNumber retrieves an account by its number.
func (r *SQLiteAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE number = ?`
	m, err := scanAccount(r.DB.QueryRowContext(ctx, query, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.AccountNotFound(number)
		}
		return nil, apperrors.Store(fmt.Sprintf("find account %s", number), err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves the chart of accounts ordered by number.
func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var where whereClause
	if !filter.IncludeInactive {
		where.add("active = 1")
	}
	if filter.Kind != nil {
		where.add("kind = ?", string(*filter.Kind))
	}
	query := `SELECT ` + accountColumns + ` FROM accounts` + where.String() + ` ORDER BY number`
	return r.queryAccounts(ctx, "list accounts", query, where.args...)
}

// SearchAccounts matches term against number and folded label. Relevance tiers: exact number,
// number prefix, label substring, then any other number substring; each tier by number.
func (r *SQLiteAccountRepository) SearchAccounts(ctx context.Context, term string, limit int) ([]domain.Account, error) {
	key := database.Fold(term)
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE number LIKE ? ESCAPE '\' OR label_key LIKE ? ESCAPE '\'
		ORDER BY
			CASE
				WHEN number = ? THEN 0
				WHEN number LIKE ? ESCAPE '\' THEN 1
				WHEN label_key LIKE ? ESCAPE '\' THEN 2
				ELSE 3
			END,
			number
		LIMIT ?`
	return r.queryAccounts(ctx, "search accounts", query,
		database.Contains(term), database.Contains(key),
		term, database.HasPrefix(term), database.Contains(key),
		limit,
	)
}

// LabelTaken reports whether another active account carries the same folded label.
func (r *SQLiteAccountRepository) LabelTaken(ctx context.Context, label string, exceptNumber string) (bool, error) {
	query := `SELECT 1 FROM accounts WHERE label_key = ? AND active = 1 AND number <> ? LIMIT 1`
	return r.exists(ctx, "check account label", query, database.Fold(label), exceptNumber)
}

// CountEntryReferences counts journal entries using the account on either leg.
func (r *SQLiteAccountRepository) CountEntryReferences(ctx context.Context, number string) (int, error) {
	query := `SELECT COUNT(*) FROM journal_entries WHERE debit_account = ? OR credit_account = ?`
	return r.count(ctx, fmt.Sprintf("count references of account %s", number), query, number, number)
}

// UpdateAccount updates label and kind of an existing account.
func (r *SQLiteAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	op := fmt.Sprintf("update account %s", m.Number)
	res, err := r.DB.ExecContext(ctx,
		`UPDATE accounts SET label = ?, label_key = ?, kind = ? WHERE number = ?`,
		m.Label, database.Fold(m.Label), m.Kind, m.Number,
	)
	if err != nil {
		return apperrors.Store(op, err)
	}
	return affectedOne(op, res, apperrors.AccountNotFound(m.Number))
}

// DeactivateAccount marks an account as inactive.
func (r *SQLiteAccountRepository) DeactivateAccount(ctx context.Context, number string) error {
	op := fmt.Sprintf("deactivate account %s", number)
	res, err := r.DB.ExecContext(ctx, `UPDATE accounts SET active = 0 WHERE number = ?`, number)
	if err != nil {
		return apperrors.Store(op, err)
	}
	return affectedOne(op, res, apperrors.AccountNotFound(number))
}

// DeleteAccount removes an account row.
func (r *SQLiteAccountRepository) DeleteAccount(ctx context.Context, number string) error {
	op := fmt.Sprintf("delete account %s", number)
	res, err := r.DB.ExecContext(ctx, `DELETE FROM accounts WHERE number = ?`, number)
	if err != nil {
		return apperrors.Store(op, err)
	}
	return affectedOne(op, res, apperrors.AccountNotFound(number))
}
