package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// isUniqueViolation reports whether err is a PRIMARY KEY or UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// exists runs a query selecting at most one row and reports whether it returned one.
func (r *BaseRepository) exists(ctx context.Context, op string, query string, args ...any) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Store(op, err)
	}
	return true, nil
}

// count runs a COUNT query.
func (r *BaseRepository) count(ctx context.Context, op string, query string, args ...any) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, apperrors.Store(op, err)
	}
	return n, nil
}

// affectedOne checks that an UPDATE or DELETE touched a row, returning notFound otherwise.
func affectedOne(op string, res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Store(op, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// whereClause accumulates AND-ed conditions and their arguments.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
