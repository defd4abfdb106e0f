package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
)

type SQLiteUserRepository struct {
	BaseRepository
}

// newSQLiteUserRepository creates a new repository for operator credentials.
func newSQLiteUserRepository(db *sql.DB) portsrepo.UserRepositoryFacade {
	return &SQLiteUserRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UserRepositoryFacade = (*SQLiteUserRepository)(nil)

// SaveUser inserts a new user.
func (r *SQLiteUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	m := mapping.ToModelUser(user)
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, salt, is_admin) VALUES (?, ?, ?, ?)`,
		m.Username, m.PasswordHash, m.Salt, m.IsAdmin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.Newf(apperrors.CodeUserExists, "user %s already exists", m.Username)
		}
		return 0, apperrors.Store("save user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.Store("save user", err)
	}
	return id, nil
}

// FindUserByUsername retrieves a user by username.
func (r *SQLiteUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m models.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, username, password_hash, salt, is_admin FROM users WHERE username = ?`, username,
	).Scan(&m.ID, &m.Username, &m.PasswordHash, &m.Salt, &m.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Store("find user", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

// CountUsers returns the number of stored users.
func (r *SQLiteUserRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "count users", `SELECT COUNT(*) FROM users`)
}
