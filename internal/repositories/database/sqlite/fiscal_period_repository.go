package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
)

type SQLiteFiscalPeriodRepository struct {
	BaseRepository
}

// newSQLiteFiscalPeriodRepository creates a new repository for fiscal periods.
func newSQLiteFiscalPeriodRepository(db *sql.DB) portsrepo.FiscalPeriodRepositoryFacade {
	return &SQLiteFiscalPeriodRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*SQLiteFiscalPeriodRepository)(nil)

const periodColumns = `id, company_name, period_name, start_date, end_date, closed, active, created_at, closed_at, closed_by`

func scanPeriod(row interface{ Scan(...any) error }) (domain.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(&m.ID, &m.CompanyName, &m.PeriodName, &m.StartDate, &m.EndDate,
		&m.Closed, &m.Active, &m.CreatedAt, &m.ClosedAt, &m.ClosedBy)
	if err != nil {
		return domain.FiscalPeriod{}, err
	}
	return mapping.ToDomainFiscalPeriod(m)
}

// findOne returns nil without error when the query matches nothing.
func (r *SQLiteFiscalPeriodRepository) findOne(ctx context.Context, op string, query string, args ...any) (*domain.FiscalPeriod, error) {
	p, err := scanPeriod(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Store(op, err)
	}
	return &p, nil
}

func (r *SQLiteFiscalPeriodRepository) queryPeriods(ctx context.Context, op string, query string, args ...any) ([]domain.FiscalPeriod, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Store(op, err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, apperrors.Store(op, err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store(op, err)
	}
	return periods, nil
}

// SavePeriod inserts a new fiscal period.
func (r *SQLiteFiscalPeriodRepository) SavePeriod(ctx context.Context, period domain.FiscalPeriod) (int64, error) {
	m := mapping.ToModelFiscalPeriod(period)
	query := `
		INSERT INTO fiscal_periods (company_name, period_name, start_date, end_date, closed, active, created_at, closed_at, closed_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query,
		m.CompanyName, m.PeriodName, m.StartDate, m.EndDate, m.Closed, m.Active, m.CreatedAt, m.ClosedAt, m.ClosedBy,
	)
	if err != nil {
		return 0, apperrors.Store("save fiscal period", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.Store("save fiscal period", err)
	}
	return id, nil
}

// FindPeriodByID retrieves a fiscal period by id.
func (r *SQLiteFiscalPeriodRepository) FindPeriodByID(ctx context.Context, id int64) (*domain.FiscalPeriod, error) {
	p, err := r.findOne(ctx, fmt.Sprintf("find fiscal period %d", id),
		`SELECT `+periodColumns+` FROM fiscal_periods WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.Newf(apperrors.CodePeriodNotFound, "fiscal period %d not found", id)
	}
	return p, nil
}

// ListPeriods lists active periods, most recent first.
func (r *SQLiteFiscalPeriodRepository) ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE active = 1 ORDER BY start_date DESC, id DESC`
	return r.queryPeriods(ctx, "list fiscal periods", query)
}

// FindOpenPeriod returns the most recent unclosed period.
func (r *SQLiteFiscalPeriodRepository) FindOpenPeriod(ctx context.Context) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE closed = 0 AND active = 1
		ORDER BY start_date DESC, id DESC
		LIMIT 1`
	return r.findOne(ctx, "find open fiscal period", query)
}

// FindPeriodContaining returns the period whose span includes date. Periods never overlap, so at
// most one matches.
func (r *SQLiteFiscalPeriodRepository) FindPeriodContaining(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error) {
	d := domain.FormatDate(date)
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE active = 1 AND start_date <= ? AND end_date >= ?
		ORDER BY start_date DESC, id DESC
		LIMIT 1`
	return r.findOne(ctx, fmt.Sprintf("find fiscal period containing %s", d), query, d, d)
}

// FindOverlapping returns the periods intersecting [start, end].
func (r *SQLiteFiscalPeriodRepository) FindOverlapping(ctx context.Context, start, end time.Time) ([]domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE active = 1 AND start_date <= ? AND end_date >= ?
		ORDER BY start_date`
	return r.queryPeriods(ctx, "find overlapping fiscal periods", query, domain.FormatDate(end), domain.FormatDate(start))
}

// ClosePeriod flags an open period as closed.
func (r *SQLiteFiscalPeriodRepository) ClosePeriod(ctx context.Context, id int64, closedAt time.Time, closedBy *string) error {
	op := fmt.Sprintf("close fiscal period %d", id)
	res, err := r.DB.ExecContext(ctx,
		`UPDATE fiscal_periods SET closed = 1, closed_at = ?, closed_by = ? WHERE id = ? AND closed = 0`,
		closedAt, mapping.NullString(closedBy), id,
	)
	if err != nil {
		return apperrors.Store(op, err)
	}
	return affectedOne(op, res, apperrors.Newf(apperrors.CodePeriodNotFound, "no open fiscal period %d", id))
}
