package models

import (
	"database/sql"
	"time"
)

// FiscalPeriod is the row of the fiscal_periods table. Dates are stored as YYYY-MM-DD text.
type FiscalPeriod struct {
	ID          int64          `db:"id"`
	CompanyName string         `db:"company_name"`
	PeriodName  string         `db:"period_name"`
	StartDate   string         `db:"start_date"`
	EndDate     string         `db:"end_date"`
	Closed      bool           `db:"closed"`
	Active      bool           `db:"active"`
	CreatedAt   time.Time      `db:"created_at"`
	ClosedAt    sql.NullTime   `db:"closed_at"`
	ClosedBy    sql.NullString `db:"closed_by"`
}
