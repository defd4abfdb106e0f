package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// FiscalPeriodReader defines read operations for fiscal periods
type FiscalPeriodReader interface {
	// FindPeriodByID retrieves a period. Returns PERIOD_NOT_FOUND when absent.
	FindPeriodByID(ctx context.Context, id int64) (*domain.FiscalPeriod, error)

	// ListPeriods retrieves every active period, most recent start date first.
	ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error)

	// FindOpenPeriod returns the unclosed period with the latest start date (ties: highest id),
	// or nil when every period is closed.
	FindOpenPeriod(ctx context.Context) (*domain.FiscalPeriod, error)

	// FindPeriodContaining returns the period whose span includes date, or nil.
	FindPeriodContaining(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error)

	// FindOverlapping returns the periods intersecting [start, end].
	FindOverlapping(ctx context.Context, start, end time.Time) ([]domain.FiscalPeriod, error)
}

// FiscalPeriodWriter defines write operations for fiscal periods
type FiscalPeriodWriter interface {
	// SavePeriod persists a new period and returns its id.
	SavePeriod(ctx context.Context, period domain.FiscalPeriod) (int64, error)

	// ClosePeriod flags the period closed and stamps the closure. Only open periods are affected.
	ClosePeriod(ctx context.Context, id int64, closedAt time.Time, closedBy *string) error
}

// FiscalPeriodRepositoryFacade combines all fiscal period repository interfaces
type FiscalPeriodRepositoryFacade interface {
	FiscalPeriodReader
	FiscalPeriodWriter
}
