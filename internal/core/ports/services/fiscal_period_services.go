package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// FiscalPeriodReaderSvc defines read operations for fiscal periods
type FiscalPeriodReaderSvc interface {
	// GetPeriod retrieves a specific period.
	GetPeriod(ctx context.Context, id int64) (*domain.FiscalPeriod, error)

	// ListPeriods retrieves every period, most recent first.
	ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error)

	// GetOpenPeriod returns the current open period, or nil when there is none.
	GetOpenPeriod(ctx context.Context) (*domain.FiscalPeriod, error)
}

// FiscalPeriodWriterSvc defines write operations for fiscal periods
type FiscalPeriodWriterSvc interface {
	// CreatePeriod opens a new period.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.FiscalPeriod, error)

	// ClosePeriod closes a period for good.
	ClosePeriod(ctx context.Context, id int64) (*domain.FiscalPeriod, error)
}

// FiscalPeriodSvcFacade combines all fiscal period service interfaces
type FiscalPeriodSvcFacade interface {
	FiscalPeriodReaderSvc
	FiscalPeriodWriterSvc
}
