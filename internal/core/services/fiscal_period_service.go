package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
)

// fiscalPeriodService implements the FiscalPeriodSvcFacade interface
type fiscalPeriodService struct {
	BaseService
	periodRepo        portsrepo.FiscalPeriodRepositoryFacade
	enforceSingleOpen bool
}

// FiscalPeriodServiceOption is a functional option for configuring the fiscal period service
type FiscalPeriodServiceOption func(*fiscalPeriodService)

// WithSingleOpenPeriod makes the single-open-period rule a hard error (true) or a confirmation the
// caller gives through AllowWhileOpen (false).
func WithSingleOpenPeriod(enforce bool) FiscalPeriodServiceOption {
	return func(s *fiscalPeriodService) {
		s.enforceSingleOpen = enforce
	}
}

// WithPeriodClock sets the clock used to stamp creation and closure times.
func WithPeriodClock(clock func() time.Time) FiscalPeriodServiceOption {
	return func(s *fiscalPeriodService) {
		s.Clock = clock
	}
}

// NewFiscalPeriodService creates a new fiscal period service with the provided options
func NewFiscalPeriodService(repo portsrepo.FiscalPeriodRepositoryFacade, options ...FiscalPeriodServiceOption) portssvc.FiscalPeriodSvcFacade {
	svc := &fiscalPeriodService{
		periodRepo:        repo,
		enforceSingleOpen: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)

func (s *fiscalPeriodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.FiscalPeriod, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.LogRejected(ctx, err, "Invalid fiscal period request")
		return nil, err
	}
	start, _ := domain.ParseDate(req.StartDate)
	end, _ := domain.ParseDate(req.EndDate)
	if !start.Before(end) {
		return nil, apperrors.Newf(apperrors.CodePeriodDatesInvalid, "start date %s must be before end date %s", req.StartDate, req.EndDate)
	}

	overlapping, err := s.periodRepo.FindOverlapping(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to check period overlap")
		return nil, err
	}
	if len(overlapping) > 0 {
		other := overlapping[0]
		err := apperrors.Newf(apperrors.CodeOverlap, "dates overlap period %q (%s to %s)",
			other.PeriodName, domain.FormatDate(other.StartDate), domain.FormatDate(other.EndDate))
		s.LogRejected(ctx, err, "Fiscal period overlaps", slog.Int64("other_period_id", other.ID))
		return nil, err
	}

	open, err := s.periodRepo.FindOpenPeriod(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to find open period")
		return nil, err
	}
	if open != nil && (s.enforceSingleOpen || !req.AllowWhileOpen) {
		return nil, apperrors.Newf(apperrors.CodeOpenPeriodExists, "period %q is still open", open.PeriodName)
	}

	period := domain.FiscalPeriod{
		CompanyName: req.CompanyName,
		PeriodName:  req.PeriodName,
		StartDate:   start,
		EndDate:     end,
		Active:      true,
		CreatedAt:   s.now(),
	}
	id, err := s.periodRepo.SavePeriod(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to save fiscal period")
		return nil, err
	}
	period.ID = id

	s.LogInfo(ctx, "Fiscal period created successfully",
		slog.Int64("period_id", id),
		slog.String("start", req.StartDate),
		slog.String("end", req.EndDate))
	return &period, nil
}

func (s *fiscalPeriodService) GetPeriod(ctx context.Context, id int64) (*domain.FiscalPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, id)
	if err != nil {
		s.LogRejected(ctx, err, "Failed to get fiscal period", slog.Int64("period_id", id))
		return nil, err
	}
	return period, nil
}

func (s *fiscalPeriodService) ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal periods")
		return nil, err
	}
	return periods, nil
}

func (s *fiscalPeriodService) GetOpenPeriod(ctx context.Context) (*domain.FiscalPeriod, error) {
	period, err := s.periodRepo.FindOpenPeriod(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to find open period")
		return nil, err
	}
	return period, nil
}

func (s *fiscalPeriodService) ClosePeriod(ctx context.Context, id int64) (*domain.FiscalPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, id)
	if err != nil {
		s.LogRejected(ctx, err, "Failed to find fiscal period to close", slog.Int64("period_id", id))
		return nil, err
	}
	if period.Closed {
		return nil, apperrors.Newf(apperrors.CodePeriodClosed, "period %q is already closed", period.PeriodName)
	}

	closedAt := s.now()
	var closedBy *string
	if user, ok := middleware.GetUserFromCtx(ctx); ok {
		closedBy = &user
	}
	if err := s.periodRepo.ClosePeriod(ctx, id, closedAt, closedBy); err != nil {
		s.LogError(ctx, err, "Failed to close fiscal period", slog.Int64("period_id", id))
		return nil, err
	}

	period.Closed = true
	period.ClosedAt = &closedAt
	period.ClosedBy = closedBy
	s.LogInfo(ctx, "Fiscal period closed", slog.Int64("period_id", id))
	return period, nil
}
