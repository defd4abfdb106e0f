package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func periodRequest(start, end string) dto.CreatePeriodRequest {
	return dto.CreatePeriodRequest{CompanyName: "ACME", PeriodName: "FY", StartDate: start, EndDate: end}
}

func TestFiscalPeriodService_CreatePeriod(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFiscalPeriodRepository)
	svc := services.NewFiscalPeriodService(repo, services.WithPeriodClock(fixedClock))

	repo.On("FindOverlapping", ctx, day("2024-01-01"), day("2024-12-31")).Return([]domain.FiscalPeriod{}, nil).Once()
	repo.On("FindOpenPeriod", ctx).Return(nil, nil).Once()
	repo.On("SavePeriod", ctx, mock.AnythingOfType("domain.FiscalPeriod")).Return(int64(7), nil).Once()

	p, err := svc.CreatePeriod(ctx, periodRequest("2024-01-01", "2024-12-31"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.False(t, p.Closed)
	assert.Equal(t, fixedClock(), p.CreatedAt)
	repo.AssertExpectations(t)
}

func TestFiscalPeriodService_CreatePeriod_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("start not before end", func(t *testing.T) {
		repo := new(MockFiscalPeriodRepository)
		_, err := services.NewFiscalPeriodService(repo).CreatePeriod(ctx, periodRequest("2024-12-31", "2024-12-31"))
		assert.Equal(t, apperrors.CodePeriodDatesInvalid, apperrors.CodeOf(err))
	})

	t.Run("bad date", func(t *testing.T) {
		repo := new(MockFiscalPeriodRepository)
		_, err := services.NewFiscalPeriodService(repo).CreatePeriod(ctx, periodRequest("2024-13-01", "2024-12-31"))
		assert.Equal(t, apperrors.CodeDateFormatInvalid, apperrors.CodeOf(err))
	})

	t.Run("missing name", func(t *testing.T) {
		repo := new(MockFiscalPeriodRepository)
		req := periodRequest("2024-01-01", "2024-12-31")
		req.PeriodName = "  "
		_, err := services.NewFiscalPeriodService(repo).CreatePeriod(ctx, req)
		assert.Equal(t, apperrors.CodePeriodNameRequired, apperrors.CodeOf(err))
	})

	t.Run("overlap", func(t *testing.T) {
		repo := new(MockFiscalPeriodRepository)
		other := domain.FiscalPeriod{ID: 1, PeriodName: "H1", StartDate: day("2024-01-01"), EndDate: day("2024-06-30")}
		repo.On("FindOverlapping", ctx, day("2024-06-30"), day("2024-12-31")).Return([]domain.FiscalPeriod{other}, nil).Once()

		_, err := services.NewFiscalPeriodService(repo).CreatePeriod(ctx, periodRequest("2024-06-30", "2024-12-31"))

		assert.Equal(t, apperrors.CodeOverlap, apperrors.CodeOf(err))
		repo.AssertNotCalled(t, "SavePeriod", mock.Anything, mock.Anything)
	})

	t.Run("open period exists", func(t *testing.T) {
		repo := new(MockFiscalPeriodRepository)
		repo.On("FindOverlapping", ctx, mock.Anything, mock.Anything).Return([]domain.FiscalPeriod{}, nil).Once()
		repo.On("FindOpenPeriod", ctx).Return(&domain.FiscalPeriod{ID: 1, PeriodName: "FY2023"}, nil).Once()

		req := periodRequest("2024-01-01", "2024-12-31")
		req.AllowWhileOpen = true // ignored while the rule is enforced
		_, err := services.NewFiscalPeriodService(repo).CreatePeriod(ctx, req)

		assert.Equal(t, apperrors.CodeOpenPeriodExists, apperrors.CodeOf(err))
	})
}

func TestFiscalPeriodService_CreatePeriod_AdvisoryOpenPeriod(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFiscalPeriodRepository)
	svc := services.NewFiscalPeriodService(repo, services.WithSingleOpenPeriod(false))

	repo.On("FindOverlapping", ctx, mock.Anything, mock.Anything).Return([]domain.FiscalPeriod{}, nil)
	repo.On("FindOpenPeriod", ctx).Return(&domain.FiscalPeriod{ID: 1, PeriodName: "FY2023"}, nil)
	repo.On("SavePeriod", ctx, mock.Anything).Return(int64(2), nil).Once()

	_, err := svc.CreatePeriod(ctx, periodRequest("2024-01-01", "2024-12-31"))
	assert.Equal(t, apperrors.CodeOpenPeriodExists, apperrors.CodeOf(err), "needs confirmation")

	req := periodRequest("2024-01-01", "2024-12-31")
	req.AllowWhileOpen = true
	p, err := svc.CreatePeriod(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
}

func TestFiscalPeriodService_ClosePeriod(t *testing.T) {
	ctx := middleware.WithUser(context.Background(), "admin")
	repo := new(MockFiscalPeriodRepository)
	svc := services.NewFiscalPeriodService(repo, services.WithPeriodClock(fixedClock))

	open := &domain.FiscalPeriod{ID: 3, PeriodName: "FY2024"}
	repo.On("FindPeriodByID", ctx, int64(3)).Return(open, nil).Once()
	repo.On("ClosePeriod", ctx, int64(3), fixedClock(), mock.MatchedBy(func(by *string) bool {
		return by != nil && *by == "admin"
	})).Return(nil).Once()

	p, err := svc.ClosePeriod(ctx, 3)
	require.NoError(t, err)
	assert.True(t, p.Closed)
	require.NotNil(t, p.ClosedBy)
	assert.Equal(t, "admin", *p.ClosedBy)

	repo.On("FindPeriodByID", ctx, int64(3)).Return(&domain.FiscalPeriod{ID: 3, Closed: true}, nil).Once()
	_, err = svc.ClosePeriod(ctx, 3)
	assert.Equal(t, apperrors.CodePeriodClosed, apperrors.CodeOf(err))

	repo.On("FindPeriodByID", ctx, int64(9)).Return(nil, apperrors.New(apperrors.CodePeriodNotFound, "nope")).Once()
	_, err = svc.ClosePeriod(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}
