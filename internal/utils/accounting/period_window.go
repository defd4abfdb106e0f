package accounting

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// ResolvePeriodWindow turns a period specification into an inclusive [from, to] window.
func ResolvePeriodWindow(spec domain.PeriodSpec) (time.Time, time.Time, error) {
	switch spec.Kind {
	case domain.PeriodMonth:
		if spec.Year < 1 || spec.Month < 1 || spec.Month > 12 {
			return time.Time{}, time.Time{}, apperrors.Newf(apperrors.CodePeriodSpecInvalid, "month %d/%d is invalid", spec.Month, spec.Year)
		}
		from := time.Date(spec.Year, time.Month(spec.Month), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, -1), nil
	case domain.PeriodQuarter:
		if spec.Year < 1 || spec.Quarter < 1 || spec.Quarter > 4 {
			return time.Time{}, time.Time{}, apperrors.Newf(apperrors.CodePeriodSpecInvalid, "quarter Q%d %d is invalid", spec.Quarter, spec.Year)
		}
		from := time.Date(spec.Year, time.Month(3*(spec.Quarter-1)+1), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 3, -1), nil
	case domain.PeriodYear:
		if spec.Year < 1 {
			return time.Time{}, time.Time{}, apperrors.Newf(apperrors.CodePeriodSpecInvalid, "year %d is invalid", spec.Year)
		}
		return time.Date(spec.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(spec.Year, time.December, 31, 0, 0, 0, 0, time.UTC), nil
	case domain.PeriodCustom:
		if spec.From.IsZero() || spec.To.IsZero() {
			return time.Time{}, time.Time{}, apperrors.New(apperrors.CodePeriodSpecInvalid, "custom period needs both dates")
		}
		from, to := domain.DateOf(spec.From), domain.DateOf(spec.To)
		if from.After(to) {
			return time.Time{}, time.Time{}, apperrors.New(apperrors.CodePeriodSpecInvalid, "custom period starts after it ends")
		}
		return from, to, nil
	}
	return time.Time{}, time.Time{}, apperrors.Newf(apperrors.CodePeriodSpecInvalid, "unknown period kind %q", spec.Kind)
}
