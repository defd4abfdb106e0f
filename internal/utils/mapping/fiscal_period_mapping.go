package mapping

import (
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
)

// ToModelFiscalPeriod converts a domain FiscalPeriod to a model FiscalPeriod
func ToModelFiscalPeriod(d domain.FiscalPeriod) models.FiscalPeriod {
	return models.FiscalPeriod{
		ID:          d.ID,
		CompanyName: d.CompanyName,
		PeriodName:  d.PeriodName,
		StartDate:   domain.FormatDate(d.StartDate),
		EndDate:     domain.FormatDate(d.EndDate),
		Closed:      d.Closed,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		ClosedAt:    NullTime(d.ClosedAt),
		ClosedBy:    NullString(d.ClosedBy),
	}
}

// ToDomainFiscalPeriod converts a model FiscalPeriod to a domain FiscalPeriod.
// It fails when a stored date is not a calendar date.
func ToDomainFiscalPeriod(m models.FiscalPeriod) (domain.FiscalPeriod, error) {
	start, err := domain.ParseDate(m.StartDate)
	if err != nil {
		return domain.FiscalPeriod{}, fmt.Errorf("period %d has a corrupt start date %q: %w", m.ID, m.StartDate, err)
	}
	end, err := domain.ParseDate(m.EndDate)
	if err != nil {
		return domain.FiscalPeriod{}, fmt.Errorf("period %d has a corrupt end date %q: %w", m.ID, m.EndDate, err)
	}
	return domain.FiscalPeriod{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		PeriodName:  m.PeriodName,
		StartDate:   start,
		EndDate:     end,
		Closed:      m.Closed,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		ClosedAt:    TimePtr(m.ClosedAt),
		ClosedBy:    StringPtr(m.ClosedBy),
	}, nil
}
