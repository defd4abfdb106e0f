package accounting

import (
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolvePeriodWindow(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.PeriodSpec
		from, to string
	}{
		{"february leap year", domain.PeriodSpec{Kind: domain.PeriodMonth, Year: 2024, Month: 2}, "2024-02-01", "2024-02-29"},
		{"december", domain.PeriodSpec{Kind: domain.PeriodMonth, Year: 2023, Month: 12}, "2023-12-01", "2023-12-31"},
		{"third quarter", domain.PeriodSpec{Kind: domain.PeriodQuarter, Year: 2024, Quarter: 3}, "2024-07-01", "2024-09-30"},
		{"year", domain.PeriodSpec{Kind: domain.PeriodYear, Year: 2024}, "2024-01-01", "2024-12-31"},
		{"custom", domain.PeriodSpec{Kind: domain.PeriodCustom, From: day("2024-03-15"), To: day("2024-04-15")}, "2024-03-15", "2024-04-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := ResolvePeriodWindow(tt.spec)
			assert.NoError(t, err)
			assert.Equal(t, tt.from, domain.FormatDate(from))
			assert.Equal(t, tt.to, domain.FormatDate(to))
		})
	}
}

func TestResolvePeriodWindow_Invalid(t *testing.T) {
	specs := []domain.PeriodSpec{
		{Kind: domain.PeriodMonth, Year: 2024, Month: 13},
		{Kind: domain.PeriodQuarter, Year: 2024, Quarter: 0},
		{Kind: domain.PeriodYear},
		{Kind: domain.PeriodCustom, From: day("2024-05-01"), To: day("2024-04-01")},
		{Kind: domain.PeriodCustom, From: day("2024-05-01")},
		{Kind: "WEEK", Year: 2024},
	}
	for _, spec := range specs {
		_, _, err := ResolvePeriodWindow(spec)
		assert.Equal(t, apperrors.CodePeriodSpecInvalid, apperrors.CodeOf(err), "spec %+v", spec)
	}
}
