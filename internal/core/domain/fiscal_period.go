package domain

import "time"

// FiscalPeriod is a bounded accounting interval. Closing it is irreversible.
type FiscalPeriod struct {
	ID          int64      `json:"id"`
	CompanyName string     `json:"companyName"`
	PeriodName  string     `json:"periodName"`
	StartDate   time.Time  `json:"startDate"` // Inclusive
	EndDate     time.Time  `json:"endDate"`   // Inclusive
	Closed      bool       `json:"closed"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	ClosedBy    *string    `json:"closedBy,omitempty"`
}

// Contains reports whether the calendar date d lies within [StartDate, EndDate].
func (p FiscalPeriod) Contains(d time.Time) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// Overlaps reports whether [start, end] intersects the period: start1 <= end2 and end1 >= start2.
func (p FiscalPeriod) Overlaps(start, end time.Time) bool {
	return !p.StartDate.After(end) && !p.EndDate.Before(start)
}

// Span returns the period as a date range.
func (p FiscalPeriod) Span() DateRange {
	from, to := p.StartDate, p.EndDate
	return DateRange{From: &from, To: &to}
}
