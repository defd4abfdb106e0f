package repositories

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// ReportingRepository defines the read-side queries behind the calculators
type ReportingRepository interface {
	// ListAccountPostings returns every account (optionally of one kind) joined with its postings
	// inside dates. Accounts without postings appear once with a nil Posting.
	ListAccountPostings(ctx context.Context, kind *domain.AccountKind, dates domain.DateRange) ([]domain.AccountPosting, error)

	// ListAccountLedger returns the postings of one account inside dates, ordered by date then entry id.
	ListAccountLedger(ctx context.Context, number string, dates domain.DateRange) ([]domain.Posting, error)
}
