package sqlite

import (
	"context"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingRepository_ListAccountPostings(t *testing.T) {
	j := seedJournal(t)
	ctx := context.Background()
	mustSaveAccount(t, j.repos.AccountRepo, "101", "Capital", domain.KindPtr(domain.Liability))

	rows, err := j.repos.ReportingRepo.ListAccountPostings(ctx, nil, domain.DateRange{})
	require.NoError(t, err)

	perAccount := map[string]int{}
	var capitalRows []domain.AccountPosting
	for _, r := range rows {
		if r.Posting != nil {
			perAccount[r.Account.Number]++
			assert.Equal(t, r.Account.Number, r.Posting.AccountNumber)
		}
		if r.Account.Number == "101" {
			capitalRows = append(capitalRows, r)
		}
	}
	assert.Equal(t, map[string]int{"601": 2, "571": 3, "701": 2, "411": 1}, perAccount)
	require.Len(t, capitalRows, 1, "accounts without activity appear once")
	assert.Nil(t, capitalRows[0].Posting)
	assert.Equal(t, "101", rows[0].Account.Number, "ordered by account number")
}

func TestReportingRepository_ListAccountPostings_DatesAndKind(t *testing.T) {
	j := seedJournal(t)
	ctx := context.Background()
	mustSaveAccount(t, j.repos.AccountRepo, "706", "Prestations", domain.KindPtr(domain.Revenue))
	require.NoError(t, j.repos.AccountRepo.UpdateAccount(ctx, domain.Account{Number: "701", Label: "Ventes", Kind: domain.KindPtr(domain.Revenue)}))

	to := day("2024-01-31")
	rows, err := j.repos.ReportingRepo.ListAccountPostings(ctx, nil, domain.DateRange{To: &to})
	require.NoError(t, err)
	var postings int
	for _, r := range rows {
		if r.Posting != nil {
			postings++
		}
	}
	assert.Equal(t, 2, postings, "only the January entry's two legs")
	assert.Len(t, rows, 5, "three idle accounts plus the two legs")

	revenue, err := j.repos.ReportingRepo.ListAccountPostings(ctx, domain.KindPtr(domain.Revenue), domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, revenue, 3)
	assert.Equal(t, "701", revenue[0].Account.Number)
	assert.Equal(t, domain.Credit, revenue[0].Posting.Side)
	assert.Equal(t, "706", revenue[2].Account.Number)
	assert.Nil(t, revenue[2].Posting)
}

func TestReportingRepository_ListAccountLedger(t *testing.T) {
	j := seedJournal(t)
	ctx := context.Background()

	postings, err := j.repos.ReportingRepo.ListAccountLedger(ctx, "571", domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, postings, 3)
	assert.Equal(t, []domain.EntrySide{domain.Credit, domain.Debit, domain.Credit},
		[]domain.EntrySide{postings[0].Side, postings[1].Side, postings[2].Side})
	assert.Equal(t, j.a, postings[0].EntryID)
	assert.Equal(t, "250", postings[1].Amount.String())

	from := day("2024-02-01")
	later, err := j.repos.ReportingRepo.ListAccountLedger(ctx, "571", domain.DateRange{From: &from})
	require.NoError(t, err)
	assert.Len(t, later, 2)

	none, err := j.repos.ReportingRepo.ListAccountLedger(ctx, "999", domain.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, none)
}
