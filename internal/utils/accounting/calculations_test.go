package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func posting(entryID int64, date, account string, side domain.EntrySide, amount string) *domain.Posting {
	return &domain.Posting{EntryID: entryID, Date: day(date), Label: "entry", AccountNumber: account, Side: side, Amount: d(amount)}
}

func TestSplitBalance(t *testing.T) {
	tests := []struct {
		name            string
		debit, credit   string
		balance, debtor string
		creditor        string
	}{
		{"debtor", "150", "50", "100", "100", "0"},
		{"creditor", "20", "80", "-60", "0", "60"},
		{"zero", "10", "10", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, debtor, creditor := SplitBalance(d(tt.debit), d(tt.credit))
			assert.True(t, d(tt.balance).Equal(balance), "balance %s", balance)
			assert.True(t, d(tt.debtor).Equal(debtor), "debtor %s", debtor)
			assert.True(t, d(tt.creditor).Equal(creditor), "creditor %s", creditor)
		})
	}
}

func TestCheckEquilibrium(t *testing.T) {
	ok, gap := CheckEquilibrium(d("100.004"), d("100"))
	assert.True(t, ok)
	assert.True(t, gap.Equal(d("0.004")))

	ok, gap = CheckEquilibrium(d("100"), d("100.01"))
	assert.False(t, ok, "A gap equal to epsilon is not balanced")
	assert.True(t, gap.Equal(d("0.01")))
}

func TestBuildTrialBalance_PurchasePaidInCash(t *testing.T) {
	purchases := domain.Account{Number: "601", Label: "Achats de marchandises", Kind: domain.KindPtr(domain.Expense)}
	cash := domain.Account{Number: "571", Label: "Caisse", Kind: domain.KindPtr(domain.Treasury)}
	bank := domain.Account{Number: "521", Label: "Banque"}

	rows := []domain.AccountPosting{
		{Account: bank},
		{Account: cash, Posting: posting(1, "2024-03-15", "571", domain.Credit, "100000")},
		{Account: purchases, Posting: posting(1, "2024-03-15", "601", domain.Debit, "100000")},
	}

	tb := BuildTrialBalance(rows)
	require.Len(t, tb.Rows, 3, "Zero-activity accounts are still listed")

	assert.Equal(t, "521", tb.Rows[0].AccountNumber)
	assert.True(t, tb.Rows[0].Balance.IsZero())

	assert.Equal(t, "571", tb.Rows[1].AccountNumber)
	assert.True(t, tb.Rows[1].CreditorBalance.Equal(d("100000")))
	assert.True(t, tb.Rows[1].DebtorBalance.IsZero())

	assert.Equal(t, "601", tb.Rows[2].AccountNumber)
	assert.True(t, tb.Rows[2].DebtorBalance.Equal(d("100000")))
	assert.True(t, tb.Rows[2].CreditorBalance.IsZero())

	assert.True(t, tb.TotalDebit.Equal(d("100000")))
	assert.True(t, tb.TotalCredit.Equal(d("100000")))
	assert.True(t, tb.TotalDebtorBalance.Equal(tb.TotalCreditorBalance))
	assert.True(t, tb.Balanced)
	assert.True(t, tb.Gap.IsZero())
}

func TestBuildTrialBalance_ReportsGap(t *testing.T) {
	acc := domain.Account{Number: "411", Label: "Clients"}
	tb := BuildTrialBalance([]domain.AccountPosting{
		{Account: acc, Posting: posting(1, "2024-01-02", "411", domain.Debit, "50")},
	})
	assert.False(t, tb.Balanced)
	assert.True(t, tb.Gap.Equal(d("50")))
}

func TestBuildLedgerLines_RunningBalanceAndSide(t *testing.T) {
	postings := []domain.Posting{
		*posting(1, "2024-01-05", "571", domain.Debit, "100"),
		*posting(2, "2024-01-06", "571", domain.Credit, "30"),
		*posting(3, "2024-01-07", "571", domain.Credit, "120"),
	}

	lines, debit, credit, final := BuildLedgerLines(decimal.Zero, postings)
	require.Len(t, lines, 3)
	assert.True(t, lines[0].RunningBalance.Equal(d("100")))
	assert.Equal(t, domain.Debtor, lines[0].BalanceSide)
	assert.True(t, lines[1].Balance.Equal(d("70")))
	assert.True(t, lines[1].Credit.Equal(d("30")))
	assert.True(t, lines[1].Debit.IsZero())
	assert.True(t, lines[2].RunningBalance.Equal(d("-50")))
	assert.True(t, lines[2].Balance.Equal(d("50")))
	assert.Equal(t, domain.Creditor, lines[2].BalanceSide)

	assert.True(t, debit.Equal(d("100")))
	assert.True(t, credit.Equal(d("150")))
	assert.True(t, final.Equal(d("-50")))
}

func TestBuildLedgerLines_PagingWithCarryInMatchesFullRun(t *testing.T) {
	var postings []domain.Posting
	for i := 1; i <= 9; i++ {
		side := domain.Debit
		if i%3 == 0 {
			side = domain.Credit
		}
		postings = append(postings, *posting(int64(i), "2024-02-01", "512", side, decimal.NewFromInt(int64(i*10)).String()))
	}
	full, _, _, _ := BuildLedgerLines(decimal.Zero, postings)

	const pageSize = 4
	var paged []domain.LedgerLine
	for offset := 0; offset < len(postings); offset += pageSize {
		end := min(offset+pageSize, len(postings))
		page, _, _, _ := BuildLedgerLines(CarryIn(postings[:offset]), postings[offset:end])
		paged = append(paged, page...)
	}

	require.Len(t, paged, len(full))
	for i := range full {
		assert.True(t, full[i].RunningBalance.Equal(paged[i].RunningBalance), "line %d", i)
		assert.Equal(t, full[i].BalanceSide, paged[i].BalanceSide)
	}
}
