package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalEntryMapping_OptionalFields(t *testing.T) {
	date, _ := domain.ParseDate("2024-03-15")
	entry := domain.JournalEntry{
		ID:            7,
		Date:          date,
		Label:         "Achat comptant",
		DebitAccount:  "601",
		CreditAccount: "571",
		Amount:        decimal.RequireFromString("100000.50"),
		PieceNumber:   domain.StringPtr("FA-001"),
		CreatedAt:     time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	m := ToModelJournalEntry(entry)
	assert.Equal(t, "2024-03-15", m.Date)
	assert.Equal(t, "100000.5", m.Amount)
	assert.True(t, m.PieceNumber.Valid)
	assert.False(t, m.Note.Valid, "Absent note is stored as NULL, not as an empty string")

	back, err := ToDomainJournalEntry(m)
	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(back.Amount))
	assert.Equal(t, "FA-001", *back.PieceNumber)
	assert.Nil(t, back.Note)
}

func TestToDomainJournalEntry_CorruptRow(t *testing.T) {
	_, err := ToDomainJournalEntry(models.JournalEntry{ID: 1, Date: "15/03/2024", Amount: "1"})
	assert.ErrorContains(t, err, "corrupt date")

	_, err = ToDomainJournalEntry(models.JournalEntry{ID: 1, Date: "2024-03-15", Amount: "abc"})
	assert.ErrorContains(t, err, "corrupt amount")
}

func TestAccountMapping_Kind(t *testing.T) {
	m := ToModelAccount(domain.Account{Number: "571", Label: "Caisse", Kind: domain.KindPtr(domain.Treasury)})
	assert.Equal(t, "TREASURY", m.Kind.String)

	d := ToDomainAccount(models.Account{Number: "401", Label: "Fournisseurs"})
	assert.Nil(t, d.Kind)
}
