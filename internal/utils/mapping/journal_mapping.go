package mapping

import (
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:            d.ID,
		Date:          domain.FormatDate(d.Date),
		Label:         d.Label,
		DebitAccount:  d.DebitAccount,
		CreditAccount: d.CreditAccount,
		Amount:        d.Amount.String(),
		PieceNumber:   NullString(d.PieceNumber),
		Note:          NullString(d.Note),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
// It fails when the stored date or amount cannot be parsed.
func ToDomainJournalEntry(m models.JournalEntry) (domain.JournalEntry, error) {
	date, err := domain.ParseDate(m.Date)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("entry %d has a corrupt date %q: %w", m.ID, m.Date, err)
	}
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("entry %d has a corrupt amount %q: %w", m.ID, m.Amount, err)
	}
	return domain.JournalEntry{
		ID:            m.ID,
		Date:          date,
		Label:         m.Label,
		DebitAccount:  m.DebitAccount,
		CreditAccount: m.CreditAccount,
		Amount:        amount,
		PieceNumber:   StringPtr(m.PieceNumber),
		Note:          StringPtr(m.Note),
		CreatedAt:     m.CreatedAt,
	}, nil
}

// ToDomainPosting converts a model Posting to a domain Posting.
func ToDomainPosting(m models.Posting) (domain.Posting, error) {
	date, err := domain.ParseDate(m.Date)
	if err != nil {
		return domain.Posting{}, fmt.Errorf("entry %d has a corrupt date %q: %w", m.EntryID, m.Date, err)
	}
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.Posting{}, fmt.Errorf("entry %d has a corrupt amount %q: %w", m.EntryID, m.Amount, err)
	}
	return domain.Posting{
		EntryID:       m.EntryID,
		Date:          date,
		Label:         m.Label,
		PieceNumber:   StringPtr(m.PieceNumber),
		AccountNumber: m.AccountNumber,
		Side:          domain.EntrySide(m.Side),
		Amount:        amount,
	}, nil
}
