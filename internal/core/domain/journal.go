package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates which leg of an entry hit an account.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalEntry is a single balanced transaction: one debit leg and one credit leg of the same amount,
// stored as one row.
type JournalEntry struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	Label         string          `json:"label"`
	DebitAccount  string          `json:"debitAccount"`  // Account number
	CreditAccount string          `json:"creditAccount"` // Account number
	Amount        decimal.Decimal `json:"amount"`        // Strictly positive
	PieceNumber   *string         `json:"pieceNumber,omitempty"`
	Note          *string         `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Posting is one leg of a journal entry as seen from a single account.
type Posting struct {
	EntryID       int64           `json:"entryID"`
	Date          time.Time       `json:"date"`
	Label         string          `json:"label"`
	PieceNumber   *string         `json:"pieceNumber,omitempty"`
	AccountNumber string          `json:"accountNumber"`
	Side          EntrySide       `json:"side"`
	Amount        decimal.Decimal `json:"amount"`
}

// Postings splits the entry into its debit and credit legs.
func (e JournalEntry) Postings() []Posting {
	return []Posting{
		{EntryID: e.ID, Date: e.Date, Label: e.Label, PieceNumber: e.PieceNumber, AccountNumber: e.DebitAccount, Side: Debit, Amount: e.Amount},
		{EntryID: e.ID, Date: e.Date, Label: e.Label, PieceNumber: e.PieceNumber, AccountNumber: e.CreditAccount, Side: Credit, Amount: e.Amount},
	}
}

// AccountPosting is one row of an account/posting LEFT JOIN: every account appears at least once,
// with a nil Posting when it has no activity in the requested window.
type AccountPosting struct {
	Account Account
	Posting *Posting
}

// SearchMode selects which fields the journal free-text search applies to. Exactly one mode is
// active at a time.
type SearchMode string

const (
	SearchNone    SearchMode = ""
	SearchText    SearchMode = "TEXT"    // label, note, piece number
	SearchAccount SearchMode = "ACCOUNT" // debit/credit account number or label
	SearchAmount  SearchMode = "AMOUNT"  // amount range
)

// IsValid reports whether m is a known search mode.
func (m SearchMode) IsValid() bool {
	switch m {
	case SearchNone, SearchText, SearchAccount, SearchAmount:
		return true
	}
	return false
}

// EntryFilter restricts journal entry listings.
type EntryFilter struct {
	Dates     DateRange
	PeriodID  *int64
	Mode      SearchMode
	Term      string           // SearchText and SearchAccount
	AmountMin *decimal.Decimal // SearchAmount
	AmountMax *decimal.Decimal // SearchAmount
}
