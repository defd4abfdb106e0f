package models

import (
	"database/sql"
	"time"
)

// JournalEntry is the row of the journal_entries table. Amount is exact decimal text.
type JournalEntry struct {
	ID            int64          `db:"id"`
	Date          string         `db:"date"`
	Label         string         `db:"label"`
	DebitAccount  string         `db:"debit_account"`
	CreditAccount string         `db:"credit_account"`
	Amount        string         `db:"amount"`
	PieceNumber   sql.NullString `db:"piece_number"`
	Note          sql.NullString `db:"note"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Posting is one leg of a journal entry as produced by the reporting queries.
type Posting struct {
	EntryID       int64          `db:"entry_id"`
	Date          string         `db:"date"`
	Label         string         `db:"label"`
	PieceNumber   sql.NullString `db:"piece_number"`
	AccountNumber string         `db:"account_number"`
	Side          string         `db:"side"`
	Amount        string         `db:"amount"`
}
