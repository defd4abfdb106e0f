package repositories

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves a specific entry. Returns ENTRY_NOT_FOUND when absent.
	FindEntryByID(ctx context.Context, id int64) (*domain.JournalEntry, error)

	// ListEntries retrieves one page of entries matching filter, date desc then id desc.
	ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, offset int) ([]domain.JournalEntry, error)

	// CountEntries counts the entries matching filter.
	CountEntries(ctx context.Context, filter domain.EntryFilter) (int, error)

	// PieceNumberExists reports whether another entry already uses piece.
	PieceNumberExists(ctx context.Context, piece string, exceptID int64) (bool, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveEntry persists a new entry as a single row and returns its id.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (int64, error)

	// UpdateEntry rewrites every mutable field of an existing entry.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id int64) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
