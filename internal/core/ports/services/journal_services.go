package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntry retrieves a specific entry by its ID.
	GetEntry(ctx context.Context, id int64) (*domain.JournalEntry, error)

	// ListEntries retrieves one page of entries matching the filters.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// JournalValidatorSvc runs the entry rules without writing anything.
type JournalValidatorSvc interface {
	// ValidateEntry returns the entry the request would persist, or the first rule it breaks.
	// exceptID excludes the entry being updated from the piece number check; use 0 on creation.
	ValidateEntry(ctx context.Context, req dto.EntryRequest, exceptID int64) (*domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateEntry validates and persists a new entry.
	CreateEntry(ctx context.Context, req dto.EntryRequest) (*domain.JournalEntry, error)

	// UpdateEntry re-validates every field and rewrites an existing entry.
	UpdateEntry(ctx context.Context, id int64, req dto.EntryRequest) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry of an open period.
	DeleteEntry(ctx context.Context, id int64) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalValidatorSvc
	JournalWriterSvc
}
