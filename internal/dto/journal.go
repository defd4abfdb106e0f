package dto

import (
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryRequest carries a proposed journal entry, for both creation and update. Every field stays raw
// text so the engine can report the first failing rule in its fixed order.
type EntryRequest struct {
	Date          string  `json:"date"`
	Label         string  `json:"label"`
	DebitAccount  string  `json:"debitAccount"`
	CreditAccount string  `json:"creditAccount"`
	Amount        string  `json:"amount"`
	PieceNumber   *string `json:"pieceNumber,omitempty"`
	Note          *string `json:"note,omitempty"`
	PeriodID      *int64  `json:"periodID,omitempty"` // Target period; resolved from the date when nil
	// AllowDuplicatePiece accepts a piece number already used by another entry.
	AllowDuplicatePiece bool `json:"allowDuplicatePiece"`
}

// Normalize trims text fields in place and turns blank optionals into nil.
func (r *EntryRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Label = strings.TrimSpace(r.Label)
	r.DebitAccount = strings.TrimSpace(r.DebitAccount)
	r.CreditAccount = strings.TrimSpace(r.CreditAccount)
	r.Amount = strings.TrimSpace(r.Amount)
	if r.PieceNumber != nil {
		r.PieceNumber = domain.StringPtr(*r.PieceNumber)
	}
	if r.Note != nil {
		r.Note = domain.StringPtr(*r.Note)
	}
}

var listEntriesFieldCodes = fieldCodes{
	"From":   apperrors.CodeDateFormatInvalid,
	"To":     apperrors.CodeDateFormatInvalid,
	"Mode":   apperrors.CodeSearchInvalid,
	"SortBy": apperrors.CodeSearchInvalid,
	"Limit":  apperrors.CodeSearchInvalid,
	"Offset": apperrors.CodeSearchInvalid,
}

// ListEntriesParams defines the filters and paging for listing journal entries.
type ListEntriesParams struct {
	From       string  `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string  `json:"to" validate:"omitempty,datetime=2006-01-02"`
	PeriodID   *int64  `json:"periodID"`
	Mode       string  `json:"mode" validate:"omitempty,oneof=TEXT ACCOUNT AMOUNT"`
	Term       string  `json:"term"`
	AmountMin  string  `json:"amountMin"`
	AmountMax  string  `json:"amountMax"`
	Limit      int     `json:"limit" validate:"gte=0"`
	Offset     int     `json:"offset" validate:"gte=0"`
	PageToken  *string `json:"pageToken"` // Takes precedence over Offset
	SortBy     string  `json:"sortBy" validate:"omitempty,oneof=date amount label"`
	Descending bool    `json:"descending"`
}

// ToFilter validates the params and converts them into the repository filter. Exactly one search
// mode may be active: a term without a mode, or a mode without its operands, is SEARCH_INVALID.
func (p ListEntriesParams) ToFilter() (domain.EntryFilter, error) {
	var filter domain.EntryFilter
	if err := validateStruct(p, listEntriesFieldCodes); err != nil {
		return filter, err
	}

	if p.From != "" {
		from, _ := domain.ParseDate(p.From)
		filter.Dates.From = &from
	}
	if p.To != "" {
		to, _ := domain.ParseDate(p.To)
		filter.Dates.To = &to
	}
	if filter.Dates.From != nil && filter.Dates.To != nil && filter.Dates.From.After(*filter.Dates.To) {
		return filter, apperrors.New(apperrors.CodeSearchInvalid, "from date is after to date")
	}
	filter.PeriodID = p.PeriodID
	filter.Mode = domain.SearchMode(p.Mode)

	term := strings.TrimSpace(p.Term)
	switch filter.Mode {
	case domain.SearchNone:
		if term != "" || p.AmountMin != "" || p.AmountMax != "" {
			return filter, apperrors.New(apperrors.CodeSearchInvalid, "a search term needs a search mode")
		}
	case domain.SearchText, domain.SearchAccount:
		if term == "" {
			return filter, apperrors.Newf(apperrors.CodeSearchInvalid, "%s search needs a term", filter.Mode)
		}
		filter.Term = term
	case domain.SearchAmount:
		lo, err := parseOptionalAmount(p.AmountMin)
		if err != nil {
			return filter, err
		}
		hi, err := parseOptionalAmount(p.AmountMax)
		if err != nil {
			return filter, err
		}
		if lo == nil && hi == nil {
			return filter, apperrors.New(apperrors.CodeSearchInvalid, "amount search needs a minimum or a maximum")
		}
		if lo != nil && hi != nil && lo.GreaterThan(*hi) {
			return filter, apperrors.New(apperrors.CodeSearchInvalid, "amount minimum is above maximum")
		}
		filter.AmountMin, filter.AmountMax = lo, hi
	}
	return filter, nil
}

func parseOptionalAmount(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperrors.Newf(apperrors.CodeSearchInvalid, "amount %q is not a number", raw)
	}
	return &d, nil
}

// ListEntriesResponse wraps one page of entries with the paging metadata.
type ListEntriesResponse struct {
	Entries       []domain.JournalEntry `json:"entries"`
	Total         int                   `json:"total"`
	Limit         int                   `json:"limit"`
	Offset        int                   `json:"offset"`
	NextPageToken *string               `json:"nextPageToken,omitempty"`
}
