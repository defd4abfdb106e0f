package domain

import (
	"cmp"
	"slices"
	"strings"
)

// EntrySortKey names a client-side sort column for journal listings.
type EntrySortKey string

const (
	SortByDate   EntrySortKey = "date"
	SortByAmount EntrySortKey = "amount"
	SortByLabel  EntrySortKey = "label"
)

// SortEntries re-sorts a fetched page in place. The sort is stable and falls back to the id so that
// repeated sorts of the same page give the same order.
func SortEntries(entries []JournalEntry, key EntrySortKey, descending bool) {
	compare := func(a, b JournalEntry) int {
		var c int
		switch key {
		case SortByAmount:
			c = a.Amount.Cmp(b.Amount)
		case SortByLabel:
			c = strings.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label))
		default:
			c = a.Date.Compare(b.Date)
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if descending {
			return -c
		}
		return c
	}
	slices.SortStableFunc(entries, compare)
}
