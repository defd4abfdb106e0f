package domain

import "time"

// AccountKind defines the accounting nature of an account.
type AccountKind string

const (
	Asset     AccountKind = "ASSET"
	Liability AccountKind = "LIABILITY"
	Revenue   AccountKind = "REVENUE"
	Expense   AccountKind = "EXPENSE"
	Treasury  AccountKind = "TREASURY"
)

// AccountKinds lists the closed set of kinds in display order.
var AccountKinds = []AccountKind{Asset, Liability, Revenue, Expense, Treasury}

// IsValid reports whether k belongs to the closed enumeration.
func (k AccountKind) IsValid() bool {
	switch k {
	case Asset, Liability, Revenue, Expense, Treasury:
		return true
	}
	return false
}

// Account represents one entry of the chart of accounts.
type Account struct {
	Number    string       `json:"number"` // Primary key, digits only
	Label     string       `json:"label"`
	Kind      *AccountKind `json:"kind,omitempty"` // Optional classification
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"createdAt"`
}

// HasKind reports whether the account carries the given kind.
func (a Account) HasKind(k AccountKind) bool {
	return a.Kind != nil && *a.Kind == k
}

// KindPtr returns a pointer to k, for optional kind fields.
func KindPtr(k AccountKind) *AccountKind {
	return &k
}

// AccountFilter restricts account listings.
type AccountFilter struct {
	Kind            *AccountKind
	IncludeInactive bool
}
