package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// ClassificationMode selects how revenue and expense accounts are recognised.
type ClassificationMode string

const (
	// ClassifyByPrefix uses the chart numbering: class 7 is revenue, class 6 is expense.
	ClassifyByPrefix ClassificationMode = "prefix"
	// ClassifyByKind uses the account kind enumeration.
	ClassifyByKind ClassificationMode = "kind"
)

// ParseClassificationMode validates a configured mode.
func ParseClassificationMode(s string) (ClassificationMode, error) {
	switch m := ClassificationMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ClassifyByPrefix, ClassifyByKind:
		return m, nil
	}
	return "", fmt.Errorf("unknown classification mode %q (want prefix or kind)", s)
}

// Classifier is the single place deciding whether an account is revenue or expense.
type Classifier struct {
	mode ClassificationMode
}

// NewClassifier creates a classifier; an unknown mode falls back to ClassifyByPrefix.
func NewClassifier(mode ClassificationMode) Classifier {
	if mode != ClassifyByKind {
		mode = ClassifyByPrefix
	}
	return Classifier{mode: mode}
}

// Mode returns the active classification mode.
func (c Classifier) Mode() ClassificationMode {
	return c.mode
}

// IsRevenue reports whether the account is a revenue account.
func (c Classifier) IsRevenue(a domain.Account) bool {
	if c.mode == ClassifyByKind {
		return a.HasKind(domain.Revenue)
	}
	return strings.HasPrefix(a.Number, "7")
}

// IsExpense reports whether the account is an expense account.
func (c Classifier) IsExpense(a domain.Account) bool {
	if c.mode == ClassifyByKind {
		return a.HasKind(domain.Expense)
	}
	return strings.HasPrefix(a.Number, "6")
}
