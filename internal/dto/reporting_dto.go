package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

var reportFieldCodes = fieldCodes{
	"Kind":    apperrors.CodeKindInvalid,
	"From":    apperrors.CodeDateFormatInvalid,
	"To":      apperrors.CodeDateFormatInvalid,
	"Initial": apperrors.CodeDateFormatInvalid,
	"Final":   apperrors.CodeDateFormatInvalid,
	"Account": apperrors.CodeInvalidNumber,
	"Limit":   apperrors.CodeSearchInvalid,
	"Offset":  apperrors.CodeSearchInvalid,
}

// TrialBalanceParams filters the trial balance.
type TrialBalanceParams struct {
	Kind string `json:"kind" validate:"omitempty,oneof=ASSET LIABILITY REVENUE EXPENSE TREASURY"`
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ToFilter validates the params and converts them into the calculator filter.
func (p TrialBalanceParams) ToFilter() (domain.TrialBalanceFilter, error) {
	var filter domain.TrialBalanceFilter
	if err := validateStruct(p, reportFieldCodes); err != nil {
		return filter, err
	}
	if p.Kind != "" {
		filter.Kind = domain.KindPtr(domain.AccountKind(p.Kind))
	}
	filter.Dates = optionalRange(p.From, p.To)
	return filter, nil
}

// GeneralLedgerParams selects one account and an optional window. A zero Limit means the whole ledger.
type GeneralLedgerParams struct {
	Account string `json:"account" validate:"required,number"`
	From    string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To      string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Limit   int    `json:"limit" validate:"gte=0"`
	Offset  int    `json:"offset" validate:"gte=0"`
}

// Validate checks the params and returns the window.
func (p GeneralLedgerParams) Validate() (domain.DateRange, error) {
	if err := validateStruct(p, reportFieldCodes); err != nil {
		return domain.DateRange{}, err
	}
	return optionalRange(p.From, p.To), nil
}

// BalanceSheetParams holds the two comparison boundaries.
type BalanceSheetParams struct {
	Initial string `json:"initial" validate:"required,datetime=2006-01-02"`
	Final   string `json:"final" validate:"required,datetime=2006-01-02"`
}

// Dates validates the params and returns both boundaries.
func (p BalanceSheetParams) Dates() (time.Time, time.Time, error) {
	if err := validateStruct(p, reportFieldCodes); err != nil {
		return time.Time{}, time.Time{}, err
	}
	initial, _ := domain.ParseDate(p.Initial)
	final, _ := domain.ParseDate(p.Final)
	return initial, final, nil
}

var periodSpecFieldCodes = fieldCodes{
	"Kind":    apperrors.CodePeriodSpecInvalid,
	"Year":    apperrors.CodePeriodSpecInvalid,
	"Month":   apperrors.CodePeriodSpecInvalid,
	"Quarter": apperrors.CodePeriodSpecInvalid,
	"From":    apperrors.CodePeriodSpecInvalid,
	"To":      apperrors.CodePeriodSpecInvalid,
}

// IncomeStatementParams is the raw period specification of an income statement.
type IncomeStatementParams struct {
	Kind    string `json:"kind" validate:"required,oneof=MONTH QUARTER YEAR CUSTOM"`
	Year    int    `json:"year" validate:"omitempty,gte=1900,lte=9999"`
	Month   int    `json:"month" validate:"omitempty,gte=1,lte=12"`
	Quarter int    `json:"quarter" validate:"omitempty,gte=1,lte=4"`
	From    string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To      string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ToPeriodSpec validates the shape and converts it. Cross-field rules are checked when the period spec is
// resolved into a window.
func (p IncomeStatementParams) ToPeriodSpec() (domain.PeriodSpec, error) {
	if err := validateStruct(p, periodSpecFieldCodes); err != nil {
		return domain.PeriodSpec{}, err
	}
	spec := domain.PeriodSpec{
		Kind:    domain.PeriodSpecKind(p.Kind),
		Year:    p.Year,
		Month:   p.Month,
		Quarter: p.Quarter,
	}
	if p.From != "" {
		spec.From, _ = domain.ParseDate(p.From)
	}
	if p.To != "" {
		spec.To, _ = domain.ParseDate(p.To)
	}
	return spec, nil
}

// optionalRange builds a range from already validated, possibly blank, dates.
func optionalRange(from, to string) domain.DateRange {
	var r domain.DateRange
	if from != "" {
		d, _ := domain.ParseDate(from)
		r.From = &d
	}
	if to != "" {
		d, _ := domain.ParseDate(to)
		r.To = &d
	}
	return r
}
