package dto

import (
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
)

var periodFieldCodes = fieldCodes{
	"CompanyName": apperrors.CodePeriodNameRequired,
	"PeriodName":  apperrors.CodePeriodNameRequired,
	"StartDate":   apperrors.CodeDateFormatInvalid,
	"EndDate":     apperrors.CodeDateFormatInvalid,
}

// CreatePeriodRequest defines the data needed to open a new fiscal period.
type CreatePeriodRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=100"`
	PeriodName  string `json:"periodName" validate:"required,max=100"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
	// AllowWhileOpen confirms creation while another period is still open. Only honoured when the
	// single-open-period rule is advisory.
	AllowWhileOpen bool `json:"allowWhileOpen"`
}

// Normalize trims every text field in place.
func (r *CreatePeriodRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.PeriodName = strings.TrimSpace(r.PeriodName)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

// Validate checks the request shape.
func (r CreatePeriodRequest) Validate() error {
	return validateStruct(r, periodFieldCodes)
}
