package dto

import (
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

var accountFieldCodes = fieldCodes{
	"Number": apperrors.CodeInvalidNumber,
	"Label":  apperrors.CodeLabelInvalid,
	"Kind":   apperrors.CodeKindInvalid,
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Number string              `json:"number" validate:"required,number,max=10"`
	Label  string              `json:"label" validate:"required,max=100"`
	Kind   *domain.AccountKind `json:"kind,omitempty" validate:"omitempty,oneof=ASSET LIABILITY REVENUE EXPENSE TREASURY"`
}

// Normalize trims the free-text fields in place.
func (r *CreateAccountRequest) Normalize() {
	r.Number = strings.TrimSpace(r.Number)
	r.Label = strings.TrimSpace(r.Label)
}

// Validate checks the request shape and reports INVALID_NUMBER, LABEL_INVALID or KIND_INVALID.
func (r CreateAccountRequest) Validate() error {
	return validateStruct(r, accountFieldCodes)
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Label     *string             `json:"label" validate:"omitempty,min=1,max=100"`
	Kind      *domain.AccountKind `json:"kind" validate:"omitempty,oneof=ASSET LIABILITY REVENUE EXPENSE TREASURY"`
	ClearKind bool                `json:"clearKind"` // Remove the classification
}

// Normalize trims the label in place.
func (r *UpdateAccountRequest) Normalize() {
	if r.Label != nil {
		trimmed := strings.TrimSpace(*r.Label)
		r.Label = &trimmed
	}
}

// Validate checks the request shape.
func (r UpdateAccountRequest) Validate() error {
	return validateStruct(r, accountFieldCodes)
}

// ListAccountsParams defines the filters for listing accounts.
type ListAccountsParams struct {
	Kind            *domain.AccountKind `json:"kind" validate:"omitempty,oneof=ASSET LIABILITY REVENUE EXPENSE TREASURY"`
	IncludeInactive bool                `json:"includeInactive"`
}

// Validate checks the filter shape.
func (p ListAccountsParams) Validate() error {
	return validateStruct(p, accountFieldCodes)
}

// ToFilter converts the params into the repository filter.
func (p ListAccountsParams) ToFilter() domain.AccountFilter {
	return domain.AccountFilter{Kind: p.Kind, IncludeInactive: p.IncludeInactive}
}
