package dto

import (
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
)

var credentialsFieldCodes = fieldCodes{
	"Username": apperrors.CodeCredentialsRequired,
	"Password": apperrors.CodeCredentialsRequired,
}

// CredentialsRequest holds a username and a clear-text password.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

// Normalize trims the username. The password is kept verbatim.
func (r *CredentialsRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// Validate checks the request shape and reports CREDENTIALS_REQUIRED.
func (r CredentialsRequest) Validate() error {
	return validateStruct(r, credentialsFieldCodes)
}
