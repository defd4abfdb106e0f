package apperrors

import (
	"errors"
	"fmt"
)

// Kind sentinels. An *Error matches the sentinel of its kind with errors.Is, so callers
// that only care about the category never have to look at the code.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrReferential indicates a reference to a missing or unusable account.
	ErrReferential = errors.New("referential error")

	// ErrConflict indicates the ledger state forbids the operation (closed period, overlap...).
	ErrConflict = errors.New("state conflict")

	// ErrIntegrityBlock indicates a delete blocked by existing references.
	ErrIntegrityBlock = errors.New("blocked by existing references")

	// ErrUnauthorized indicates a failed credential check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrFatalStore indicates an unexpected storage failure (I/O, corruption).
	ErrFatalStore = errors.New("storage failure")
)

// Kind is the category of a failure.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindReferential    Kind = "REFERENTIAL"
	KindStateConflict  Kind = "STATE_CONFLICT"
	KindNotFound       Kind = "NOT_FOUND"
	KindIntegrityBlock Kind = "INTEGRITY_BLOCK"
	KindUnauthorized   Kind = "UNAUTHORIZED"
	KindFatalStore     Kind = "FATAL_STORE"
)

// Sentinel returns the kind sentinel error matched by errors.Is.
func (k Kind) Sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindReferential:
		return ErrReferential
	case KindStateConflict:
		return ErrConflict
	case KindNotFound:
		return ErrNotFound
	case KindIntegrityBlock:
		return ErrIntegrityBlock
	case KindUnauthorized:
		return ErrUnauthorized
	default:
		return ErrFatalStore
	}
}

// Error is the single error type surfaced by the ledger core.
type Error struct {
	Code          Code   // Closed enumeration, see codes.go
	Message       string // Human readable detail
	AccountNumber string // Offending account for account-related codes
	Count         int    // Blocking references for ACCOUNT_IN_USE
	Err           error  // Underlying cause, if any
}

// New creates an error for the given code.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error for the given code with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Kind returns the category of the error.
func (e *Error) Kind() Kind {
	return e.Code.Kind()
}

func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel, ErrDuplicate for duplicate codes, and any *Error with the same code.
func (e *Error) Is(target error) bool {
	if target == e.Kind().Sentinel() {
		return true
	}
	if target == ErrDuplicate && e.Code.isDuplicate() {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Code == e.Code
	}
	return false
}

// As extracts the *Error from err.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code carried by err, or CodeStoreFailure for foreign errors.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return CodeStoreFailure
}

// KindOf returns the kind of err; foreign errors are treated as fatal store errors.
func KindOf(err error) Kind {
	return CodeOf(err).Kind()
}

// Store wraps an unexpected driver error.
func Store(op string, err error) *Error {
	return &Error{Code: CodeStoreFailure, Message: op, Err: err}
}

// DebitAccountMissing reports an unknown debit account.
func DebitAccountMissing(number string) *Error {
	return &Error{Code: CodeDebitAccountMissing, Message: fmt.Sprintf("debit account %s does not exist", number), AccountNumber: number}
}

// CreditAccountMissing reports an unknown credit account.
func CreditAccountMissing(number string) *Error {
	return &Error{Code: CodeCreditAccountMissing, Message: fmt.Sprintf("credit account %s does not exist", number), AccountNumber: number}
}

// AccountInactive reports a deactivated account used by a new posting.
func AccountInactive(number string) *Error {
	return &Error{Code: CodeAccountInactive, Message: fmt.Sprintf("account %s is inactive", number), AccountNumber: number}
}

// AccountNotFound reports an unknown account number.
func AccountNotFound(number string) *Error {
	return &Error{Code: CodeAccountNotFound, Message: fmt.Sprintf("account %s not found", number), AccountNumber: number}
}

// AccountInUse reports a delete blocked by journal entries.
func AccountInUse(number string, count int) *Error {
	return &Error{
		Code:          CodeAccountInUse,
		Message:       fmt.Sprintf("account %s is referenced by %d journal entries", number, count),
		AccountNumber: number,
		Count:         count,
	}
}
