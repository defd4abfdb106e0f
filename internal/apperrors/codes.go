package apperrors

// Code identifies one precise failure condition. Callers branch on it to render a message.
type Code string

const (
	// Journal entry validation, in evaluation order.
	CodeLabelRequired        Code = "LABEL_REQUIRED"
	CodeDateFormatInvalid    Code = "DATE_FORMAT_INVALID"
	CodeDateOutOfPeriod      Code = "DATE_OUT_OF_PERIOD"
	CodeDebitAccountMissing  Code = "DEBIT_ACCOUNT_MISSING"
	CodeCreditAccountMissing Code = "CREDIT_ACCOUNT_MISSING"
	CodeAccountsIdentical    Code = "ACCOUNTS_IDENTICAL"
	CodeAmountInvalid        Code = "AMOUNT_INVALID"
	CodePeriodClosed         Code = "PERIOD_CLOSED"
	CodeDuplicatePieceNumber Code = "DUPLICATE_PIECE_NUMBER"
	CodeNoOpenPeriod         Code = "NO_OPEN_PERIOD"
	CodeAccountInactive      Code = "ACCOUNT_INACTIVE"

	// Accounts.
	CodeInvalidNumber   Code = "INVALID_NUMBER"
	CodeLabelInvalid    Code = "LABEL_INVALID"
	CodeKindInvalid     Code = "KIND_INVALID"
	CodeDuplicateNumber Code = "DUPLICATE_NUMBER"
	CodeDuplicateLabel  Code = "DUPLICATE_LABEL"
	CodeAccountInUse    Code = "ACCOUNT_IN_USE"
	CodeAccountNotFound Code = "ACCOUNT_NOT_FOUND"

	// Fiscal periods.
	CodePeriodDatesInvalid  Code = "PERIOD_DATES_INVALID"
	CodePeriodNameRequired  Code = "PERIOD_NAME_REQUIRED"
	CodeOverlap             Code = "OVERLAP"
	CodeOpenPeriodExists    Code = "OPEN_PERIOD_EXISTS"
	CodePeriodNotFound      Code = "PERIOD_NOT_FOUND"
	CodeEntryNotFound       Code = "ENTRY_NOT_FOUND"
	CodePeriodSpecInvalid   Code = "PERIOD_SPEC_INVALID"
	CodeSearchInvalid       Code = "SEARCH_INVALID"
	CodeUserExists          Code = "USER_EXISTS"
	CodeInvalidCredentials  Code = "INVALID_CREDENTIALS"
	CodeCredentialsRequired Code = "CREDENTIALS_REQUIRED"

	CodeStoreFailure Code = "STORE_FAILURE"
)

// Kind maps a code to its category.
func (c Code) Kind() Kind {
	switch c {
	case CodeLabelRequired, CodeDateFormatInvalid, CodeAmountInvalid, CodeInvalidNumber,
		CodeLabelInvalid, CodeKindInvalid, CodePeriodDatesInvalid, CodePeriodNameRequired,
		CodePeriodSpecInvalid, CodeSearchInvalid, CodeCredentialsRequired:
		return KindValidation
	case CodeDebitAccountMissing, CodeCreditAccountMissing, CodeAccountsIdentical, CodeAccountInactive:
		return KindReferential
	case CodePeriodClosed, CodeDateOutOfPeriod, CodeNoOpenPeriod, CodeOverlap, CodeOpenPeriodExists,
		CodeDuplicateNumber, CodeDuplicateLabel, CodeDuplicatePieceNumber, CodeUserExists:
		return KindStateConflict
	case CodeAccountNotFound, CodePeriodNotFound, CodeEntryNotFound:
		return KindNotFound
	case CodeAccountInUse:
		return KindIntegrityBlock
	case CodeInvalidCredentials:
		return KindUnauthorized
	default:
		return KindFatalStore
	}
}

func (c Code) isDuplicate() bool {
	switch c {
	case CodeDuplicateNumber, CodeDuplicateLabel, CodeDuplicatePieceNumber, CodeUserExists:
		return true
	}
	return false
}
