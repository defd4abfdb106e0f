package cli

import (
	"fmt"
	"io"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
)

// hints add the next step for failures an operator can fix alone.
var hints = map[apperrors.Code]string{
	apperrors.CodeNoOpenPeriod:         "create one with `ledgerbook period create`",
	apperrors.CodeDebitAccountMissing:  "create it with `ledgerbook account create`",
	apperrors.CodeCreditAccountMissing: "create it with `ledgerbook account create`",
	apperrors.CodeAccountInUse:         "deactivate it instead with `ledgerbook account deactivate`",
	apperrors.CodeDuplicatePieceNumber: "pass --allow-duplicate-piece to record it anyway",
	apperrors.CodeOpenPeriodExists:     "close the open period first",
	apperrors.CodeDateFormatInvalid:    "dates are written YYYY-MM-DD",
	apperrors.CodeInvalidCredentials:   "check --user and --password",
}

// RenderError prints err with the hint matching its code.
func RenderError(w io.Writer, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		printError(w, err.Error())
		return
	}
	printError(w, appErr.Error())
	if appErr.Code == apperrors.CodeAccountInUse {
		_, _ = fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf("  %d journal entries reference account %s", appErr.Count, appErr.AccountNumber)))
	}
	if hint, ok := hints[appErr.Code]; ok {
		_, _ = fmt.Fprintln(w, hintStyle.Render("  "+hint))
	}
}

// ExitCode maps the error kind to the process status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := apperrors.As(err); !ok {
		return 1
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return 2
	case apperrors.KindReferential, apperrors.KindStateConflict:
		return 3
	case apperrors.KindNotFound:
		return 4
	case apperrors.KindIntegrityBlock:
		return 5
	case apperrors.KindUnauthorized:
		return 6
	default:
		return 1
	}
}
