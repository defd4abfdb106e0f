package services

import "github.com/SscSPs/ledgerbook/internal/apperrors"

func errorCode(err error) string {
	if appErr, ok := apperrors.As(err); ok {
		return string(appErr.Code)
	}
	return ""
}

func isFatal(err error) bool {
	return apperrors.KindOf(err) == apperrors.KindFatalStore
}
