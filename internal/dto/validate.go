package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldCodes maps a request struct field name to the code reported when that field fails validation.
type fieldCodes map[string]apperrors.Code

// validateStruct runs the struct tags of req and translates the first failing field into its code.
func validateStruct(req any, codes fieldCodes) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	fe := fieldErrs[0]
	code, ok := codes[fe.StructField()]
	if !ok {
		return fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, fe.Field(), validationMessage(fe))
	}
	return apperrors.Newf(code, "%s: %s", fe.Field(), validationMessage(fe))
}

// ValidateDate checks a single YYYY-MM-DD value with the same rule as the struct tags.
func ValidateDate(value string) error {
	if err := validate.Var(value, "required,datetime=2006-01-02"); err != nil {
		return apperrors.Newf(apperrors.CodeDateFormatInvalid, "date %q must match YYYY-MM-DD", value)
	}
	return nil
}

// validationMessage returns a human-readable validation message
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "number", "numeric":
		return "must contain digits only"
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "min":
		if e.Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "datetime":
		return "must match YYYY-MM-DD"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "invalid value"
	}
}
