// Package validator plugs go-playground/validator into echo request binding.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "bizcard/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates an echo.Validator reporting fields by their JSON names.
func New() echo.Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate returns ErrValidationFailed carrying the failed fields.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}
