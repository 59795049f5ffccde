// Package validation checks request bodies against their struct tags and reports
// failures as *common.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"storeadmin/internal/common"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Colors are stored in hex notation; only the leading '#' is enforced.
	_ = v.RegisterValidation("hexcolor_prefix", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), "#")
	})

	// Prices are stored as NUMERIC(12, 2).
	_ = v.RegisterValidation("cents", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		amount := strconv.FormatFloat(field.Float(), 'f', -1, 64)
		_, decimals, _ := strings.Cut(amount, ".")
		return len(decimals) <= 2
	})

	return &Validator{v: v}
}

// Validate returns nil or a *common.ValidationError. A nil body counts as malformed.
func (v *Validator) Validate(s interface{}) error {
	if s == nil {
		return common.NewValidationError("body", "must be a valid JSON object")
	}
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return common.NewValidationError("body", "must be a valid JSON object")
	}
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return common.NewValidationError("body", err.Error())
	}

	verr := &common.ValidationError{Fields: make(map[string]string, len(validationErrs)), Missing: true}
	for _, e := range validationErrs {
		verr.Fields[fieldPath(e)] = friendlyMessage(e)
		if e.Tag() != "required" {
			verr.Missing = false
		}
	}
	return verr
}

// fieldPath drops the root struct name, e.g. "ProductInput.images[0].url" -> "images[0].url".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lt":
		return "must be less than " + e.Param()
	case "cents":
		return "must have at most 2 decimal places"
	case "hexcolor_prefix":
		return "must be a hex color starting with #"
	default:
		return "is invalid"
	}
}
