// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates bound request structs.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their form, query or json name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return FieldErrors(fieldErrs)
		}

		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors is a list of failed field constraints.
type FieldErrors validator.ValidationErrors

// Error lists each failing field and the rule it broke.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		rule := e.Tag()
		if e.Param() != "" {
			rule += "=" + e.Param()
		}
		parts = append(parts, e.Field()+" failed "+rule)
	}

	return strings.Join(parts, "; ")
}

// Details maps field names to the rule they broke.
func (fe FieldErrors) Details() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		out[e.Field()] = e.Tag()
	}

	return out
}
