// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator that reports fields by their json name.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return fieldName(field.Tag.Get("json"), field.Name)
	})

	return &Validator{validate: validate}
}

// Validate runs the struct tags on i and turns failures into a ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := domainerrors.FieldErrors{}
	for _, fieldErr := range validationErrs {
		fields.Add(fieldErr.Field(), messageFor(fieldErr))
	}

	return domainerrors.NewValidationError(fields)
}

func fieldName(jsonTag, goName string) string {
	name, _, _ := strings.Cut(jsonTag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return goName
	default:
		return name
	}
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Feltet er påkrevd"
	case "max":
		return "Kan ikke være lengre enn " + fieldErr.Param() + " tegn"
	case "min":
		return "Må være minst " + fieldErr.Param() + " tegn"
	case "oneof":
		return "Må være en av: " + fieldErr.Param()
	default:
		return "Ugyldig verdi"
	}
}
