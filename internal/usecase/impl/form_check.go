package impl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainerrors "carmarket/internal/domain/errors"
)

// formCheck collects field errors so a whole form is reported at once.
type formCheck struct {
	fields domainerrors.FieldErrors
}

func newFormCheck() *formCheck {
	return &formCheck{fields: domainerrors.FieldErrors{}}
}

func (c *formCheck) length(field, value string, minLen, maxLen int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n < minLen && minLen == 1:
		c.fields.Add(field, "Feltet er påkrevd")
	case n < minLen:
		c.fields.Add(field, fmt.Sprintf("Må være minst %d tegn", minLen))
	case n > maxLen:
		c.fields.Add(field, fmt.Sprintf("Kan ikke være lengre enn %d tegn", maxLen))
	}
}

func (c *formCheck) maxLength(field string, value *string, maxLen int) {
	if value != nil && utf8.RuneCountInString(*value) > maxLen {
		c.fields.Add(field, fmt.Sprintf("Kan ikke være lengre enn %d tegn", maxLen))
	}
}

func (c *formCheck) positive(field string, value int) {
	if value <= 0 {
		c.fields.Add(field, "Må være et positivt heltall")
	}
}

func (c *formCheck) nonNegative(field string, value *int) {
	if value != nil && *value < 0 {
		c.fields.Add(field, "Kan ikke være negativ")
	}
}

func (c *formCheck) check(field string, ok bool, message string) {
	if !ok {
		c.fields.Add(field, message)
	}
}

func (c *formCheck) err() error {
	if !c.fields.Any() {
		return nil
	}

	return domainerrors.NewValidationError(c.fields)
}

// trimmedOrNil drops blank optional strings.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
