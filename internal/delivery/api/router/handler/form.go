package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// form reads urlencoded and multipart bodies the way browser forms submit them.
type form struct {
	values url.Values
}

func readForm(c echo.Context) (*form, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Ugyldig skjema").SetInternal(err)
	}

	return &form{values: values}, nil
}

func (f *form) raw(name string) string {
	return f.values.Get(name)
}

// text trims the field; missing and blank are both "".
func (f *form) text(name string) string {
	return strings.TrimSpace(f.values.Get(name))
}

// optionalText is nil for a missing or blank field.
func (f *form) optionalText(name string) *string {
	value := f.text(name)
	if value == "" {
		return nil
	}

	return &value
}

// optionalInt is nil when the field is missing or not a number.
func (f *form) optionalInt(name string) *int {
	n, err := strconv.Atoi(f.text(name))
	if err != nil {
		return nil
	}

	return &n
}

// requiredInt is zero when the field is missing or not a number, which the positive checks reject.
func (f *form) requiredInt(name string) int {
	if n := f.optionalInt(name); n != nil {
		return *n
	}

	return 0
}

func (f *form) optionalFloat(name string) *float64 {
	n, err := strconv.ParseFloat(f.text(name), 64)
	if err != nil {
		return nil
	}

	return &n
}

// checkbox is true only for the value a checked HTML checkbox submits.
func (f *form) checkbox(name string) bool {
	return f.values.Get(name) == "on"
}

// imageURLs decodes a JSON array of strings, dropping other entries. Anything unparsable is an empty list.
func (f *form) imageURLs(name string) []string {
	urls := []string{}

	raw := f.values.Get(name)
	if raw == "" {
		return urls
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return urls
	}

	for _, item := range items {
		if s, ok := item.(string); ok {
			urls = append(urls, s)
		}
	}

	return urls
}

// coercedEnum keeps the value only when it is one of the allowed members.
func coercedEnum[T ~string](f *form, name string, valid func(T) bool) *T {
	value := T(f.text(name))
	if value == "" || !valid(value) {
		return nil
	}

	return &value
}

// strictEnum keeps any non-blank value so the usecase can reject unknown members.
func strictEnum[T ~string](f *form, name string) *T {
	value := T(f.text(name))
	if value == "" {
		return nil
	}

	return &value
}
