package errors

import (
	"net/http"
	"testing"

	"carmarket/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestUnauthorizedRendersAsNotFound(t *testing.T) {
	assert.Equal(t, ErrNotFound.HTTPCode(), ErrUnauthorized.HTTPCode())
	assert.Equal(t, ErrNotFound.ErrorCode(), ErrUnauthorized.ErrorCode())
	assert.Equal(t, ErrNotFound.Message(), ErrUnauthorized.Message())

	// Callers can still tell them apart.
	assert.False(t, errors.Is(ErrUnauthorized, ErrNotFound))
	assert.True(t, errors.Is(ErrUnauthorized.WrapMessage("offer thread"), ErrUnauthorized))
}

func TestValidationError(t *testing.T) {
	fields := FieldErrors{}
	assert.False(t, fields.Any())

	fields.Add("title", "for kort")
	fields.Add("budgetMax", "må være positivt")
	fields.Add("title", "mangler")

	err := NewValidationError(fields)
	assert.True(t, fields.Any())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "validation failed: budgetMax, title", err.Error())
	assert.Equal(t, []string{"for kort", "mangler"}, err.Fields()["title"])

	var appErr AppError
	assert.True(t, errors.As(errors.Wrap(err, "create request"), &appErr))
	assert.Equal(t, fields, appErr.Details())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create offer")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Nil(t, err.Details())
	assert.Contains(t, err.Error(), "failed to create offer")
}

func TestFileTooLargeError(t *testing.T) {
	err := NewFileTooLargeError("bil.jpg", "5.0 MB")

	assert.Equal(t, http.StatusRequestEntityTooLarge, err.HTTPCode())
	assert.Equal(t, "FILE_TOO_LARGE", err.ErrorCode())
	assert.Contains(t, err.Message(), "bil.jpg")
	assert.True(t, errors.Is(errors.Wrap(err, "upload"), ErrFileTooLarge))
	assert.Equal(t, map[string]string{"file": "bil.jpg", "limit": "5.0 MB"}, err.Details())
}
