package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"carmarket/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Structured detail for 4xx responses (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns nil; sentinel errors carry no per-call detail.
func (e *BaseError) Details() any {
	return nil
}

// Predefined error types
var (
	// ErrNotFound covers both missing rows and rows the caller may not see.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Fant ikke ressursen",
	)

	// ErrUnauthorized means the caller is authenticated but is not a participant.
	// It renders exactly like ErrNotFound so that existence never leaks.
	ErrUnauthorized = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Fant ikke ressursen",
	)

	// ErrUnauthenticated means no verified identity accompanied the call.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Du må være innlogget",
	)

	ErrForbiddenRole = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN_ROLE",
		"Kontoen har ikke tilgang til denne funksjonen",
	)

	ErrRequestNotOpen = NewBaseError(
		http.StatusConflict,
		"REQUEST_NOT_OPEN",
		"Forespørselen tar ikke imot tilbud",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Statusen kan ikke endres",
	)

	ErrDealershipRequired = NewBaseError(
		http.StatusNotFound,
		"DEALERSHIP_REQUIRED",
		"Kontoen er ikke knyttet til en forhandler",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"For mange forespørsler, prøv igjen senere",
	)

	ErrNoFiles = NewBaseError(
		http.StatusBadRequest,
		"NO_FILES",
		"Ingen filer mottatt",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"Filen er for stor",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Opplasting feilet",
	)

	// ErrProfilePending means the caller's profile is still transient, so rows
	// referencing it cannot be written yet.
	ErrProfilePending = NewBaseError(
		http.StatusServiceUnavailable,
		"PROFILE_PENDING",
		"Kontoen din klargjøres, prøv igjen om litt",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Databasetransaksjonen feilet",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Intern feil",
	)
)

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Any reports whether at least one field failed.
func (f FieldErrors) Any() bool {
	return len(f) > 0
}

// ValidationError carries per-field messages so a form layer can re-render inline.
type ValidationError struct {
	fields FieldErrors
}

// NewValidationError wraps the collected field errors.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{fields: fields}
}

// NewFieldError is shorthand for a single failing field.
func NewFieldError(field, message string) *ValidationError {
	fields := FieldErrors{}
	fields.Add(field, message)

	return NewValidationError(fields)
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return "validation failed: " + strings.Join(names, ", ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Skjemaet inneholder feil"
}

// Details returns the field error map.
func (e *ValidationError) Details() any {
	return e.fields
}

// Fields exposes the field error map to callers that re-render forms.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Databasefeil"
}

// Details is never exposed for 5xx responses.
func (e *DatabaseExecuteError) Details() any {
	return nil
}

// FileTooLargeError names the upload that exceeded the size cap.
type FileTooLargeError struct {
	filename string
	limit    string
}

// NewFileTooLargeError builds a 413 for filename; limit is already formatted.
func NewFileTooLargeError(filename, limit string) *FileTooLargeError {
	return &FileTooLargeError{filename: filename, limit: limit}
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %q exceeds %s limit", e.filename, e.limit)
}

// HTTPCode returns the HTTP status code
func (e *FileTooLargeError) HTTPCode() int {
	return ErrFileTooLarge.HTTPCode()
}

// ErrorCode returns the business error code
func (e *FileTooLargeError) ErrorCode() string {
	return ErrFileTooLarge.ErrorCode()
}

// Message returns the user-friendly error message
func (e *FileTooLargeError) Message() string {
	return fmt.Sprintf("%s er større enn %s", e.filename, e.limit)
}

// Details names the offending file.
func (e *FileTooLargeError) Details() any {
	return map[string]string{"file": e.filename, "limit": e.limit}
}

// Is lets errors.Is match the sentinel.
func (e *FileTooLargeError) Is(target error) bool {
	return target == ErrFileTooLarge
}
