package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is a member of the business but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the resource is in a state that does not allow the operation.
var ErrConflict = errors.New("conflict")

// ErrInternal is the catch-all for unexpected failures (database, cache, ...).
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a message and an optional cause.
// errors.Is matches it against the sentinel that corresponds to its code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's code.
func (e *AppError) Is(target error) bool {
	return sentinelForCode(e.Code) == target
}

func sentinelForCode(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusConflict:
		return ErrConflict
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return ErrInternal
	}
}

// NewAppError builds an AppError; err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewConflictError is used for unique-constraint violations, so it also matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}
