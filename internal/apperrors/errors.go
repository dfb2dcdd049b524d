package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConstraint indicates the store rejected a write that references a missing
// row or breaks a check constraint.
var ErrConstraint = errors.New("constraint violation")

// ErrInsufficientStock indicates a posting would drive an item's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when the cause must not leak to the caller.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP status alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// PostingError reports which step of a ledger operation failed. The whole
// unit of work has already been rolled back when a caller sees it.
type PostingError struct {
	Op   string // "post" or "reverse"
	Step string
	Err  error
}

func (e *PostingError) Error() string {
	return fmt.Sprintf("%s failed at %s: %v", e.Op, e.Step, e.Err)
}

func (e *PostingError) Unwrap() error {
	return e.Err
}

// NewPostingError wraps err with the failing operation and step.
func NewPostingError(op, step string, err error) error {
	return &PostingError{Op: op, Step: step, Err: err}
}

// IsPostingFailure reports whether err is, or wraps, a PostingError.
func IsPostingFailure(err error) bool {
	var pe *PostingError
	return errors.As(err, &pe)
}

// HTTPStatus maps an error kind to a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConstraint), errors.Is(err, ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
