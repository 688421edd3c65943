package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a bookmark error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNoContent      ErrorCode = "NO_CONTENT"      // 404: clipboard or selection is empty
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrUserDeclined   ErrorCode = "USER_DECLINED"   // 409
	ErrNoInterpreter  ErrorCode = "NO_INTERPRETER"  // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// BookmarkError represents a structured error with code, status, and details.
type BookmarkError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *BookmarkError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *BookmarkError {
	return &BookmarkError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNoContent creates a 404 error for an empty capture source
// ("clipboard", "selection" or "input").
func NewNoContent(source string) *BookmarkError {
	return &BookmarkError{
		Code:    ErrNoContent,
		Status:  404,
		Message: fmt.Sprintf("no content available in %s", source),
		Details: map[string]any{"source": source},
	}
}

// NewNotFound creates a 404 error for a bookmark position past the end of
// the listing.
func NewNotFound(id int) *BookmarkError {
	return &BookmarkError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("Cannot find bookmark: %d", id),
		Details: map[string]any{"id": id},
	}
}

// NewUserDeclined creates a 409 error when the user aborts a confirmation
// or a picker.
func NewUserDeclined(action string) *BookmarkError {
	return &BookmarkError{
		Code:    ErrUserDeclined,
		Status:  409,
		Message: fmt.Sprintf("%s cancelled", action),
		Details: map[string]any{"action": action},
	}
}

// NewNoInterpreter creates a 422 error when no interpreter accepts the input.
func NewNoInterpreter() *BookmarkError {
	return &BookmarkError{
		Code:    ErrNoInterpreter,
		Status:  422,
		Message: "no interpreter matched the content",
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *BookmarkError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &BookmarkError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is (or wraps) a BookmarkError with the given code.
func Is(err error, code ErrorCode) bool {
	var bErr *BookmarkError
	if stderrors.As(err, &bErr) {
		return bErr.Code == code
	}
	return false
}
