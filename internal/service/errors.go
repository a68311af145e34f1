package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to API clients.
const (
	CodeMalformedID         = "MALFORMED_ID"
	CodeInvalidPagination   = "INVALID_PAGINATION"
	CodeValidation          = "VALIDATION_ERROR"
	CodeNoUpdateFields      = "NO_UPDATE_FIELDS"
	CodeFolderNotFound      = "FOLDER_NOT_FOUND"
	CodeWordNotFound        = "WORD_NOT_FOUND"
	CodeNotFound            = "NOT_FOUND"
	CodeDuplicateWord       = "DUPLICATE_WORD"
	CodeDuplicateAssignment = "DUPLICATE_ASSIGNMENT"
	CodeInvalidImageFormat  = "INVALID_IMAGE_FORMAT"
	CodeImageTooLarge       = "IMAGE_TOO_LARGE"
	CodeInternal            = "INTERNAL_ERROR"
)

// Error is a client-facing failure: an HTTP status, a stable code, a human message and,
// for validation failures, the offending field. Err keeps the underlying cause for logs
// and is never shown to clients.
type Error struct {
	Status  int
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by code, so errors.Is(err, &Error{Code: CodeWordNotFound}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of a *Error in err's chain, or CodeInternal for anything else.
func CodeOf(err error) string {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return CodeInternal
}

func newValidation(code, field, msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Field: field, Message: msg}
}

func newNotFound(code, msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: msg}
}

func newConflict(code, msg string, cause error) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Message: msg, Err: cause}
}

// Internal wraps an unexpected failure. The message is generic on purpose; the cause is
// only logged.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error", Err: err}
}

// ErrNoUpdateFields is returned for a patch that carries no field.
var ErrNoUpdateFields = newValidation(CodeNoUpdateFields, "", "at least one field must be provided")
