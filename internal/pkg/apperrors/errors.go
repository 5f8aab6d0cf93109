package apperrors

import (
	"errors"
	"fmt"
)

// Backend request failure classes
var (
	// ErrServerRejected means the backend answered with a non-success status
	ErrServerRejected = errors.New("server rejected request")
	// ErrNoResponse means the request was sent but no response arrived
	ErrNoResponse = errors.New("no response from server")
	// ErrLocalFault means the request could not be built, sent or decoded locally
	ErrLocalFault = errors.New("local request fault")
)

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Screen errors
var (
	ErrUnderage          = errors.New("student must be at least 18 years old")
	ErrInvalidDate       = errors.New("invalid date")
	ErrNoStudentDocument = errors.New("no student document found for the student")
	ErrStudentNotFound   = errors.New("student not found")
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrEditorClosed      = errors.New("teacher editor is not open")
	ErrNoFiles           = errors.New("no files selected")
)

// User-facing messages for the request failure classes
const (
	MsgNoResponse = "Error: No response from the server."
	MsgUnexpected = "Error: Something went wrong."
)

// RequestError describes a failed backend call
type RequestError struct {
	Kind       error // one of ErrServerRejected, ErrNoResponse, ErrLocalFault
	Method     string
	Path       string
	StatusCode int    // set for ErrServerRejected
	Message    string // "message" extracted from the response body, if any
	Err        error  // underlying cause
}

// Error implements error interface
func (e *RequestError) Error() string {
	switch {
	case e.Kind == ErrServerRejected && e.Message != "":
		return fmt.Sprintf("%s %s: %s (%d): %s", e.Method, e.Path, e.Kind, e.StatusCode, e.Message)
	case e.Kind == ErrServerRejected:
		return fmt.Sprintf("%s %s: %s (%d)", e.Method, e.Path, e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Kind)
	}
}

// Is lets errors.Is match the failure class
func (e *RequestError) Is(target error) bool {
	return e.Kind == target
}

// Unwrap implements errors.Unwrap interface
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewServerRejected creates a RequestError for a non-success response
func NewServerRejected(method, path string, status int, message string) *RequestError {
	return &RequestError{Kind: ErrServerRejected, Method: method, Path: path, StatusCode: status, Message: message}
}

// NewNoResponse creates a RequestError for a request that got no answer
func NewNoResponse(method, path string, err error) *RequestError {
	return &RequestError{Kind: ErrNoResponse, Method: method, Path: path, Err: err}
}

// NewLocalFault creates a RequestError for a local construction or decoding fault
func NewLocalFault(method, path string, err error) *RequestError {
	return &RequestError{Kind: ErrLocalFault, Method: method, Path: path, Err: err}
}

// UserMessage turns an error into the text shown to the user.
// fallback is used when the backend rejected the request without a message.
func UserMessage(err error, fallback string) string {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr) && reqErr.Kind == ErrServerRejected:
		if reqErr.Message != "" {
			return "Error: " + reqErr.Message
		}
		return "Error: " + fallback
	case errors.Is(err, ErrNoResponse):
		return MsgNoResponse
	default:
		return MsgUnexpected
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewFieldError creates a validation error bound to one form field
func NewFieldError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
