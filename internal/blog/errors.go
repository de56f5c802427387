package blog

// errors.go defines the error codes used by the blog API

import "fmt"

// Error represents a structured error from the blog package.
type Error struct {
	// code classifies the error for HTTP status mapping
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Unwrap() error   { return e.wrapped }

// ErrorCode is used in errors returned by the blog API.
//
//   - 7000-7999 for technical errors - used when a request cannot be
//     processed because of a problem with the supplied data or the server.
//   - 8000-8999 for functional errors - used when the request is technically
//     valid but a business rule prevents it from being processed.
type ErrorCode int

const (

	// ErrCodeMalformedRequest is used when JSON parsing or encoding fails
	ErrCodeMalformedRequest ErrorCode = 7001

	// ErrCodeValidation is used when a required field is missing or a field
	// value is invalid (empty title, bad UUID, etc.)
	ErrCodeValidation ErrorCode = 7002

	// ErrCodeInternalError is used when an internal server error occurs
	ErrCodeInternalError ErrorCode = 7003

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = 7004

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge ErrorCode = 7005

	// ErrCodeNotFound is used when no post matches the requested id
	ErrCodeNotFound ErrorCode = 8001

	// ErrCodeConflict is used when the id in a PUT body does not match the
	// id in the request path
	ErrCodeConflict ErrorCode = 8002
)

// NewMalformedRequestError creates an error for malformed requests.
func NewMalformedRequestError(msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewValidationError creates a validation error for invalid input.
// Use this for missing required fields or bad field values.
//
// The returned error will have code ErrCodeValidation.
func NewValidationError(msg string) error {
	return &Error{code: ErrCodeValidation, message: msg}
}

// WrapValidationError wraps an existing error as a validation error.
func WrapValidationError(err error, msg string) error {
	return &Error{code: ErrCodeValidation, message: msg, wrapped: err}
}

// NewNotFoundError creates an error for ids that match no stored post.
//
// The returned error will have code ErrCodeNotFound.
func NewNotFoundError(msg string) error {
	return &Error{code: ErrCodeNotFound, message: msg}
}

// NewConflictError creates an error for a path/body id mismatch.
//
// The returned error will have code ErrCodeConflict.
func NewConflictError(msg string) error {
	return &Error{code: ErrCodeConflict, message: msg}
}

// NewInternalError creates an internal error for unexpected failures.
//
// The returned error will have code ErrCodeInternalError.
func NewInternalError(msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
// Use this for database failures and other errors that should not normally
// occur.
//
// The returned error will have code ErrCodeInternalError.
func WrapInternalError(err error, msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
//
// The returned error will have code ErrCodeRateLimitExceeded.
func NewRateLimitError(msg string) error {
	return &Error{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
//
// The returned error will have code ErrCodeRequestTooLarge.
func NewRequestTooLargeError(msg string) error {
	return &Error{code: ErrCodeRequestTooLarge, message: msg}
}
