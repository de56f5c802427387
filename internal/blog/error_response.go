package blog

// error_response.go implements the standard error response format for the
// blog API and maps blog.Error values to HTTP status codes.

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/inkwellhq/blog-api/internal/logger"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {

	// The HTTP method used to make the request e.g. GET, POST, etc
	HTTPMethod string `json:"httpMethod"`

	// The URI that was requested
	RequestURI string `json:"requestUri"`

	// The HTTP status code returned
	StatusCode int `json:"statusCode"`

	// A standard short description corresponding to the HTTP status code
	StatusCodeText string `json:"statusCodeText"`

	// A long description corresponding to the HTTP status code with additional information
	StatusCodeMessage string `json:"statusCodeMessage,omitempty"`

	// A unique identifier for the HTTP request (the chi request id)
	CorrelationReference string `json:"correlationReference,omitempty"`

	// The DateTime corresponding to the error occurring
	ErrorDateTime string `json:"errorDateTime"`

	// An array of errors providing more detail about the root cause
	Errors []DetailedError `json:"errors"`
}

// DetailedError provides the error code and message for a failure.
type DetailedError struct {
	ErrorCode        ErrorCode `json:"errorCode"`
	ErrorCodeText    string    `json:"errorCodeText"`
	ErrorCodeMessage string    `json:"errorCodeMessage"`
}

// MapErrorToResponse maps blog.Error (or generic errors) to an ErrorResponse.
//
// The mapping establishes the appropriate HTTP status code based on the
// error code. Call this function to set up the error response before sending
// it to the client (using RespondWithError).
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	requestID := middleware.GetReqID(r.Context())

	var blogErr *Error
	if errors.As(err, &blogErr) {
		return errorResponseFromBlog(blogErr, r, requestID)
	}

	// fallback - not expected - return an internal error response and log the unmapped error
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID),
	)
	return &ErrorResponse{
		HTTPMethod:           r.Method,
		RequestURI:           r.RequestURI,
		StatusCode:           http.StatusInternalServerError,
		StatusCodeText:       http.StatusText(http.StatusInternalServerError),
		StatusCodeMessage:    "Internal Error",
		CorrelationReference: requestID,
		ErrorDateTime:        time.Now().UTC().Format(time.RFC3339),
		Errors: []DetailedError{
			{
				ErrorCode:        ErrCodeInternalError,
				ErrorCodeText:    "Internal Error",
				ErrorCodeMessage: "An internal error occurred",
			},
		},
	}
}

// errorResponseFromBlog maps blog.Error to API error responses
// the error code text is sanitized for the response, but the full error message is logged server-side
func errorResponseFromBlog(err *Error, r *http.Request, requestID string) *ErrorResponse {
	var statusCode int
	var errorCodeText string

	// Map error code to HTTP status and text
	switch err.Code() {
	case ErrCodeMalformedRequest:
		statusCode = http.StatusBadRequest
		errorCodeText = "Malformed request"
	case ErrCodeValidation:
		statusCode = http.StatusBadRequest
		errorCodeText = "Validation failed"
	case ErrCodeConflict:
		statusCode = http.StatusBadRequest
		errorCodeText = "Conflicting identifiers"
	case ErrCodeNotFound:
		statusCode = http.StatusNotFound
		errorCodeText = "Not found"
	case ErrCodeRateLimitExceeded:
		statusCode = http.StatusTooManyRequests
		errorCodeText = "Rate limit exceeded"
	case ErrCodeRequestTooLarge:
		statusCode = http.StatusRequestEntityTooLarge
		errorCodeText = "Request too large"
	default:
		statusCode = http.StatusInternalServerError
		errorCodeText = "Internal Error"
	}

	return &ErrorResponse{
		HTTPMethod:           r.Method,
		RequestURI:           r.RequestURI,
		StatusCode:           statusCode,
		StatusCodeText:       http.StatusText(statusCode),
		StatusCodeMessage:    errorCodeText,
		CorrelationReference: requestID,
		ErrorDateTime:        time.Now().UTC().Format(time.RFC3339),
		Errors: []DetailedError{
			{
				ErrorCode:        err.Code(),
				ErrorCodeText:    errorCodeText,
				ErrorCodeMessage: err.Error(),
			},
		},
	}
}
