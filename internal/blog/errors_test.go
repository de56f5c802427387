package blog

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := WrapInternalError(cause, "failed to create post")

	var blogErr *Error
	require.ErrorAs(t, err, &blogErr)
	assert.Equal(t, ErrCodeInternalError, blogErr.Code())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to create post: connection reset", err.Error())
}

func TestMapErrorToResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{"validation", NewValidationError("title is required"), http.StatusBadRequest, ErrCodeValidation},
		{"malformed request", NewMalformedRequestError("bad json"), http.StatusBadRequest, ErrCodeMalformedRequest},
		{"conflict", NewConflictError("id mismatch"), http.StatusBadRequest, ErrCodeConflict},
		{"not found", NewNotFoundError("post not found"), http.StatusNotFound, ErrCodeNotFound},
		{"rate limit", NewRateLimitError("slow down"), http.StatusTooManyRequests, ErrCodeRateLimitExceeded},
		{"too large", NewRequestTooLargeError("body too big"), http.StatusRequestEntityTooLarge, ErrCodeRequestTooLarge},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, ErrCodeInternalError},
		{"unmapped error type", errors.New("plain error"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/posts", nil)

			resp := MapErrorToResponse(tt.err, r)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, http.StatusText(tt.wantStatus), resp.StatusCodeText)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.wantCode, resp.Errors[0].ErrorCode)
			assert.Equal(t, http.MethodGet, resp.HTTPMethod)
			assert.Equal(t, "/posts", resp.RequestURI)
			assert.NotEmpty(t, resp.ErrorDateTime)
		})
	}
}
