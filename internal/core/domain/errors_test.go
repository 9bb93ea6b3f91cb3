package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrNoFileSelected", ErrNoFileSelected},
		{"ErrTransport", ErrTransport},
		{"ErrUnexpectedStatus", ErrUnexpectedStatus},
		{"ErrMalformedResponse", ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_AreDistinct tests that sentinels do not match each other
func TestErrors_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrTransport, ErrUnexpectedStatus))
	assert.False(t, errors.Is(ErrMalformedResponse, ErrTransport))
	assert.False(t, errors.Is(ErrNoFileSelected, ErrInvalidInput))
}

// TestErrTransport_Wrapping tests that transport errors keep the cause
func TestErrTransport_Wrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("%w: %w", ErrTransport, cause)

	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "backend unreachable")
}

// TestStatusError_Is tests that StatusError matches ErrUnexpectedStatus
func TestStatusError_Is(t *testing.T) {
	var err error = NewStatusError("GET", "/technical-summary", 500, []byte("boom"))

	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.False(t, errors.Is(err, ErrTransport))

	var statusErr *StatusError
	require.True(t, errors.As(fmt.Errorf("fetch: %w", err), &statusErr))
	assert.Equal(t, 500, statusErr.StatusCode)
}

// TestStatusError_Message tests the rendered error text
func TestStatusError_Message(t *testing.T) {
	err := NewStatusError("POST", "/upload-rfp", 422, []byte(`{"detail":"bad pdf"}`))

	assert.Equal(t,
		`POST /upload-rfp: backend returned 422 Unprocessable Entity: {"detail":"bad pdf"}`,
		err.Error())
}

// TestStatusError_EmptyBody tests that an empty body is omitted
func TestStatusError_EmptyBody(t *testing.T) {
	err := NewStatusError("GET", "/spec-match", 404, nil)

	assert.Equal(t, "GET /spec-match: backend returned 404 Not Found", err.Error())
}

// TestStatusError_TruncatesBody tests that long bodies are capped
func TestStatusError_TruncatesBody(t *testing.T) {
	err := NewStatusError("GET", "/scope-of-supply", 502, []byte(strings.Repeat("x", 2000)))

	assert.Len(t, err.Body, maxStatusBodyLen+len("..."))
	assert.True(t, strings.HasSuffix(err.Body, "..."))
}

// TestStatusError_TruncatesOnRuneBoundary tests that truncation never splits a character
func TestStatusError_TruncatesOnRuneBoundary(t *testing.T) {
	body := "x" + strings.Repeat("é", 600)

	err := NewStatusError("GET", "/technical-summary", 500, []byte(body))

	assert.True(t, utf8.ValidString(err.Body))
	assert.True(t, strings.HasSuffix(err.Body, "é..."))
	assert.LessOrEqual(t, len(err.Body), maxStatusBodyLen+len("..."))
}
