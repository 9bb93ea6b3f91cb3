package domain

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// Domain errors represent failures visible to the dashboard.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoFileSelected indicates an upload was submitted without a file.
	ErrNoFileSelected = errors.New("no file selected")

	// Backend Errors.

	// ErrTransport indicates the backend could not be reached.
	// The underlying network error is wrapped alongside it.
	ErrTransport = errors.New("backend unreachable")

	// ErrUnexpectedStatus indicates the backend answered with a non-success status.
	// Use errors.As with *StatusError to inspect the status code.
	ErrUnexpectedStatus = errors.New("unexpected backend status")

	// ErrMalformedResponse indicates the backend body was not valid JSON
	// or did not have the shape the endpoint promises.
	ErrMalformedResponse = errors.New("malformed backend response")
)

// maxStatusBodyLen caps how much of an error body is kept on a StatusError.
const maxStatusBodyLen = 512

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// NewStatusError builds a StatusError, truncating long bodies.
func NewStatusError(method, path string, statusCode int, body []byte) *StatusError {
	text := string(body)
	if len(text) > maxStatusBodyLen {
		cut := maxStatusBodyLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       text,
	}
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: backend returned %d %s",
		e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is makes errors.Is(err, ErrUnexpectedStatus) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
