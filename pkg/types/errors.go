// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Error kinds. The API client wraps one of these into every error it
// returns; callers classify with errors.Is.
var (
	ErrTimeout    = errors.New("request timed out")
	ErrNetwork    = errors.New("network error")
	ErrParse      = errors.New("malformed response")
	ErrValidation = errors.New("invalid recipe data")
	ErrNotFound   = errors.New("not found")

	// ErrEmptyResults reports a search with no matches. It is a NotFound.
	ErrEmptyResults = fmt.Errorf("%w: no recipes match the query", ErrNotFound)
)

// StatusError is returned for non-2xx responses. It unwraps to ErrNotFound
// for 404 and to ErrNetwork otherwise.
type StatusError struct {
	StatusCode int
	// Message is the API's own explanation, when the body carried one.
	Message string
	kind    error
}

// NewStatusError builds a StatusError classified by code.
func NewStatusError(code int, message string) *StatusError {
	kind := ErrNetwork
	if code == 404 {
		kind = ErrNotFound
	}
	return &StatusError{StatusCode: code, Message: message, kind: kind}
}

// AsNotFound reclassifies the error as ErrNotFound.
func (e *StatusError) AsNotFound() *StatusError {
	c := *e
	c.kind = ErrNotFound
	return &c
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API returned HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API returned HTTP %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return e.kind }
