// Package apperr defines the failure kinds surfaced to API clients.
package apperr

import "errors"

var (
	// ErrInvalidInput marks a request missing required fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrUnprocessable marks any unexpected failure while serving a request.
	ErrUnprocessable = errors.New("unprocessable")
	// ErrMethodNotAllowed marks a route hit with the wrong verb.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
