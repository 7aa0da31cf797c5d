package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	// ErrNoToken is returned by gated calls made before a token is set.
	ErrNoToken = errors.New("not logged in")

	ErrEmptyAddress   = errors.New("empty server address")
	ErrInvalidAddress = errors.New("server address must include scheme and host")
)

// APIError is a failure response of the API. It matches one of the
// sentinel errors above through errors.Is.
type APIError struct {
	StatusCode int

	// Message is the "message" field of the response envelope, or the
	// raw body if the response was not an envelope.
	Message string

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
