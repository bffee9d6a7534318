package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrIntegrityCheckFailed is returned when a response's HashSHA256 header
	// is missing or does not match the body.
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")
)

// ResponseError is a non-2xx answer from the server. Message holds the
// server's {"err": ...} reason when the body carried one.
type ResponseError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.StatusCode)
	}
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
