package api

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is shown when a failure is not one of the known kinds
const UnknownErrorMessage = "An unknown error occurred"

// NetworkError is a transport-level failure (DNS, refused connection, timeout)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response with a non-2xx status
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// DecodeError is a 2xx response whose body is not a JSON array of items
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("invalid response body: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Message converts a search failure into the text shown to the user
func Message(err error) string {
	if err == nil {
		return ""
	}

	var netErr *NetworkError
	var httpErr *HTTPError
	var decodeErr *DecodeError
	switch {
	case errors.As(err, &netErr):
		return netErr.Error()
	case errors.As(err, &httpErr):
		return httpErr.Error()
	case errors.As(err, &decodeErr):
		return decodeErr.Error()
	default:
		return UnknownErrorMessage
	}
}
