package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport indicates the Pulss API could not be reached or its
	// response could not be read.
	ErrTransport = errors.New("pulss api unreachable")

	// ErrNotFound matches a StatusError carrying 404.
	ErrNotFound = errors.New("pulss api resource not found")

	// ErrDecode indicates a 2xx response whose body was not the expected JSON.
	ErrDecode = errors.New("pulss api response malformed")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: request failed: %d", e.Method, e.Path, e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// StatusCode returns the HTTP status attached to err, or 0 when err did not
// come from a non-2xx response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
