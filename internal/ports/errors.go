package ports

import (
	"fmt"
	"strings"
)

// StatusError reports a response the server did answer, with a non-2xx
// status. Body carries the raw error payload when the server sent one.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Message())
}

// Message prefers the server-provided error body verbatim and falls back
// to the status reason phrase when the body is blank.
func (e *StatusError) Message() string {
	if body := strings.TrimSpace(e.Body); body != "" {
		return body
	}
	return e.Status
}

// TransportError reports that no response arrived at all: DNS failure,
// refused connection, timeout, or an open circuit breaker.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
