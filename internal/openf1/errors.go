package openf1

import (
	"errors"
	"fmt"
)

// Failure kinds a fetch can report. Callers match them with errors.Is.
var (
	// ErrTransport covers connect, DNS, and timeout failures.
	ErrTransport = errors.New("transport failure")
	// ErrStatus covers non-2xx responses from the API.
	ErrStatus = errors.New("unexpected status")
	// ErrDecode covers bodies that are not a JSON array of objects.
	ErrDecode = errors.New("malformed response")
)

// FetchError describes a failed API request. It wraps both the failure
// kind sentinel and the underlying cause, so callers can classify with
// errors.Is and still log the original error.
type FetchError struct {
	Endpoint string
	Status   int // HTTP status code, 0 unless Kind is ErrStatus
	Kind     error
	Err      error
}

func (e *FetchError) Error() string {
	if e.Kind == ErrStatus {
		return fmt.Sprintf("%s: HTTP %d from %s", e.Kind, e.Status, e.Endpoint)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
