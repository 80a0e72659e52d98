// Package errors defines the typed error kinds surfaced by the client core
// and the handlers that route them to the CLI or TUI surface.
package errors

import (
	"errors"
	"fmt"
)

// ErrStaleResponse indicates a fetch response that was superseded by a newer
// request for the same view. It is an expected outcome of rapid navigation and
// is swallowed by callers, never shown to the user.
var ErrStaleResponse = errors.New("stale response superseded by newer fetch")

// FetchError represents a failed backend request: a network failure or a
// non-2xx response. Status is zero when the request never reached the server.
type FetchError struct {
	Status  int
	Path    string
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("fetch %s: status %d: %s", e.Path, e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Path, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError represents a local pre-submission constraint violation.
// No request is sent when one is raised.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
	}
	return "validation: " + e.Message
}

// DuplicateOperationError is returned when a mutation is issued for a key that
// already has one in flight. The second submission never reaches the server.
type DuplicateOperationError struct {
	Key  string
	Kind string
}

func (e *DuplicateOperationError) Error() string {
	return fmt.Sprintf("operation already in progress for %s (%s)", e.Key, e.Kind)
}

// IsFetch reports whether err is a FetchError.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicateOperation reports whether err is a DuplicateOperationError.
func IsDuplicateOperation(err error) bool {
	var de *DuplicateOperationError
	return errors.As(err, &de)
}

// IsStale reports whether err is the stale-response sentinel.
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleResponse)
}
