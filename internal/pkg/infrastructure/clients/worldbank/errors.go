package worldbank

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup and FindMetadata when no record matches
// the requested code, or when the record lacks the requested metadata field.
// Absence is an expected outcome, not a fault.
var ErrNotFound = errors.New("no such record")

// NetworkError wraps a failed transport round trip, including non 2xx
// responses from the API. The request is not retried.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to api failed: %s", e.Err.Error())
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError signals that a response body was not valid JSON or lacked an
// expected paging or record field. Field names the missing or malformed
// part of the envelope.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse response field %s: %s", e.Field, e.Err.Error())
	}
	return fmt.Sprintf("response is missing expected field %s", e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
