package service

import "errors"

var (
	// ErrInvalidID indicates a malformed (non-positive) record identifier.
	ErrInvalidID = errors.New("invalid user id")
	// ErrUserNotFound indicates no record exists for the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates another record already holds the email.
	ErrEmailTaken = errors.New("email already in use")
)

// ValidationError aggregates every field constraint violated by a candidate.
// Validation never stops at the first failing field; each key maps a field
// name to all of its messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}
