package repository

import "errors"

var (
	// ErrNotFound indicates no record exists for the given id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail indicates another live record already holds the email.
	ErrDuplicateEmail = errors.New("duplicate email")
)
