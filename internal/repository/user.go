package repository

import (
	"context"

	"user-directory/internal/domain"
)

// UserRepository defines storage operations for User records.
//
// Implementations must make the email-uniqueness check and the mutation a
// single atomic step with respect to concurrent callers: two concurrent
// Creates carrying the same email may never both succeed.
type UserRepository interface {
	// Seed installs the initial record set and moves the id counter past it.
	Seed(ctx context.Context, users []domain.User) error
	// Create assigns the next id, sets CreatedAt and appends the record.
	// Returns ErrDuplicateEmail if a live record already holds the email.
	Create(ctx context.Context, user *domain.User) (int64, error)
	// Update replaces the mutable fields of the record with user.ID and sets
	// UpdatedAt. Returns ErrNotFound or ErrDuplicateEmail.
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the record. The id is never reassigned afterwards.
	Delete(ctx context.Context, id int64) error
	// Get returns a copy of the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.User, error)
	// List returns copies of all records in insertion order.
	List(ctx context.Context) ([]domain.User, error)
}
