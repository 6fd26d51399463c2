package domain

import "time"

// User represents a directory record managed by the service.
type User struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Clone returns an independent copy so callers can never mutate stored state.
func (u User) Clone() User {
	c := u
	if u.UpdatedAt != nil {
		v := *u.UpdatedAt
		c.UpdatedAt = &v
	}
	return c
}
