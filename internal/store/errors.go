package store

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrEmailTaken is returned when the users.email unique constraint rejects an insert.
	ErrEmailTaken = errors.New("store: email already registered")
	// ErrUserNotFound is returned when a report references a user that does not exist.
	ErrUserNotFound = errors.New("store: owning user does not exist")
)
