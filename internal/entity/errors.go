package entity

import "errors"

var (
	// ErrNotFound is returned by repositories when an id does not resolve
	// to an existing row. Handlers map it to a 404.
	ErrNotFound = errors.New("record not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
)
