package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique natural key collision.
	ErrAlreadyExists = errors.New("already exists")
)
