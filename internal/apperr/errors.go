// Package apperr defines the error kinds shared across the application.
package apperr

import "errors"

var (
	// ErrUsage reports a wrong number of command-line arguments.
	ErrUsage = errors.New("invalid usage")
	// ErrNotDirectory reports a target path that cannot be read as a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrMetadata reports a directory entry whose metadata could not be read.
	ErrMetadata = errors.New("metadata unavailable")
	// ErrTooManyCollisions reports a collision probe that hit its cap.
	ErrTooManyCollisions = errors.New("too many collisions")
	// ErrAlreadyExists reports a rename target held by another file.
	ErrAlreadyExists = errors.New("already exists")
)
