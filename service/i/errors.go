package i

import "errors"

var (
	// ErrNotFound is returned by repositories when no record matches.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSpec wraps every validation failure of a maze spec.
	ErrInvalidSpec = errors.New("invalid maze spec")
)
