package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for failures that cross package boundaries.
var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrInvalidKey   = errors.New("invalid storage key")
	ErrNoContainer  = errors.New("content container not present in document")
	ErrCorruptStore = errors.New("stored value could not be decoded")
)
