package avl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrInvariant signals a violated structural tree invariant, as reported by Check.
	ErrInvariant = errors.New("avl: invariant violated")
)
