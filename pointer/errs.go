package pointer

import "errors"

var (
	// ErrMalformed reports a pointer string that is non-empty and does not
	// begin with '/'.
	ErrMalformed = errors.New("malformed pointer")

	// ErrInvalidToken reports the "-" token used anywhere other than an
	// Add insertion target.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound reports an absent object key.
	ErrNotFound = errors.New("not found")

	// ErrIndexOutOfRange reports an array token that is non-numeric,
	// negative, or outside the valid range for the operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch reports a token that implies object semantics on an
	// array, array semantics on an object, or traversal into a scalar.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrTargetExists reports a strict-insert Add on an object key that is
	// already present.
	ErrTargetExists = errors.New("add target exists")

	// ErrRootRemoval reports an attempt to remove the document root.
	ErrRootRemoval = errors.New("cannot remove document root")
)
