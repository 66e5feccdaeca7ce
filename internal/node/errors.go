package node

import "errors"

// Sentinel errors reported by the canonical tree. The root jsondot
// package re-exports these so callers can match them with errors.Is.
var (
	// ErrInvalidInput reports a value that is neither a container nor a
	// scalar, an attempt to descend into a scalar, or an unknown
	// representation shape.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedDocument reports JSON text that fails to parse.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrPathNotFound reports a missing key during strict traversal.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotContainer reports a scalar or absent value where an
	// operation requires a container.
	ErrNotContainer = errors.New("not a container")
)
