package jsondot

import "github.com/jsondot/jsondot/internal/node"

// Sentinel errors. Every error returned by this package matches
// exactly one of these with errors.Is.
var (
	// ErrInvalidInput reports constructor input that is neither a
	// container nor a scalar, an attempt to descend through a scalar,
	// or an unknown representation shape.
	ErrInvalidInput = node.ErrInvalidInput

	// ErrMalformedDocument reports JSON text that fails to parse.
	ErrMalformedDocument = node.ErrMalformedDocument

	// ErrPathNotFound reports a missing key during strict traversal.
	// Get and Exists never return it; a read miss is an absent result,
	// not an error.
	ErrPathNotFound = node.ErrPathNotFound

	// ErrNotContainer reports a scalar or absent value where an
	// operation requires a container.
	ErrNotContainer = node.ErrNotContainer
)

// A PathError wraps the failure of a path-addressed operation with the
// operation name and the path it was given.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return "jsondot: " + e.Op + " " + quotePath(e.Path) + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

func quotePath(path string) string {
	if path == "" {
		return "(root)"
	}
	return `"` + path + `"`
}
