package cubesolver

import (
	"github.com/seamusw/cubesolver/internal/facelet"
	"github.com/seamusw/cubesolver/internal/search"
)

// Sentinel errors for the cubesolver package. The internal layers produce
// them; they are re-exported here so callers can match with errors.Is.
var (
	// ErrInvalidFacelet indicates a malformed facelet string: wrong length,
	// unknown face letter, bad color counts, or stickers that match no cubie.
	ErrInvalidFacelet = facelet.ErrInvalidFacelet

	// ErrInvalidCube indicates a well-formed facelet string describing a
	// state no sequence of face turns can reach.
	ErrInvalidCube = facelet.ErrInvalidCube

	// ErrTimeout indicates the time budget expired before any solution was
	// found.
	ErrTimeout = search.ErrTimeout

	// ErrLengthExceeded indicates no solution exists within the configured
	// maximum move count.
	ErrLengthExceeded = search.ErrLengthExceeded
)
