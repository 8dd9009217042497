package model

import "errors"

// Failure kinds surfaced to the pet surface. Callers match these with
// errors.Is; none of them is fatal to the process.
var (
	// ErrNotFound means a referenced animation file does not exist on disk.
	ErrNotFound = errors.New("animation file not found")

	// ErrEmptyCollection means no animation files exist in either root.
	// The pet surface degrades to an idle display state on this one.
	ErrEmptyCollection = errors.New("no animation files available")

	// ErrLastItemProtected means a delete was refused because at least one
	// animation must always remain.
	ErrLastItemProtected = errors.New("cannot delete the last remaining animation")

	// ErrInvalidOrder means a reorder request is not a permutation of the
	// current animation list.
	ErrInvalidOrder = errors.New("order is not a permutation of the animation list")
)
