package container

import "errors"

// Structural errors
var (
	// ErrNoParent indicates an operation needed an ancestor that does not
	// exist, such as detaching the root. The tree was already inconsistent
	// or the caller targeted the wrong node; it is never retried.
	ErrNoParent = errors.New("container has no parent")

	// ErrInvalidChild indicates a parent variant cannot hold the child
	// variant (a window under the root, anything under a window).
	ErrInvalidChild = errors.New("container cannot hold this child")

	// ErrAlreadyAttached indicates the child must be detached first.
	ErrAlreadyAttached = errors.New("container is already attached")

	// ErrNotTiling indicates a tiling container was required.
	ErrNotTiling = errors.New("container does not tile")

	// ErrInvariant indicates Validate found a broken tree.
	ErrInvariant = errors.New("tree invariant violated")
)

// Access errors
var (
	// ErrBorrowConflict indicates a node was already borrowed for
	// mutation elsewhere. It points at a sequencing bug in the caller.
	ErrBorrowConflict = errors.New("container is already borrowed")
)
