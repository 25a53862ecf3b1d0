package octree

import "errors"

// Sentinel errors returned by the tree's public operations. Callers should
// compare with errors.Is.
var (
	// ErrEmptyTree is returned by Tree.GetNearest when the tree has no root.
	ErrEmptyTree = errors.New("octree: tree is empty")

	// ErrCoincidentPoints is returned by Tree.Add / Node.addElement when two
	// distinct Elements with bit-identical positions are inserted at the
	// same leaf. The tree is left unchanged: the first element stays, the
	// second is not inserted.
	ErrCoincidentPoints = errors.New("octree: coincident points")

	// ErrInvalidConfig is returned by NewTree and NewTreeAt for a
	// non-positive initial size.
	ErrInvalidConfig = errors.New("octree: invalid config")
)
