// Package octree implements an adaptively subdivided cubic spatial index
// over weighted 3D point elements, plus the nearest-neighbor and
// radius-enumeration queries that read it. See package convolution for the
// Barnes-Hut-style tree-walk summation, and package scale for the
// acceptance policy it relies on.
package octree

import (
	"io"

	"octree/pkg/vector"
)

// firstInsertCenterOffset is the calibration constant used to nudge the
// tree's auto-selected center away from the first inserted point, so that
// point never lands exactly on a future subdivision plane. Non-dyadic and
// small by design (spec §4.3) — not a correctness parameter.
const firstInsertCenterOffset = -0.13

// Tree owns the root Node and manages first-insert center selection, root
// doubling, global mass queries, clearing, the debug dump, and delegates
// to the nearest/radius queries. It is single-threaded and cooperative:
// every mutating method runs to completion before returning, and no
// visitor invoked by a query may mutate the tree (spec §5).
type Tree struct {
	root *Node

	center      vector.Position
	initialSize float64
	centerIsSet bool

	massUpdatingEnabled bool
}

// NewTreeAt returns an empty tree rooted at the given center with the
// given initial cube size. initialSize must be > 0.
func NewTreeAt(center vector.Position, initialSize float64) (*Tree, error) {
	if initialSize <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Tree{
		center:              center,
		initialSize:         initialSize,
		centerIsSet:         true,
		massUpdatingEnabled: true,
	}, nil
}

// NewTree returns an empty tree with the given initial cube size; the
// center is deferred and chosen from the first inserted element's
// position. initialSize must be > 0.
func NewTree(initialSize float64) (*Tree, error) {
	if initialSize <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Tree{initialSize: initialSize, massUpdatingEnabled: true}, nil
}

// Add inserts e into the tree, growing the root as many times as needed
// to contain e's position, then descending to place it. It fails with
// ErrCoincidentPoints if e's position bit-for-bit matches an element
// already occupying the destination leaf; the tree is left unchanged.
func (t *Tree) Add(e *Element) error {
	if t.root == nil {
		if !t.centerIsSet {
			t.center = vector.New(
				e.Position.X+firstInsertCenterOffset*t.initialSize,
				e.Position.Y+firstInsertCenterOffset*t.initialSize,
				e.Position.Z+firstInsertCenterOffset*t.initialSize,
			)
			t.centerIsSet = true
		}
		t.root = newNodeRoot(t, t.center, t.initialSize)
	}

	for !t.root.IsInside(e.Position) {
		t.enlargeRoot(e.Position)
	}

	return t.root.addElement(e)
}

// enlargeRoot doubles the tree's cube, choosing the new center so that p
// is drawn toward it, and installs the old root as one child of the new,
// bigger root. Subtree aggregates are preserved exactly: no element moves,
// only the old root's parent/key/level are rewritten.
func (t *Tree) enlargeRoot(p vector.Position) {
	old := t.root

	x, y, z := old.center.X, old.center.Y, old.center.Z
	half := old.size / 2
	if p.X > x {
		x += half
	} else {
		x -= half
	}
	if p.Y > y {
		y += half
	} else {
		y -= half
	}
	if p.Z > z {
		z += half
	} else {
		z -= half
	}
	newCenter := vector.New(x, y, z)

	key := NewSubdivisionKey(newCenter, old.center)

	newRoot := newNodeRoot(t, newCenter, old.size*2)
	newRoot.level = old.level - 1
	newRoot.hasChildren = true

	old.parent = newRoot
	old.key = key
	newRoot.children[key.Index()] = old

	t.root = newRoot

	if t.massUpdatingEnabled {
		newRoot.updateMassCenter()
	}
}

// Clear drops the root and the deferred-center flag; an empty Tree behaves
// as if freshly constructed with NewTree(initialSize).
func (t *Tree) Clear() {
	t.root = nil
	t.centerIsSet = false
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool { return t.root == nil }

// Count returns the number of elements held in the tree.
func (t *Tree) Count() int {
	if t.root == nil {
		return 0
	}
	return t.root.ElementsCount()
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree) Root() *Node { return t.root }

// Mass returns the root's aggregate mass, 0 for an empty tree.
func (t *Tree) Mass() float64 {
	if t.root == nil {
		return 0
	}
	return t.root.mass
}

// MassCenter returns the root's aggregate center-of-mass. It is undefined
// (the zero Position) for an empty tree — callers should check Empty
// first.
func (t *Tree) MassCenter() vector.Position {
	if t.root == nil {
		return vector.Position{}
	}
	return t.root.massCenter
}

// nodeDist pairs a node with its precomputed distance bounds to a query
// point, for GetNearest's working set.
type nodeDist struct {
	node              *Node
	nearest, farthest float64
}

// GetNearest returns the element closest to p via best-first search with
// live pruning (spec §4.3). Ties are broken by the fixed child iteration
// order 0..7; no specific element among equidistant candidates is
// contracted.
func (t *Tree) GetNearest(p vector.Position) (*Element, error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	nearest, farthest := t.root.DistsToNode(p)
	working := []nodeDist{{t.root, nearest, farthest}}

	for {
		minFarthest := working[0].farthest
		for _, w := range working[1:] {
			if w.farthest < minFarthest {
				minFarthest = w.farthest
			}
		}

		pruned := working[:0]
		for _, w := range working {
			if w.nearest <= minFarthest {
				pruned = append(pruned, w)
			}
		}
		working = pruned

		// Every surviving leaf lies at distance minFarthest, so once only
		// leaves remain they are tied and the first one is returned.
		allLeaves := true
		for _, w := range working {
			if w.node.element == nil {
				allLeaves = false
				break
			}
		}
		if allLeaves {
			return working[0].node.element, nil
		}

		var next []nodeDist
		for _, w := range working {
			if w.node.element != nil {
				next = append(next, w)
				continue
			}
			for _, c := range w.node.children {
				if c == nil {
					continue
				}
				n, f := c.DistsToNode(p)
				next = append(next, nodeDist{c, n, f})
			}
		}
		working = next

		if len(working) == 1 && working[0].node.element != nil {
			return working[0].node.element, nil
		}
	}
}

// GetClose returns every element within Euclidean distance r of p (spec
// §4.3): exactly the set {e : |e.Position - p| <= r}, in an unspecified
// but deterministic order.
func (t *Tree) GetClose(p vector.Position, r float64) []*Element {
	var result []*Element
	if t.root == nil {
		return result
	}

	work := []*Node{t.root}
	for i := 0; i < len(work); i++ {
		n := work[i]
		nearest, farthest := n.DistsToNode(p)
		if nearest > r {
			continue
		}
		if farthest <= r {
			n.pushBackAllElements(&result)
			continue
		}
		n.pushBackSubnodes(&work)
	}
	return result
}

// DbgOutCoords writes the tree's corner dump (spec §6): eight "x,y,z"
// lines per node, depth-first from the root. A no-op on an empty tree.
func (t *Tree) DbgOutCoords(w io.Writer) error {
	if t.root == nil {
		return nil
	}
	return t.root.DbgOutCoords(w)
}
