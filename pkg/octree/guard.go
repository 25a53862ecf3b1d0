package octree

// MassUpdatingGuard is a scoped switch that suspends per-insert aggregate
// recomputation on a Tree — a bulk-insert optimization — and forces one
// full bottom-up-then-self recomputation when released. It holds a
// reference to its Tree; its scope must not outlive the Tree.
type MassUpdatingGuard struct {
	tree     *Tree
	released bool
}

// NewMassUpdatingGuard suspends aggregate maintenance on tree and returns
// a guard that restores it, with one full recomputation, on Release.
// Typical use:
//
//	g := octree.NewMassUpdatingGuard(t)
//	defer g.Release()
//	for _, e := range elements {
//	    t.Add(e)
//	}
func NewMassUpdatingGuard(tree *Tree) *MassUpdatingGuard {
	tree.massUpdatingEnabled = false
	return &MassUpdatingGuard{tree: tree}
}

// Release re-enables aggregate maintenance and performs one full
// recursive-down recomputation from the root. Idempotent: calling it more
// than once has no further effect.
func (g *MassUpdatingGuard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.tree.massUpdatingEnabled = true
	if g.tree.root != nil {
		g.tree.root.updateMassCenterRecursiveDown()
	}
}
