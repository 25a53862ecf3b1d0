package octree

import "octree/pkg/vector"

// Element is an entity inhabiting the tree: a position plus an aliasable
// mass and a weak back-reference to the Node currently holding it. An
// Element is created by the caller and handed to Tree.Add; the tree keeps
// a reference to it until Tree.Clear, while the caller's own reference (if
// any) keeps it alive independently — shared ownership, lifetime equal to
// whichever holder releases last.
type Element struct {
	// Position is fixed for the lifetime of the element: the spec's
	// Non-goals exclude dynamic re-positioning.
	Position vector.Position

	mass   *float64
	parent *Node
}

// NewElement returns an Element at pos whose mass aliases the caller-owned
// value pointed to by mass. The caller may mutate *mass after insertion to
// change the element's weight as the tree sees it; this does not by itself
// refresh aggregates. They pick up the new value on the next
// MassUpdatingGuard release, or when a later insertion splits the leaf
// holding this element. Re-inserting the element itself fails with
// ErrCoincidentPoints and refreshes nothing.
func NewElement(pos vector.Position, mass *float64) *Element {
	return &Element{Position: pos, mass: mass}
}

// NewElementWithMass returns an Element at pos that owns its mass value.
func NewElementWithMass(pos vector.Position, mass float64) *Element {
	m := mass
	return NewElement(pos, &m)
}

// Mass returns the element's current weight.
func (e *Element) Mass() float64 {
	return *e.mass
}

// SetMass mutates the element's weight in place, through the aliased or
// owned storage.
func (e *Element) SetMass(mass float64) {
	*e.mass = mass
}

// Parent returns the Node currently holding this element, or nil if the
// element has not been inserted, or has just been detached as part of a
// leaf split.
func (e *Element) Parent() *Node {
	return e.parent
}
