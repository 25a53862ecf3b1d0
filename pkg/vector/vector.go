// Package vector provides the fixed three-component real-valued point/vector
// primitive used throughout the octree index: positions, mass centers, and
// node corners are all Position values.
package vector

import "math"

// Position is an ordered triple of real numbers with Euclidean norm and
// component access. It is the only geometric primitive the octree package
// depends on.
type Position struct {
	X, Y, Z float64
}

// New returns the Position (x, y, z).
func New(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// At returns the i-th component (0=X, 1=Y, 2=Z). It panics for i outside
// [0,3), the same way indexing a fixed-size array would.
func (p Position) At(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	default:
		panic("vector: component index out of range")
	}
}

// Sub returns p - other.
func (p Position) Sub(other Position) Position {
	return Position{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Add returns p + other.
func (p Position) Add(other Position) Position {
	return Position{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

// Scale returns p scaled componentwise by k.
func (p Position) Scale(k float64) Position {
	return Position{p.X * k, p.Y * k, p.Z * k}
}

// LengthSquared returns the squared Euclidean length of p.
func (p Position) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Length returns the Euclidean length of p.
func (p Position) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

// Distance returns the Euclidean distance between p and other.
func (p Position) Distance(other Position) float64 {
	return p.Sub(other).Length()
}

// Equal reports whether p and other are bit-identical in every component.
// This is intentionally an exact comparison, not a tolerance-based one: the
// octree uses it to detect coincident points, where exact equality is the
// contract (spec §4.2, §7 CoincidentPoints).
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}
