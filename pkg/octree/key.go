package octree

import "octree/pkg/vector"

// SubdivisionKey identifies one of a Node's eight octants via three binary
// axis bits: bit i is 0 when a point falls below the node's center on axis
// i, 1 when at or above. The flat index s[0] + 2*s[1] + 4*s[2] addresses
// the corresponding child slot.
type SubdivisionKey struct {
	bits [3]uint8
	set  bool
}

// Unset is the sentinel SubdivisionKey: one not derived from any
// center/point pair. Reserved by the spec; the core algorithms never
// consume it directly.
var Unset = SubdivisionKey{}

// NewSubdivisionKey computes the octant of point relative to center.
func NewSubdivisionKey(center, point vector.Position) SubdivisionKey {
	var k SubdivisionKey
	k.set = true
	for i := 0; i < 3; i++ {
		if point.At(i) < center.At(i) {
			k.bits[i] = 0
		} else {
			k.bits[i] = 1
		}
	}
	return k
}

// Index returns the flat [0,8) child-slot index for this key.
func (k SubdivisionKey) Index() int {
	return int(k.bits[0]) + 2*int(k.bits[1]) + 4*int(k.bits[2])
}

// Bit returns the axis bit (0 or 1) for axis i in [0,3).
func (k SubdivisionKey) Bit(i int) uint8 {
	return k.bits[i]
}

// IsSet reports whether this key was produced by NewSubdivisionKey, as
// opposed to being the Unset sentinel.
func (k SubdivisionKey) IsSet() bool {
	return k.set
}
