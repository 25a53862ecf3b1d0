package octree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"octree/pkg/vector"
)

func TestNewTreeRejectsNonPositiveSize(t *testing.T) {
	_, err := NewTree(0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewTree(-1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewTreeAt(vector.New(0, 0, 0), 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTreeEmptyAndCount(t *testing.T) {
	tree, err := NewTree(1)
	require.NoError(t, err)

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, 0.0, tree.Mass())
	assert.Nil(t, tree.Root())

	require.NoError(t, tree.Add(NewElementWithMass(vector.New(0, 0, 0), 1)))
	assert.False(t, tree.Empty())
	assert.Equal(t, 1, tree.Count())
}

func TestTreeGetNearestOnEmptyTreeFails(t *testing.T) {
	tree, err := NewTree(1)
	require.NoError(t, err)

	_, err = tree.GetNearest(vector.New(0, 0, 0))
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestTreeClearDropsElements(t *testing.T) {
	tree, err := NewTree(1)
	require.NoError(t, err)

	require.NoError(t, tree.Add(NewElementWithMass(vector.New(0, 0, 0), 1)))
	tree.Clear()

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Count())

	// A cleared tree behaves like a freshly constructed one: the deferred
	// center is re-chosen from the next inserted element.
	require.NoError(t, tree.Add(NewElementWithMass(vector.New(100, 100, 100), 1)))
	assert.Equal(t, 1, tree.Count())
}

func TestTreeRootGrowth(t *testing.T) {
	tree, err := NewTreeAt(vector.New(0, 0, 0), 2)
	require.NoError(t, err)

	require.NoError(t, tree.Add(NewElementWithMass(vector.New(2, 2, 2), 1)))

	root := tree.Root()
	assert.Equal(t, vector.New(1, 1, 1), root.Center())
	assert.Equal(t, 4.0, root.Size())
	assert.Equal(t, 1, tree.Count())

	children := root.Children()
	assert.NotNil(t, children[0], "old root becomes child 0")
	assert.NotNil(t, children[7], "new element lands in child 7")
	elem := children[7].Element()
	require.NotNil(t, elem)
	assert.Equal(t, vector.New(2, 2, 2), elem.Position)
}

func TestTreeRootGrowthStrictlyContainsOldRootAndPreservesMass(t *testing.T) {
	tree, err := NewTreeAt(vector.New(0, 0, 0), 2)
	require.NoError(t, err)

	require.NoError(t, tree.Add(NewElementWithMass(vector.New(0.3, 0.3, 0.3), 2)))
	require.NoError(t, tree.Add(NewElementWithMass(vector.New(-0.3, -0.3, -0.3), 3)))

	oldMass := tree.Mass()
	oldCenter := tree.Root().Center()
	oldSize := tree.Root().Size()

	require.NoError(t, tree.Add(NewElementWithMass(vector.New(5, 5, 5), 1)))

	newRoot := tree.Root()
	assert.Greater(t, newRoot.Size(), oldSize)
	for axis := 0; axis < 3; axis++ {
		oldLo := oldCenter.At(axis) - oldSize/2
		oldHi := oldCenter.At(axis) + oldSize/2
		newLo := newRoot.Center().At(axis) - newRoot.Size()/2
		newHi := newRoot.Center().At(axis) + newRoot.Size()/2
		assert.LessOrEqual(t, newLo, oldLo)
		assert.GreaterOrEqual(t, newHi, oldHi)
	}

	assert.Equal(t, oldMass+1, tree.Mass())
	assert.Equal(t, 3, tree.Count())
}

func unitCubeGrid() []*Element {
	var elems []*Element
	for _, x := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			for _, z := range []float64{-0.5, 0.5} {
				elems = append(elems, NewElementWithMass(vector.New(x, y, z), 1))
			}
		}
	}
	return elems
}

func TestTreeGetNearestOnGrid(t *testing.T) {
	tree, err := NewTreeAt(vector.New(0, 0, 0), 2)
	require.NoError(t, err)

	elems := unitCubeGrid()
	for _, e := range elems {
		require.NoError(t, tree.Add(e))
	}

	got, err := tree.GetNearest(vector.New(0.1, -0.8, 0.5))
	require.NoError(t, err)
	assert.Equal(t, vector.New(0.5, -0.5, 0.5), got.Position)

	got, err = tree.GetNearest(vector.New(1.0, -0.8, 0.5))
	require.NoError(t, err)
	assert.Equal(t, vector.New(0.5, -0.5, 0.5), got.Position)

	first := elems[0]
	got, err = tree.GetNearest(first.Position)
	require.NoError(t, err)
	assert.Equal(t, first.Position, got.Position)
}

func TestTreeGetCloseIsSoundAndComplete(t *testing.T) {
	tree, err := NewTreeAt(vector.New(0, 0, 0), 2)
	require.NoError(t, err)

	elems := unitCubeGrid()
	for _, e := range elems {
		require.NoError(t, tree.Add(e))
	}
	// a point well outside the radius of interest
	require.NoError(t, tree.Add(NewElementWithMass(vector.New(10, 10, 10), 1)))

	target := vector.New(0, 0, 0)
	radius := 0.9 // sqrt(0.75) ~= 0.866, so every grid corner should qualify

	got := tree.GetClose(target, radius)

	var want []vector.Position
	for _, e := range elems {
		if e.Position.Distance(target) <= radius {
			want = append(want, e.Position)
		}
	}

	require.Equal(t, len(want), len(got))

	gotPositions := make(map[vector.Position]bool, len(got))
	for _, e := range got {
		gotPositions[e.Position] = true
	}
	for _, w := range want {
		assert.True(t, gotPositions[w], "missing expected element at %v", w)
	}
}

func TestTreeMassCenterUndefinedForEmptyTreeIsZeroNotPanic(t *testing.T) {
	tree, err := NewTree(1)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_ = tree.MassCenter()
	})
}
