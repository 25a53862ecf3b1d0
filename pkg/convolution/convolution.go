// Package convolution implements a generic Barnes-Hut style tree walk
// over a pkg/octree.Tree: nodes whose diameter is small enough relative
// to their distance from a target point are summarized by their
// aggregate mass and center of mass instead of being descended into.
package convolution

import (
	"octree/pkg/octree"
	"octree/pkg/scale"
	"octree/pkg/vector"
)

// Visitor computes one term of the convolution sum for a single source
// (either an individual element or a summarized node) at the given
// target point.
type Visitor[R any] func(target, object vector.Position, mass float64) R

// Adder combines two partial results. For a plain scalar accumulator
// this is ordinary addition; for a vector or struct accumulator it sums
// component-wise.
type Adder[R any] func(a, b R) R

// Convolution walks a Tree once per call, replacing any node whose
// diameter fits inside the ScaleConfig's scale at its distance from the
// target with a single call to the visitor, and descending into any node
// that doesn't.
type Convolution[R any] struct {
	scales scale.Config
	add    Adder[R]
}

// New builds a Convolution that resolves averaging scales from scales
// and combines visitor results with add.
func New[R any](scales scale.Config, add Adder[R]) *Convolution[R] {
	return &Convolution[R]{scales: scales, add: add}
}

// Convolute sums the visitor's result over every element in tree,
// approximating distant clusters of elements by their aggregate mass and
// center of mass wherever the ScaleConfig allows it.
func (c *Convolution[R]) Convolute(tree *octree.Tree, target vector.Position, visitor Visitor[R]) R {
	return c.walk(tree, target, visitor, nil)
}

// ConvoluteExcluding behaves like Convolute but skips the single leaf
// whose element is excluded (compared by pointer identity), letting a
// source compute the field at its own position without self-interaction.
func (c *Convolution[R]) ConvoluteExcluding(tree *octree.Tree, excluded *octree.Element, target vector.Position, visitor Visitor[R]) R {
	return c.walk(tree, target, visitor, excluded)
}

func (c *Convolution[R]) walk(tree *octree.Tree, target vector.Position, visitor Visitor[R], excluded *octree.Element) R {
	var result R
	if tree.Empty() {
		return result
	}

	// A slice stands in for the work-list; indexing past items already
	// processed avoids popping from the front. It starts with room for 200
	// nodes and append grows it when more are queued.
	nodes := make([]*octree.Node, 0, 200)
	nodes = append(nodes, tree.Root())

	for i := 0; i < len(nodes); i++ {
		n := nodes[i]
		if excluded != nil && n.IsLeaf() && n.Element() == excluded {
			continue
		}

		dia := n.Diameter()
		dist := n.DistToCenter(target) - dia*0.5
		sc := c.scales.FindScale(dist)
		if dia <= sc {
			result = c.add(result, visitor(target, n.MassCenter(), n.Mass()))
			continue
		}

		for _, child := range n.Children() {
			if child != nil {
				nodes = append(nodes, child)
			}
		}
	}
	return result
}
