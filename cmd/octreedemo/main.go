// cmd/octreedemo/main.go
//
// octreedemo - a fixed-scene walkthrough of the octree library.
//
// Usage:
//
//	octreedemo
//
// Builds a small built-in set of weighted points, then demonstrates
// nearest-neighbor search, radius enumeration, convolution under both a
// Linear and a Discrete ScaleConfig, and the debug coordinate dump. It
// takes no flags and reads no files.
package main

import (
	"fmt"
	"os"

	"octree/pkg/convolution"
	"octree/pkg/octree"
	"octree/pkg/scale"
	"octree/pkg/vector"
)

func buildScene() (*octree.Tree, error) {
	tree, err := octree.NewTreeAt(vector.New(0, 0, 0), 20)
	if err != nil {
		return nil, err
	}

	points := []struct {
		pos  vector.Position
		mass float64
	}{
		{vector.New(2, 3, -8), 3},
		{vector.New(0, 0, 0), 1},
		{vector.New(8, 9, 9), 1},
		{vector.New(-3, -9, -4), 2},
		{vector.New(-7, -9, -4), 1},
		{vector.New(-1, -4, -2), 1},
		{vector.New(5, -5, 5), 2},
		{vector.New(-5, 5, -5), 2},
	}

	g := octree.NewMassUpdatingGuard(tree)
	for _, p := range points {
		if err := tree.Add(octree.NewElementWithMass(p.pos, p.mass)); err != nil {
			return nil, err
		}
	}
	g.Release()

	return tree, nil
}

func run(stdout, stderr *os.File) error {
	tree, err := buildScene()
	if err != nil {
		fmt.Fprintf(stderr, "octreedemo: building scene: %v\n", err)
		return err
	}

	fmt.Fprintf(stdout, "elements: %d, mass: %g, mass center: %v\n", tree.Count(), tree.Mass(), tree.MassCenter())

	target := vector.New(1, 1, 1)
	nearest, err := tree.GetNearest(target)
	if err != nil {
		fmt.Fprintf(stderr, "octreedemo: nearest to %v: %v\n", target, err)
		return err
	}
	fmt.Fprintf(stdout, "nearest to %v: %v (mass %g)\n", target, nearest.Position, nearest.Mass())

	nearby := tree.GetClose(target, 10)
	fmt.Fprintf(stdout, "within radius 10 of %v: %d elements\n", target, len(nearby))

	coulomb := func(target, object vector.Position, mass float64) float64 {
		return mass / target.Distance(object)
	}
	sumFloat := func(a, b float64) float64 { return a + b }

	linear, err := scale.NewLinear(scale.DefaultLinearK)
	if err != nil {
		fmt.Fprintf(stderr, "octreedemo: linear scale config: %v\n", err)
		return err
	}
	linearField := convolution.New[float64](linear, sumFloat).Convolute(tree, target, coulomb)
	fmt.Fprintf(stdout, "coulomb field at %v under Linear(k=%g): %g\n", target, scale.DefaultLinearK, linearField)

	discrete := scale.NewDiscrete()
	discrete.AddScale(5, 3)
	discrete.AddScale(10, 8)
	discreteField := convolution.New[float64](discrete, sumFloat).Convolute(tree, target, coulomb)
	fmt.Fprintf(stdout, "coulomb field at %v under Discrete: %g\n", target, discreteField)

	fmt.Fprintln(stdout, "--- dbgOutCoords ---")
	if err := tree.DbgOutCoords(stdout); err != nil {
		fmt.Fprintf(stderr, "octreedemo: dbgOutCoords: %v\n", err)
		return err
	}

	return nil
}

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
