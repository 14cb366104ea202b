// Package structure models the rigid bodies a structure is assembled from.
// Bodies live in a World arena and are addressed by index; per-simulation
// stress results are kept out of the geometry (see the stress package) so
// the read-only stress pass and the repositioning pass have distinct
// mutability contracts.
package structure

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/material"
)

// BoundaryCondition constrains how a body participates in the simulation.
type BoundaryCondition int

const (
	// Free bodies take stress, self-weight and deformation.
	Free BoundaryCondition = iota
	// Pinned is reserved for rotational constraints; it currently behaves
	// like Free for stress purposes.
	Pinned
	// Fixed bodies are anchors: no self-weight term, no deformation.
	Fixed
)

var boundaryNames = [...]string{"free", "pinned", "fixed"}

func (bc BoundaryCondition) String() string {
	if bc < 0 || int(bc) >= len(boundaryNames) {
		return fmt.Sprintf("boundary(%d)", int(bc))
	}
	return boundaryNames[bc]
}

var ErrUnknownBoundary = errors.New("structure: unknown boundary condition")

func ParseBoundary(name string) (BoundaryCondition, error) {
	for i, n := range boundaryNames {
		if strings.EqualFold(name, n) {
			return BoundaryCondition(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
}

// Shape is the geometric primitive of a body.
type Shape int

const (
	Box Shape = iota
	Cylinder
)

var shapeNames = [...]string{"box", "cylinder"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

var ErrUnknownShape = errors.New("structure: unknown shape")

func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Body is one rigid primitive. Position is the world-space centroid. Half
// holds half-extents for boxes; for cylinders X and Z carry the radius and
// Y the half-height. Props points into the shared material catalog.
type Body struct {
	Shape    Shape
	Position geom.Vec3
	Half     geom.Vec3
	Scale    geom.Vec3
	Props    *material.Properties
	Boundary BoundaryCondition
}

// NewBox builds a box body from its centroid and full extents, with the
// default Steel/Free assignment.
func NewBox(pos, size geom.Vec3) Body {
	return Body{
		Shape:    Box,
		Position: pos,
		Half:     size.Scale(0.5),
		Scale:    geom.Vec3{X: 1, Y: 1, Z: 1},
		Props:    material.Lookup(material.Steel),
		Boundary: Free,
	}
}

// NewCylinder builds an upright cylinder from its centroid, radius and full
// height, with the default Steel/Free assignment.
func NewCylinder(pos geom.Vec3, radius, height float64) Body {
	return Body{
		Shape:    Cylinder,
		Position: pos,
		Half:     geom.Vec3{X: radius, Y: height / 2, Z: radius},
		Scale:    geom.Vec3{X: 1, Y: 1, Z: 1},
		Props:    material.Lookup(material.Steel),
		Boundary: Free,
	}
}

func (b *Body) HalfHeight() float64 { return b.Half.Y }

// Top and Bottom are the Y coordinates of the upper and lower faces.
func (b *Body) Top() float64    { return b.Position.Y + b.Half.Y }
func (b *Body) Bottom() float64 { return b.Position.Y - b.Half.Y }

// FootprintX returns the horizontal extent on the X axis. Cylinders use the
// bounding square of their circular cross-section.
func (b *Body) FootprintX() (min, max float64) {
	return b.Position.X - b.Half.X, b.Position.X + b.Half.X
}

func (b *Body) FootprintZ() (min, max float64) {
	return b.Position.Z - b.Half.Z, b.Position.Z + b.Half.Z
}

func (b *Body) Volume() float64 {
	switch b.Shape {
	case Cylinder:
		return math.Pi * b.Half.X * b.Half.X * (2 * b.Half.Y)
	default:
		return 8 * b.Half.X * b.Half.Y * b.Half.Z
	}
}

// Mass derives from the catalog density; it is never stored.
func (b *Body) Mass() float64 {
	return b.Props.Density * b.Volume()
}
