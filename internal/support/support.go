// Package support derives the "rests on" relation between bodies and the
// ground plane. The contact test is an interval-overlap heuristic, not a
// contact solver: a body is supported when its bottom face sits within a
// tolerance of another body's top face and their horizontal footprints
// overlap on both axes. Relations are recomputed from geometry on every
// pass and never cached.
package support

import (
	"math"
	"sort"

	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/structure"
)

// DefaultEpsilon is the face-adjacency tolerance in scene meters. It is an
// empirical value tuned for visual plausibility, not derived from physics.
const DefaultEpsilon = 0.1

// Report is the outcome of one validation pass. Floating holds the arena
// indices of bodies reachable from neither the ground nor another body.
type Report struct {
	Valid    bool
	Floating []int
}

// Checker validates and repairs support graphs. The zero value is not
// usable; construct with NewChecker.
type Checker struct {
	Epsilon float64
}

func NewChecker() *Checker {
	return &Checker{Epsilon: DefaultEpsilon}
}

// grounded reports whether the body's bottom face sits on the ground plane.
func (c *Checker) grounded(b *structure.Body) bool {
	return math.Abs(b.Position.Y-b.Half.Y) < c.Epsilon
}

// verticallyAdjacent reports whether upper's bottom face meets lower's top
// face within the tolerance.
func (c *Checker) verticallyAdjacent(upper, lower *structure.Body) bool {
	return math.Abs(lower.Top()-upper.Bottom()) < c.Epsilon
}

// footprintsOverlap reports whether two bodies intersect when projected
// onto the ground plane. Both axes must overlap.
func footprintsOverlap(a, b *structure.Body) bool {
	axMin, axMax := a.FootprintX()
	bxMin, bxMax := b.FootprintX()
	if !geom.IntervalsOverlap(axMin, axMax, bxMin, bxMax) {
		return false
	}
	azMin, azMax := a.FootprintZ()
	bzMin, bzMax := b.FootprintZ()
	return geom.IntervalsOverlap(azMin, azMax, bzMin, bzMax)
}

// Validate checks that every body rests on the ground or on another body.
// It never fails: pathological inputs are judged by the same rules, and an
// empty set is vacuously valid.
func (c *Checker) Validate(bodies []structure.Body) Report {
	r := Report{Valid: true}
	for i := range bodies {
		if c.supported(bodies, i) {
			continue
		}
		r.Valid = false
		r.Floating = append(r.Floating, i)
	}
	return r
}

func (c *Checker) supported(bodies []structure.Body, i int) bool {
	b := &bodies[i]
	if c.grounded(b) {
		return true
	}
	for j := range bodies {
		if j == i {
			continue
		}
		if c.verticallyAdjacent(b, &bodies[j]) && footprintsOverlap(b, &bodies[j]) {
			return true
		}
	}
	return false
}

// Fix repositions floating bodies onto their nearest valid support and
// returns the indices it moved. Bodies are processed in ascending order of
// current height, and each correction is folded back before the next body
// is considered: a body may come to rest on one already fixed below it.
// This pass is strictly sequential and must not be reordered.
func (c *Checker) Fix(bodies []structure.Body) []int {
	order := make([]int, len(bodies))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return bodies[order[a]].Position.Y < bodies[order[b]].Position.Y
	})

	var moved []int
	for pos, i := range order {
		b := &bodies[i]
		if c.grounded(b) {
			continue
		}
		if c.restsOnPlaced(bodies, order[:pos], b) {
			continue
		}

		// Default to ground; stack on the highest already-placed body
		// whose footprint overlaps.
		supportY := 0.0
		for _, j := range order[:pos] {
			other := &bodies[j]
			if footprintsOverlap(b, other) && other.Top() > supportY {
				supportY = other.Top()
			}
		}
		b.Position.Y = supportY + b.Half.Y
		moved = append(moved, i)
	}
	return moved
}

func (c *Checker) restsOnPlaced(bodies []structure.Body, placed []int, b *structure.Body) bool {
	for _, j := range placed {
		if c.verticallyAdjacent(b, &bodies[j]) && footprintsOverlap(b, &bodies[j]) {
			return true
		}
	}
	return false
}
