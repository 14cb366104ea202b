package structure

import "github.com/strukt-dev/strukt/internal/geom"

type transform struct {
	pos   geom.Vec3
	scale geom.Vec3
}

// World is an index-addressed arena of bodies. The slice returned by
// Bodies is the live storage: the support fixer mutates positions in it and
// the stress engine reads it.
type World struct {
	bodies []Body
	orig   []transform
}

func NewWorld() *World {
	return &World{}
}

// Add registers a body and snapshots its transform for ResetDeformation.
// Returns the body's arena index.
func (w *World) Add(b Body) int {
	if b.Scale == (geom.Vec3{}) {
		b.Scale = geom.Vec3{X: 1, Y: 1, Z: 1}
	}
	w.bodies = append(w.bodies, b)
	w.orig = append(w.orig, transform{pos: b.Position, scale: b.Scale})
	return len(w.bodies) - 1
}

// Remove deregisters the body at index i. Later bodies shift down, matching
// removal of the owning geometry from the scene.
func (w *World) Remove(i int) {
	if i < 0 || i >= len(w.bodies) {
		return
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	w.orig = append(w.orig[:i], w.orig[i+1:]...)
}

func (w *World) Len() int { return len(w.bodies) }

func (w *World) At(i int) *Body { return &w.bodies[i] }

func (w *World) Bodies() []Body { return w.bodies }

// RestoreTransforms puts every body back at its snapshotted position and
// scale, undoing any applied deformation.
func (w *World) RestoreTransforms() {
	for i := range w.bodies {
		w.bodies[i].Position = w.orig[i].pos
		w.bodies[i].Scale = w.orig[i].scale
	}
}

// Rebase re-snapshots current transforms as the new originals. Called after
// the support fixer moves bodies, so a later RestoreTransforms keeps the
// corrected layout.
func (w *World) Rebase() {
	for i := range w.bodies {
		w.orig[i] = transform{pos: w.bodies[i].Position, scale: w.bodies[i].Scale}
	}
}
