package stress

import (
	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/structure"
)

const (
	// DefaultDeformationGain scales stress ratio into visual growth.
	DefaultDeformationGain = 0.1

	// centroidGuard: below this centroid distance the local ratio is
	// pinned to 1 to avoid dividing by (nearly) zero.
	centroidGuard = 0.01

	// pointStressCap bounds the per-point field.
	pointStressCap = 2.0
)

// PointStress samples the closed-form stress field at a point belonging to
// a body. Points nearer the force origin than the body's centroid are
// amplified, farther points attenuated; output is clamped to [0, 2]. Pure:
// renderers can sample it for any mesh representation.
func PointStress(p geom.Vec3, b *structure.Body, f Force, bodyRatio float64) float64 {
	centroidDist := geom.Distance(b.Position, f.Origin)

	localRatio := 1.0
	if centroidDist >= centroidGuard {
		localRatio = geom.Distance(p, f.Origin) / centroidDist
	}

	multiplier := geom.Clamp(2.0-localRatio, 0.5, 1.5)
	return geom.Clamp(bodyRatio*multiplier, 0, pointStressCap)
}

// DeformationScale is the uniform visual scale multiplier for a stressed
// body.
func DeformationScale(ratio, gain, factor float64) float64 {
	return 1 + ratio*gain*factor
}

// Session binds a world, an engine and the single active force, and owns
// the mutable per-run state: the latest result and any applied visual
// deformation.
type Session struct {
	world  *structure.World
	engine *Engine
	gain   float64
	force  *Force
	last   *Result
}

func NewSession(w *structure.World, e *Engine) *Session {
	return &Session{world: w, engine: e, gain: DefaultDeformationGain}
}

// SetForce installs the active force, replacing any previous one.
func (s *Session) SetForce(f Force) {
	s.force = &f
}

func (s *Session) ActiveForce() (Force, bool) {
	if s.force == nil {
		return Force{}, false
	}
	return *s.force, true
}

// Run evaluates the world under the active force.
func (s *Session) Run() (*Result, error) {
	if s.force == nil {
		return nil, ErrNoForce
	}
	s.last = s.engine.Run(s.world.Bodies(), *s.force)
	return s.last, nil
}

// Last returns the most recent result, or nil before the first run.
func (s *Session) Last() *Result { return s.last }

// ApplyDeformation scales every non-Fixed body by its stress ratio.
// Fixed bodies are anchors and never deform, regardless of ratio.
func (s *Session) ApplyDeformation(factor float64) {
	if s.last == nil {
		return
	}
	bodies := s.world.Bodies()
	for i := range bodies {
		if i >= len(s.last.PerBody) || bodies[i].Boundary == structure.Fixed {
			continue
		}
		m := DeformationScale(s.last.PerBody[i].Ratio, s.gain, factor)
		bodies[i].Scale = geom.Vec3{X: m, Y: m, Z: m}
	}
}

// ResetDeformation restores every body's registration-time transform.
func (s *Session) ResetDeformation() {
	s.world.RestoreTransforms()
}

// Reset clears stress results and derived visual state without
// deregistering bodies.
func (s *Session) Reset() {
	s.last = nil
	s.world.RestoreTransforms()
}

// ClearForce resets and additionally forgets the active force.
func (s *Session) ClearForce() {
	s.Reset()
	s.force = nil
}
