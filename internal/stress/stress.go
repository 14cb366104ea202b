// Package stress computes heuristic per-body stress from a single applied
// force. It is not a finite-element solver: the goal is determinism,
// boundedness and visual plausibility. Each body is evaluated independently
// from the shared immutable force, so the per-body pass runs concurrently;
// results land in an index-aligned side table, never in the geometry.
package stress

import (
	"errors"
	"fmt"
	"math"

	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/material"
	"github.com/strukt-dev/strukt/internal/structure"
)

// Engine tuning. ForceScale (K) converts scene-unit force into Pa-scale
// effective force; it is an empirical constant chosen so typical inputs
// land in a 0-2 stress-ratio range, and is overridable, not re-derivable.
const (
	DefaultForceScale = 1e8
	DefaultGravity    = 9.81

	// alignmentThreshold splits compression (> +t) and tension (< -t)
	// from shear.
	alignmentThreshold = 0.7
)

// ForceType classifies how the applied force loads a body.
type ForceType int

const (
	Compression ForceType = iota
	Tension
	Shear
	// Bending is reserved; it is only produced when a caller asks for its
	// limit explicitly.
	Bending
)

var forceTypeNames = [...]string{"compression", "tension", "shear", "bending"}

func (t ForceType) String() string {
	if t < 0 || int(t) >= len(forceTypeNames) {
		return fmt.Sprintf("forcetype(%d)", int(t))
	}
	return forceTypeNames[t]
}

// Classify maps an alignment value in [-1, 1] to a force type.
func Classify(alignment float64) ForceType {
	switch {
	case alignment > alignmentThreshold:
		return Compression
	case alignment < -alignmentThreshold:
		return Tension
	default:
		return Shear
	}
}

// Limit returns the material strength the given force type is measured
// against.
func Limit(t ForceType, p *material.Properties) float64 {
	switch t {
	case Compression:
		return p.MaxCompressive
	case Tension:
		return p.MaxTensile
	case Shear:
		return p.MaxShear
	default:
		return math.Min(p.MaxTensile, p.MaxCompressive)
	}
}

// Force is the single active load of a simulation run. Direction should be
// a unit vector; Run normalizes it defensively.
type Force struct {
	Origin    geom.Vec3
	Direction geom.Vec3
	Magnitude float64
}

// BodyStress is the per-body simulation output. Ratio is dimensionless
// load over strength; 1.0 is the failure threshold.
type BodyStress struct {
	Ratio  float64
	Failed bool
	Type   ForceType
}

// Result summarizes one run. PerBody is index-aligned with the input
// bodies.
type Result struct {
	TotalBodies  int
	FailedBodies int
	MaxRatio     float64
	PerBody      []BodyStress
}

// Engine evaluates stress for body sets. Fields may be adjusted before the
// first Run; NewEngine fills in the reference defaults.
type Engine struct {
	ForceScale float64
	Gravity    float64
	Workers    int
}

func NewEngine() *Engine {
	return &Engine{
		ForceScale: DefaultForceScale,
		Gravity:    DefaultGravity,
	}
}

// Run computes stress for every body under f. It is a pure function of its
// inputs plus the material catalog: repeated calls return bit-identical
// ratios. Structural failure is an output, never an error.
func (e *Engine) Run(bodies []structure.Body, f Force) *Result {
	per := make([]BodyStress, len(bodies))
	dir := f.Direction.Normalized()

	parallelFor(len(bodies), e.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			per[i] = e.evaluate(&bodies[i], f.Origin, dir, f.Magnitude)
		}
	})

	res := &Result{TotalBodies: len(bodies), PerBody: per}
	for i := range per {
		if per[i].Failed {
			res.FailedBodies++
		}
		if per[i].Ratio > res.MaxRatio {
			res.MaxRatio = per[i].Ratio
		}
	}
	return res
}

func (e *Engine) evaluate(b *structure.Body, origin, dir geom.Vec3, magnitude float64) BodyStress {
	if !b.Position.IsFinite() || !origin.IsFinite() {
		return BodyStress{Type: Shear}
	}

	dist := geom.Distance(b.Position, origin)
	toBody := b.Position.Sub(origin).Normalized()
	alignment := toBody.Dot(dir)

	// Inverse-square decay, floored at one meter to avoid the singularity
	// when the force origin sits inside the body.
	distanceFactor := 1 / math.Max(1, dist*dist)
	effective := magnitude * math.Abs(alignment) * distanceFactor * e.ForceScale

	ftype := Classify(alignment)
	ratio := effective / Limit(ftype, b.Props)

	// Fixed bodies are anchors and carry no self-weight in this model.
	if b.Boundary != structure.Fixed {
		ratio += b.Mass() * e.Gravity / b.Props.MaxCompressive
	}

	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 0 {
		ratio = 0
	}

	return BodyStress{Ratio: ratio, Failed: ratio >= 1.0, Type: ftype}
}

// ErrNoForce is returned by Session.Run when no force has been set.
var ErrNoForce = errors.New("stress: no active force")
