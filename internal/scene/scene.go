// Package scene loads structure descriptions: an ordered list of bodies
// and at most one applied force. The loader is the gatekeeper for
// degenerate input (zero sizes, non-finite coordinates, bad names) so the
// engine itself never sees it.
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/material"
	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/structure"
)

// BodySpec is one body entry in a scene file. Shape defaults to box,
// material to steel, boundary to free.
type BodySpec struct {
	Shape    string     `yaml:"shape,omitempty"`
	Position [3]float64 `yaml:"position,flow"`
	Size     [3]float64 `yaml:"size,flow,omitempty"`
	Radius   float64    `yaml:"radius,omitempty"`
	Height   float64    `yaml:"height,omitempty"`
	Material string     `yaml:"material,omitempty"`
	Boundary string     `yaml:"boundary,omitempty"`
}

// ForceSpec is the optional applied force of a scene.
type ForceSpec struct {
	Origin    [3]float64 `yaml:"origin,flow"`
	Direction [3]float64 `yaml:"direction,flow"`
	Magnitude float64    `yaml:"magnitude"`
}

// Scene is one structure document.
type Scene struct {
	Name   string     `yaml:"name,omitempty"`
	Bodies []BodySpec `yaml:"bodies"`
	Force  *ForceSpec `yaml:"force,omitempty"`
}

var ErrEmptyScene = errors.New("scene: no bodies")

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return &s, nil
}

func Save(path string, s *Scene) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func vec(a [3]float64) geom.Vec3 {
	return geom.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Build validates the scene and produces engine inputs. The returned force
// is nil when the scene declares none.
func (s *Scene) Build() ([]structure.Body, *stress.Force, error) {
	if len(s.Bodies) == 0 {
		return nil, nil, ErrEmptyScene
	}

	bodies := make([]structure.Body, 0, len(s.Bodies))
	for i, spec := range s.Bodies {
		b, err := spec.build()
		if err != nil {
			return nil, nil, fmt.Errorf("body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}

	if s.Force == nil {
		return bodies, nil, nil
	}
	f, err := s.Force.build()
	if err != nil {
		return nil, nil, fmt.Errorf("force: %w", err)
	}
	return bodies, f, nil
}

func (spec *BodySpec) build() (structure.Body, error) {
	pos := vec(spec.Position)
	if !pos.IsFinite() {
		return structure.Body{}, fmt.Errorf("non-finite position %v", spec.Position)
	}

	shape := structure.Box
	if spec.Shape != "" {
		var err error
		if shape, err = structure.ParseShape(spec.Shape); err != nil {
			return structure.Body{}, err
		}
	}

	var b structure.Body
	switch shape {
	case structure.Cylinder:
		if spec.Radius <= 0 || spec.Height <= 0 {
			return structure.Body{}, fmt.Errorf("cylinder needs positive radius and height, got r=%v h=%v", spec.Radius, spec.Height)
		}
		b = structure.NewCylinder(pos, spec.Radius, spec.Height)
	default:
		size := vec(spec.Size)
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return structure.Body{}, fmt.Errorf("box needs positive size, got %v", spec.Size)
		}
		b = structure.NewBox(pos, size)
	}

	if spec.Material != "" {
		kind, err := material.ParseKind(spec.Material)
		if err != nil {
			return structure.Body{}, err
		}
		b.Props = material.Lookup(kind)
	}
	if spec.Boundary != "" {
		bc, err := structure.ParseBoundary(spec.Boundary)
		if err != nil {
			return structure.Body{}, err
		}
		b.Boundary = bc
	}
	return b, nil
}

func (spec *ForceSpec) build() (*stress.Force, error) {
	origin := vec(spec.Origin)
	dir := vec(spec.Direction)
	if !origin.IsFinite() || !dir.IsFinite() {
		return nil, errors.New("non-finite force")
	}
	if dir.Length() < 1e-12 {
		return nil, errors.New("zero direction")
	}
	if spec.Magnitude < 0 {
		return nil, fmt.Errorf("negative magnitude %v", spec.Magnitude)
	}
	return &stress.Force{
		Origin:    origin,
		Direction: dir.Normalized(),
		Magnitude: spec.Magnitude,
	}, nil
}

// World builds the scene into a fresh arena.
func (s *Scene) World() (*structure.World, *stress.Force, error) {
	bodies, f, err := s.Build()
	if err != nil {
		return nil, nil, err
	}
	w := structure.NewWorld()
	for _, b := range bodies {
		w.Add(b)
	}
	return w, f, nil
}
