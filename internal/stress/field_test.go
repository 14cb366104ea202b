package stress

import (
	"math"
	"testing"

	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/structure"
)

func TestPointStressAmplification(t *testing.T) {
	b := steelCube() // centroid (0, 0.5, 0)
	f := downForce(1)
	ratio := 0.5

	// Centroid distance to origin is 1.5. The top face (distance 1.0) is
	// nearer the origin and must be amplified; the bottom face (distance
	// 2.0) attenuated.
	top := PointStress(geom.Vec3{Y: 1}, &b, f, ratio)
	center := PointStress(b.Position, &b, f, ratio)
	bottom := PointStress(geom.Vec3{}, &b, f, ratio)

	if math.Abs(center-ratio) > 1e-12 {
		t.Errorf("centroid point stress = %v, want %v", center, ratio)
	}
	if top <= center {
		t.Errorf("near point %v should exceed centroid %v", top, center)
	}
	if bottom >= center {
		t.Errorf("far point %v should be below centroid %v", bottom, center)
	}

	wantTop := ratio * (2.0 - 1.0/1.5)
	if math.Abs(top-wantTop) > 1e-12 {
		t.Errorf("top point stress = %v, want %v", top, wantTop)
	}
}

func TestPointStressMultiplierClamp(t *testing.T) {
	b := steelCube()
	f := downForce(1)

	// A point at the origin itself: localRatio 0, multiplier clamps at 1.5.
	near := PointStress(f.Origin, &b, f, 1.0)
	if math.Abs(near-1.5) > 1e-12 {
		t.Errorf("near clamp = %v, want 1.5", near)
	}

	// A very distant point: multiplier clamps at 0.5.
	far := PointStress(geom.Vec3{Y: -100}, &b, f, 1.0)
	if math.Abs(far-0.5) > 1e-12 {
		t.Errorf("far clamp = %v, want 0.5", far)
	}
}

func TestPointStressCap(t *testing.T) {
	b := steelCube()
	f := downForce(1)

	if got := PointStress(f.Origin, &b, f, 5.0); got != 2.0 {
		t.Errorf("point stress cap = %v, want 2.0", got)
	}
}

func TestPointStressCentroidGuard(t *testing.T) {
	b := steelCube()
	f := Force{Origin: b.Position, Direction: geom.Vec3{Y: -1}, Magnitude: 1}

	// Origin coincides with the centroid: local ratio pinned to 1.
	got := PointStress(geom.Vec3{X: 0.4, Y: 0.5}, &b, f, 0.8)
	if math.Abs(got-0.8) > 1e-12 {
		t.Errorf("guarded point stress = %v, want 0.8", got)
	}
}

func TestDeformationScale(t *testing.T) {
	if got := DeformationScale(0.5, DefaultDeformationGain, 2); math.Abs(got-1.1) > 1e-12 {
		t.Errorf("scale = %v, want 1.1", got)
	}
	if got := DeformationScale(0, DefaultDeformationGain, 3); got != 1 {
		t.Errorf("zero ratio scale = %v, want 1", got)
	}
}

func TestSessionLifecycle(t *testing.T) {
	w := structure.NewWorld()
	w.Add(steelCube())
	fixed := steelCube()
	fixed.Boundary = structure.Fixed
	w.Add(fixed)

	s := NewSession(w, NewEngine())

	if _, err := s.Run(); err != ErrNoForce {
		t.Fatalf("expected ErrNoForce, got %v", err)
	}

	s.SetForce(downForce(5))
	res, err := s.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res != s.Last() {
		t.Error("Last should return the run result")
	}

	s.ApplyDeformation(1)
	if w.At(0).Scale == (geom.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Error("free body scale should change under deformation")
	}
	if w.At(1).Scale != (geom.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("fixed body scale changed: %v", w.At(1).Scale)
	}

	wantScale := DeformationScale(res.PerBody[0].Ratio, DefaultDeformationGain, 1)
	if got := w.At(0).Scale.X; math.Abs(got-wantScale) > 1e-12 {
		t.Errorf("deformed scale = %v, want %v", got, wantScale)
	}

	s.ResetDeformation()
	if w.At(0).Scale != (geom.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale not restored: %v", w.At(0).Scale)
	}

	s.Reset()
	if s.Last() != nil {
		t.Error("Reset should clear the last result")
	}
	if _, ok := s.ActiveForce(); !ok {
		t.Error("Reset should keep the active force")
	}

	s.ClearForce()
	if _, ok := s.ActiveForce(); ok {
		t.Error("ClearForce should forget the force")
	}
	if _, err := s.Run(); err != ErrNoForce {
		t.Errorf("expected ErrNoForce after ClearForce, got %v", err)
	}
}
