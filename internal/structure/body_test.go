package structure

import (
	"math"
	"testing"

	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/material"
)

func TestNewBoxDefaults(t *testing.T) {
	b := NewBox(geom.Vec3{Y: 0.5}, geom.Vec3{X: 1, Y: 1, Z: 1})

	if b.Props != material.Lookup(material.Steel) {
		t.Error("default material should be steel")
	}
	if b.Boundary != Free {
		t.Error("default boundary should be free")
	}
	if b.Half != (geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Errorf("half extents = %v", b.Half)
	}
	if b.Scale != (geom.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale = %v", b.Scale)
	}
}

func TestBoxVolumeMass(t *testing.T) {
	b := NewBox(geom.Vec3{}, geom.Vec3{X: 2, Y: 1, Z: 3})

	if got := b.Volume(); math.Abs(got-6) > 1e-12 {
		t.Errorf("volume = %v, want 6", got)
	}
	if got := b.Mass(); math.Abs(got-6*7850) > 1e-9 {
		t.Errorf("mass = %v, want %v", got, 6*7850.0)
	}
}

func TestCylinderVolume(t *testing.T) {
	b := NewCylinder(geom.Vec3{}, 0.5, 2)

	want := math.Pi * 0.25 * 2
	if got := b.Volume(); math.Abs(got-want) > 1e-12 {
		t.Errorf("volume = %v, want %v", got, want)
	}
	if b.Half != (geom.Vec3{X: 0.5, Y: 1, Z: 0.5}) {
		t.Errorf("half = %v", b.Half)
	}
}

func TestBodyFaces(t *testing.T) {
	b := NewBox(geom.Vec3{X: 1, Y: 2, Z: 3}, geom.Vec3{X: 2, Y: 4, Z: 6})

	if b.Top() != 4 || b.Bottom() != 0 {
		t.Errorf("top/bottom = %v/%v", b.Top(), b.Bottom())
	}
	if min, max := b.FootprintX(); min != 0 || max != 2 {
		t.Errorf("footprint x = [%v, %v]", min, max)
	}
	if min, max := b.FootprintZ(); min != 0 || max != 6 {
		t.Errorf("footprint z = [%v, %v]", min, max)
	}
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		in      string
		want    BoundaryCondition
		wantErr bool
	}{
		{"free", Free, false},
		{"Pinned", Pinned, false},
		{"FIXED", Fixed, false},
		{"welded", 0, true},
	}

	for _, tt := range tests {
		bc, err := ParseBoundary(tt.in)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseBoundary(%q) err = %v", tt.in, err)
			continue
		}
		if err == nil && bc != tt.want {
			t.Errorf("ParseBoundary(%q) = %v, want %v", tt.in, bc, tt.want)
		}
	}
}

func TestWorldAddRemove(t *testing.T) {
	w := NewWorld()
	i0 := w.Add(NewBox(geom.Vec3{Y: 0.5}, geom.Vec3{X: 1, Y: 1, Z: 1}))
	i1 := w.Add(NewBox(geom.Vec3{Y: 1.5}, geom.Vec3{X: 1, Y: 1, Z: 1}))

	if i0 != 0 || i1 != 1 || w.Len() != 2 {
		t.Fatalf("unexpected indices %d, %d (len %d)", i0, i1, w.Len())
	}

	w.Remove(0)
	if w.Len() != 1 {
		t.Fatalf("len after remove = %d", w.Len())
	}
	if w.At(0).Position.Y != 1.5 {
		t.Errorf("remaining body position = %v", w.At(0).Position)
	}

	w.Remove(5) // out of range, no-op
	if w.Len() != 1 {
		t.Error("out-of-range remove should be a no-op")
	}
}

func TestWorldRestoreTransforms(t *testing.T) {
	w := NewWorld()
	w.Add(NewBox(geom.Vec3{Y: 0.5}, geom.Vec3{X: 1, Y: 1, Z: 1}))

	b := w.At(0)
	b.Scale = geom.Vec3{X: 1.2, Y: 1.2, Z: 1.2}
	b.Position.Y = 9

	w.RestoreTransforms()
	if b.Scale != (geom.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale not restored: %v", b.Scale)
	}
	if b.Position.Y != 0.5 {
		t.Errorf("position not restored: %v", b.Position)
	}
}

func TestWorldRebase(t *testing.T) {
	w := NewWorld()
	w.Add(NewBox(geom.Vec3{Y: 5}, geom.Vec3{X: 1, Y: 1, Z: 1}))

	w.At(0).Position.Y = 0.5 // as the support fixer would
	w.Rebase()

	w.At(0).Scale = geom.Vec3{X: 2, Y: 2, Z: 2}
	w.RestoreTransforms()

	if w.At(0).Position.Y != 0.5 {
		t.Errorf("rebased position should survive restore: %v", w.At(0).Position)
	}
}
