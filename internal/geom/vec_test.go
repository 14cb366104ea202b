package geom

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", scaled)
	}

	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestVec3Length(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected float64
	}{
		{Vec3{3, 4, 0}, 5},
		{Vec3{1, 0, 0}, 1},
		{Vec3{0, 0, 0}, 0},
		{Vec3{2, 3, 6}, 7},
	}

	for _, tt := range tests {
		if got := tt.v.Length(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Length(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{0, -3, 0}.Normalized()
	if v != (Vec3{0, -1, 0}) {
		t.Errorf("Normalized = %v, want (0,-1,0)", v)
	}

	zero := Vec3{}.Normalized()
	if zero != (Vec3{}) {
		t.Errorf("Normalized of zero vector = %v, want zero", zero)
	}
}

func TestVec3IsFinite(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		valid bool
	}{
		{"normal", Vec3{1, 2, 3}, true},
		{"zero", Vec3{}, true},
		{"with NaN", Vec3{1, math.NaN(), 0}, false},
		{"with +Inf", Vec3{math.Inf(1), 0, 0}, false},
		{"with -Inf", Vec3{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.valid {
				t.Errorf("IsFinite() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax float64
		want                   bool
	}{
		{"disjoint left", 0, 1, 2, 3, false},
		{"disjoint right", 2, 3, 0, 1, false},
		{"touching endpoints", 0, 1, 1, 2, true},
		{"partial overlap", 0, 2, 1, 3, true},
		{"containment", 0, 10, 2, 3, true},
		{"identical", 1, 2, 1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntervalsOverlap(tt.aMin, tt.aMax, tt.bMin, tt.bMax); got != tt.want {
				t.Errorf("IntervalsOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(2.5, 0.5, 1.5); got != 1.5 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(-1, 0.5, 1.5); got != 0.5 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(1.0, 0.5, 1.5); got != 1.0 {
		t.Errorf("Clamp inside = %v", got)
	}
}
