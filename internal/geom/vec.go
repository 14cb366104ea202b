package geom

import "math"

// Vec3 is a point or direction in scene space. Y is up.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector, or the zero vector when the length
// is too small to divide by safely.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IntervalsOverlap reports whether [aMin, aMax] and [bMin, bMax] intersect.
// Touching endpoints count as overlapping.
func IntervalsOverlap(aMin, aMax, bMin, bMax float64) bool {
	return !(aMax < bMin || bMax < aMin)
}
