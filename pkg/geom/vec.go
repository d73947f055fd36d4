// Package geom provides 2D vector and segment math for floor-plan geometry.
package geom

import "math"

// Vec2 is a 2D vector. It doubles as a point: wall corners, outline
// vertices and direction/normal vectors all share this type.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector. The zero vector normalizes to the
// zero vector rather than failing; callers must tolerate a zero result.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// PerpCW returns v rotated 90 degrees clockwise: (x, y) -> (y, -x).
// For the edge traversal order used by outline reconstruction this
// rotation yields the outward-pointing normal, no centroid correction
// needed.
func (v Vec2) PerpCW() Vec2 {
	return Vec2{v.Y, -v.X}
}
