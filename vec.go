package blit

import "math"

// Vec2 represents a 2D vector. It is used both for positions in the
// sprite's local space and for UV coordinates in texture space.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulV returns the component-wise product of two vectors.
// UV transforms use this for the uv_scale factor.
func (v Vec2) MulV(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Fract returns the fractional part of each component, always in
// [0, 1) regardless of sign. This is the repeat-wrap operation applied
// to interpolated UVs before texel lookup.
func (v Vec2) Fract() Vec2 {
	return Vec2{X: fract(v.X), Y: fract(v.Y)}
}

func fract(x float64) float64 {
	f := x - math.Floor(x)
	// math.Floor guarantees f in [0, 1), but guard against f == 1
	// from rounding at very large magnitudes.
	if f >= 1 {
		f = 0
	}
	return f
}

// Vec4 represents a 4D homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// PerspectiveDivide returns the normalized device coordinates (x/w,
// y/w). The caller must check W != 0 first.
func (v Vec4) PerspectiveDivide() Vec2 {
	return Vec2{X: v.X / v.W, Y: v.Y / v.W}
}
