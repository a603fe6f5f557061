package sim

import "math"

// Vec is a 2D vector in arena coordinates (pixels, +y down).
type Vec struct {
	X, Y float64
}

// FromAngle returns a vector of the given length pointing along angle (radians).
func FromAngle(angle, length float64) Vec {
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// LenSq returns the squared length. Use it when comparing distances to avoid the sqrt.
func (v Vec) LenSq() float64 { return v.Dot(v) }

func (v Vec) Len() float64 { return math.Sqrt(v.LenSq()) }

// Rect is an axis-aligned rectangle anchored at the origin.
type Rect struct {
	W, H float64
}

// Clamp keeps a circle of radius r fully inside the rectangle.
func (r Rect) Clamp(p Vec, radius float64) Vec {
	return Vec{
		X: clamp(p.X, radius, r.W-radius),
		Y: clamp(p.Y, radius, r.H-radius),
	}
}

// Touches reports whether a circle of radius r touches or crosses any edge.
func (r Rect) Touches(p Vec, radius float64) bool {
	return p.X-radius <= 0 || p.Y-radius <= 0 || p.X+radius >= r.W || p.Y+radius >= r.H
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
