package sim

import (
	"fmt"
	"math"
)

// Vec represents a 2D vector in world space (y grows downward)
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Polar builds a vector of length r pointing at angle degrees
func Polar(r, degrees float64) Vec {
	rad := degrees * math.Pi / 180
	return Vec{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Mul(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Div(s float64) Vec { return Vec{v.X / s, v.Y / s} }

func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }

// Mag returns the vector's length
func (v Vec) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Norm returns the unit vector in v's direction, or the zero vector for a zero input
func (v Vec) Norm() Vec {
	m := v.Mag()
	if m == 0 {
		return Vec{}
	}
	return Vec{v.X / m, v.Y / m}
}

// Angle returns the heading of v in degrees
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Dist returns the distance between two points
func Dist(a, b Vec) float64 {
	return a.Sub(b).Mag()
}

// Rounded returns v with both components rounded to the nearest integer
func (v Vec) Rounded() Vec {
	return Vec{math.Round(v.X), math.Round(v.Y)}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}
