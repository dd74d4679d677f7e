// Package vmath provides the small float vector types shared by input
// state and interface code: 2D points for cursor coordinates and 3D
// vectors for motion.
package vmath

import (
	"math"
)

// Point is a 2D position in screen or interface coordinates
type Point struct {
	X, Y float64
}

// Vec3 is a float64 3D vector
type Vec3 struct {
	X, Y, Z float64
}

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float64 {
	return math.Sqrt(MagSq(v))
}

func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Clamp limits each component to [-limit, limit]
func Clamp(v Vec3, limit float64) Vec3 {
	return Vec3{
		X: clampF(v.X, limit),
		Y: clampF(v.Y, limit),
		Z: clampF(v.Z, limit),
	}
}

func clampF(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
