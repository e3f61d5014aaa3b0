// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Transform2D represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transform2D struct {
	A, B, C float32
	D, E, F float32
}

// Identity2D returns the identity transformation.
func Identity2D() Transform2D {
	return Transform2D{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation transform.
func Translation(x, y float32) Transform2D {
	return Transform2D{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scaling creates a scaling transform.
func Scaling(x, y float32) Transform2D {
	return Transform2D{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotation creates a rotation transform (angle in radians).
func Rotation(angle float32) Transform2D {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return Transform2D{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Mul multiplies two transforms (t * other), so applying the result is
// equivalent to applying other first and then t.
func (t Transform2D) Mul(other Transform2D) Transform2D {
	return Transform2D{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// TransformPoint applies the transformation to a point.
func (t Transform2D) TransformPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Perspective is a non-affine point mapping incorporating perspective
// division. The matrix is a row-major 4x4 acting on column vectors
// (x, y, 0, 1); the transformed point is divided by the resulting w.
type Perspective struct {
	Matrix f32.Mat4
}

// IdentityPerspective returns the perspective that maps every point to
// itself.
func IdentityPerspective() Perspective {
	return Perspective{Matrix: f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// NewPerspective creates a perspective transform from a 4x4 matrix.
func NewPerspective(matrix f32.Mat4) Perspective {
	return Perspective{Matrix: matrix}
}

// TransformPoint applies the matrix to (p.X, p.Y, 0, 1) and performs the
// perspective divide.
func (t Perspective) TransformPoint(p Point) Point {
	m := &t.Matrix
	x := m[0]*p.X + m[1]*p.Y + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[7]
	w := m[12]*p.X + m[13]*p.Y + m[15]
	inv := 1 / w
	return Point{X: x * inv, Y: y * inv}
}
