// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"iter"

	"github.com/chewxy/math32"
)

// monotonicEpsilon guards divisions when locating curve extrema.
const monotonicEpsilon = 1e-6

// MakeMonotonic converts a segment sequence into an equivalent sequence in
// which every segment's vertical extent is non-reversing. Lines pass
// through unchanged; quadratics are split at their single y extremum and
// cubics at up to two. Replaying the output through [Contour.PushSegment]
// reconstructs a valid y-monotonic contour.
func MakeMonotonic(segments iter.Seq[Segment]) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for segment := range segments {
			if segment.IsNone() {
				continue
			}
			if !splitAtYExtrema(segment, yield) {
				return
			}
		}
	}
}

// splitAtYExtrema yields the y-monotonic pieces of one segment.
func splitAtYExtrema(segment Segment, yield func(Segment) bool) bool {
	switch segment.Kind {
	case SegmentQuadratic:
		t, ok := quadYExtremum(
			segment.Baseline.From.Y, segment.Ctrl.From.Y, segment.Baseline.To.Y)
		if !ok {
			return yield(segment)
		}
		before, after := segment.Split(t)
		return yield(before) && yield(after)

	case SegmentCubic:
		roots, n := cubicYExtrema(segment.Baseline.From.Y, segment.Ctrl.From.Y,
			segment.Ctrl.To.Y, segment.Baseline.To.Y)
		switch n {
		case 1:
			before, after := segment.Split(roots[0])
			return yield(before) && yield(after)
		case 2:
			before, rest := segment.Split(roots[0])
			// Remap the second root into the remaining piece's parameter
			// space.
			mid, after := rest.Split((roots[1] - roots[0]) / (1 - roots[0]))
			return yield(before) && yield(mid) && yield(after)
		default:
			return yield(segment)
		}

	default:
		return yield(segment)
	}
}

// isNotMonotonic checks if values a, b, c are not monotonic (have an
// extremum between the outer values).
func isNotMonotonic(a, b, c float32) bool {
	ab := a - b
	bc := b - c
	if ab < 0 {
		bc = -bc
	}
	return ab == 0 || bc < 0
}

// quadYExtremum returns the parameter of a quadratic's y extremum, if it
// lies strictly inside (0, 1).
//
// dy/dt = 2(1-t)(y1-y0) + 2t(y2-y1) = 0 solves to t = (y0-y1)/(y0-2y1+y2).
func quadYExtremum(y0, y1, y2 float32) (float32, bool) {
	if !isNotMonotonic(y0, y1, y2) {
		return 0, false
	}
	denom := y0 - 2*y1 + y2
	if math32.Abs(denom) < monotonicEpsilon {
		return 0, false
	}
	t := (y0 - y1) / denom
	if t <= 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

// cubicYExtrema returns the parameters of a cubic's y extrema inside
// (0, 1), in increasing order. The derivative of a cubic is a quadratic:
//
//	dy/dt = 3(1-t)^2(y1-y0) + 6(1-t)t(y2-y1) + 3t^2(y3-y2)
func cubicYExtrema(y0, y1, y2, y3 float32) ([2]float32, int) {
	a := -y0 + 3*y1 - 3*y2 + y3
	b := 2 * (y0 - 2*y1 + y2)
	c := y1 - y0
	return solveQuadraticInUnitRange(a, b, c)
}

// solveQuadraticInUnitRange solves a*t^2 + b*t + c = 0 and returns the
// roots strictly inside (0, 1) in increasing order.
func solveQuadraticInUnitRange(a, b, c float32) ([2]float32, int) {
	var roots [2]float32
	n := 0

	push := func(t float32) {
		if t <= monotonicEpsilon || t >= 1-monotonicEpsilon {
			return
		}
		if n == 1 && math32.Abs(t-roots[0]) < monotonicEpsilon {
			return
		}
		roots[n] = t
		n++
	}

	if math32.Abs(a) < monotonicEpsilon {
		// Linear case: b*t + c = 0.
		if math32.Abs(b) >= monotonicEpsilon {
			push(-c / b)
		}
		return roots, n
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return roots, n
	}

	sqrtD := math32.Sqrt(discriminant)
	push((-b - sqrtD) / (2 * a))
	push((-b + sqrtD) / (2 * a))

	if n == 2 && roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots, n
}
