// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "iter"

// ContourIter walks a contour's point/flag stream and reconstructs its
// discrete segments, including the implicit closing segment back to the
// first point. The cursor starts just past the first point and advances by
// 1, 2 or 3 depending on how many control points follow the current
// endpoint. A fresh iterator can be created at any time; advancing one
// never mutates the underlying contour.
type ContourIter struct {
	contour *Contour
	index   uint32
}

// Iter returns a new iterator positioned at the contour's first segment.
func (c *Contour) Iter() ContourIter {
	return ContourIter{contour: c, index: 1}
}

// Next produces the next segment, or false after the closing segment has
// been produced. The total number of segments equals the number of
// endpoints in the contour. Next does not allocate.
func (it *ContourIter) Next() (Segment, bool) {
	contour := it.contour
	if it.index == contour.Len()+1 {
		return Segment{}, false
	}

	point0Index := it.index - 1
	point0 := contour.PositionOf(point0Index)
	if it.index == contour.Len() {
		// Implicit closing segment back to the start. A well-formed
		// contour ends with an endpoint, so this is always a line.
		it.index++
		segment := NewLineSegment(LineSegment{From: point0, To: contour.PositionOf(0)})
		segment.Flags = SegmentClosesSubpath
		return segment, true
	}

	point1Index := it.index
	it.index++
	point1 := contour.PositionOf(point1Index)
	if contour.PointIsEndpoint(point1Index) {
		return NewLineSegment(LineSegment{From: point0, To: point1}), true
	}

	point2Index := it.index
	point2 := contour.PositionOf(point2Index)
	it.index++
	if contour.PointIsEndpoint(point2Index) {
		return NewQuadraticSegment(LineSegment{From: point0, To: point2}, point1), true
	}

	point3Index := it.index
	point3 := contour.PositionOf(point3Index)
	it.index++
	if !contour.PointIsEndpoint(point3Index) {
		panic("outline: more than two consecutive control points")
	}
	return NewCubicSegment(
		LineSegment{From: point0, To: point3},
		LineSegment{From: point1, To: point2}), true
}

// Segments returns the contour's segments as a range-able sequence,
// including the implicit closing segment. The contour must not be mutated
// while the sequence is being consumed.
func (c *Contour) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		it := c.Iter()
		for segment, ok := it.Next(); ok; segment, ok = it.Next() {
			if !yield(segment) {
				return
			}
		}
	}
}
