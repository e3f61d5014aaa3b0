// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"strconv"
	"strings"
)

// PointFlags is a bit-set describing the role of one stored point.
// A point with no flags set is an endpoint the curve passes through.
type PointFlags uint8

// Point flag constants.
const (
	// PointFlagControl0 marks the sole control point of a quadratic
	// segment, or the first control point of a cubic segment.
	PointFlagControl0 PointFlags = 1 << iota
	// PointFlagControl1 marks the second control point of a cubic segment.
	PointFlagControl1
)

// pointKind is the decoded role of a stored point. Decoding the flag bits
// into an explicit variant keeps the segment reconstruction branches
// exhaustive instead of scattering bit tests.
type pointKind uint8

const (
	pointEndpoint pointKind = iota
	pointControl0
	pointControl1
)

// Contour is a single closed sub-path: a dense sequence of points paired
// one-to-one with role flags, plus a cached bounding box. The index space
// is circular; there is always an implicit segment from the last point back
// to the first. A well-formed contour starts and ends with an endpoint.
type Contour struct {
	points []Point
	flags  []PointFlags
	bounds Rect
}

// NewContour returns an empty contour.
func NewContour() Contour {
	return Contour{}
}

// Take detaches the contour's storage and returns it as a new contour,
// leaving c empty but with capacity for the same number of points. Used to
// rebuild a contour's content in place without aliasing the storage being
// read.
func (c *Contour) Take() Contour {
	length := len(c.points)
	taken := *c
	*c = Contour{
		points: make([]Point, 0, length),
		flags:  make([]PointFlags, 0, length),
	}
	return taken
}

// IsEmpty returns true if the contour has no points.
func (c *Contour) IsEmpty() bool {
	return len(c.points) == 0
}

// Len returns the number of points in the contour.
func (c *Contour) Len() uint32 {
	return uint32(len(c.points))
}

// Bounds returns the axis-aligned bounding box of all points in the
// contour. The box is the zero Rect for an empty contour.
func (c *Contour) Bounds() Rect {
	return c.bounds
}

// PositionOf returns the point at the given index.
func (c *Contour) PositionOf(index uint32) Point {
	return c.points[index]
}

// FlagsOf returns the role flags of the point at the given index.
func (c *Contour) FlagsOf(index uint32) PointFlags {
	return c.flags[index]
}

// LastPosition returns the most recently pushed point, if any.
func (c *Contour) LastPosition() (Point, bool) {
	if c.IsEmpty() {
		return Point{}, false
	}
	return c.points[len(c.points)-1], true
}

// unionPoint widens the cached bounds to cover p. The first point of a
// contour resets the bounds to a zero-size box at that point.
func (c *Contour) unionPoint(p Point, first bool) {
	if first {
		c.bounds = RectFromPoint(p)
		return
	}
	c.bounds = c.bounds.ExtendedByPoint(p)
}

// PushPoint appends one point/flag pair and incrementally unions the point
// into the cached bounds. O(1) per call.
func (c *Contour) PushPoint(point Point, flags PointFlags) {
	c.unionPoint(point, c.IsEmpty())
	c.points = append(c.points, point)
	c.flags = append(c.flags, flags)
}

// PushSegment appends the points implied by the segment. The segment's
// start endpoint is assumed to equal the contour's current last point and
// is only stored when the contour is still empty. A None segment is a
// no-op, and so is a line flagged as closing its subpath: the closing edge
// back to the start is always implicit, never stored. A curved closing
// segment still stores its geometry since the curve's shape cannot be
// recovered from the implicit chord. This makes PushSegment the exact
// inverse of segment iteration: replaying every segment of a contour into
// a fresh one reproduces its points and flags.
func (c *Contour) PushSegment(segment Segment) {
	if segment.IsNone() {
		return
	}
	if segment.Flags&SegmentClosesSubpath != 0 && segment.IsLine() {
		return
	}

	if c.IsEmpty() {
		c.PushPoint(segment.Baseline.From, 0)
	}

	if !segment.IsLine() {
		c.PushPoint(segment.Ctrl.From, PointFlagControl0)
		if !segment.IsQuadratic() {
			c.PushPoint(segment.Ctrl.To, PointFlagControl1)
		}
	}

	c.PushPoint(segment.Baseline.To, 0)
}

// kindOf decodes the role of the point at the given index.
func (c *Contour) kindOf(index uint32) pointKind {
	switch c.flags[index] {
	case 0:
		return pointEndpoint
	case PointFlagControl0:
		return pointControl0
	case PointFlagControl1:
		return pointControl1
	default:
		panic("outline: point flagged as both control points")
	}
}

// PointIsEndpoint returns true if the point at the given index is an
// endpoint rather than a control point.
func (c *Contour) PointIsEndpoint(index uint32) bool {
	return c.kindOf(index) == pointEndpoint
}

// SegmentAfter reconstructs the segment whose baseline starts at the given
// point index. The index must refer to an endpoint; anything else is a
// programming error and panics. Lookahead wraps through the circular index
// space, so a segment spanning the end/start boundary is reconstructed
// correctly.
func (c *Contour) SegmentAfter(pointIndex uint32) Segment {
	if !c.PointIsEndpoint(pointIndex) {
		panic("outline: SegmentAfter called on a control point")
	}

	from := c.PositionOf(pointIndex)

	point1 := c.PointIndexAfter(pointIndex, 1)
	switch c.kindOf(point1) {
	case pointEndpoint:
		return NewLineSegment(LineSegment{From: from, To: c.PositionOf(point1)})
	case pointControl1:
		panic("outline: second cubic control point without a first")
	}

	ctrl0 := c.PositionOf(point1)
	point2 := c.PointIndexAfter(pointIndex, 2)
	switch c.kindOf(point2) {
	case pointEndpoint:
		return NewQuadraticSegment(
			LineSegment{From: from, To: c.PositionOf(point2)}, ctrl0)
	case pointControl0:
		panic("outline: consecutive first control points")
	}

	point3 := c.PointIndexAfter(pointIndex, 3)
	return NewCubicSegment(
		LineSegment{From: from, To: c.PositionOf(point3)},
		LineSegment{From: ctrl0, To: c.PositionOf(point2)})
}

// ring returns the circular index space of the contour.
func (c *Contour) ring() Ring {
	return Ring(len(c.points))
}

// PointIndexAfter returns the point index offset steps after the given
// index, wrapping around the circular index space. offset must be at most
// the contour length; segment lookahead never needs more than 3.
func (c *Contour) PointIndexAfter(pointIndex, offset uint32) uint32 {
	return c.ring().Add(pointIndex, offset)
}

// NextPointIndex returns the index after the given one, circularly.
func (c *Contour) NextPointIndex(pointIndex uint32) uint32 {
	return c.ring().Next(pointIndex)
}

// PrevPointIndex returns the index before the given one, circularly.
func (c *Contour) PrevPointIndex(pointIndex uint32) uint32 {
	return c.ring().Prev(pointIndex)
}

// NextEndpointIndex returns the index of the first endpoint after the
// given index, skipping interior control points.
func (c *Contour) NextEndpointIndex(pointIndex uint32) uint32 {
	for {
		pointIndex = c.NextPointIndex(pointIndex)
		if c.PointIsEndpoint(pointIndex) {
			return pointIndex
		}
	}
}

// PrevEndpointIndex returns the index of the first endpoint before the
// given index, skipping interior control points.
func (c *Contour) PrevEndpointIndex(pointIndex uint32) uint32 {
	for {
		pointIndex = c.PrevPointIndex(pointIndex)
		if c.PointIsEndpoint(pointIndex) {
			return pointIndex
		}
	}
}

// PointIsLogicallyAbove reports whether point a sorts above point b:
// strictly smaller y, or equal y with the smaller index. The index
// tie-break makes sorts over coincident-height points deterministic.
func (c *Contour) PointIsLogicallyAbove(a, b uint32) bool {
	ay, by := c.points[a].Y, c.points[b].Y
	return ay < by || (ay == by && a < b)
}

// mapPoints applies a pure point mapping to every stored point and rebuilds
// the cached bounds from scratch in the same pass.
func (c *Contour) mapPoints(f func(Point) Point) {
	for i, point := range c.points {
		point = f(point)
		c.points[i] = point
		c.unionPoint(point, i == 0)
	}
}

// Transform applies an affine transform to every point in place.
func (c *Contour) Transform(transform Transform2D) {
	c.mapPoints(transform.TransformPoint)
}

// ApplyPerspective applies a perspective transform to every point in place.
func (c *Contour) ApplyPerspective(perspective Perspective) {
	c.mapPoints(perspective.TransformPoint)
}

// MakeMonotonic replaces the contour's segments with equivalent pieces
// whose vertical extent is non-reversing, as required by scan-line style
// processing downstream.
func (c *Contour) MakeMonotonic() {
	contour := c.Take()
	for segment := range MakeMonotonic(contour.Segments()) {
		c.PushSegment(segment)
	}
}

// ftoa formats a coordinate with the shortest representation that survives
// a float32 round-trip.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// String renders the contour as a path-description string: "M x y"
// followed by one " L x y", " Q cx cy x y" or " C c1x c1y c2x c2y x y"
// token group per segment and a terminating " z". The implicit closing
// segment is represented by the "z" alone. This is a debugging aid, not a
// parseable format.
func (c *Contour) String() string {
	var sb strings.Builder
	first := true
	for segment := range c.Segments() {
		if first {
			sb.WriteString("M ")
			sb.WriteString(ftoa(segment.Baseline.From.X))
			sb.WriteString(" ")
			sb.WriteString(ftoa(segment.Baseline.From.Y))
			first = false
		}
		if segment.Flags&SegmentClosesSubpath != 0 {
			continue
		}

		switch segment.Kind {
		case SegmentLine:
			sb.WriteString(" L")
		case SegmentQuadratic:
			sb.WriteString(" Q ")
			sb.WriteString(ftoa(segment.Ctrl.From.X))
			sb.WriteString(" ")
			sb.WriteString(ftoa(segment.Ctrl.From.Y))
		case SegmentCubic:
			sb.WriteString(" C ")
			sb.WriteString(ftoa(segment.Ctrl.From.X))
			sb.WriteString(" ")
			sb.WriteString(ftoa(segment.Ctrl.From.Y))
			sb.WriteString(" ")
			sb.WriteString(ftoa(segment.Ctrl.To.X))
			sb.WriteString(" ")
			sb.WriteString(ftoa(segment.Ctrl.To.Y))
		}

		sb.WriteString(" ")
		sb.WriteString(ftoa(segment.Baseline.To.X))
		sb.WriteString(" ")
		sb.WriteString(ftoa(segment.Baseline.To.Y))
	}
	sb.WriteString(" z")
	return sb.String()
}
