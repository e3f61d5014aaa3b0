// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "github.com/chewxy/math32"

// Contour clipping against convex shapes, done one half-plane at a time
// (Sutherland-Hodgman over the contour's segment stream). Segments fully
// inside a half-plane are replayed as is; segments crossing the boundary
// are split at the crossing and only the inside piece is kept; the gaps
// left by discarded pieces run along the clip boundary and are closed by
// the implicit edges between consecutive stored endpoints.

// halfPlane is one clip edge. Points with non-negative signed distance are
// inside. sign absorbs the clip polygon's winding so that the interior is
// on the correct side regardless of orientation.
type halfPlane struct {
	from, to Point
	sign     float32
}

// distance returns the signed distance-like measure of p from the edge;
// >= 0 means inside.
func (hp halfPlane) distance(p Point) float32 {
	return hp.sign * hp.to.Sub(hp.from).Cross(p.Sub(hp.from))
}

// containsRect returns true if the whole rectangle is inside.
func (hp halfPlane) containsRect(r Rect) bool {
	return hp.distance(r.Min) >= 0 &&
		hp.distance(Pt(r.Max.X, r.Min.Y)) >= 0 &&
		hp.distance(r.Max) >= 0 &&
		hp.distance(Pt(r.Min.X, r.Max.Y)) >= 0
}

// polygonWinding returns +1 for a positive signed area and -1 otherwise.
func polygonWinding(polygon []Point) float32 {
	var area float32
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		area += p.Cross(q)
	}
	if area < 0 {
		return -1
	}
	return 1
}

// clipContourAgainstPolygon clips the contour against a convex polygon
// given as its vertices in order (either winding). The result is a fresh,
// self-consistent contour with correct bounds; a contour entirely outside
// comes back empty.
func clipContourAgainstPolygon(clipPolygon []Point, contour Contour) Contour {
	if len(clipPolygon) < 3 {
		return NewContour()
	}

	sign := polygonWinding(clipPolygon)
	for i, from := range clipPolygon {
		to := clipPolygon[(i+1)%len(clipPolygon)]
		contour = clipContourAgainstHalfPlane(halfPlane{from: from, to: to, sign: sign}, contour)
		if contour.IsEmpty() {
			break
		}
	}
	return contour
}

// clipContourAgainstRect clips the contour against an axis-aligned
// rectangle by running the half-plane clipper over its four edges.
func clipContourAgainstRect(clipRect Rect, contour Contour) Contour {
	if contour.IsEmpty() {
		return contour
	}
	b := contour.Bounds()
	if clipRect.Contains(b.Min) && clipRect.Contains(b.Max) {
		return contour
	}

	corners := []Point{
		clipRect.Min,
		Pt(clipRect.Max.X, clipRect.Min.Y),
		clipRect.Max,
		Pt(clipRect.Min.X, clipRect.Max.Y),
	}
	return clipContourAgainstPolygon(corners, contour)
}

// clipContourAgainstHalfPlane keeps the part of the contour inside one
// half-plane.
func clipContourAgainstHalfPlane(hp halfPlane, contour Contour) Contour {
	if contour.IsEmpty() || hp.containsRect(contour.Bounds()) {
		return contour
	}

	var out Contour
	for segment := range contour.Segments() {
		d0 := hp.distance(segment.Baseline.From)
		d1 := hp.distance(segment.Baseline.To)

		switch {
		case d0 >= 0 && d1 >= 0:
			pushClipped(&out, segment)
		case d0 >= 0:
			// Leaving the half-plane: keep the piece up to the boundary.
			inside, _ := splitAtBoundary(segment, hp, d0, d1)
			pushClipped(&out, inside)
		case d1 >= 0:
			// Entering the half-plane: keep the piece after the boundary.
			// A re-entering closing edge stays implicit past the crossing.
			_, inside := splitAtBoundary(segment, hp, d0, d1)
			inside.Flags = segment.Flags & SegmentClosesSubpath
			pushClipped(&out, inside)
		default:
			// Entirely outside; the discarded span is bridged by the
			// implicit edge between the surrounding stored endpoints.
		}
	}
	return out
}

// pushClipped appends a kept segment to the output contour, inserting the
// boundary point left by a previously discarded span when the segment does
// not continue from the contour's current last point.
func pushClipped(out *Contour, segment Segment) {
	if last, ok := out.LastPosition(); ok && last != segment.Baseline.From {
		out.PushPoint(segment.Baseline.From, 0)
	}
	out.PushSegment(segment)
}

// splitAtBoundary splits a segment crossing the half-plane boundary at the
// crossing point. d0 and d1 are the signed distances of the baseline
// endpoints and must have opposite signs.
func splitAtBoundary(segment Segment, hp halfPlane, d0, d1 float32) (Segment, Segment) {
	if segment.IsLine() {
		return segment.Split(d0 / (d0 - d1))
	}
	return segment.Split(boundaryCrossing(segment, hp, d0))
}

// boundaryCrossing locates a parameter where the curve crosses the
// half-plane boundary by bisecting on signed distance. The baseline
// endpoints lie on opposite sides, so a sign change is guaranteed.
func boundaryCrossing(segment Segment, hp halfPlane, d0 float32) float32 {
	lo, hi := float32(0), float32(1)
	negativeLow := d0 < 0

	for range 32 {
		mid := (lo + hi) / 2
		d := hp.distance(segment.Eval(mid))
		if math32.Abs(d) < monotonicEpsilon {
			return mid
		}
		if (d < 0) == negativeLow {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
