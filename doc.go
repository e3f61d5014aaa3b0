// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package outline provides a compressed in-memory representation of 2D
// vector paths for use by rasterizers.
//
// # Overview
//
// Instead of a tree of segment objects, a path is stored as an [Outline]: an
// ordered list of [Contour] values, where each contour is a flat buffer of
// points paired one-to-one with per-point role flags. A point with no flags
// is an on-curve endpoint; points flagged [PointFlagControl0] and
// [PointFlagControl1] are the off-curve control points of quadratic and
// cubic Bezier segments. Segment boundaries are recovered purely from these
// flags, so the encoding stays compact while still supporting lines,
// quadratics and cubics.
//
// Every contour is implicitly closed: the point after the last is the first
// again, and index arithmetic wraps around accordingly.
//
// # Quick Start
//
//	seq := func(yield func(outline.Segment) bool) {
//	    s := outline.NewLineSegment(outline.LineSegment{
//	        From: outline.Pt(0, 0), To: outline.Pt(100, 0),
//	    })
//	    s.Flags = outline.SegmentFirstInSubpath
//	    yield(s)
//	    // ... more segments ...
//	}
//	o := outline.FromSegments(seq)
//	o.Transform(outline.Scaling(2, 2))
//	fmt.Println(o.String()) // "M 0 0 L 200 0 ... z"
//
// # Architecture
//
// The package is deliberately small and flat:
//   - Encoding: Contour, PointFlags, PointIndex
//   - Segments: Segment, SegmentKind, LineSegment, ContourIter
//   - Orchestration: Outline (construction, transforms, clipping,
//     monotonic conversion)
//   - Transforms: Transform2D (affine), Perspective
//
// All operations are pure, synchronous in-memory transformations. An
// Outline exclusively owns its contours and a Contour exclusively owns its
// point storage, so callers may process independent contours on separate
// goroutines and merge the resulting bounds with [Rect.Union].
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package outline
