// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"iter"
	"strings"
)

// Outline is an ordered collection of contours plus an aggregate bounding
// box. Contour order is insertion order; it determines iteration and debug
// output but carries no geometric meaning.
type Outline struct {
	contours []Contour
	bounds   Rect
}

// NewOutline returns an empty outline.
func NewOutline() Outline {
	return Outline{}
}

// boundsAccumulator folds contour bounds into an aggregate box. The union
// is associative and commutative, so partial results computed on separate
// goroutines can be merged with the same operation.
type boundsAccumulator struct {
	bounds Rect
	has    bool
}

func (a *boundsAccumulator) add(b Rect) {
	if !a.has {
		a.bounds = b
		a.has = true
		return
	}
	a.bounds = a.bounds.Union(b)
}

// result returns the accumulated box, or the zero Rect if nothing was added.
func (a *boundsAccumulator) result() Rect {
	return a.bounds
}

// FromSegments builds an outline from a linear segment stream. Each
// segment's subpath flags drive the partitioning, in priority order:
// a first-in-subpath flag flushes the contour in progress and seeds a new
// one with the segment's start point; a closes-subpath flag flushes the
// contour in progress without storing any further geometry (the closing
// edge is implicit); otherwise the segment's points are appended to the
// contour in progress. None segments are skipped. Any remaining non-empty
// contour is flushed when the stream ends.
func FromSegments(segments iter.Seq[Segment]) Outline {
	var outline Outline
	var current Contour
	var bounds boundsAccumulator

	flush := func() {
		if current.IsEmpty() {
			return
		}
		bounds.add(current.Bounds())
		outline.contours = append(outline.contours, current)
		current = Contour{}
	}

	for segment := range segments {
		if segment.Flags&SegmentFirstInSubpath != 0 {
			flush()
			current.PushPoint(segment.Baseline.From, 0)
		}

		if segment.Flags&SegmentClosesSubpath != 0 {
			// A curved closing segment carries real geometry; a closing
			// line is the implicit edge and stores nothing.
			current.PushSegment(segment)
			flush()
			continue
		}

		current.PushSegment(segment)
	}

	flush()
	outline.bounds = bounds.result()

	Logger().Debug("outline built from segment stream",
		"contours", len(outline.contours))
	return outline
}

// Len returns the number of contours in the outline.
func (o *Outline) Len() int {
	return len(o.contours)
}

// Contours returns the outline's contours in insertion order. The slice is
// owned by the outline and must not be retained across mutations.
func (o *Outline) Contours() []Contour {
	return o.contours
}

// Bounds returns the union of all contour bounds, or the zero Rect for an
// outline with no contours.
func (o *Outline) Bounds() Rect {
	return o.bounds
}

// PushContour appends a contour and unions its bounds into the aggregate.
// An empty contour is skipped.
func (o *Outline) PushContour(contour Contour) {
	if contour.IsEmpty() {
		return
	}
	if len(o.contours) == 0 {
		o.bounds = contour.Bounds()
	} else {
		o.bounds = o.bounds.Union(contour.Bounds())
	}
	o.contours = append(o.contours, contour)
}

// Transform applies an affine transform to every contour in place and
// recomputes the aggregate bounds.
func (o *Outline) Transform(transform Transform2D) {
	var bounds boundsAccumulator
	for i := range o.contours {
		o.contours[i].Transform(transform)
		bounds.add(o.contours[i].Bounds())
	}
	o.bounds = bounds.result()
}

// ApplyPerspective applies a perspective transform to every contour in
// place and recomputes the aggregate bounds.
func (o *Outline) ApplyPerspective(perspective Perspective) {
	var bounds boundsAccumulator
	for i := range o.contours {
		o.contours[i].ApplyPerspective(perspective)
		bounds.add(o.contours[i].Bounds())
	}
	o.bounds = bounds.result()
}

// MakeMonotonic splits every contour's curves into y-monotonic pieces and
// re-aggregates bounds. Splitting pulls control points onto the curve, so
// per-contour bounds can shrink.
func (o *Outline) MakeMonotonic() {
	var bounds boundsAccumulator
	for i := range o.contours {
		o.contours[i].MakeMonotonic()
		bounds.add(o.contours[i].Bounds())
	}
	o.bounds = bounds.result()
}

// ClipAgainstPolygon clips every contour against a convex polygon given as
// its vertices in order. Contours clipped away entirely are discarded; the
// survivors keep their original relative order.
func (o *Outline) ClipAgainstPolygon(clipPolygon []Point) {
	o.replaceContours(func(contour Contour) Contour {
		return clipContourAgainstPolygon(clipPolygon, contour)
	})
}

// ClipAgainstRect clips every contour against an axis-aligned rectangle.
// Contours clipped away entirely are discarded; the survivors keep their
// original relative order.
func (o *Outline) ClipAgainstRect(clipRect Rect) {
	o.replaceContours(func(contour Contour) Contour {
		return clipContourAgainstRect(clipRect, contour)
	})
}

// replaceContours runs every contour through clip, discarding contours
// that come back empty and re-aggregating bounds from the survivors.
func (o *Outline) replaceContours(clip func(Contour) Contour) {
	contours := o.contours
	o.contours = nil

	var bounds boundsAccumulator
	dropped := 0
	for _, contour := range contours {
		clipped := clip(contour)
		if clipped.IsEmpty() {
			dropped++
			continue
		}
		bounds.add(clipped.Bounds())
		o.contours = append(o.contours, clipped)
	}
	o.bounds = bounds.result()

	if dropped > 0 {
		Logger().Debug("clip discarded contours",
			"dropped", dropped, "kept", len(o.contours))
	}
}

// String renders the outline as its contours' debug strings separated by
// single spaces.
func (o *Outline) String() string {
	var sb strings.Builder
	for i := range o.contours {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(o.contours[i].String())
	}
	return sb.String()
}
