// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

// SegmentKind discriminates the shape of a Segment.
type SegmentKind uint8

// Segment kind constants.
const (
	// SegmentNone is a degenerate or absent segment.
	SegmentNone SegmentKind = iota
	// SegmentLine is a straight line between two endpoints.
	SegmentLine
	// SegmentQuadratic is a quadratic Bezier curve with one control point.
	SegmentQuadratic
	// SegmentCubic is a cubic Bezier curve with two control points.
	SegmentCubic
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// String returns a human-readable name for the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentNone:
		return "None"
	case SegmentLine:
		return "Line"
	case SegmentQuadratic:
		return "Quadratic"
	case SegmentCubic:
		return "Cubic"
	default:
		return unknownStr
	}
}

// SegmentFlags carries subpath structure alongside a segment while it
// travels through a segment stream. The flags drive [FromSegments] and are
// never stored in a contour.
type SegmentFlags uint8

// Segment flag constants.
const (
	// SegmentFirstInSubpath marks the first segment of a subpath.
	SegmentFirstInSubpath SegmentFlags = 1 << iota
	// SegmentClosesSubpath marks the segment that closes a subpath.
	SegmentClosesSubpath
)

// LineSegment is a straight chord between two points.
type LineSegment struct {
	From, To Point
}

// Eval returns the point on the chord at parameter t in [0, 1].
func (l LineSegment) Eval(t float32) Point {
	return l.From.Lerp(l.To, t)
}

// Reversed returns the chord with its direction flipped.
func (l LineSegment) Reversed() LineSegment {
	return LineSegment{From: l.To, To: l.From}
}

// Segment is one piece of curve between two consecutive endpoints.
// Baseline always holds the chord from the start endpoint to the end
// endpoint. For quadratics the single control point is Ctrl.From; for
// cubics the two control points are Ctrl.From and Ctrl.To.
type Segment struct {
	Kind     SegmentKind
	Baseline LineSegment
	Ctrl     LineSegment
	Flags    SegmentFlags
}

// NewNoneSegment returns a degenerate segment.
func NewNoneSegment() Segment {
	return Segment{Kind: SegmentNone}
}

// NewLineSegment returns a line segment over the given chord.
func NewLineSegment(baseline LineSegment) Segment {
	return Segment{Kind: SegmentLine, Baseline: baseline}
}

// NewQuadraticSegment returns a quadratic Bezier segment over the given
// chord with a single control point.
func NewQuadraticSegment(baseline LineSegment, ctrl Point) Segment {
	return Segment{
		Kind:     SegmentQuadratic,
		Baseline: baseline,
		Ctrl:     LineSegment{From: ctrl},
	}
}

// NewCubicSegment returns a cubic Bezier segment over the given chord.
// ctrl.From and ctrl.To are the first and second control points.
func NewCubicSegment(baseline, ctrl LineSegment) Segment {
	return Segment{Kind: SegmentCubic, Baseline: baseline, Ctrl: ctrl}
}

// IsNone returns true for a degenerate or absent segment.
func (s Segment) IsNone() bool { return s.Kind == SegmentNone }

// IsLine returns true for a straight line segment.
func (s Segment) IsLine() bool { return s.Kind == SegmentLine }

// IsQuadratic returns true for a quadratic Bezier segment.
func (s Segment) IsQuadratic() bool { return s.Kind == SegmentQuadratic }

// IsCubic returns true for a cubic Bezier segment.
func (s Segment) IsCubic() bool { return s.Kind == SegmentCubic }

// Eval returns the point on the segment at parameter t in [0, 1].
func (s Segment) Eval(t float32) Point {
	switch s.Kind {
	case SegmentLine:
		return s.Baseline.Eval(t)
	case SegmentQuadratic:
		p01 := s.Baseline.From.Lerp(s.Ctrl.From, t)
		p12 := s.Ctrl.From.Lerp(s.Baseline.To, t)
		return p01.Lerp(p12, t)
	case SegmentCubic:
		p01 := s.Baseline.From.Lerp(s.Ctrl.From, t)
		p12 := s.Ctrl.From.Lerp(s.Ctrl.To, t)
		p23 := s.Ctrl.To.Lerp(s.Baseline.To, t)
		p012 := p01.Lerp(p12, t)
		p123 := p12.Lerp(p23, t)
		return p012.Lerp(p123, t)
	default:
		return s.Baseline.From
	}
}

// Split subdivides the segment at parameter t using de Casteljau's
// algorithm, returning the two halves with the same kind as s.
// Subpath flags are not carried over to the halves.
func (s Segment) Split(t float32) (Segment, Segment) {
	switch s.Kind {
	case SegmentLine:
		mid := s.Baseline.Eval(t)
		return NewLineSegment(LineSegment{From: s.Baseline.From, To: mid}),
			NewLineSegment(LineSegment{From: mid, To: s.Baseline.To})
	case SegmentQuadratic:
		p01 := s.Baseline.From.Lerp(s.Ctrl.From, t)
		p12 := s.Ctrl.From.Lerp(s.Baseline.To, t)
		mid := p01.Lerp(p12, t)
		return NewQuadraticSegment(LineSegment{From: s.Baseline.From, To: mid}, p01),
			NewQuadraticSegment(LineSegment{From: mid, To: s.Baseline.To}, p12)
	case SegmentCubic:
		p01 := s.Baseline.From.Lerp(s.Ctrl.From, t)
		p12 := s.Ctrl.From.Lerp(s.Ctrl.To, t)
		p23 := s.Ctrl.To.Lerp(s.Baseline.To, t)
		p012 := p01.Lerp(p12, t)
		p123 := p12.Lerp(p23, t)
		mid := p012.Lerp(p123, t)
		return NewCubicSegment(
				LineSegment{From: s.Baseline.From, To: mid},
				LineSegment{From: p01, To: p012}),
			NewCubicSegment(
				LineSegment{From: mid, To: s.Baseline.To},
				LineSegment{From: p123, To: p23})
	default:
		return s, s
	}
}
