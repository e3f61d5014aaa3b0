// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "testing"

// countEndpoints returns the number of endpoint points in the contour.
func countEndpoints(c *Contour) int {
	n := 0
	for i := uint32(0); i < c.Len(); i++ {
		if c.PointIsEndpoint(i) {
			n++
		}
	}
	return n
}

// TestSegmentCountLaw tests that the iterator produces exactly one segment
// per endpoint, the closing segment included.
func TestSegmentCountLaw(t *testing.T) {
	cubicOnly := Contour{}
	cubicOnly.PushPoint(Pt(0, 0), 0)
	cubicOnly.PushPoint(Pt(0, 10), PointFlagControl0)
	cubicOnly.PushPoint(Pt(10, 0), PointFlagControl1)
	cubicOnly.PushPoint(Pt(10, 10), 0)

	tests := []struct {
		name    string
		contour Contour
	}{
		{"triangle", triangleContour()},
		{"mixed", mixedContour()},
		{"single cubic", cubicOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := 0
			for range tt.contour.Segments() {
				segments++
			}
			if want := countEndpoints(&tt.contour); segments != want {
				t.Errorf("iterator produced %d segments, want %d", segments, want)
			}
		})
	}
}

// TestIterReconstruction tests the exact segments produced for a contour
// mixing all three kinds, ending with the flagged closing segment.
func TestIterReconstruction(t *testing.T) {
	c := mixedContour()

	closing := NewLineSegment(LineSegment{From: Pt(0, 20), To: Pt(0, 0)})
	closing.Flags = SegmentClosesSubpath

	want := []Segment{
		NewLineSegment(LineSegment{From: Pt(0, 0), To: Pt(10, 0)}),
		NewQuadraticSegment(LineSegment{From: Pt(10, 0), To: Pt(20, 10)}, Pt(15, 0)),
		NewCubicSegment(
			LineSegment{From: Pt(20, 10), To: Pt(0, 20)},
			LineSegment{From: Pt(20, 20), To: Pt(10, 25)}),
		closing,
	}

	var got []Segment
	for segment := range c.Segments() {
		got = append(got, segment)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestIterMatchesSegmentAfter tests that incremental iteration and
// index-jump reconstruction agree on every segment.
func TestIterMatchesSegmentAfter(t *testing.T) {
	c := mixedContour()

	endpoint := uint32(0)
	for segment := range c.Segments() {
		want := c.SegmentAfter(endpoint)
		if segment.Kind != want.Kind ||
			segment.Baseline != want.Baseline || segment.Ctrl != want.Ctrl {
			t.Errorf("iterator segment from endpoint %d = %+v, want %+v",
				endpoint, segment, want)
		}
		endpoint = c.NextEndpointIndex(endpoint)
	}
}

// TestIterRestartable tests that a fresh iterator replays the same
// sequence without mutating the contour.
func TestIterRestartable(t *testing.T) {
	c := mixedContour()

	var first, second []Segment
	for segment := range c.Segments() {
		first = append(first, segment)
	}
	for segment := range c.Segments() {
		second = append(second, segment)
	}

	if len(first) != len(second) {
		t.Fatalf("second pass produced %d segments, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("pass disagreement at segment %d", i)
		}
	}
}

// TestIterEmptyContour tests that an empty contour yields no segments.
func TestIterEmptyContour(t *testing.T) {
	var c Contour
	for range c.Segments() {
		t.Fatal("empty contour yielded a segment")
	}
}
