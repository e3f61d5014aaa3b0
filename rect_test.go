// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "testing"

func TestRect_Zero(t *testing.T) {
	var r Rect
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("zero Rect is %vx%v, want 0x0", r.Width(), r.Height())
	}
	// The zero value is a point box at the origin, so it participates in
	// unions as the origin.
	got := r.Union(Rect{Min: Pt(5, 5), Max: Pt(10, 10)})
	want := Rect{Min: Pt(0, 0), Max: Pt(10, 10)}
	if got != want {
		t.Errorf("union with zero Rect = %v, want %v", got, want)
	}
}

func TestRect_ExtendedByPoint(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Rect
	}{
		{"inside", Pt(5, 5), Rect{Min: Pt(0, 0), Max: Pt(10, 10)}},
		{"right of", Pt(15, 5), Rect{Min: Pt(0, 0), Max: Pt(15, 10)}},
		{"above left", Pt(-3, -4), Rect{Min: Pt(-3, -4), Max: Pt(10, 10)}},
		{"on corner", Pt(10, 10), Rect{Min: Pt(0, 0), Max: Pt(10, 10)}},
	}

	r := Rect{Min: Pt(0, 0), Max: Pt(10, 10)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ExtendedByPoint(tt.p); got != tt.want {
				t.Errorf("ExtendedByPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := Rect{Min: Pt(0, 0), Max: Pt(5, 5)}
	b := Rect{Min: Pt(3, -2), Max: Pt(8, 4)}
	want := Rect{Min: Pt(0, -2), Max: Pt(8, 5)}

	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("Union is not commutative: %v, want %v", got, want)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Min: Pt(0, 0), Max: Pt(10, 10)}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Pt(5, 5), true},
		{"min corner", Pt(0, 0), true},
		{"max corner", Pt(10, 10), true},
		{"edge", Pt(10, 5), true},
		{"outside x", Pt(11, 5), false},
		{"outside y", Pt(5, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectFromPoint(t *testing.T) {
	r := RectFromPoint(Pt(3, 4))
	if r.Min != Pt(3, 4) || r.Max != Pt(3, 4) {
		t.Errorf("RectFromPoint = %v, want point box at (3, 4)", r)
	}
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("point box is %vx%v, want 0x0", r.Width(), r.Height())
	}
}
