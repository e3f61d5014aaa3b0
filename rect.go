// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

// Rect represents an axis-aligned bounding rectangle.
// Min is the top-left corner, Max the bottom-right corner.
// The zero value is the empty rectangle at the origin.
type Rect struct {
	Min, Max Point
}

// RectFromPoint returns a zero-size rectangle located at p.
func RectFromPoint(p Point) Rect {
	return Rect{Min: p, Max: p}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// ExtendedByPoint returns r widened to cover p.
func (r Rect) ExtendedByPoint(p Point) Rect {
	return Rect{
		Min: r.Min.Min(p),
		Max: r.Max.Max(p),
	}
}

// Contains returns true if p is inside the rectangle or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
