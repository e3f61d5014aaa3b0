// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

// Capacity limits for PointIndex ordinals. These bound how many contours an
// outline may hold and how many points a contour may hold when points are
// cross-referenced by index; they are an encoding convenience, not a
// protocol constant.
const (
	// MaxContourIndex is the largest valid contour ordinal (fits 12 bits).
	MaxContourIndex = 0xfff
	// MaxPointIndex is the largest valid point ordinal (fits 20 bits).
	MaxPointIndex = 0x000fffff
)

// PointIndex identifies one point of one contour within an outline,
// without holding a structural reference to either. It is a pure key:
// used for equality, ordering and lookup, never for arithmetic.
type PointIndex struct {
	contour uint32
	point   uint32
}

// NewPointIndex creates a point index. Ordinals beyond MaxContourIndex or
// MaxPointIndex indicate an invariant breach upstream and panic.
func NewPointIndex(contour, point uint32) PointIndex {
	if contour > MaxContourIndex {
		panic("outline: contour ordinal out of range")
	}
	if point > MaxPointIndex {
		panic("outline: point ordinal out of range")
	}
	return PointIndex{contour: contour, point: point}
}

// Contour returns the contour ordinal.
func (i PointIndex) Contour() uint32 {
	return i.contour
}

// Point returns the point ordinal within the contour.
func (i PointIndex) Point() uint32 {
	return i.point
}

// Less orders point indices by contour ordinal, then point ordinal.
func (i PointIndex) Less(other PointIndex) bool {
	if i.contour != other.contour {
		return i.contour < other.contour
	}
	return i.point < other.point
}
