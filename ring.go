// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

// Ring performs index arithmetic over the circular index space of a
// contour with the given number of points. A contour is implicitly closed,
// so the point after the last is the first again; keeping the wraparound
// logic in one place means it is written and tested once instead of being
// re-derived at every call site.
type Ring uint32

// Add returns (i + offset) wrapped around the ring.
// offset must not exceed the ring length, which keeps the wrap a single
// subtraction rather than a modulo (segment lookahead never moves more
// than 3 points forward).
func (r Ring) Add(i, offset uint32) uint32 {
	index := i + offset
	if index >= uint32(r) {
		index -= uint32(r)
	}
	return index
}

// Next returns the index after i, wrapping to 0 past the end.
func (r Ring) Next(i uint32) uint32 {
	if i == uint32(r)-1 {
		return 0
	}
	return i + 1
}

// Prev returns the index before i, wrapping to the last index before 0.
func (r Ring) Prev(i uint32) uint32 {
	if i == 0 {
		return uint32(r) - 1
	}
	return i - 1
}
