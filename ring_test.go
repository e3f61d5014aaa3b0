// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "testing"

// TestRingAdd tests wrapped addition over the circular index space.
func TestRingAdd(t *testing.T) {
	tests := []struct {
		name      string
		ring      Ring
		i, offset uint32
		want      uint32
	}{
		{"no wrap", 5, 1, 2, 3},
		{"zero offset", 5, 4, 0, 4},
		{"wrap to start", 5, 4, 1, 0},
		{"wrap past start", 5, 3, 3, 1},
		{"full wrap", 4, 2, 4, 2},
		{"single point", 1, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ring.Add(tt.i, tt.offset)
			if got != tt.want {
				t.Errorf("Ring(%d).Add(%d, %d) = %d, want %d",
					tt.ring, tt.i, tt.offset, got, tt.want)
			}
		})
	}
}

// TestRingNextPrev tests single-step navigation at the wrap boundaries.
func TestRingNextPrev(t *testing.T) {
	tests := []struct {
		name     string
		ring     Ring
		i        uint32
		wantNext uint32
		wantPrev uint32
	}{
		{"interior", 4, 2, 3, 1},
		{"at start", 4, 0, 1, 3},
		{"at end", 4, 3, 0, 2},
		{"single point", 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.Next(tt.i); got != tt.wantNext {
				t.Errorf("Next(%d) = %d, want %d", tt.i, got, tt.wantNext)
			}
			if got := tt.ring.Prev(tt.i); got != tt.wantPrev {
				t.Errorf("Prev(%d) = %d, want %d", tt.i, got, tt.wantPrev)
			}
		})
	}
}

// TestRingClosure tests that Next and Prev are inverses and that N steps
// of Next return to the start, for every start index.
func TestRingClosure(t *testing.T) {
	const n = 7
	ring := Ring(n)

	for start := uint32(0); start < n; start++ {
		if got := ring.Next(ring.Prev(start)); got != start {
			t.Errorf("Next(Prev(%d)) = %d, want %d", start, got, start)
		}

		i := start
		for range n {
			i = ring.Next(i)
		}
		if i != start {
			t.Errorf("%d Next steps from %d ended at %d", n, start, i)
		}
	}
}
