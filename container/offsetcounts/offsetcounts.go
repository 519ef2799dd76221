// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

// Package offsetcounts holds a dense per-offset execution-count
// accumulator, used to brute-force rasterize small coverage forests for
// tests that verify the merge's per-offset count law.
package offsetcounts

// Accumulator holds one running execution count per byte offset over a
// fixed-size span.
type Accumulator struct {
	counts []uint64
	size   int
}

// New creates an accumulator covering offsets [0, size), all zero.
func New(size int) *Accumulator {
	if size < 0 {
		size = 0
	}
	return &Accumulator{counts: make([]uint64, size), size: size}
}

// Clone makes a fresh copy of a.
func (a *Accumulator) Clone() *Accumulator {
	c := &Accumulator{counts: make([]uint64, len(a.counts)), size: a.size}
	copy(c.counts, a.counts)
	return c
}

// Length returns the number of offsets the accumulator covers.
func (a *Accumulator) Length() int {
	return a.size
}

// SetRange overwrites every offset in [start, end) with count, modeling a
// single coverage range's absolute (non-cumulative) count.
func (a *Accumulator) SetRange(start, end int, count uint64) {
	if start < 0 {
		start = 0
	}
	if end > a.size {
		end = a.size
	}
	for i := start; i < end; i++ {
		a.counts[i] = count
	}
}

// AddRange adds count to every offset in [start, end), modeling one
// input's contribution to a merge.
func (a *Accumulator) AddRange(start, end int, count uint64) {
	if start < 0 {
		start = 0
	}
	if end > a.size {
		end = a.size
	}
	for i := start; i < end; i++ {
		a.counts[i] += count
	}
}

// At returns the accumulated count at offset, or 0 if offset is out of
// range.
func (a *Accumulator) At(offset int) uint64 {
	if offset < 0 || offset >= a.size {
		return 0
	}
	return a.counts[offset]
}
