// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package rangetree_test

import (
	"testing"

	"github.com/richardwilkes/covmerge/container/rangetree"
	"github.com/richardwilkes/covmerge/container/offsetcounts"
	"github.com/stretchr/testify/assert"
)

func build(ranges ...rangetree.Range) *rangetree.Node {
	return rangetree.FromSortedRanges(ranges)
}

// TestMergeNonOverlapping mirrors spec.md scenario 4: two inputs with
// disjoint nested ranges under the same root sum to the expected literal
// numbers.
func TestMergeNonOverlapping(t *testing.T) {
	a := build(rangetree.Range{Start: 0, End: 10, Count: 1}, rangetree.Range{Start: 2, End: 4, Count: 3})
	b := build(rangetree.Range{Start: 0, End: 10, Count: 1}, rangetree.Range{Start: 2, End: 4, Count: 5})
	merged := rangetree.Normalize(rangetree.Merge([]*rangetree.Node{a, b}))
	assert.Equal(t, []rangetree.Range{
		{Start: 0, End: 10, Count: 2},
		{Start: 2, End: 4, Count: 8},
	}, merged.ToRanges())
}

// TestMergeIdenticalSingleRange: two single-range functions with the same
// span merge by summing the one count.
func TestMergeIdenticalSingleRange(t *testing.T) {
	a := build(rangetree.Range{Start: 0, End: 20, Count: 4})
	b := build(rangetree.Range{Start: 0, End: 20, Count: 6})
	merged := rangetree.Normalize(rangetree.Merge([]*rangetree.Node{a, b}))
	assert.Equal(t, []rangetree.Range{{Start: 0, End: 20, Count: 10}}, merged.ToRanges())
}

// TestMergeOverlappingNested exercises the sweep's split/pending path: two
// inputs whose nested ranges overlap but don't align force a mid-sweep
// split of one input's fragment.
func TestMergeOverlappingNested(t *testing.T) {
	a := build(rangetree.Range{Start: 0, End: 10, Count: 1}, rangetree.Range{Start: 2, End: 6, Count: 3})
	b := build(rangetree.Range{Start: 0, End: 10, Count: 1}, rangetree.Range{Start: 4, End: 8, Count: 5})
	// Merge splits its inputs in place, so capture them before merging.
	inputs := [][]rangetree.Range{a.ToRanges(), b.ToRanges()}
	merged := rangetree.Normalize(rangetree.Merge([]*rangetree.Node{a, b}))
	verifyPerOffsetLaw(t, 10, merged, inputs)
}

// TestMergePerOffsetLawPairwise merges every pair of several fixed synthetic
// forests, brute-force rasterizes them with offsetcounts.Accumulator and
// checks the merge's output matches the sum of every input's per-offset
// count everywhere, without relying on any hand-computed literal expectation.
func TestMergePerOffsetLawPairwise(t *testing.T) {
	cases := [][]rangetree.Range{
		{{Start: 0, End: 12, Count: 2}, {Start: 1, End: 9, Count: 4}, {Start: 3, End: 5, Count: 9}},
		{{Start: 0, End: 12, Count: 1}, {Start: 0, End: 6, Count: 2}, {Start: 6, End: 12, Count: 3}},
		{{Start: 0, End: 12, Count: 0}, {Start: 2, End: 10, Count: 1}, {Start: 4, End: 8, Count: 1}},
	}
	for i := 0; i < len(cases); i++ {
		for j := i + 1; j < len(cases); j++ {
			a := build(cases[i]...)
			b := build(cases[j]...)
			merged := rangetree.Normalize(rangetree.Merge([]*rangetree.Node{a, b}))
			verifyPerOffsetLaw(t, 12, merged, [][]rangetree.Range{cases[i], cases[j]})
		}
	}
}

func verifyPerOffsetLaw(t *testing.T, size int, merged *rangetree.Node, inputs [][]rangetree.Range) {
	t.Helper()
	want := offsetcounts.New(size)
	for _, ranges := range inputs {
		one := offsetcounts.New(size)
		for _, r := range ranges {
			one.SetRange(int(r.Start), int(r.End), uint64(r.Count))
		}
		for i := 0; i < size; i++ {
			want.AddRange(i, i+1, one.At(i))
		}
	}
	got := offsetcounts.New(size)
	for _, r := range merged.ToRanges() {
		got.SetRange(int(r.Start), int(r.End), uint64(r.Count))
	}
	for i := 0; i < size; i++ {
		assert.Equal(t, want.At(i), got.At(i), "offset %d", i)
	}
}
