// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

// Package rangetree holds the ordered rose tree used to merge coverage
// range forests. A Node's effective count is the sum of its own Delta and
// every ancestor's Delta; this lets the merge sum counts from independent
// inputs without rewriting every descendant each time a parent's count
// changes.
package rangetree

import "sort"

// Node is one range in a RangeTree: a half-open [Start, End) interval, a
// delta count relative to its parent's effective count, and its ordered,
// disjoint children. Each child lies within its parent's span (it may
// cover the whole of it) and children are ordered by Start ascending.
type Node struct {
	Start    uint32
	End      uint32
	Delta    uint32
	Children []*Node
}

// Range is the flattened, offset/count view of a Node, independent of this
// package's internal tree representation.
type Range struct {
	Start uint32
	End   uint32
	Count uint32
}

// FromSortedRanges rebuilds a RangeTree from a flat list of ranges in the
// canonical pre-order (Start ascending, End descending) produced by
// ToRanges. Ranges must nest properly: ranges[0] is the root and encloses
// every other range.
func FromSortedRanges(ranges []Range) *Node {
	root := &Node{Start: ranges[0].Start, End: ranges[0].End, Delta: ranges[0].Count}
	type frame struct {
		node      *Node
		effective uint32
	}
	stack := []frame{{root, ranges[0].Count}}
	for _, r := range ranges[1:] {
		for len(stack) > 1 && stack[len(stack)-1].node.End < r.End {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]
		child := &Node{Start: r.Start, End: r.End, Delta: r.Count - top.effective}
		top.node.Children = append(top.node.Children, child)
		stack = append(stack, frame{child, r.Count})
	}
	return root
}

// ToRanges flattens the tree back into the canonical pre-order flat range
// list, with each range carrying its effective (accumulated-delta) count.
func (n *Node) ToRanges() []Range {
	var out []Range
	n.appendRanges(&out, 0)
	return out
}

func (n *Node) appendRanges(out *[]Range, parentEffective uint32) {
	effective := parentEffective + n.Delta
	*out = append(*out, Range{Start: n.Start, End: n.End, Count: effective})
	for _, c := range n.Children {
		c.appendRanges(out, effective)
	}
}

// Split divides the node at offset, which must satisfy
// n.Start < offset < n.End. The receiver is truncated in place to
// [n.Start, offset); the returned node covers [offset, n.End). Children
// fully to the left of offset stay with the receiver, children fully to
// the right move to the returned node, and a child straddling offset is
// split recursively. Both halves keep the receiver's original Delta.
func (n *Node) Split(offset uint32) *Node {
	right := &Node{Start: offset, End: n.End, Delta: n.Delta}
	n.End = offset
	left := n.Children[:0]
	var rightChildren []*Node
	for _, c := range n.Children {
		switch {
		case c.End <= offset:
			left = append(left, c)
		case c.Start >= offset:
			rightChildren = append(rightChildren, c)
		default:
			rightChildren = append(rightChildren, c.Split(offset))
			left = append(left, c)
		}
	}
	n.Children = left
	right.Children = rightChildren
	return right
}

// Clone makes a deep copy of n and its descendants.
func (n *Node) Clone() *Node {
	c := &Node{Start: n.Start, End: n.End, Delta: n.Delta}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// sortByStart is a defensive re-sort used after operations whose output is
// supposed to already be ordered by construction (spec.md's normalization
// step 5 asserts this rather than computing it); kept as an explicit
// function so callers that want the assertion made cheap can call it.
func sortByStart(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Start < nodes[j].Start })
}
