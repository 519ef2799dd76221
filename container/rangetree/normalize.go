// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package rangetree

// Normalize rewrites a merged tree into its canonical, minimal shape:
// adjacent siblings with equal effective counts are fused, a child whose
// single grandchild spans its entire range with no added delta collapses
// into that grandchild, and childless zero-delta children (which add
// nothing beyond their parent's count) are dropped. The receiver's
// descendants are normalized first, post-order.
func Normalize(n *Node) *Node {
	for i, c := range n.Children {
		n.Children[i] = Normalize(c)
	}
	n.Children = fuseSiblings(n.Children)

	kept := n.Children[:0]
	for _, c := range n.Children {
		c = collapseSingleChild(c)
		if len(c.Children) == 0 && c.Delta == 0 {
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept
	sortByStart(n.Children)
	return n
}

// fuseSiblings merges a left-to-right run of adjacent, equal-delta
// siblings into one node covering their combined span, the same
// cascading-merge shape as a flat interval list's overlap-merge loop.
// Fusing two siblings can expose a new fusable pair at the boundary
// between their children, so the concatenated children are re-fused
// before being attached to the merged node.
func fuseSiblings(children []*Node) []*Node {
	if len(children) == 0 {
		return children
	}
	out := make([]*Node, 0, len(children))
	cur := children[0]
	for _, next := range children[1:] {
		if cur.End == next.Start && cur.Delta == next.Delta {
			cur = &Node{
				Start:    cur.Start,
				End:      next.End,
				Delta:    cur.Delta,
				Children: fuseSiblings(append(cur.Children, next.Children...)),
			}
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}

// collapseSingleChild replaces n by its sole grandchild as long as that
// grandchild spans n's entire range and adds no delta of its own, shifting
// the grandchild's delta to n's so the effective count is preserved.
func collapseSingleChild(n *Node) *Node {
	for len(n.Children) == 1 {
		only := n.Children[0]
		if only.Start != n.Start || only.End != n.End || only.Delta != 0 {
			break
		}
		n = &Node{Start: n.Start, End: n.End, Delta: n.Delta, Children: only.Children}
	}
	return n
}
