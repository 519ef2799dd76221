// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package rangetree

import "sort"

// Merge combines trees that all share the same [Start, End) span into one.
// The result's Delta is the sum of the inputs' deltas; its children come
// from sweeping every input's children left to right.
func Merge(trees []*Node) *Node {
	var delta uint32
	for _, t := range trees {
		delta += t.Delta
	}
	return &Node{
		Start:    trees[0].Start,
		End:      trees[0].End,
		Delta:    delta,
		Children: mergeChildren(trees),
	}
}

// taggedTree records which input forest (by index into the parentTrees
// slice passed to mergeChildren) a tree fragment came from.
type taggedTree struct {
	parent int
	tree   *Node
}

// event is a sweep-line event: every tagged tree whose contribution begins
// at offset.
type event struct {
	offset uint32
	trees  []taggedTree
}

// eventQueue drains events in offset order, including a single-slot
// pending buffer for right-fragments produced mid-sweep by Split. At most
// one pending offset is ever live at a time: it always equals the
// currently open slot's end, so a one-slot specialization (rather than a
// full priority queue) is enough.
type eventQueue struct {
	events        []event
	hasPending    bool
	pendingOffset uint32
	pendingTrees  []taggedTree
}

func newEventQueue(parentTrees []*Node) *eventQueue {
	buckets := make(map[uint32][]taggedTree)
	for i, pt := range parentTrees {
		for _, c := range pt.Children {
			buckets[c.Start] = append(buckets[c.Start], taggedTree{parent: i, tree: c})
		}
	}
	offsets := make([]uint32, 0, len(buckets))
	for off := range buckets {
		offsets = append(offsets, off)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	events := make([]event, len(offsets))
	for i, off := range offsets {
		events[i] = event{offset: off, trees: buckets[off]}
	}
	return &eventQueue{events: events}
}

// addPending schedules a fragment to be reprocessed at offset. Invariant:
// every pending fragment added between two calls to next shares the same
// offset (the current open slot's end).
func (q *eventQueue) addPending(offset uint32, tt taggedTree) {
	q.pendingOffset = offset
	q.pendingTrees = append(q.pendingTrees, tt)
	q.hasPending = true
}

// next returns the next event to process, splicing in the pending
// fragment at its correct position: synthesized on its own if it precedes
// the next scheduled event, merged into it if they coincide, or deferred
// if the next scheduled event comes first.
func (q *eventQueue) next() (event, bool) {
	if !q.hasPending {
		if len(q.events) == 0 {
			return event{}, false
		}
		ev := q.events[0]
		q.events = q.events[1:]
		return ev, true
	}
	if len(q.events) == 0 {
		return q.takePending(), true
	}
	upcoming := q.events[0]
	switch {
	case q.pendingOffset < upcoming.offset:
		return q.takePending(), true
	case q.pendingOffset == upcoming.offset:
		pending := q.takePending()
		q.events = q.events[1:]
		return event{offset: upcoming.offset, trees: append(pending.trees, upcoming.trees...)}, true
	default:
		q.events = q.events[1:]
		return upcoming, true
	}
}

func (q *eventQueue) takePending() event {
	ev := event{offset: q.pendingOffset, trees: q.pendingTrees}
	q.hasPending = false
	q.pendingTrees = nil
	return ev
}

// mergeChildren is the heart of the merge: it sweeps the children of every
// tree in parentTrees left to right, carving output slots at every offset
// where the set of contributing inputs changes, and closes each slot with
// nextChild.
func mergeChildren(parentTrees []*Node) []*Node {
	q := newEventQueue(parentTrees)
	parentToNested := make(map[int][]*Node)
	var result []*Node
	var openStart, openEnd uint32
	open := false

	for {
		ev, ok := q.next()
		if !ok {
			break
		}
		if open && openEnd <= ev.offset {
			result = append(result, nextChild(openStart, openEnd, parentToNested))
			parentToNested = make(map[int][]*Node)
			open = false
		}
		if !open {
			openStart = ev.offset
			openEnd = ev.offset + 1
			for _, tt := range ev.trees {
				if tt.tree.End > openEnd {
					openEnd = tt.tree.End
				}
			}
			for _, tt := range ev.trees {
				parentToNested[tt.parent] = append(parentToNested[tt.parent], tt.tree)
			}
			open = true
			continue
		}
		for _, tt := range ev.trees {
			tree := tt.tree
			if tree.End > openEnd {
				right := tree.Split(openEnd)
				q.addPending(openEnd, taggedTree{parent: tt.parent, tree: right})
			}
			parentToNested[tt.parent] = append(parentToNested[tt.parent], tree)
		}
	}
	if open {
		result = append(result, nextChild(openStart, openEnd, parentToNested))
	}
	return result
}

// nextChild closes an open slot [start, end), producing the single merged
// child that covers it. Every source that contributed to the slot is
// represented by exactly one tree spanning [start, end): either the tree
// it already owned (if it claimed the whole slot), or a synthetic
// zero-delta wrapper around whatever fragments it did contribute, so the
// merge can recurse uniformly without special-casing partial coverage.
func nextChild(start, end uint32, parentToNested map[int][]*Node) *Node {
	keys := make([]int, 0, len(parentToNested))
	for k := range parentToNested {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	perSource := make([]*Node, 0, len(keys))
	for _, k := range keys {
		list := parentToNested[k]
		if len(list) == 0 {
			continue
		}
		if len(list) == 1 && list[0].Start == start && list[0].End == end {
			perSource = append(perSource, list[0])
			continue
		}
		perSource = append(perSource, &Node{Start: start, End: end, Delta: 0, Children: list})
	}
	return Merge(perSource)
}
