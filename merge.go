// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package covmerge

import (
	"sort"

	"github.com/richardwilkes/covmerge/container/rangetree"
)

// MergeProcesses merges ProcessCov values collected from independent runs
// of the same process (or from the same script set) into one normalized
// ProcessCov. Every ScriptCov sharing a url is merged into one. Mutates
// the contents of processes; callers must not reuse them afterward.
func MergeProcesses(processes []ProcessCov) ProcessCov {
	byURL := make(map[string][]ScriptCov)
	var urls []string
	for _, p := range processes {
		for _, s := range p.Result {
			if _, seen := byURL[s.URL]; !seen {
				urls = append(urls, s.URL)
			}
			byURL[s.URL] = append(byURL[s.URL], s)
		}
	}
	sort.Strings(urls)
	result := make([]ScriptCov, 0, len(urls))
	for _, url := range urls {
		if merged, ok := MergeScripts(byURL[url]); ok {
			result = append(result, merged)
		}
	}
	out := ProcessCov{Result: result}
	normalizeProcess(&out)
	return out
}

// MergeScripts merges ScriptCov values that all describe the same script
// (same url). The scriptId of the first input is used for the result, even
// if later inputs disagree (spec.md's inherited, unresolved behavior: see
// DESIGN.md). Mutates the contents of scripts.
func MergeScripts(scripts []ScriptCov) (ScriptCov, bool) {
	if len(scripts) == 0 {
		return ScriptCov{}, false
	}
	if len(scripts) == 1 {
		out := scripts[0]
		deepNormalizeScript(&out)
		return out, true
	}

	type bucket struct {
		blockLevel bool
		functions  []FunctionCov
	}
	order := make([]rootKey, 0)
	buckets := make(map[rootKey]*bucket)
	for _, script := range scripts {
		for _, fn := range script.Functions {
			key := rootKey{start: fn.root().StartOffset, end: fn.root().EndOffset}
			b, ok := buckets[key]
			if !ok {
				b = &bucket{}
				buckets[key] = b
				order = append(order, key)
			}
			switch {
			case !b.blockLevel && fn.IsBlockCoverage && len(b.functions) > 0:
				b.functions = b.functions[:0]
				b.blockLevel = true
				b.functions = append(b.functions, fn)
			case b.blockLevel && !fn.IsBlockCoverage:
				// drop c: a function-level candidate cannot win over a
				// block-level bucket.
			default:
				if fn.IsBlockCoverage {
					b.blockLevel = true
				}
				b.functions = append(b.functions, fn)
			}
		}
	}

	functions := make([]FunctionCov, 0, len(order))
	for _, key := range order {
		if merged, ok := MergeFunctions(buckets[key].functions); ok {
			functions = append(functions, merged)
		}
	}

	out := ScriptCov{ScriptID: scripts[0].ScriptID, URL: scripts[0].URL, Functions: functions}
	normalizeScript(&out)
	return out, true
}

type rootKey struct {
	start uint32
	end   uint32
}

// MergeFunctions merges FunctionCov values that all describe the same
// function (same root range). Mutates the contents of functions.
func MergeFunctions(functions []FunctionCov) (FunctionCov, bool) {
	if len(functions) == 0 {
		return FunctionCov{}, false
	}
	if len(functions) == 1 {
		out := functions[0]
		normalizeFunction(&out)
		return out, true
	}

	trees := make([]*rangetree.Node, len(functions))
	for i, fn := range functions {
		trees[i] = rangetree.FromSortedRanges(toTreeRanges(fn.Ranges))
	}
	merged := rangetree.Normalize(rangetree.Merge(trees))
	ranges := fromTreeRanges(merged.ToRanges())

	out := FunctionCov{
		FunctionName:    functions[0].FunctionName,
		Ranges:          ranges,
		IsBlockCoverage: !(len(ranges) == 1 && ranges[0].Count == 0),
	}
	return out, true
}

func toTreeRanges(ranges []RangeCov) []rangetree.Range {
	out := make([]rangetree.Range, len(ranges))
	for i, r := range ranges {
		out[i] = rangetree.Range{Start: r.StartOffset, End: r.EndOffset, Count: r.Count}
	}
	return out
}

func fromTreeRanges(ranges []rangetree.Range) []RangeCov {
	out := make([]RangeCov, len(ranges))
	for i, r := range ranges {
		out[i] = RangeCov{StartOffset: r.Start, EndOffset: r.End, Count: r.Count}
	}
	return out
}
