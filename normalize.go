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

// normalizeFunction rebuilds fn's RangeTree and flattens it, so even a
// passed-through singleton input ends up in the same canonical shape a
// multi-input merge would produce.
func normalizeFunction(fn *FunctionCov) {
	if len(fn.Ranges) == 0 {
		return
	}
	tree := rangetree.Normalize(rangetree.FromSortedRanges(toTreeRanges(fn.Ranges)))
	fn.Ranges = fromTreeRanges(tree.ToRanges())
}

// normalizeScript sorts s.Functions by root startOffset. It assumes each
// function's ranges are already canonical.
func normalizeScript(s *ScriptCov) {
	sort.Slice(s.Functions, func(i, j int) bool {
		return s.Functions[i].root().StartOffset < s.Functions[j].root().StartOffset
	})
}

// deepNormalizeScript normalizes every function in s, then sorts them.
func deepNormalizeScript(s *ScriptCov) {
	for i := range s.Functions {
		normalizeFunction(&s.Functions[i])
	}
	normalizeScript(s)
}

// normalizeProcess sorts p.Result by url. It assumes each script's
// functions are already canonical.
func normalizeProcess(p *ProcessCov) {
	sort.Slice(p.Result, func(i, j int) bool { return p.Result[i].URL < p.Result[j].URL })
}
