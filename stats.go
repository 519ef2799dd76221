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
	"fmt"
	"time"

	"github.com/richardwilkes/toolbox/v2/xtime"
)

// Stats summarizes one MergeProcesses run, for tools that want to report
// on a merge without inspecting the merged ProcessCov itself.
type Stats struct {
	ScriptsIn       int
	ScriptsMerged   int
	FunctionsMerged int
	RangesOut       int
	Elapsed         time.Duration
}

// StatsFor computes the Stats for a merge of inputs into merged.
func StatsFor(inputs []ProcessCov, merged ProcessCov, elapsed time.Duration) Stats {
	s := Stats{Elapsed: elapsed}
	for _, p := range inputs {
		s.ScriptsIn += len(p.Result)
	}
	s.ScriptsMerged = len(merged.Result)
	for _, script := range merged.Result {
		s.FunctionsMerged += len(script.Functions)
		for _, fn := range script.Functions {
			s.RangesOut += len(fn.Ranges)
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("Merged %d scripts into %d, %d functions, %d ranges - %s",
		s.ScriptsIn, s.ScriptsMerged, s.FunctionsMerged, s.RangesOut, xtime.FormatDuration(s.Elapsed, true))
}
