// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package covmerge

import "github.com/richardwilkes/toolbox/v2/errs"

// Validate checks that p is well-formed enough for MergeProcesses to merge
// safely. The merge functions themselves never validate their input (see
// spec.md's Error Handling Design); Validate is the opt-in pre-pass named
// there, for callers that want one.
func Validate(p ProcessCov) error {
	for _, script := range p.Result {
		if script.URL == "" {
			return errs.New("script has an empty url")
		}
		for _, fn := range script.Functions {
			if err := validateFunction(fn); err != nil {
				return errs.NewWithCause("script "+script.URL, err)
			}
		}
	}
	return nil
}

func validateFunction(fn FunctionCov) error {
	if len(fn.Ranges) == 0 {
		return errs.New("function " + fn.FunctionName + " has no ranges")
	}
	root := fn.Ranges[0]
	if root.StartOffset >= root.EndOffset {
		return errs.New("function " + fn.FunctionName + " has a zero-width or inverted root range")
	}
	for i, r := range fn.Ranges {
		if r.StartOffset >= r.EndOffset {
			return errs.New("function " + fn.FunctionName + " has a zero-width or inverted range")
		}
		if i == 0 {
			continue
		}
		if r.StartOffset < root.StartOffset || r.EndOffset > root.EndOffset {
			return errs.New("function " + fn.FunctionName + " has a range outside its root")
		}
	}
	return validateOrder(fn)
}

// validateOrder checks that ranges obey the total order and nesting
// required by spec.md §3: start ascending, end descending among ranges
// with equal start, and every range properly nested in its predecessor on
// the open-ancestor stack.
func validateOrder(fn FunctionCov) error {
	var stack []RangeCov
	stack = append(stack, fn.Ranges[0])
	prev := fn.Ranges[0]
	for _, r := range fn.Ranges[1:] {
		if r.StartOffset < prev.StartOffset || (r.StartOffset == prev.StartOffset && r.EndOffset > prev.EndOffset) {
			return errs.New("function " + fn.FunctionName + " ranges are not in (start asc, end desc) order")
		}
		for len(stack) > 0 && stack[len(stack)-1].EndOffset <= r.StartOffset {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 || r.EndOffset > stack[len(stack)-1].EndOffset {
			return errs.New("function " + fn.FunctionName + " has a range that does not nest properly")
		}
		stack = append(stack, r)
		prev = r
	}
	return nil
}
