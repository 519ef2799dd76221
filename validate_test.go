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
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProcess() ProcessCov {
	return ProcessCov{Result: []ScriptCov{
		{ScriptID: "1", URL: "a.js", Functions: []FunctionCov{
			{
				FunctionName: "f",
				Ranges: []RangeCov{
					{StartOffset: 0, EndOffset: 10, Count: 1},
					{StartOffset: 2, EndOffset: 6, Count: 3},
					{StartOffset: 6, EndOffset: 8, Count: 2},
				},
			},
		}},
	}}
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	assert.NoError(t, Validate(validProcess()))
}

func TestValidateRejectsEmptyURL(t *testing.T) {
	p := validProcess()
	p.Result[0].URL = ""
	assert.Error(t, Validate(p))
}

func TestValidateRejectsEmptyRanges(t *testing.T) {
	p := validProcess()
	p.Result[0].Functions[0].Ranges = nil
	assert.Error(t, Validate(p))
}

func TestValidateRejectsInvertedRootRange(t *testing.T) {
	p := validProcess()
	p.Result[0].Functions[0].Ranges[0] = RangeCov{StartOffset: 10, EndOffset: 0, Count: 1}
	assert.Error(t, Validate(p))
}

func TestValidateRejectsRangeOutsideRoot(t *testing.T) {
	p := validProcess()
	p.Result[0].Functions[0].Ranges = append(p.Result[0].Functions[0].Ranges, RangeCov{StartOffset: 5, EndOffset: 20, Count: 1})
	assert.Error(t, Validate(p))
}

func TestValidateRejectsOutOfOrderRanges(t *testing.T) {
	p := validProcess()
	ranges := p.Result[0].Functions[0].Ranges
	ranges[1], ranges[2] = ranges[2], ranges[1]
	assert.Error(t, Validate(p))
}

func TestValidateRejectsImproperNesting(t *testing.T) {
	p := validProcess()
	p.Result[0].Functions[0].Ranges = []RangeCov{
		{StartOffset: 0, EndOffset: 10, Count: 1},
		{StartOffset: 2, EndOffset: 6, Count: 2},
		{StartOffset: 4, EndOffset: 8, Count: 3},
	}
	assert.Error(t, Validate(p))
}
