// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/richardwilkes/covmerge"
	"github.com/richardwilkes/covmerge/internal/covio"
	"github.com/richardwilkes/toolbox/v2/cmdline"
	"github.com/richardwilkes/toolbox/v2/errs"
	"github.com/richardwilkes/toolbox/v2/fatal"
	"github.com/richardwilkes/toolbox/v2/log/tracelog"
)

func main() {
	cmdline.AppName = "Coverage Merge"
	cmdline.AppCmdName = "covmerge"
	cmdline.License = "Mozilla Public License, version 2.0"
	cmdline.CopyrightStartYear = "2017"
	cmdline.CopyrightHolder = "Richard A. Wilkes"
	cmdline.AppIdentifier = "com.trollworks.covmerge"

	out := "coverage-merged.json"
	var strict bool
	var debug bool

	var logLevel slog.LevelVar
	slog.SetDefault(slog.New(tracelog.New(&tracelog.Config{
		Level: &logLevel,
		Sink:  log.Default().Writer(),
	})))

	cl := cmdline.New(true)
	cl.NewGeneralOption(&out).SetName("out").SetSingle('o').SetUsage("Path to write the merged coverage report to")
	cl.NewGeneralOption(&strict).SetName("strict").SetUsage("Validate each input before merging, rather than merging best-effort")
	cl.NewGeneralOption(&debug).SetName("debug").SetUsage("Enable debug logging")

	args := cl.Parse(os.Args[1:])
	if len(args) == 0 {
		fatal.WithErr(errs.New("No input directory specified"))
	}

	if debug {
		logLevel.Set(slog.LevelDebug)
	}

	start := time.Now()
	inputs, err := covio.ReadDir(args[0])
	fatal.IfErr(err)

	if strict {
		for _, p := range inputs {
			fatal.IfErr(covmerge.Validate(p))
		}
	}

	merged := covmerge.MergeProcesses(inputs)
	fatal.IfErr(covio.WriteFile(out, merged))

	slog.Info(covmerge.StatsFor(inputs, merged, time.Since(start)).String())
}
