// Copyright (c) 2017-2025 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

// Package covio reads and writes ProcessCov JSON files and walks a
// directory of them.
package covio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/richardwilkes/covmerge"
	"github.com/richardwilkes/toolbox/v2/errs"
)

// ReadFile reads and decodes a single ProcessCov JSON file.
func ReadFile(path string) (covmerge.ProcessCov, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return covmerge.ProcessCov{}, errs.Wrap(err)
	}
	var p covmerge.ProcessCov
	if err = json.Unmarshal(data, &p); err != nil {
		return covmerge.ProcessCov{}, errs.Wrap(err)
	}
	return p, nil
}

// WriteFile marshals p as indented, diffable JSON and writes it to path.
func WriteFile(path string, p covmerge.ProcessCov) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errs.Wrap(err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(err)
	}
	return nil
}

// WalkDir lists the *.json files directly inside dir, sorted by name.
func WalkDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadDir reads every *.json file directly inside dir into a ProcessCov.
func ReadDir(dir string) ([]covmerge.ProcessCov, error) {
	paths, err := WalkDir(dir)
	if err != nil {
		return nil, err
	}
	processes := make([]covmerge.ProcessCov, 0, len(paths))
	for _, path := range paths {
		p, err := ReadFile(path)
		if err != nil {
			return nil, errs.NewWithCause(path, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}
