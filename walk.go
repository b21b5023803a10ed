// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"fmt"
	"sort"
)

// WalkFunc is called once per visited directory with the directory's
// root-relative path ("." for the root) and its surviving subdirectory and
// file names in sorted order. Returning an error stops the walk.
type WalkFunc func(dir string, subdirs, files []string) error

// Walk traverses the managed tree in pre-order, pruning ignored entries.
// Subdirectories with an Ignored verdict are neither reported nor descended
// into, ignored files are dropped from the listing, and directories whose
// every entry was pruned are skipped entirely.
func (m *FilterManager) Walk(fn WalkFunc) error {
	return m.walkDir("", fn)
}

func (m *FilterManager) walkDir(relDir string, fn WalkFunc) error {
	readDir := relDir
	if readDir == "" {
		readDir = "."
	}

	entries, err := m.fsys.ReadDir(readDir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", readDir, err)
	}

	var subdirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(subdirs)
	sort.Strings(files)

	keptDirs := make([]string, 0, len(subdirs))
	for _, name := range subdirs {
		verdict, err := m.IsIgnored(joinRel(relDir, name) + "/")
		if err != nil {
			return err
		}

		if verdict != VerdictIgnored {
			keptDirs = append(keptDirs, name)
		}
	}

	keptFiles := make([]string, 0, len(files))
	for _, name := range files {
		verdict, err := m.IsIgnored(joinRel(relDir, name))
		if err != nil {
			return err
		}

		if verdict != VerdictIgnored {
			keptFiles = append(keptFiles, name)
		}
	}

	if len(keptDirs) > 0 || len(keptFiles) > 0 {
		dir := relDir
		if dir == "" {
			dir = "."
		}

		if err := fn(dir, keptDirs, keptFiles); err != nil {
			return err
		}
	}

	for _, name := range keptDirs {
		if err := m.walkDir(joinRel(relDir, name), fn); err != nil {
			return err
		}
	}

	return nil
}
