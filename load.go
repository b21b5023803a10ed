// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
)

// LoadFilter reads and compiles a rule file from a collaborator filesystem.
//
// The caller decides how absence is handled; LoadFilter itself returns the
// open error unchanged so it can be classified with isNotFound semantics
// (os.IsNotExist and friends work through billy implementations).
func LoadFilter(fsys billy.Filesystem, path string, ignoreCase bool) (*Filter, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	filter, err := ParseFilter(f, ignoreCase)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return filter, nil
}
