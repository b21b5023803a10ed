// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import "errors"

// Sentinel errors for ignorelib operations.
var (
	// ErrNotRelative indicates an absolute or empty query path; the manager
	// only evaluates paths relative to its root.
	ErrNotRelative = errors.New("path is not relative")
	// ErrInvalidIgnoreFileName indicates a rule file name containing path
	// separators or other non-name input.
	ErrInvalidIgnoreFileName = errors.New("invalid ignore file name")
)
