// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

// Verdict is a three-valued pattern-matching decision for one path.
type Verdict uint8

const (
	// VerdictNoOpinion means no pattern addressed the path; the caller must
	// apply its own default.
	VerdictNoOpinion Verdict = iota
	// VerdictIgnored means the last decisive pattern ignores the path.
	VerdictIgnored
	// VerdictNotIgnored means the last decisive pattern re-includes the path.
	VerdictNotIgnored
)

// Decided reports whether the verdict carries an opinion.
func (v Verdict) Decided() bool {
	return v == VerdictIgnored || v == VerdictNotIgnored
}

// String returns a stable human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictIgnored:
		return "ignored"
	case VerdictNotIgnored:
		return "not-ignored"
	default:
		return "no-opinion"
	}
}

// ManagerOptions configures FilterManager construction.
type ManagerOptions struct {
	// GlobalPatterns are in-memory patterns applied tree-wide, below every
	// directory rule file and above global ignore files.
	GlobalPatterns []string
	// GlobalIgnoreFilePaths are root-relative rule files applied tree-wide,
	// in the given order. Missing files contribute nothing.
	GlobalIgnoreFilePaths []string
	// IgnoreFileName is the rule file loaded in each directory.
	// Empty value defaults to ".ignore".
	IgnoreFileName string
	// IgnoreCase enables case-insensitive matching for every filter the
	// manager builds or loads.
	IgnoreCase bool
}

// applyDefaults fills zero-valued options with defaults.
func (opts *ManagerOptions) applyDefaults() {
	if opts.IgnoreFileName == "" {
		opts.IgnoreFileName = defaultIgnoreFileName
	}
}
