// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"fmt"
	"io"
)

// Filter is an ordered collection of compiled patterns from one source (one
// rule file or one in-memory list). Filters are immutable after construction.
type Filter struct {
	patterns []Pattern
}

// NewFilter compiles an in-memory pattern list in declaration order. Case
// folding is baked into each compiled pattern.
func NewFilter(patternTexts []string, ignoreCase bool) *Filter {
	patterns := make([]Pattern, 0, len(patternTexts))
	for _, text := range patternTexts {
		patterns = append(patterns, CompilePattern(text, ignoreCase))
	}

	return &Filter{patterns: patterns}
}

// ParseFilter compiles a filter from a rule-file body.
func ParseFilter(r io.Reader, ignoreCase bool) (*Filter, error) {
	patternTexts, err := ParsePatterns(r)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}

	return NewFilter(patternTexts, ignoreCase), nil
}

// Patterns returns the filter's compiled patterns in declaration order.
func (f *Filter) Patterns() []Pattern {
	out := make([]Pattern, len(f.patterns))
	copy(out, f.patterns)
	return out
}

// FindMatching returns every pattern matching path, in declaration order.
func (f *Filter) FindMatching(path string) []Pattern {
	var matches []Pattern
	for i := range f.patterns {
		if f.patterns[i].Matches(path) {
			matches = append(matches, f.patterns[i])
		}
	}

	return matches
}

// IsIgnored returns the filter's verdict for path.
//
// Decision policy: the last matching pattern wins; its negation bit decides
// between ignored and explicitly not-ignored. No match means no opinion.
func (f *Filter) IsIgnored(path string) Verdict {
	verdict := VerdictNoOpinion
	for i := range f.patterns {
		if !f.patterns[i].Matches(path) {
			continue
		}

		if f.patterns[i].Negated() {
			verdict = VerdictNotIgnored
		} else {
			verdict = VerdictIgnored
		}
	}

	return verdict
}
