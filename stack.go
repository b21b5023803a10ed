// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

// FilterStack layers filters by specificity, most specific first. It is a
// stateless wrapper; stacks can be built fresh per query.
type FilterStack struct {
	filters []*Filter
}

// NewFilterStack builds a stack from filters in priority order. Nil filters
// are skipped.
func NewFilterStack(filters ...*Filter) *FilterStack {
	kept := make([]*Filter, 0, len(filters))
	for _, f := range filters {
		if f == nil {
			continue
		}

		kept = append(kept, f)
	}

	return &FilterStack{filters: kept}
}

// IsIgnored returns the verdict of the first filter with an opinion.
//
// A more specific scope's decision overrides a less specific scope's
// decision outright; only within one filter does last-match-wins apply.
func (s *FilterStack) IsIgnored(path string) Verdict {
	for _, f := range s.filters {
		if verdict := f.IsIgnored(path); verdict.Decided() {
			return verdict
		}
	}

	return VerdictNoOpinion
}
