// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

// MergePatterns merges pattern lists preserving input order.
func MergePatterns(lists ...[]string) []string {
	total := 0
	for _, list := range lists {
		total += len(list)
	}

	out := make([]string, 0, total)
	for _, list := range lists {
		out = append(out, list...)
	}

	return out
}
