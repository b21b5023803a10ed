// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import "strings"

// ExtensionPatterns converts an extension list to ignore patterns.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Returned patterns are normalized to lower-case
// "*.ext" form and preserve input order.
func ExtensionPatterns(exts []string) []string {
	patterns := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = asciiLower(ext)
		if ext == "" {
			continue
		}

		patterns = append(patterns, "*."+ext)
	}

	return patterns
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
