// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns reads logical pattern lines from a rule-file body.
//
// Line contract:
// - lines are split on newlines, a trailing "\r" is dropped
// - blank and whitespace-only lines are skipped
// - lines whose first byte is "#" are comments and skipped
// - one trailing unescaped whitespace run is trimmed; a trailing "\ "
//   becomes a literal trailing space
// - leading whitespace is never trimmed
//
// Negation ("!") and the "\!" / "\#" escapes are preserved in the returned
// lines; they are resolved by the pattern compiler.
func ParsePatterns(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	patterns := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimSuffix(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		line = trimTrailingSpaces(line)
		if line == "" {
			continue
		}

		patterns = append(patterns, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return patterns, nil
}

// ParsePatternsString reads logical pattern lines from string input.
func ParsePatternsString(src string) ([]string, error) {
	return ParsePatterns(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces and tabs unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
