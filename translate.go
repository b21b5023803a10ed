// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"regexp"
	"strings"
)

// translate converts one gitignore-style pattern body (negation and leading
// escape already consumed) into anchored regexp source.
//
// The produced expression matches the full candidate path and tolerates one
// trailing "/" on the candidate unless the pattern itself is directory-only
// (ends with "/"), in which case the trailing slash is required.
func translate(pat string) string {
	var b strings.Builder
	b.WriteString(`(?s)\A`)

	if len(pat) == 0 || !strings.Contains(pat[:len(pat)-1], "/") {
		// No slash before the last byte: basename match at any depth.
		b.WriteString(`(.*/)?`)
	}

	if strings.HasPrefix(pat, "**/") {
		pat = pat[2:]
		b.WriteString(`(.*/)?`)
	}

	pat = strings.TrimPrefix(pat, "/")

	for i, seg := range strings.Split(pat, "/") {
		if seg == "**" {
			b.WriteString(`(/.*)?`)
			continue
		}

		if i > 0 {
			b.WriteByte('/')
		}

		b.WriteString(translateSegment(seg))
	}

	if !strings.HasSuffix(pat, "/") {
		b.WriteString(`/?`)
	}

	b.WriteString(`\z`)
	return b.String()
}

// translateSegment converts one slash-free pattern segment to regexp source.
func translateSegment(seg string) string {
	if seg == "*" {
		return `[^/]+`
	}

	var b strings.Builder
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch c {
		case '*':
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		case '\\':
			// Escape: next byte is literal. A lone trailing backslash
			// contributes nothing.
			if i+1 < len(seg) {
				i++
				b.WriteString(regexp.QuoteMeta(seg[i : i+1]))
			}
		case '[':
			i = appendCharClass(seg, i, &b)
		default:
			b.WriteString(regexp.QuoteMeta(seg[i : i+1]))
		}
	}

	return b.String()
}

// appendCharClass appends a glob character class starting at seg[start] as a
// regexp class and returns the index of its closing bracket. An unterminated
// class is emitted as a literal "[" and start is returned unchanged.
func appendCharClass(seg string, start int, b *strings.Builder) int {
	j := start + 1
	if j < len(seg) && seg[j] == '!' {
		j++
	}
	if j < len(seg) && seg[j] == ']' {
		j++
	}
	for j < len(seg) && seg[j] != ']' {
		j++
	}

	if j >= len(seg) {
		b.WriteString(`\[`)
		return start
	}

	stuff := strings.ReplaceAll(seg[start+1:j], `\`, `\\`)
	if strings.HasPrefix(stuff, "!") {
		// Glob class negation "[!x]" maps to regexp "[^x]".
		stuff = "^" + stuff[1:]
	} else if strings.HasPrefix(stuff, "^") {
		stuff = `\` + stuff
	}

	b.WriteString("[" + stuff + "]")
	return j
}
