// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"regexp"
	"strings"
)

// Pattern is one compiled gitignore-style rule. Patterns are immutable
// values; identity is the raw source text.
type Pattern struct {
	// raw is the original pattern text including any "!" or "\" prefix.
	raw string
	// re is the compiled matcher; nil when the translated expression does
	// not compile, in which case the pattern matches nothing.
	re *regexp.Regexp
	// negated means the pattern re-includes matching paths.
	negated bool
	// dirOnly means the pattern only matches directory paths (trailing "/").
	dirOnly bool
	// anchored means the pattern is bound to its rule file's directory.
	anchored bool
}

// CompilePattern compiles one pattern line into a matcher.
//
// A leading "!" marks negation; otherwise a leading "\" is consumed so that
// "\!" and "\#" produce literal "!" and "#" patterns. Malformed glob syntax
// never fails: a pattern whose translation is not a valid expression simply
// matches nothing.
func CompilePattern(text string, ignoreCase bool) Pattern {
	body := text
	negated := false
	if strings.HasPrefix(body, "!") {
		negated = true
		body = body[1:]
	} else if strings.HasPrefix(body, `\`) {
		body = body[1:]
	}

	dirOnly := strings.HasSuffix(body, "/")
	anchored := strings.HasPrefix(body, "/") ||
		strings.Contains(strings.TrimSuffix(body, "/"), "/")

	expr := translate(body)
	if ignoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		re = nil
	}

	return Pattern{
		raw:      text,
		re:       re,
		negated:  negated,
		dirOnly:  dirOnly,
		anchored: anchored,
	}
}

// Matches reports whether the pattern matches a slash-separated relative
// path. Directory paths may carry a trailing "/"; directory-only patterns
// require it.
func (p Pattern) Matches(path string) bool {
	if p.re == nil {
		return false
	}

	return p.re.MatchString(path)
}

// Negated reports whether the pattern re-includes matching paths.
func (p Pattern) Negated() bool {
	return p.negated
}

// DirOnly reports whether the pattern only matches directories.
func (p Pattern) DirOnly() bool {
	return p.dirOnly
}

// Anchored reports whether the pattern is anchored to its rule file's
// directory rather than floating to any depth.
func (p Pattern) Anchored() bool {
	return p.anchored
}

// String returns the original pattern text.
func (p Pattern) String() string {
	return p.raw
}
