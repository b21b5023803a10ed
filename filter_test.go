// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"strings"
	"testing"
)

func TestFilterIncluded(t *testing.T) {
	t.Parallel()

	f := NewFilter([]string{"a.c", "b.c"}, false)

	if got := f.IsIgnored("a.c"); got != VerdictIgnored {
		t.Fatalf("IsIgnored(a.c) = %v, want ignored", got)
	}

	if got := f.IsIgnored("c.c"); got != VerdictNoOpinion {
		t.Fatalf("IsIgnored(c.c) = %v, want no-opinion", got)
	}

	matches := f.FindMatching("a.c")
	if len(matches) != 1 || matches[0].String() != "a.c" {
		t.Fatalf("FindMatching(a.c) = %v, want [a.c]", matches)
	}

	if got := f.FindMatching("c.c"); len(got) != 0 {
		t.Fatalf("FindMatching(c.c) = %v, want none", got)
	}
}

func TestFilterExcluded(t *testing.T) {
	t.Parallel()

	f := NewFilter([]string{"a.c", "!b.c"}, false)

	if got := f.IsIgnored("b.c"); got != VerdictNotIgnored {
		t.Fatalf("IsIgnored(b.c) = %v, want not-ignored", got)
	}

	matches := f.FindMatching("b.c")
	if len(matches) != 1 || matches[0].String() != "!b.c" {
		t.Fatalf("FindMatching(b.c) = %v, want [!b.c]", matches)
	}
}

func TestFilterLastMatchWins(t *testing.T) {
	t.Parallel()

	f := NewFilter([]string{"a.c", "!a.c", "a.c"}, false)

	if got := f.IsIgnored("a.c"); got != VerdictIgnored {
		t.Fatalf("IsIgnored(a.c) = %v, want ignored", got)
	}

	matches := f.FindMatching("a.c")
	if len(matches) != 3 {
		t.Fatalf("FindMatching(a.c) returned %d matches, want 3", len(matches))
	}

	got := []string{matches[0].String(), matches[1].String(), matches[2].String()}
	want := []string{"a.c", "!a.c", "a.c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FindMatching(a.c) = %v, want %v", got, want)
		}
	}
}

func TestFilterManPage(t *testing.T) {
	t.Parallel()

	f := NewFilter([]string{"/*", "!/foo", "/foo/*", "!/foo/bar"}, false)

	cases := []struct {
		path string
		want Verdict
	}{
		{"a.c", VerdictIgnored},
		{"foo", VerdictNotIgnored},
		{"foo/bar", VerdictNotIgnored},
		{"foo/blie", VerdictIgnored},
		{"foo/bar/", VerdictNotIgnored},
		{"foo/bar/bloe", VerdictNoOpinion},
	}

	for _, c := range cases {
		if got := f.IsIgnored(c.path); got != c.want {
			t.Fatalf("IsIgnored(%s) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestFilterIgnoreCase(t *testing.T) {
	t.Parallel()

	f := NewFilter([]string{"/foo/bar"}, true)
	if got := f.IsIgnored("FOO/bar"); got != VerdictIgnored {
		t.Fatalf("IsIgnored(FOO/bar) = %v, want ignored", got)
	}

	f = NewFilter([]string{"/foo/bar"}, false)
	if got := f.IsIgnored("FOO/bar"); got != VerdictNoOpinion {
		t.Fatalf("IsIgnored(FOO/bar) = %v, want no-opinion", got)
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	f, err := ParseFilter(strings.NewReader("# comment\n*.o\n!keep.o\n"), false)
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}

	if got := f.IsIgnored("a.o"); got != VerdictIgnored {
		t.Fatalf("IsIgnored(a.o) = %v, want ignored", got)
	}

	if got := f.IsIgnored("keep.o"); got != VerdictNotIgnored {
		t.Fatalf("IsIgnored(keep.o) = %v, want not-ignored", got)
	}

	patterns := f.Patterns()
	if len(patterns) != 2 || patterns[0].String() != "*.o" || patterns[1].String() != "!keep.o" {
		t.Fatalf("Patterns() = %v, want [*.o !keep.o]", patterns)
	}
}
