// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func writeBenchFile(fsys billy.Filesystem, path, content string) error {
	return util.WriteFile(fsys, path, []byte(content), 0o644)
}

const (
	benchPatternCount = 96
	benchPathCount    = 512
)

var (
	benchVerdictSink Verdict
	benchCountSink   int
)

func buildBenchmarkPatternSource(count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		switch i % 4 {
		case 0:
			fmt.Fprintf(&b, "*.tmp%d\n", i)
		case 1:
			fmt.Fprintf(&b, "!keep%d.tmp\n", i)
		case 2:
			fmt.Fprintf(&b, "/build%d/\n", i)
		default:
			fmt.Fprintf(&b, "src/**/gen%d.c\n", i)
		}
	}

	return b.String()
}

func buildBenchmarkPaths(count int) []string {
	paths := make([]string, count)
	for i := range paths {
		paths[i] = fmt.Sprintf("src/pkg%d/file%d.c", i%16, i)
	}

	return paths
}

func BenchmarkParsePatterns(b *testing.B) {
	src := buildBenchmarkPatternSource(benchPatternCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		patterns, err := ParsePatternsString(src)
		if err != nil {
			b.Fatal(err)
		}

		benchCountSink = len(patterns)
	}
}

func BenchmarkNewFilter(b *testing.B) {
	patterns, err := ParsePatternsString(buildBenchmarkPatternSource(benchPatternCount))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := NewFilter(patterns, false)
		benchCountSink = len(f.Patterns())
	}
}

func BenchmarkFilterIsIgnored(b *testing.B) {
	patterns, err := ParsePatternsString(buildBenchmarkPatternSource(benchPatternCount))
	if err != nil {
		b.Fatal(err)
	}

	f := NewFilter(patterns, false)
	paths := buildBenchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchVerdictSink = f.IsIgnored(paths[i%len(paths)])
	}
}

func BenchmarkManagerIsIgnoredCached(b *testing.B) {
	fsys := memfs.New()
	src := buildBenchmarkPatternSource(benchPatternCount)
	if err := writeBenchFile(fsys, ".ignore", src); err != nil {
		b.Fatal(err)
	}
	if err := writeBenchFile(fsys, "src/.ignore", "!keep.c\n"); err != nil {
		b.Fatal(err)
	}

	m, err := NewFilterManagerFS(fsys, ManagerOptions{})
	if err != nil {
		b.Fatal(err)
	}

	paths := buildBenchmarkPaths(benchPathCount)
	// Warm the rule-file cache once so the loop measures matching only.
	if _, err := m.IsIgnored(paths[0]); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := m.IsIgnored(paths[i%len(paths)])
		if err != nil {
			b.Fatal(err)
		}

		benchVerdictSink = v
	}
}

func BenchmarkManagerCold(b *testing.B) {
	fsys := memfs.New()
	src := buildBenchmarkPatternSource(benchPatternCount)
	if err := writeBenchFile(fsys, ".ignore", src); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := NewFilterManagerFS(fsys, ManagerOptions{})
		if err != nil {
			b.Fatal(err)
		}

		v, err := m.IsIgnored("src/pkg0/file0.c")
		if err != nil {
			b.Fatal(err)
		}

		benchVerdictSink = v
	}
}
