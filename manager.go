// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const defaultIgnoreFileName = ".ignore"

// FilterManager resolves layered ignore rules over a directory tree: each
// directory's rule file applies to paths beneath it, deeper rule files
// override shallower ones, and global filters apply last.
type FilterManager struct {
	// fsys is the collaborator filesystem rooted at the managed tree.
	fsys billy.Filesystem
	// ignoreFileName is the per-directory rule file name.
	ignoreFileName string
	// ignoreCase enables case-insensitive matching for every filter.
	ignoreCase bool
	// global are tree-wide filters in priority order, built once eagerly.
	global []*Filter

	// mu guards cache access.
	mu sync.Mutex
	// cache stores one entry per probed directory, keyed by root-relative
	// slash path ("" is the root). Entries live for the manager's lifetime.
	cache map[string]*cachedDirFilter
}

// cachedDirFilter stores one directory's rule-file filter or a cached load
// error. The zero filter with nil err means the directory has no rule file.
type cachedDirFilter struct {
	// filter is nil when the directory has no rule file.
	filter *Filter
	// err stores a read failure for deterministic repeated queries.
	err error
	// loading reports whether another goroutine is loading this entry.
	loading bool
	// wg coordinates waiters for one load attempt.
	wg sync.WaitGroup
}

// scopedFilter pairs a filter with the prefix depth of its directory, so
// candidates can be rewritten relative to the rule file's own directory.
type scopedFilter struct {
	scope  int
	filter *Filter
}

// NewFilterManager creates a manager rooted at an OS directory.
func NewFilterManager(root string, opts ManagerOptions) (*FilterManager, error) {
	return NewFilterManagerFS(osfs.New(root), opts)
}

// NewFilterManagerFS creates a manager over any collaborator filesystem.
//
// Global filters are built eagerly: one filter for the literal pattern list
// when it is non-empty, then one filter per global ignore file in call
// order. A missing global ignore file contributes nothing; any other read
// failure fails construction.
func NewFilterManagerFS(fsys billy.Filesystem, opts ManagerOptions) (*FilterManager, error) {
	opts.applyDefaults()

	ignoreFileName, err := validIgnoreFileName(opts.IgnoreFileName)
	if err != nil {
		return nil, err
	}

	var global []*Filter
	if len(opts.GlobalPatterns) > 0 {
		global = append(global, NewFilter(opts.GlobalPatterns, opts.IgnoreCase))
	}

	for _, rel := range opts.GlobalIgnoreFilePaths {
		filter, err := LoadFilter(fsys, rel, opts.IgnoreCase)
		if err != nil {
			if isNotFound(err) {
				continue
			}

			return nil, fmt.Errorf("global ignore file %s: %w", rel, err)
		}

		global = append(global, filter)
	}

	return &FilterManager{
		fsys:           fsys,
		ignoreFileName: ignoreFileName,
		ignoreCase:     opts.IgnoreCase,
		global:         global,
		cache:          make(map[string]*cachedDirFilter),
	}, nil
}

// FindMatching returns the patterns that decide path's verdict: the matches
// from the most specific scope with an opinion, in declaration order.
//
// Resolution walks path's prefixes from the root downward. At each prefix,
// every filter already in scope is consulted most-specific-first with the
// candidate rewritten relative to the filter's directory; prefixes shorter
// than the full path stand for directories and carry a trailing "/". The
// first prefix+filter combination with any match is decisive, so an ignored
// ancestor directory ignores its whole subtree and rule files inside it are
// never read.
func (m *FilterManager) FindMatching(path string) ([]Pattern, error) {
	rel, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(rel, "/")
	filters := make([]scopedFilter, 0, len(m.global)+len(parts))
	for _, g := range m.global {
		filters = append(filters, scopedFilter{scope: 0, filter: g})
	}

	for i := 0; i <= len(parts); i++ {
		for _, sf := range filters {
			candidate := strings.Join(parts[sf.scope:i], "/")
			if i < len(parts) {
				candidate += "/"
			}

			if matches := sf.filter.FindMatching(candidate); len(matches) > 0 {
				return matches, nil
			}
		}

		if i == len(parts) {
			break
		}

		filter, err := m.dirFilter(strings.Join(parts[:i], "/"))
		if err != nil {
			return nil, err
		}

		if filter != nil {
			filters = append([]scopedFilter{{scope: i, filter: filter}}, filters...)
		}
	}

	return nil, nil
}

// IsIgnored returns the manager's verdict for a root-relative path. Append a
// trailing "/" to query a path as a directory.
func (m *FilterManager) IsIgnored(path string) (Verdict, error) {
	matches, err := m.FindMatching(path)
	if err != nil {
		return VerdictNoOpinion, err
	}

	if len(matches) == 0 {
		return VerdictNoOpinion, nil
	}

	if matches[len(matches)-1].Negated() {
		return VerdictNotIgnored, nil
	}

	return VerdictIgnored, nil
}

// Snapshot returns the patterns of every cached directory rule file, keyed
// by root-relative directory path ("." for the root). It reads the cache
// without mutating it; directories probed and found without a rule file are
// omitted.
func (m *FilterManager) Snapshot() map[string][]Pattern {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string][]Pattern, len(m.cache))
	for dir, cached := range m.cache {
		if cached.loading || cached.err != nil || cached.filter == nil {
			continue
		}

		key := dir
		if key == "" {
			key = "."
		}

		out[key] = cached.filter.Patterns()
	}

	return out
}

// dirFilter returns the cached or freshly loaded filter for one directory.
// The first query per directory performs the read; concurrent queries for
// the same directory wait for that single load.
func (m *FilterManager) dirFilter(relDir string) (*Filter, error) {
	m.mu.Lock()
	cached, ok := m.cache[relDir]
	if ok {
		loading := cached.loading
		m.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return cached.filter, cached.err
	}

	cached = &cachedDirFilter{loading: true}
	cached.wg.Add(1)
	m.cache[relDir] = cached
	m.mu.Unlock()

	filter, err := m.loadDirFilter(relDir)

	m.mu.Lock()
	cached.filter = filter
	cached.err = err
	cached.loading = false
	cached.wg.Done()
	m.mu.Unlock()

	return filter, err
}

// loadDirFilter reads and compiles one directory's rule file. Absence
// (including a file standing where a directory was expected) yields a nil
// filter and no error.
func (m *FilterManager) loadDirFilter(relDir string) (*Filter, error) {
	path := joinRel(relDir, m.ignoreFileName)
	filter, err := LoadFilter(m.fsys, path, m.ignoreCase)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}

	return filter, nil
}
