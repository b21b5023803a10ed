// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// GitIgnoreFileName is git's per-directory ignore file name.
const GitIgnoreFileName = ".gitignore"

// GitInfoExcludePath is the repository-local global exclude file, relative
// to the repository root.
const GitInfoExcludePath = ".git/info/exclude"

// NewGitIgnoreManager creates a manager preconfigured for a git working
// tree rooted at an OS directory: .gitignore files per directory,
// .git/info/exclude as a global ignore file, and the .git directory itself
// always ignored. Extra global patterns apply after the built-in one.
func NewGitIgnoreManager(root string, extraPatterns ...string) (*FilterManager, error) {
	return NewFilterManagerFS(osfs.New(root), gitOptions(extraPatterns))
}

// NewGitIgnoreManagerFS is NewGitIgnoreManager over any collaborator
// filesystem rooted at the working tree.
func NewGitIgnoreManagerFS(fsys billy.Filesystem, extraPatterns ...string) (*FilterManager, error) {
	return NewFilterManagerFS(fsys, gitOptions(extraPatterns))
}

func gitOptions(extraPatterns []string) ManagerOptions {
	return ManagerOptions{
		GlobalPatterns:        MergePatterns([]string{".git"}, extraPatterns),
		GlobalIgnoreFilePaths: []string{GitInfoExcludePath},
		IgnoreFileName:        GitIgnoreFileName,
	}
}
