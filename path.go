// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

package ignorelib

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// cleanPath normalizes a caller-supplied query path to slash-separated,
// root-relative form. A trailing slash is meaningful (marks a directory) and
// is preserved.
func cleanPath(raw string) (string, error) {
	if raw == "" {
		return "", ErrNotRelative
	}

	if filepath.IsAbs(raw) {
		return "", ErrNotRelative
	}

	p := raw
	if os.PathSeparator != '/' {
		// On Unix a backslash is a valid filename byte; only translate
		// separators on hosts where they actually are separators.
		p = strings.ReplaceAll(p, string(os.PathSeparator), "/")
	}

	if strings.HasPrefix(p, "/") {
		return "", ErrNotRelative
	}

	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}

	if p == "" || p == "." {
		return "", ErrNotRelative
	}

	return p, nil
}

// joinRel joins a root-relative directory and an entry name with "/".
func joinRel(dir, name string) string {
	if dir == "" {
		return name
	}

	return dir + "/" + name
}

// isNotFound classifies rule-file probe failures that mean "no rule file
// here": the file is absent, or a path component is a regular file.
func isNotFound(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}

// validIgnoreFileName validates and defaults the per-directory rule file
// name. The name must be a bare file name.
func validIgnoreFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = defaultIgnoreFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidIgnoreFileName
	}

	name = filepath.ToSlash(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidIgnoreFileName
	}

	return name, nil
}
