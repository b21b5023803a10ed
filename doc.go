// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Ben Kehoe
// Source: github.com/benkehoe/ignorelib

/*
Package ignorelib implements gitignore-style path filtering with layered,
per-directory rule files.

The package generalizes git's ignore machinery: any file name can serve as the
per-directory rule file, global patterns and global rule files can be layered
underneath, and the whole stack answers a three-valued question per path:
ignored, explicitly not ignored, or no opinion.

Basic flow:
  - compile one pattern (`CompilePattern`) or a whole source (`NewFilter`,
    `ParseFilter`, `LoadFilter`)
  - ask one filter for a verdict (`Filter.IsIgnored`, last match wins)
  - layer filters by specificity (`FilterStack`, first decided verdict wins)

For directory trees, use `FilterManager`:
  - create it with a root directory and a rule file name (`NewFilterManager`),
    or over any billy.Filesystem (`NewFilterManagerFS`)
  - query paths relative to that root (`IsIgnored`, `FindMatching`)
  - per-directory rule files are loaded lazily and cached for the manager's
    lifetime; rule files inside ignored directories are never read
  - traverse with `Walk`, which prunes ignored subtrees and filters ignored
    files from the reported entries

`NewGitIgnoreManager` preconfigures the manager to replicate git's own
layering (.gitignore files, .git/info/exclude, the .git directory itself).
*/
package ignorelib
