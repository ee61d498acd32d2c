// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"iter"
	"path/filepath"
	"regexp"
)

// Traverse lazily yields the path of every file under rootPath whose base
// name matches basenameRe. A directory whose full path matches excludeRe is
// pruned along with all of its descendants. Unreadable subdirectories are
// skipped rather than reported; traversal never fails.
//
// basenameRe is expected to be anchored (a full-name match); excludeRe is
// matched anywhere within the directory path.
func Traverse(rootPath string, basenameRe, excludeRe *regexp.Regexp) iter.Seq[string] {
	return func(yield func(string) bool) {
		// The walk function only ever returns sentinel errors, so the
		// outer error from WalkDir is discarded.
		_ = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// An unreadable entry is tolerated, not propagated.
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if excludeRe != nil && excludeRe.MatchString(path) {
					return fs.SkipDir
				}
				return nil
			}
			if basenameRe.MatchString(d.Name()) {
				if !yield(path) {
					return fs.SkipAll
				}
			}
			return nil
		})
	}
}
