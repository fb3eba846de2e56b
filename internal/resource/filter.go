package resource

import (
	"path/filepath"

	"github.com/tacogips/sitekit/internal/debug"
)

// ShouldIgnore checks whether a file matches any of the ignore patterns.
func ShouldIgnore(path string, ignorePatterns []string) bool {
	for _, pattern := range ignorePatterns {
		if MatchesPattern(path, pattern) {
			debug.Debug("[resource] Ignoring file: %s (matched pattern: %s)", path, pattern)
			return true
		}
	}
	return false
}

// MatchesPattern checks if a file path matches a glob pattern.
// The pattern is tried against the full slash-separated path and then the basename.
func MatchesPattern(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}
