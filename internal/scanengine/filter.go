package scanengine

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CandidateFilter decides whether a candidate file takes part in a scan.
type CandidateFilter interface {
	// ShouldInclude returns true if the file at the given path, relative to
	// the scan root, should be included.
	ShouldInclude(relativePath string) bool
}

// GlobFilter implements CandidateFilter using glob patterns.
type GlobFilter struct {
	normalizedPattern string
	isEmpty           bool
}

// NewGlobFilter creates a new GlobFilter with the given pattern.
// Empty pattern matches all files.
func NewGlobFilter(pattern string) *GlobFilter {
	return &GlobFilter{
		normalizedPattern: strings.ToLower(pattern),
		isEmpty:           pattern == "",
	}
}

// ShouldInclude returns true if the file matches the glob pattern.
// Matching is case-insensitive.
func (f *GlobFilter) ShouldInclude(relativePath string) bool {
	if f.isEmpty {
		return true
	}

	normalizedPath := strings.ToLower(relativePath)

	matched, err := doublestar.Match(f.normalizedPattern, normalizedPath)
	if err != nil {
		// Invalid patterns match nothing.
		return false
	}

	return matched
}
