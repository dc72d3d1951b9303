package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: map[ErrorCategory][]string{
			CategoryPermission: {
				"permission denied",
				"access denied",
				"operation not permitted",
			},
			CategoryPath: {
				"no such file or directory",
				"file not found",
				"path does not exist",
			},
			CategoryTrash: {
				"recycle bin",
				"trash",
				"cross-device link",
			},
			CategoryDelete: {
				"directory not empty",
				"cannot remove",
				"device or resource busy",
				"file is in use",
			},
		},
	}
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns map[ErrorCategory][]string
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	// Trash patterns first: "recycle bin is not supported" would otherwise
	// never win against the broader delete patterns below.
	ordered := []ErrorCategory{CategoryTrash, CategoryPermission, CategoryPath, CategoryDelete}
	for _, category := range ordered {
		for _, pattern := range m.patterns[category] {
			if strings.Contains(lowerMsg, pattern) {
				return category
			}
		}
	}

	return CategoryUnknown
}
