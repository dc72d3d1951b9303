//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package scanengine_test

import (
	"testing"

	"github.com/joe/model-sweep/internal/scanengine"
)

func TestGlobFilterInvalidPattern(t *testing.T) {
	t.Parallel()

	// Invalid patterns must not panic, they just match nothing.
	filter := scanengine.NewGlobFilter("[invalid")
	result := filter.ShouldInclude("model.ckpt")

	if result {
		t.Error("Invalid pattern should not match files")
	}
}

//nolint:funlen // Test function with comprehensive table-driven test cases
func TestGlobFilterShouldInclude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pattern     string
		path        string
		shouldMatch bool
	}{
		{
			name:        "empty pattern matches all",
			pattern:     "",
			path:        "checkpoints/model.safetensors",
			shouldMatch: true,
		},
		{
			name:        "simple extension match",
			pattern:     "*.ckpt",
			path:        "model.ckpt",
			shouldMatch: true,
		},
		{
			name:        "simple extension no match",
			pattern:     "*.ckpt",
			path:        "model.safetensors",
			shouldMatch: false,
		},
		{
			name:        "simple pattern does not cross directories",
			pattern:     "*.ckpt",
			path:        "checkpoints/model.ckpt",
			shouldMatch: false,
		},
		{
			name:        "doublestar crosses directories",
			pattern:     "**/*.ckpt",
			path:        "checkpoints/sdxl/model.ckpt",
			shouldMatch: true,
		},
		{
			name:        "case insensitive pattern",
			pattern:     "*.CKPT",
			path:        "model.ckpt",
			shouldMatch: true,
		},
		{
			name:        "case insensitive path",
			pattern:     "*.ckpt",
			path:        "MODEL.CKPT",
			shouldMatch: true,
		},
		{
			name:        "directory prefix",
			pattern:     "loras/**",
			path:        "loras/style/anime.safetensors",
			shouldMatch: true,
		},
		{
			name:        "directory prefix no match",
			pattern:     "loras/**",
			path:        "checkpoints/model.ckpt",
			shouldMatch: false,
		},
		{
			name:        "brace alternatives",
			pattern:     "**/*.{ckpt,safetensors}",
			path:        "vae/decoder.safetensors",
			shouldMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter := scanengine.NewGlobFilter(tt.pattern)

			got := filter.ShouldInclude(tt.path)
			if got != tt.shouldMatch {
				t.Errorf("ShouldInclude(%q) with pattern %q = %v, want %v",
					tt.path, tt.pattern, got, tt.shouldMatch)
			}
		})
	}
}
