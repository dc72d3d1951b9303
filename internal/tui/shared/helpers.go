package shared

import (
	"github.com/joe/model-sweep/pkg/formatters"
)

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MB")
func FormatBytes(bytes int64) string {
	return formatters.FormatBytes(bytes)
}
