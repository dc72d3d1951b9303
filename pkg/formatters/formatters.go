// Package formatters converts raw file metadata into display strings and back.
package formatters

import (
	"fmt"
	"time"
)

// TimestampLayout is the display layout for all file timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Byte-count unit boundaries.
const bytesPerUnit = 1024.0

// FormatTimestamp renders a timestamp for display.
// A zero time renders as the empty string (the "unknown" marker).
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a display timestamp back into a time.Time.
// Returns ok=false for anything that does not match the layout, including
// the empty "unknown" marker. It never fails to the caller with an error.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// FormatBytes formats a byte count into a human-readable string.
// Precision widens at GB and above so large model files stay distinguishable.
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	kb := float64(n) / bytesPerUnit
	if kb < bytesPerUnit {
		return fmt.Sprintf("%.1f KB", kb)
	}

	mb := kb / bytesPerUnit
	if mb < bytesPerUnit {
		return fmt.Sprintf("%.1f MB", mb)
	}

	gb := mb / bytesPerUnit
	if gb < bytesPerUnit {
		return fmt.Sprintf("%.2f GB", gb)
	}

	return fmt.Sprintf("%.2f TB", gb/bytesPerUnit)
}
