// Package filesystem provides local filesystem access for the scanner:
// candidate enumeration and metadata lookup.
package filesystem

// CandidateScanner is an iterator over model-file candidates under a root.
// It provides a simple Next pattern so callers can interleave cancellation
// checks with traversal.
type CandidateScanner interface {
	// Next advances to the next candidate and returns its absolute path.
	// Returns ("", false) when the traversal is exhausted.
	Next() (string, bool)

	// Err returns the first fatal error encountered during traversal.
	// Per-entry failures (permission denied, vanished entries) are skipped
	// and never reported here.
	Err() error
}
