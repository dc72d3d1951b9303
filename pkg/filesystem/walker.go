package filesystem

import (
	"github.com/kr/fs"
)

// candidateWalker implements CandidateScanner on top of a kr/fs walker.
// kr/fs reads each directory sorted by name, so traversal order is
// deterministic within a run.
type candidateWalker struct {
	walker    *fs.Walker
	cancelled func() bool
}

// NewCandidateScanner creates a scanner that lazily walks root and yields
// the absolute path of every file whose extension is a recognized model
// extension. The cancelled callback, if non-nil, is consulted between
// entries; once it reports true the walk stops and Next returns exhausted.
// The caller is expected to have validated root already.
func NewCandidateScanner(root string, cancelled func() bool) CandidateScanner {
	return &candidateWalker{walker: fs.Walk(root), cancelled: cancelled}
}

// Next steps the walk until the next candidate file.
func (w *candidateWalker) Next() (string, bool) {
	for w.walker.Step() {
		if w.cancelled != nil && w.cancelled() {
			return "", false
		}

		if w.walker.Err() != nil {
			// Unreadable entry: skip it, keep walking.
			continue
		}

		info := w.walker.Stat()
		if info.IsDir() {
			continue
		}

		if IsModelFile(info.Name()) {
			return w.walker.Path(), true
		}
	}

	return "", false
}

// Err always returns nil: per-entry walk failures are skipped during Next,
// and kr/fs surfaces no other failure mode once walking has begun.
func (w *candidateWalker) Err() error {
	return nil
}
