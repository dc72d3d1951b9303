package scanengine

import "github.com/joe/model-sweep/internal/catalog"

// Event is the interface implemented by all scan engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// Scan phase events

// Progress is emitted after each processed item with the overall percentage.
type Progress struct {
	Percent int // 0..100, monotonically non-decreasing within a run
}

func (Progress) isEvent() {}

// StatusMessage is emitted when the human-readable phase description changes.
type StatusMessage struct {
	Text string
}

func (StatusMessage) isEvent() {}

// RowFound is emitted once per successfully read candidate file, in
// traversal order.
type RowFound struct {
	Row catalog.Row
}

func (RowFound) isEvent() {}

// ScanDone is emitted when a scan finishes normally.
type ScanDone struct {
	Total int // candidates found, including ones whose stat failed
}

func (ScanDone) isEvent() {}

// Delete phase events

// Deleted is emitted when a delete finishes normally, carrying the paths
// that were removed, in input order.
type Deleted struct {
	Paths []string
}

func (Deleted) isEvent() {}

// Failure records one path that could not be deleted.
type Failure struct {
	Path   string
	Reason string
}

// Failed is emitted alongside Deleted, carrying per-path failures in input
// order. Empty when everything succeeded.
type Failed struct {
	Failures []Failure
}

func (Failed) isEvent() {}

// Terminal events

// Finished is emitted exactly once at the end of every run, whatever the
// outcome. Listeners use it to re-enable interaction.
type Finished struct{}

func (Finished) isEvent() {}

// ErrorOccurred is emitted when a run aborts outside the per-item handling.
type ErrorOccurred struct {
	Err error
}

func (ErrorOccurred) isEvent() {}
