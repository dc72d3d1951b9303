// Package scanengine runs scan and delete operations off the interaction
// loop, reporting progress through typed events.
package scanengine

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joe/model-sweep/internal/catalog"
	"github.com/joe/model-sweep/pkg/filesystem"
	"github.com/joe/model-sweep/pkg/trash"
)

// Exported variables.
var (
	ErrCancelled             = errors.New("operation cancelled")
	ErrInvalidRoot           = errors.New("root is not an existing directory")
	ErrRecycleBinUnavailable = errors.New("recycle bin is unavailable on this system")
)

// State describes where a run is in its lifecycle. A run moves from Idle
// through Running to exactly one of the terminal states.
type State int

// Run lifecycle states.
const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}

// Engine runs one scan or one delete. It does not arbitrate concurrent
// runs; the caller serializes starts.
type Engine struct {
	Root        string
	FilePattern string // Optional glob filter over root-relative paths (e.g., "**/*.ckpt")
	emitter     EventEmitter
	mu          sync.RWMutex
	state       State
	cancelChan  chan struct{} // Channel to signal cancellation
	cancelOnce  sync.Once     // Ensure Cancel() is only called once
	logFile     *os.File      // Optional log file for debugging
	logMu       sync.Mutex    // Mutex for log file writes
}

// NewEngine creates an engine rooted at the given directory. The root is
// validated when a scan starts, not here.
func NewEngine(root string) *Engine {
	return &Engine{
		Root:       root,
		cancelChan: make(chan struct{}),
	}
}

// SetEventEmitter sets the event emitter for TUI communication.
// The emitter is optional - if nil, no events will be emitted.
func (e *Engine) SetEventEmitter(emitter EventEmitter) {
	e.emitter = emitter
}

// State reports the engine's current lifecycle state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state
}

// Cancel stops the running operation gracefully. Safe to call more than
// once and from any goroutine.
func (e *Engine) Cancel() {
	e.cancelOnce.Do(func() {
		close(e.cancelChan)
	})
}

// Scan walks the root recursively, emits one RowFound per readable model
// file, and finishes with ScanDone. Candidates are enumerated first so
// progress can be reported against a known total.
func (e *Engine) Scan() error {
	e.setState(StateRunning)
	defer e.emit(Finished{})

	e.logToFile("Starting scan: " + e.Root)

	info, err := os.Stat(e.Root)
	if err != nil || !info.IsDir() {
		e.setState(StateFailed)
		e.emit(ErrorOccurred{Err: ErrInvalidRoot})

		return ErrInvalidRoot
	}

	e.emit(StatusMessage{Text: "Scanning: counting candidate files..."})

	candidates, err := e.enumerateCandidates()
	if err != nil {
		e.setState(StateCancelled)
		e.logToFile("Scan cancelled during enumeration")

		return err
	}

	total := len(candidates)
	if total == 0 {
		e.emit(Progress{Percent: 100})
		e.emit(StatusMessage{Text: "Scan complete: no model files found."})
		e.emit(ScanDone{Total: 0})
		e.setState(StateCompleted)

		return nil
	}

	e.emit(StatusMessage{Text: fmt.Sprintf("Scanning: reading metadata for %d files...", total)})

	for i, path := range candidates {
		err := e.checkCancellation()
		if err != nil {
			e.setState(StateCancelled)
			e.logToFile(fmt.Sprintf("Scan cancelled after %d / %d files", i, total))

			return err
		}

		meta, statErr := filesystem.Stat(path)
		if statErr == nil {
			e.emit(RowFound{Row: catalog.NewRow(path, meta)})
		} else {
			// Vanished or unreadable candidates are skipped, not fatal.
			e.logToFile(fmt.Sprintf("  Skipped %s: %v", path, statErr))
		}

		e.emit(Progress{Percent: percent(i+1, total)})
	}

	e.emit(StatusMessage{Text: fmt.Sprintf("Scan complete: found %d files.", total)})
	e.emit(ScanDone{Total: total})
	e.setState(StateCompleted)
	e.logToFile(fmt.Sprintf("Scan complete: %d candidates", total))

	return nil
}

// Delete removes the given paths in order, permanently or via the recycle
// bin. Per-path failures are collected, never aborting the batch.
func (e *Engine) Delete(paths []string, useRecycleBin bool) error {
	e.setState(StateRunning)
	defer e.emit(Finished{})

	total := len(paths)
	if total == 0 {
		e.emit(Progress{Percent: 0})
		e.emit(StatusMessage{Text: "Nothing selected to delete."})
		e.emit(Deleted{Paths: []string{}})
		e.emit(Failed{Failures: []Failure{}})
		e.setState(StateCompleted)

		return nil
	}

	remove := os.Remove
	mode := "permanent delete"

	if useRecycleBin {
		remove = e.moveToRecycleBin
		mode = "Recycle Bin"
	}

	e.emit(StatusMessage{Text: fmt.Sprintf("Deleting %d files (%s)...", total, mode)})
	e.logToFile(fmt.Sprintf("Starting delete: %d files (%s)", total, mode))

	deleted := make([]string, 0, total)
	failures := make([]Failure, 0)

	for i, path := range paths {
		err := e.checkCancellation()
		if err != nil {
			e.setState(StateCancelled)
			e.logToFile(fmt.Sprintf("Delete cancelled after %d / %d files", i, total))

			return err
		}

		removeErr := remove(path)
		if removeErr != nil {
			failures = append(failures, Failure{Path: path, Reason: removeErr.Error()})
			e.logToFile(fmt.Sprintf("  Failed %s: %v", path, removeErr))
		} else {
			deleted = append(deleted, path)
		}

		e.emit(Progress{Percent: percent(i+1, total)})
	}

	e.emit(StatusMessage{Text: fmt.Sprintf("Delete finished: %d deleted, %d failed.", len(deleted), len(failures))})
	e.emit(Deleted{Paths: deleted})
	e.emit(Failed{Failures: failures})
	e.setState(StateCompleted)
	e.logToFile(fmt.Sprintf("Delete complete: %d deleted, %d failed", len(deleted), len(failures)))

	return nil
}

// CloseLog closes the log file if open
func (e *Engine) CloseLog() {
	if e.logFile != nil {
		e.logToFile(fmt.Sprintf("=== Log Ended: %s ===", time.Now().Format(time.RFC3339)))
		_ = e.logFile.Close()
		e.logFile = nil
	}
}

// EnableFileLogging enables logging to a file for debugging
func (e *Engine) EnableFileLogging(logPath string) error {
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	e.logFile = f
	e.logToFile(fmt.Sprintf("=== Log Started: %s ===", time.Now().Format(time.RFC3339)))
	e.logToFile("Root: " + e.Root)

	if e.FilePattern != "" {
		e.logToFile("Pattern: " + e.FilePattern)
	}

	return nil
}

// enumerateCandidates walks the root and collects every model file that
// passes the optional glob filter, in deterministic order. The scanner
// checks the stop flag between entries, so cancellation is honored even
// while stepping through long runs of non-candidate files.
func (e *Engine) enumerateCandidates() ([]string, error) {
	filter := NewGlobFilter(e.FilePattern)
	scanner := filesystem.NewCandidateScanner(e.Root, func() bool {
		return e.checkCancellation() != nil
	})

	var candidates []string

	for {
		err := e.checkCancellation()
		if err != nil {
			return nil, err
		}

		path, ok := scanner.Next()
		if !ok {
			break
		}

		relativePath, relErr := filepath.Rel(e.Root, path)
		if relErr != nil {
			relativePath = path
		}

		if filter.ShouldInclude(relativePath) {
			candidates = append(candidates, path)
		}
	}

	// The walk may have ended because the stop flag tripped mid-step.
	err := e.checkCancellation()
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// moveToTrash is swappable in tests to simulate platforms without a
// recycle bin.
var moveToTrash = trash.MoveToTrash

// moveToRecycleBin routes a single path through the recycle bin, mapping
// platform unavailability to the engine's sentinel.
func (e *Engine) moveToRecycleBin(path string) error {
	err := moveToTrash(path)
	if errors.Is(err, trash.ErrUnsupported) {
		return ErrRecycleBinUnavailable
	}

	return err
}

func (e *Engine) checkCancellation() error {
	select {
	case <-e.cancelChan:
		return ErrCancelled
	default:
		return nil
	}
}

// emit sends an event if an emitter is configured.
// Safe to call even when emitter is nil.
func (e *Engine) emit(event Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}

func (e *Engine) setState(state State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = state
}

func (e *Engine) logToFile(message string) {
	if e.logFile != nil {
		e.logMu.Lock()
		defer e.logMu.Unlock()

		timestamp := time.Now().Format("15:04:05.000")
		_, _ = fmt.Fprintf(e.logFile, "[%s] %s\n", timestamp, message)
	}
}

func percent(done, total int) int {
	return int(math.Round(float64(done) / float64(total) * 100))
}
