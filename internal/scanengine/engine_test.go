package scanengine_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/model-sweep/internal/scanengine"
)

// testEventEmitter is a simple test double for capturing events.
type testEventEmitter struct {
	events []scanengine.Event
}

func (e *testEventEmitter) Emit(event scanengine.Event) {
	e.events = append(e.events, event)
}

func (e *testEventEmitter) rows() []string {
	var paths []string

	for _, event := range e.events {
		if found, ok := event.(scanengine.RowFound); ok {
			paths = append(paths, found.Row.FullPath)
		}
	}

	return paths
}

func (e *testEventEmitter) percents() []int {
	var percents []int

	for _, event := range e.events {
		if progress, ok := event.(scanengine.Progress); ok {
			percents = append(percents, progress.Percent)
		}
	}

	return percents
}

func (e *testEventEmitter) count(match func(scanengine.Event) bool) int {
	n := 0

	for _, event := range e.events {
		if match(event) {
			n++
		}
	}

	return n
}

func createTestFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}

	err = os.WriteFile(path, []byte("weights"), 0o644)
	if err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

func isFinished(event scanengine.Event) bool {
	_, ok := event.(scanengine.Finished)
	return ok
}

func TestScan_InvalidRootFailsBeforeTraversal(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	engine := scanengine.NewEngine(filepath.Join(t.TempDir(), "does-not-exist"))
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	err := engine.Scan()

	g.Expect(err).To(MatchError(scanengine.ErrInvalidRoot))
	g.Expect(engine.State()).To(Equal(scanengine.StateFailed))

	g.Expect(emitter.events).To(HaveLen(2))
	occurred, ok := emitter.events[0].(scanengine.ErrorOccurred)
	g.Expect(ok).To(BeTrue(), "first event should be ErrorOccurred")
	g.Expect(occurred.Err).To(MatchError(scanengine.ErrInvalidRoot))
	g.Expect(emitter.events[1]).To(Equal(scanengine.Finished{}))
}

func TestScan_FileAsRootFails(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	path := createTestFile(t, root, "a.safetensors")

	engine := scanengine.NewEngine(path)

	g.Expect(engine.Scan()).To(MatchError(scanengine.ErrInvalidRoot))
	g.Expect(engine.State()).To(Equal(scanengine.StateFailed))
}

func TestScan_EmptyTreeCompletesImmediately(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	createTestFile(t, root, "notes/readme.txt")

	engine := scanengine.NewEngine(root)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Scan()).ShouldNot(HaveOccurred())
	g.Expect(engine.State()).To(Equal(scanengine.StateCompleted))

	g.Expect(emitter.percents()).To(Equal([]int{100}))
	g.Expect(emitter.rows()).To(BeEmpty())
	g.Expect(emitter.events).To(ContainElement(scanengine.ScanDone{Total: 0}))
	g.Expect(emitter.events).To(ContainElement(scanengine.StatusMessage{Text: "Scan complete: no model files found."}))
	g.Expect(emitter.events[len(emitter.events)-1]).To(Equal(scanengine.Finished{}))
}

func TestScan_StreamsRowsInDeterministicOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	checkpoint := createTestFile(t, root, "checkpoints/model.ckpt")
	lora := createTestFile(t, root, "loras/style.safetensors")
	vae := createTestFile(t, root, "vae/decoder.pt")
	createTestFile(t, root, "checkpoints/readme.md")

	engine := scanengine.NewEngine(root)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Scan()).ShouldNot(HaveOccurred())
	g.Expect(engine.State()).To(Equal(scanengine.StateCompleted))

	// Sorted walk: lexicographic by directory then name.
	g.Expect(emitter.rows()).To(Equal([]string{checkpoint, lora, vae}))

	percents := emitter.percents()
	g.Expect(percents).To(HaveLen(3))
	g.Expect(percents[len(percents)-1]).To(Equal(100))

	for i := 1; i < len(percents); i++ {
		g.Expect(percents[i]).To(BeNumerically(">=", percents[i-1]))
	}

	g.Expect(emitter.events).To(ContainElement(scanengine.ScanDone{Total: 3}))
	g.Expect(emitter.events).To(ContainElement(scanengine.StatusMessage{Text: "Scan complete: found 3 files."}))
	g.Expect(emitter.events[len(emitter.events)-1]).To(Equal(scanengine.Finished{}))
}

func TestScan_RowCarriesMetadata(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	path := createTestFile(t, root, "model.gguf")

	engine := scanengine.NewEngine(root)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Scan()).ShouldNot(HaveOccurred())

	var found scanengine.RowFound

	for _, event := range emitter.events {
		if row, ok := event.(scanengine.RowFound); ok {
			found = row
		}
	}

	g.Expect(found.Row.FullPath).To(Equal(path))
	g.Expect(found.Row.Directory).To(Equal(root))
	g.Expect(found.Row.Name).To(Equal("model.gguf"))
	g.Expect(found.Row.Length).To(Equal(int64(len("weights"))))
	g.Expect(found.Row.LastWriteTime).ToNot(BeEmpty())
}

func TestScan_GlobPatternNarrowsCandidates(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	checkpoint := createTestFile(t, root, "checkpoints/model.ckpt")
	createTestFile(t, root, "loras/style.safetensors")

	engine := scanengine.NewEngine(root)
	engine.FilePattern = "**/*.ckpt"
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Scan()).ShouldNot(HaveOccurred())

	g.Expect(emitter.rows()).To(Equal([]string{checkpoint}))
	g.Expect(emitter.events).To(ContainElement(scanengine.ScanDone{Total: 1}))
}

func TestScan_CancelledRunIsSilent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	createTestFile(t, root, "model.ckpt")

	engine := scanengine.NewEngine(root)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	engine.Cancel()

	err := engine.Scan()

	g.Expect(err).To(MatchError(scanengine.ErrCancelled))
	g.Expect(engine.State()).To(Equal(scanengine.StateCancelled))

	// No terminal result events, only the unconditional Finished.
	g.Expect(emitter.count(isFinished)).To(Equal(1))
	g.Expect(emitter.rows()).To(BeEmpty())

	for _, event := range emitter.events {
		g.Expect(event).ToNot(BeAssignableToTypeOf(scanengine.ScanDone{}))
		g.Expect(event).ToNot(BeAssignableToTypeOf(scanengine.ErrorOccurred{}))
	}
}

// cancelDuringEnumerationEmitter cancels its engine as soon as the scan
// announces candidate counting, so the stop lands while the walk is still
// stepping through the tree.
type cancelDuringEnumerationEmitter struct {
	testEventEmitter
	engine *scanengine.Engine
}

func (e *cancelDuringEnumerationEmitter) Emit(event scanengine.Event) {
	if _, ok := event.(scanengine.StatusMessage); ok {
		e.engine.Cancel()
	}

	e.testEventEmitter.Emit(event)
}

func TestScan_CancelDuringEnumerationOfCandidatelessTree(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// Only non-model files: the old walk would run to exhaustion and then
	// report completion even though the run had been cancelled.
	root := t.TempDir()
	createTestFile(t, root, "docs/readme.txt")
	createTestFile(t, root, "docs/manual.txt")
	createTestFile(t, root, "logs/out.log")

	engine := scanengine.NewEngine(root)
	emitter := &cancelDuringEnumerationEmitter{engine: engine}
	engine.SetEventEmitter(emitter)

	err := engine.Scan()

	g.Expect(err).To(MatchError(scanengine.ErrCancelled))
	g.Expect(engine.State()).To(Equal(scanengine.StateCancelled))
	g.Expect(emitter.count(isFinished)).To(Equal(1))
	g.Expect(emitter.percents()).To(BeEmpty())

	for _, event := range emitter.events {
		g.Expect(event).ToNot(BeAssignableToTypeOf(scanengine.ScanDone{}))
	}
}

func TestCancel_IsIdempotent(t *testing.T) {
	t.Parallel()

	engine := scanengine.NewEngine(t.TempDir())
	engine.Cancel()
	engine.Cancel()
}

func TestDelete_EmptyInputIsSuccess(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	engine := scanengine.NewEngine(t.TempDir())
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Delete(nil, false)).ShouldNot(HaveOccurred())
	g.Expect(engine.State()).To(Equal(scanengine.StateCompleted))

	g.Expect(emitter.events).To(Equal([]scanengine.Event{
		scanengine.Progress{Percent: 0},
		scanengine.StatusMessage{Text: "Nothing selected to delete."},
		scanengine.Deleted{Paths: []string{}},
		scanengine.Failed{Failures: []scanengine.Failure{}},
		scanengine.Finished{},
	}))
}

func TestDelete_PermanentRemovesFilesAndCollectsFailures(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	first := createTestFile(t, root, "a.safetensors")
	missing := filepath.Join(root, "gone.ckpt")
	second := createTestFile(t, root, "b.pt")

	engine := scanengine.NewEngine(root)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Delete([]string{first, missing, second}, false)).ShouldNot(HaveOccurred())
	g.Expect(engine.State()).To(Equal(scanengine.StateCompleted))

	g.Expect(first).ToNot(BeAnExistingFile())
	g.Expect(second).ToNot(BeAnExistingFile())

	var deleted scanengine.Deleted
	var failed scanengine.Failed

	for _, event := range emitter.events {
		switch typed := event.(type) {
		case scanengine.Deleted:
			deleted = typed
		case scanengine.Failed:
			failed = typed
		}
	}

	g.Expect(deleted.Paths).To(Equal([]string{first, second}))
	g.Expect(failed.Failures).To(HaveLen(1))
	g.Expect(failed.Failures[0].Path).To(Equal(missing))
	g.Expect(failed.Failures[0].Reason).ToNot(BeEmpty())

	g.Expect(emitter.percents()).To(Equal([]int{33, 67, 100}))
	g.Expect(emitter.events).To(ContainElement(scanengine.StatusMessage{Text: "Delete finished: 2 deleted, 1 failed."}))
	g.Expect(emitter.events[len(emitter.events)-1]).To(Equal(scanengine.Finished{}))
}

func TestDelete_CancelledRunEmitsNoResults(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	path := createTestFile(t, root, "a.safetensors")

	engine := scanengine.NewEngine(root)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	engine.Cancel()

	err := engine.Delete([]string{path}, false)

	g.Expect(err).To(MatchError(scanengine.ErrCancelled))
	g.Expect(engine.State()).To(Equal(scanengine.StateCancelled))
	g.Expect(path).To(BeAnExistingFile())

	g.Expect(emitter.count(isFinished)).To(Equal(1))

	for _, event := range emitter.events {
		g.Expect(event).ToNot(BeAssignableToTypeOf(scanengine.Deleted{}))
		g.Expect(event).ToNot(BeAssignableToTypeOf(scanengine.Failed{}))
	}
}

func TestDelete_RecycleBinMode(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("freedesktop trash layout is linux-only")
	}

	g := NewWithT(t)

	// Point the freedesktop trash at a scratch directory.
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	root := t.TempDir()
	path := createTestFile(t, root, "old.ckpt")

	engine := scanengine.NewEngine(root)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Delete([]string{path}, true)).ShouldNot(HaveOccurred())

	g.Expect(path).ToNot(BeAnExistingFile())
	g.Expect(emitter.events).To(ContainElement(scanengine.Deleted{Paths: []string{path}}))
	g.Expect(emitter.events).To(ContainElement(scanengine.StatusMessage{Text: "Deleting 1 files (Recycle Bin)..."}))
}

func TestState_StartsIdle(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	engine := scanengine.NewEngine(t.TempDir())

	g.Expect(engine.State()).To(Equal(scanengine.StateIdle))
	g.Expect(engine.State().String()).To(Equal("idle"))
}
