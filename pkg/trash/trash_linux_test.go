//go:build linux

package trash_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/model-sweep/pkg/trash"
)

// These tests redirect XDG_DATA_HOME, so they cannot run in parallel.

func TestMoveToTrashMovesFileAndWritesInfo(t *testing.T) {
	g := NewWithT(t)

	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	src := filepath.Join(t.TempDir(), "model.safetensors")
	g.Expect(os.WriteFile(src, []byte("weights"), 0o644)).To(Succeed())

	g.Expect(trash.MoveToTrash(src)).To(Succeed())

	// Original is gone, trashed copy exists, info record references it.
	_, err := os.Stat(src)
	g.Expect(os.IsNotExist(err)).To(BeTrue())

	trashed := filepath.Join(dataHome, "Trash", "files", "model.safetensors")
	content, err := os.ReadFile(trashed)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(content)).To(Equal("weights"))

	info, err := os.ReadFile(filepath.Join(dataHome, "Trash", "info", "model.safetensors.trashinfo"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(info)).To(HavePrefix("[Trash Info]\n"))
	g.Expect(string(info)).To(ContainSubstring("Path=" + src))
	g.Expect(string(info)).To(ContainSubstring("DeletionDate="))
}

func TestMoveToTrashSuffixesNameCollisions(t *testing.T) {
	g := NewWithT(t)

	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	dir := t.TempDir()
	for _, content := range []string{"first", "second"} {
		src := filepath.Join(dir, "dup.ckpt")
		g.Expect(os.WriteFile(src, []byte(content), 0o644)).To(Succeed())
		g.Expect(trash.MoveToTrash(src)).To(Succeed())
	}

	filesDir := filepath.Join(dataHome, "Trash", "files")
	first, err := os.ReadFile(filepath.Join(filesDir, "dup.ckpt"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(first)).To(Equal("first"))

	second, err := os.ReadFile(filepath.Join(filesDir, "dup.ckpt.1"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(second)).To(Equal("second"))
}

func TestMoveToTrashMissingFileFails(t *testing.T) {
	g := NewWithT(t)

	t.Setenv("XDG_DATA_HOME", t.TempDir())

	err := trash.MoveToTrash(filepath.Join(t.TempDir(), "nope.pt"))
	g.Expect(err).To(HaveOccurred())
}
