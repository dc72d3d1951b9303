//go:build linux

package trash

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// moveToTrash implements the freedesktop.org trash specification: the file is
// renamed into $XDG_DATA_HOME/Trash/files and a matching .trashinfo record is
// written so desktop environments can restore it.
func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	filesDir, infoDir, err := trashDirs()
	if err != nil {
		return err
	}

	name := availableName(filesDir, filepath.Base(abs))

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		(&url.URL{Path: abs}).EscapedPath(),
		time.Now().Format("2006-01-02T15:04:05"))

	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0o600); err != nil {
		return err
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		// Rename failed (commonly a cross-device move): drop the orphaned
		// info record and report the failure for this path.
		_ = os.Remove(infoPath)

		return err
	}

	return nil
}

func trashDirs() (filesDir, infoDir string, err error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", "", fmt.Errorf("%w: %w", ErrUnsupported, homeErr)
		}

		dataHome = filepath.Join(home, ".local", "share")
	}

	filesDir = filepath.Join(dataHome, "Trash", "files")
	infoDir = filepath.Join(dataHome, "Trash", "info")

	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(infoDir, 0o700); err != nil {
		return "", "", err
	}

	return filesDir, infoDir, nil
}

// availableName returns base, or base with a numeric suffix when a previous
// trashing already claimed that name.
func availableName(dir, base string) string {
	name := base
	for i := 1; ; i++ {
		if _, err := os.Lstat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name
		}

		name = fmt.Sprintf("%s.%d", base, i)
	}
}
