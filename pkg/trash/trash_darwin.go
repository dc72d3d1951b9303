//go:build darwin

package trash

import (
	"fmt"
	"os"
	"path/filepath"
)

// moveToTrash renames the file into the user's ~/.Trash folder, suffixing the
// name on collision.
func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	trashDir := filepath.Join(home, ".Trash")
	if _, err := os.Stat(trashDir); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	name := filepath.Base(abs)
	target := filepath.Join(trashDir, name)
	for i := 1; ; i++ {
		if _, err := os.Lstat(target); os.IsNotExist(err) {
			break
		}

		target = filepath.Join(trashDir, fmt.Sprintf("%s.%d", name, i))
	}

	return os.Rename(abs, target)
}
