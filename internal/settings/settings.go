// Package settings persists user preferences between sessions.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme names accepted in the settings file.
const (
	ThemeLight = "Light"
	ThemeDark  = "Dark"
)

// Defaults applied for missing or invalid values.
const (
	DefaultTheme      = ThemeLight
	DefaultSortColumn = 3 // last access time
	maxSortColumn     = 5
)

// Settings holds everything the app remembers across runs.
type Settings struct {
	ComfyUIFolder string `toml:"comfyui_folder"`
	Theme         string `toml:"theme"`
	SortColumn    int    `toml:"sort_col"`
	SortAscending bool   `toml:"sort_ascending"`
}

// Default returns the settings used when nothing has been saved yet.
func Default() Settings {
	return Settings{
		ComfyUIFolder: "",
		Theme:         DefaultTheme,
		SortColumn:    DefaultSortColumn,
		SortAscending: true,
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}

	return filepath.Join(configDir, "model-sweep", "settings.toml"), nil
}

// Load reads settings from the given path. A missing file yields the
// defaults without error; a malformed file yields the defaults and the
// parse error so the caller can warn without losing a working config.
func Load(path string) (Settings, error) {
	loaded := Default()

	_, err := toml.DecodeFile(path, &loaded)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return Default(), fmt.Errorf("failed to parse settings: %w", err)
	}

	return normalize(loaded), nil
}

// Save writes settings to the given path atomically, creating parent
// directories as needed.
func Save(path string, s Settings) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}

	encodeErr := toml.NewEncoder(tmp).Encode(normalize(s))

	closeErr := tmp.Close()

	if encodeErr != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to encode settings: %w", encodeErr)
	}

	if closeErr != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to write settings: %w", closeErr)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	return nil
}

// normalize clamps out-of-range values back to the defaults so a stale or
// hand-edited file can never wedge the UI.
func normalize(s Settings) Settings {
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		s.Theme = DefaultTheme
	}

	if s.SortColumn < 0 || s.SortColumn > maxSortColumn {
		s.SortColumn = DefaultSortColumn
	}

	return s
}
