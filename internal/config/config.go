// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
)

// Exported variables.
var (
	ErrRootNotDirectory = errors.New("root path is not a directory")
	ErrRootNotFound     = errors.New("root path does not exist")
)

// Config holds the application configuration.
type Config struct {
	Root         string `arg:"-r,--root" help:"ComfyUI directory to scan (defaults to the saved folder)"`
	SettingsPath string `arg:"--settings" help:"Settings file path (defaults to the per-user config dir)"`
	Pattern      string `arg:"-p,--pattern" help:"Optional glob narrowing the scan, matched against root-relative paths (e.g. '**/*.ckpt')"`
	Permanent    bool   `arg:"--permanent" help:"Start with permanent delete instead of the recycle bin"`
	DebugLog     string `arg:"--debug-log" help:"Write engine debug output to this file"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Scan a ComfyUI installation for model files and clean them up from a Terminal UI"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "model-sweep 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	arg.MustParse(cfg)

	err := cfg.ValidateRoot()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateRoot validates the root path when one was given on the command
// line. An empty root is fine; the user picks one in the UI.
func (cfg *Config) ValidateRoot() error {
	if cfg.Root == "" {
		return nil
	}

	info, err := os.Stat(cfg.Root)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrRootNotFound, cfg.Root)
	}

	if err != nil {
		return fmt.Errorf("cannot access root path: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, cfg.Root)
	}

	return nil
}
