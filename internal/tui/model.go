// Package tui implements the interactive terminal interface: one persistent
// screen with a directory picker, a filterable model-file grid, and
// background scan/delete/export tasks.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/model-sweep/internal/catalog"
	"github.com/joe/model-sweep/internal/config"
	"github.com/joe/model-sweep/internal/scanengine"
	"github.com/joe/model-sweep/internal/settings"
	"github.com/joe/model-sweep/internal/tui/shared"
)

// mode is what the screen is currently busy with. Tasks are mutually
// exclusive; a new one starts only from modeIdle.
type mode int

const (
	modeIdle mode = iota
	modeScanning
	modeDeleting
	modeExporting
)

// focusArea is which widget receives keystrokes.
type focusArea int

const (
	focusDir focusArea = iota
	focusFilter
	focusTable
)

// failureReportCap bounds the failure lines shown after a delete.
const failureReportCap = 10

type confirmState struct {
	active bool
	paths  []string
}

// Model is the single-screen bubbletea model.
type Model struct {
	dirInput    textinput.Model
	filterInput textinput.Model
	table       table.Model
	progressBar progress.Model
	help        help.Model
	keys        keyMap

	catalog *catalog.Catalog
	theme   shared.Theme

	settings     settings.Settings
	settingsPath string
	pattern      string
	debugLogPath string

	mode          mode
	focus         focusArea
	cancelling    bool
	useRecycleBin bool
	confirm       confirmState

	engine *scanengine.Engine
	bridge *shared.EventBridge

	// Streamed rows land in the catalog immediately; the grid refresh is
	// batched behind flushDirty and applied on the flush tick.
	flushDirty bool

	// visiblePaths mirrors the projection the grid was last built from, so
	// cursor positions resolve against what is on screen rather than a
	// projection that may have shifted under a live scan.
	visiblePaths []string

	percent   int
	status    string
	lastError string
	report    []string
	width     int
	height    int
	quitting  bool
}

// New builds the screen from parsed flags and loaded settings.
func New(cfg *config.Config, loaded settings.Settings, settingsPath string) Model {
	theme := shared.ThemeByName(loaded.Theme)

	dir := textinput.New()
	dir.Placeholder = "ComfyUI directory"
	dir.Prompt = "Directory: "
	dir.SetValue(loaded.ComfyUIFolder)

	if cfg.Root != "" {
		dir.SetValue(cfg.Root)
	}

	dir.Focus()

	filter := textinput.New()
	filter.Placeholder = "substring of directory or name"
	filter.Prompt = "Filter: "

	grid := table.New(
		table.WithColumns(tableColumns(0)),
		table.WithFocused(false),
	)
	grid.SetStyles(theme.TableStyles())

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)

	cat := catalog.New(catalog.SortKeyFromColumn(loaded.SortColumn), loaded.SortAscending)

	return Model{
		dirInput:      dir,
		filterInput:   filter,
		table:         grid,
		progressBar:   bar,
		help:          help.New(),
		keys:          newKeyMap(),
		catalog:       cat,
		theme:         theme,
		settings:      loaded,
		settingsPath:  settingsPath,
		pattern:       cfg.Pattern,
		debugLogPath:  cfg.DebugLog,
		useRecycleBin: !cfg.Permanent,
		focus:         focusDir,
		status:        "Ready.",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Settings returns the preferences as they stand now, for persisting at
// exit.
func (m Model) Settings() settings.Settings {
	saved := m.settings
	saved.ComfyUIFolder = m.dirInput.Value()
	saved.Theme = m.theme.Name

	key, ascending := m.catalog.Sort()
	saved.SortColumn = int(key)
	saved.SortAscending = ascending

	return saved
}

func tableColumns(width int) []table.Column {
	const (
		checkWidth = 3
		sizeWidth  = 10
		timeWidth  = 19
	)

	remaining := width - checkWidth - sizeWidth - 3*timeWidth - 14
	if remaining < 40 {
		remaining = 40
	}

	dirWidth := remaining * 2 / 3
	nameWidth := remaining - dirWidth

	return []table.Column{
		{Title: " ", Width: checkWidth},
		{Title: "Directory", Width: dirWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Length", Width: sizeWidth},
		{Title: "LastAccessTime", Width: timeWidth},
		{Title: "LastWriteTime", Width: timeWidth},
		{Title: "CreationTime", Width: timeWidth},
	}
}
