package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/model-sweep/internal/catalog"
	"github.com/joe/model-sweep/internal/export"
	"github.com/joe/model-sweep/internal/scanengine"
	"github.com/joe/model-sweep/internal/settings"
	"github.com/joe/model-sweep/internal/tui/shared"
	perrors "github.com/joe/model-sweep/pkg/errors"
)

// exportDoneMsg reports the outcome of a background xlsx export.
type exportDoneMsg struct {
	path  string
	count int
	err   error
}

// Update implements tea.Model.
//
//nolint:cyclop // Top-level message dispatch is a wide but flat switch
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateLayout(msg.Width, msg.Height)

	case shared.EngineEventMsg:
		cmd := m.handleEngineEvent(msg.Event)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case shared.FlushTickMsg:
		if m.mode == modeScanning {
			// Buffered rows only reach the grid while the filter is empty;
			// otherwise they wait for the authoritative pass at scan end.
			if m.flushDirty && m.catalog.Filter() == "" {
				m.refreshTable()
			}

			m.flushDirty = false

			cmds = append(cmds, shared.FlushTickCmd())
		}

	case exportDoneMsg:
		m.mode = modeIdle

		if msg.err != nil {
			m.lastError = "Export failed: " + msg.err.Error()
			m.status = "Export failed."
		} else {
			m.status = fmt.Sprintf("Exported %d rows to %s.", msg.count, msg.path)
		}

	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)

		return model, cmd
	}

	model, cmd := m.updateWidgets(msg)
	cmds = append(cmds, cmd)

	return model, tea.Batch(cmds...)
}

//nolint:cyclop,funlen // Key dispatch covers every binding on one screen
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm.active {
		switch msg.String() {
		case "y", "Y":
			paths := m.confirm.paths
			m.confirm = confirmState{}

			return m, m.startDelete(paths)
		case "n", "N", "esc":
			m.confirm = confirmState{}
			m.status = "Delete cancelled."
		}

		return m, nil
	}

	// Bindings that hold regardless of focus.
	switch {
	case msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, m.keys.NextFocus):
		m.cycleFocus()

		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeScanning || m.mode == modeDeleting {
			m.requestCancel()
		}

		return m, nil
	}

	typing := m.focus == focusDir || m.focus == focusFilter
	if typing {
		if msg.String() == "enter" && m.focus == focusDir {
			return m, m.startScan()
		}

		model, cmd := m.updateWidgets(msg)

		return model, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Scan):
		return m, m.startScan()
	case key.Matches(msg, m.keys.ToggleCheck):
		m.toggleCheckedAtCursor()
	case key.Matches(msg, m.keys.CheckAll):
		m.catalog.ToggleAll(true)
		m.refreshTable()
	case key.Matches(msg, m.keys.CheckNone):
		m.catalog.ToggleAll(false)
		m.refreshTable()
	case key.Matches(msg, m.keys.Delete):
		m.requestDelete()
	case key.Matches(msg, m.keys.RecycleBin):
		m.useRecycleBin = !m.useRecycleBin
		if m.useRecycleBin {
			m.status = "Delete mode: Recycle Bin."
		} else {
			m.status = "Delete mode: permanent delete."
		}
	case key.Matches(msg, m.keys.Export):
		return m, m.startExport()
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		m.table.SetStyles(m.theme.TableStyles())
	case key.Matches(msg, m.keys.SortColumn):
		m.applySortKey(msg.String())
	default:
		model, cmd := m.updateWidgets(msg)

		return model, cmd
	}

	return m, nil
}

// handleEngineEvent applies one engine event and, unless the run finished,
// re-arms the listening pump.
//
//nolint:cyclop // One case per event variant
func (m *Model) handleEngineEvent(event scanengine.Event) tea.Cmd {
	switch event := event.(type) {
	case scanengine.Progress:
		m.percent = event.Percent

	case scanengine.StatusMessage:
		m.status = event.Text

	case scanengine.RowFound:
		m.catalog.Ingest(event.Row)

		m.flushDirty = true

	case scanengine.ScanDone:
		m.refreshTable()

	case scanengine.Deleted:
		m.catalog.RemovePaths(event.Paths)
		m.refreshTable()

	case scanengine.Failed:
		m.report = buildFailureReport(event.Failures)

	case scanengine.ErrorOccurred:
		m.lastError = event.Err.Error()

	case scanengine.Finished:
		m.finishRun()

		return nil
	}

	if m.bridge != nil {
		return m.bridge.ListenCmd()
	}

	return nil
}

// finishRun returns the screen to idle once the engine has settled,
// whatever the outcome.
func (m *Model) finishRun() {
	if m.engine != nil {
		m.engine.CloseLog()
	}

	m.engine = nil
	m.bridge = nil
	m.mode = modeIdle
	m.cancelling = false
	m.flushDirty = false

	m.refreshTable()
}

func (m *Model) requestCancel() {
	if m.engine == nil || m.cancelling {
		return
	}

	m.cancelling = true
	m.engine.Cancel()
	m.status = "Cancelling..."
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.engine != nil {
		m.engine.Cancel()
	}

	if m.settingsPath != "" {
		_ = settings.Save(m.settingsPath, m.Settings())
	}

	m.quitting = true

	return m, tea.Quit
}

func (m *Model) cycleFocus() {
	m.dirInput.Blur()
	m.filterInput.Blur()
	m.table.Blur()

	switch m.focus {
	case focusDir:
		m.focus = focusFilter

		m.filterInput.Focus()
	case focusFilter:
		m.focus = focusTable

		m.table.Focus()
	case focusTable:
		m.focus = focusDir

		m.dirInput.Focus()
	}
}

func (m *Model) startScan() tea.Cmd {
	if m.mode != modeIdle {
		return nil
	}

	root := strings.TrimSpace(m.dirInput.Value())

	engine := scanengine.NewEngine(root)
	engine.FilePattern = m.pattern

	bridge := shared.NewEventBridge()
	engine.SetEventEmitter(bridge)

	if m.debugLogPath != "" {
		_ = engine.EnableFileLogging(m.debugLogPath)
	}

	m.engine = engine
	m.bridge = bridge
	m.mode = modeScanning
	m.cancelling = false
	m.percent = 0
	m.lastError = ""
	m.report = nil

	m.catalog.Reset()
	m.table.SetRows(nil)
	m.visiblePaths = nil

	go func() {
		_ = engine.Scan()

		bridge.Close()
	}()

	return tea.Batch(bridge.ListenCmd(), shared.FlushTickCmd())
}

func (m *Model) requestDelete() {
	if m.mode != modeIdle {
		return
	}

	paths := m.catalog.CheckedPaths()
	if len(paths) == 0 {
		m.status = "Nothing selected to delete."

		return
	}

	m.confirm = confirmState{active: true, paths: paths}
}

func (m *Model) startDelete(paths []string) tea.Cmd {
	if m.mode != modeIdle {
		return nil
	}

	engine := scanengine.NewEngine(strings.TrimSpace(m.dirInput.Value()))

	bridge := shared.NewEventBridge()
	engine.SetEventEmitter(bridge)

	if m.debugLogPath != "" {
		_ = engine.EnableFileLogging(m.debugLogPath)
	}

	m.engine = engine
	m.bridge = bridge
	m.mode = modeDeleting
	m.cancelling = false
	m.percent = 0
	m.lastError = ""
	m.report = nil

	useRecycleBin := m.useRecycleBin

	go func() {
		_ = engine.Delete(paths, useRecycleBin)

		bridge.Close()
	}()

	return bridge.ListenCmd()
}

func (m *Model) startExport() tea.Cmd {
	if m.mode != modeIdle {
		return nil
	}

	rows := m.catalog.VisibleRows()
	if len(rows) == 0 {
		m.status = "Nothing to export."

		return nil
	}

	m.mode = modeExporting
	m.status = "Exporting..."

	path := export.DefaultFileName

	return func() tea.Msg {
		err := export.WriteXLSX(path, rows)

		return exportDoneMsg{path: path, count: len(rows), err: err}
	}
}

func (m *Model) toggleCheckedAtCursor() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visiblePaths) {
		return
	}

	path := m.visiblePaths[idx]
	m.catalog.SetChecked(path, !m.catalog.Checked(path))
	m.refreshTable()
}

// applySortKey maps a digit key to a sort column. Picking the current
// column again flips the direction.
func (m *Model) applySortKey(digit string) {
	column := int(digit[0] - '1')

	key, ascending := m.catalog.Sort()
	next := catalog.SortKeyFromColumn(column)

	if next == key {
		ascending = !ascending
	} else {
		ascending = true
	}

	m.catalog.SetSort(next, ascending)
	m.refreshTable()

	direction := "ascending"
	if !ascending {
		direction = "descending"
	}

	m.status = fmt.Sprintf("Sorted by %s (%s).", next.String(), direction)
}

// refreshTable re-derives the visible order and rebuilds the grid rows.
func (m *Model) refreshTable() {
	rows := m.catalog.VisibleRows()

	tableRows := make([]table.Row, 0, len(rows))
	m.visiblePaths = make([]string, 0, len(rows))

	for _, row := range rows {
		m.visiblePaths = append(m.visiblePaths, row.FullPath)
		check := "[ ]"
		if m.catalog.Checked(row.FullPath) {
			check = "[x]"
		}

		tableRows = append(tableRows, table.Row{
			check,
			row.Directory,
			row.Name,
			shared.FormatBytes(row.Length),
			row.LastAccessTime,
			row.LastWriteTime,
			row.CreationTime,
		})
	}

	m.table.SetRows(tableRows)
	m.flushDirty = false

	if m.mode == modeIdle {
		m.status = m.showingStatus(len(rows))
	}
}

func (m Model) showingStatus(shown int) string {
	total := m.catalog.Len()

	switch {
	case total == 0:
		return "Ready."
	case shown < total:
		return fmt.Sprintf("Showing %d of %d files (filtered).", shown, total)
	default:
		return fmt.Sprintf("Showing %d files.", shown)
	}
}

func (m Model) updateWidgets(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	previousFilter := m.filterInput.Value()

	var cmd tea.Cmd

	m.dirInput, cmd = m.dirInput.Update(msg)
	cmds = append(cmds, cmd)

	m.filterInput, cmd = m.filterInput.Update(msg)
	cmds = append(cmds, cmd)

	if m.focus == focusTable {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.filterInput.Value() != previousFilter {
		m.catalog.SetFilter(m.filterInput.Value())

		if m.mode == modeIdle {
			m.refreshTable()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateLayout(width, height int) {
	if width == 0 || height == 0 {
		return
	}

	m.width = width
	m.height = height

	m.table.SetColumns(tableColumns(width))
	m.table.SetWidth(width - 4)

	gridHeight := height - 12
	if gridHeight < 5 {
		gridHeight = 5
	}

	m.table.SetHeight(gridHeight)

	barWidth := width - 24
	if barWidth < 20 {
		barWidth = 20
	}

	m.progressBar.Width = barWidth
	m.help.Width = width
}

// buildFailureReport renders per-path delete failures as a capped list with
// remediation hints for the first one.
func buildFailureReport(failures []scanengine.Failure) []string {
	if len(failures) == 0 {
		return nil
	}

	lines := make([]string, 0, failureReportCap+2)

	for i, failure := range failures {
		if i == failureReportCap {
			lines = append(lines, fmt.Sprintf("(and %d more...)", len(failures)-failureReportCap))

			break
		}

		lines = append(lines, fmt.Sprintf("%s: %s", failure.Path, failure.Reason))
	}

	enriched := perrors.NewEnricher().Enrich(errors.New(failures[0].Reason), failures[0].Path)

	suggestions := perrors.FormatSuggestions(enriched)
	if suggestions != "" {
		lines = append(lines, suggestions)
	}

	return lines
}
