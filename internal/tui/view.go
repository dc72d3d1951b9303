package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/model-sweep/pkg/formatters"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		m.headerView(),
		m.theme.BoxStyle().Render(m.table.View()),
		m.progressView(),
		m.statusView(),
	}

	if report := m.reportView(); report != "" {
		sections = append(sections, report)
	}

	sections = append(sections, m.footerView())

	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m Model) headerView() string {
	title := m.theme.TitleStyle().Render("Model Sweep")

	modeChip := "Recycle Bin"
	if !m.useRecycleBin {
		modeChip = "permanent"
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		title,
		"  ",
		m.theme.DimStyle().Render("delete mode: "+modeChip),
		"  ",
		m.theme.DimStyle().Render("theme: "+m.theme.Name),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		line,
		m.dirInput.View(),
		m.filterInput.View(),
	)
}

func (m Model) progressView() string {
	switch m.mode {
	case modeScanning:
		label := fmt.Sprintf("Scanning... %d%%", m.percent)

		return lipgloss.JoinHorizontal(
			lipgloss.Left,
			m.theme.LabelStyle().Render(label),
			" ",
			m.progressBar.ViewAs(float64(m.percent)/100),
		)
	case modeDeleting:
		label := fmt.Sprintf("Deleting... %d%%", m.percent)

		return lipgloss.JoinHorizontal(
			lipgloss.Left,
			m.theme.WarningStyle().Render(label),
			" ",
			m.progressBar.ViewAs(float64(m.percent)/100),
		)
	case modeExporting:
		return m.theme.LabelStyle().Render("Exporting...")
	case modeIdle:
	}

	count, totalBytes := m.catalog.SelectionStats()
	if count == 0 {
		return m.theme.DimStyle().Render("Selected: 0 files")
	}

	return m.theme.LabelStyle().Render(
		fmt.Sprintf("Selected: %d files, %s", count, formatters.FormatBytes(totalBytes)),
	)
}

func (m Model) statusView() string {
	status := m.theme.NormalStyle().Render(m.status)

	if m.lastError != "" {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			status,
			m.theme.ErrorStyle().Render(m.lastError),
		)
	}

	return status
}

func (m Model) reportView() string {
	if len(m.report) == 0 {
		return ""
	}

	header := m.theme.WarningStyle().Render("Some files could not be deleted:")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.theme.DimStyle().Render(strings.Join(m.report, "\n")),
	)
}

func (m Model) footerView() string {
	if m.confirm.active {
		mode := "permanent delete"
		if m.useRecycleBin {
			mode = "Recycle Bin"
		}

		label := fmt.Sprintf("Delete %d files (%s)? (y/n)", len(m.confirm.paths), mode)

		return m.theme.ConfirmStyle().Render(label)
	}

	return m.help.View(m.keys)
}
