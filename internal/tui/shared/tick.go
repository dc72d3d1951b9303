package shared

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlushIntervalMs is how often buffered scan rows are applied to the grid.
const FlushIntervalMs = 150

// FlushTickMsg is sent on each streaming flush interval.
type FlushTickMsg time.Time

// FlushTickCmd returns a command that sends flush ticks at regular intervals.
func FlushTickCmd() tea.Cmd {
	return tea.Tick(FlushIntervalMs*time.Millisecond, func(t time.Time) tea.Msg {
		return FlushTickMsg(t)
	})
}
