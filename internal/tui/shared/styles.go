package shared

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme names, matching the values persisted in settings.
const (
	ThemeNameLight = "Light"
	ThemeNameDark  = "Dark"
)

// Theme is a named set of colors the widgets render with.
type Theme struct {
	Name      string
	primary   string
	accent    string
	normal    string
	dim       string
	errorCode string
	success   string
	warning   string
	selFg     string
	selBg     string
}

// LightTheme returns the palette for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Name:      ThemeNameLight,
		primary:   "25",  // Deep blue
		accent:    "31",  // Teal
		normal:    "235", // Near black
		dim:       "245",
		errorCode: "124", // Dark red
		success:   "28",  // Dark green
		warning:   "130", // Brown-orange
		selFg:     "231",
		selBg:     "25",
	}
}

// DarkTheme returns the palette for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Name:      ThemeNameDark,
		primary:   "205", // Pink/purple
		accent:    "86",  // Cyan
		normal:    "252", // Light gray
		dim:       "240",
		errorCode: "196", // Red
		success:   "42",  // Green
		warning:   "226", // Yellow
		selFg:     "229",
		selBg:     "57",
	}
}

// ThemeByName maps a persisted theme name to its palette, falling back to
// the light theme for anything unrecognized.
func ThemeByName(name string) Theme {
	if name == ThemeNameDark {
		return DarkTheme()
	}

	return LightTheme()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == ThemeNameDark {
		return LightTheme()
	}

	return DarkTheme()
}

// TitleStyle returns the style for titles
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.primary))
}

// LabelStyle returns the style for labels
func (t Theme) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.accent)).
		Bold(true)
}

// NormalStyle returns the style for regular text
func (t Theme) NormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.normal))
}

// DimStyle returns the style for dimmed text
func (t Theme) DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.dim))
}

// ErrorStyle returns the style for error messages
func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.errorCode)).
		Bold(true)
}

// SuccessStyle returns the style for success messages
func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.success)).
		Bold(true)
}

// WarningStyle returns the style for warning messages
func (t Theme) WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.warning)).
		Bold(true)
}

// BoxStyle returns the style for bordered containers
func (t Theme) BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.accent))
}

// ConfirmStyle returns the style for the confirmation footer
func (t Theme) ConfirmStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.selFg)).
		Background(lipgloss.Color(t.errorCode)).
		Bold(true).
		Padding(0, 1)
}

// TableStyles returns the bubbles table styling for this theme.
func (t Theme) TableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.dim)).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(t.selFg)).
		Background(lipgloss.Color(t.selBg)).
		Bold(true)

	return styles
}
