package dashboard

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	metricStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1).
			Width(18)

	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	negativeStyle    = lipgloss.NewStyle().Foreground(colorRed)
	hitStyle         = lipgloss.NewStyle().Foreground(colorPeach)
	okStyle          = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle        = lipgloss.NewStyle().Foreground(colorYellow)
	codeStyle        = lipgloss.NewStyle().Foreground(colorTeal)
)

// scoreStyle colours a risk score: 0 green, 1-2 yellow, higher red.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score <= 0:
		return okStyle.Bold(true)
	case score <= 2:
		return warnStyle.Bold(true)
	default:
		return negativeStyle.Bold(true)
	}
}
