package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorSelect  = colorMauve
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerHintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	indexStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
	bitOneStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	bitZeroStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	blankStyle   = lipgloss.NewStyle().Foreground(colorSurface2)

	selectedStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorSelect)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)

	chipLabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.Foreground(colorError)
	statusOKStyle  = statusBarStyle.Foreground(colorSuccess)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	paletteTitleStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	paletteCursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	paletteDisabledStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	paletteDescStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	paletteCategoryStyle = lipgloss.NewStyle().Foreground(colorInfo)
	paletteWarnStyle     = lipgloss.NewStyle().Foreground(colorWarning)
)

// rangeStyle paints a committed range band or chip in its stored colour.
func rangeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorText).Background(lipgloss.Color(color))
}
