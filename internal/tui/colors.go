package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisableColor forces plain ASCII output for every style in this package.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ApplyColorPreference disables color when requested or when NO_COLOR is set.
func ApplyColorPreference(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		DisableColor()
	}
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorPath renders a filesystem path
func ColorPath(path string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(path)
}
