package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary    = lipgloss.Color("#C084FC") // soft violet
	ColorDanger     = lipgloss.Color("#FF5555")
	ColorMuted      = lipgloss.Color("#4A5568")
	ColorBackground = lipgloss.Color("#1F1F23")
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorText       = lipgloss.Color("#E4E4E7")
	ColorHover      = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorText).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	InfoDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3D4555")).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(ColorCyan).
		Background(lipgloss.Color("#1E3A4C")).
		Padding(0, 1)

	HelpOverlayKey = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Padding(0, 1)
)

// FormatSize formats bytes to human readable string
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	negative := bytes < 0
	if negative {
		bytes = -bytes
	}

	var result string
	switch {
	case bytes >= TB:
		result = fmt.Sprintf("%.1fTB", float64(bytes)/TB)
	case bytes >= GB:
		result = fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	case bytes >= MB:
		result = fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	case bytes >= KB:
		result = fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	default:
		result = fmt.Sprintf("%dB", bytes)
	}

	if negative {
		return "-" + result
	}
	return result
}
