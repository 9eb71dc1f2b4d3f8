package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay displays keyboard shortcuts in a centered overlay
type HelpOverlay struct {
	visible bool
	version string
	keys    KeyMap
}

// NewHelpOverlay creates a new help overlay component
func NewHelpOverlay(version string, keys KeyMap) HelpOverlay {
	return HelpOverlay{version: version, keys: keys}
}

// Toggle toggles the visibility of the help overlay
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// SetVisible sets the visibility of the help overlay
func (h *HelpOverlay) SetVisible(visible bool) {
	h.visible = visible
}

// IsVisible returns whether the help overlay is visible
func (h HelpOverlay) IsVisible() bool {
	return h.visible
}

// View renders the help overlay
func (h HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 3)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)
	dimStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var content strings.Builder
	content.WriteString(TitleStyle.Render("tmtree"))
	if h.version != "" {
		content.WriteString(dimStyle.Render(" " + h.version))
	}
	content.WriteString("\n")

	for _, group := range h.keys.FullHelp() {
		content.WriteString("\n")
		for _, b := range group {
			k := HelpOverlayKey.Width(12).Render(b.Help().Key)
			content.WriteString(k + descStyle.Render(b.Help().Desc) + "\n")
		}
	}
	content.WriteString("\n" + dimStyle.Render("click selects, clicking again deselects"))

	return boxStyle.Render(content.String())
}

// HelpBar renders a bottom help bar with key hints
func HelpBar(width int, keys KeyMap) string {
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	hints := keys.ShortHelp()
	if width < 60 {
		hints = []key.Binding{keys.Help, keys.Quit}
	}

	parts := make([]string, 0, len(hints))
	for _, b := range hints {
		parts = append(parts, HelpKey.Render(b.Help().Key)+" "+descStyle.Render(b.Help().Desc))
	}

	separator := "   "
	if width < 100 {
		separator = "  "
	}
	return HelpStyle.Width(width).MaxHeight(1).Render(strings.Join(parts, separator))
}
