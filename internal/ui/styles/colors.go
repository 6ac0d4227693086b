// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color tokens.
var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#4A4A4A", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#777777"}
	AccentColor          = lipgloss.AdaptiveColor{Light: "#5A3FD0", Dark: "#7D56F4"}
	StatusErrorColor     = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF8787"}
	StatusSuccessColor   = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#73F59F"}
	BorderDefaultColor   = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#555555"}
)

// Shared styles.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	TextStyle    = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(StatusErrorColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	PromptStyle  = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
)

// SwatchColor returns the display color for a bead. hex is the catalog's hex
// field (with or without "#"); fallback is used when hex is not a color.
func SwatchColor(hex, fallback string) lipgloss.Color {
	if hex != "" && hex[0] != '#' {
		hex = "#" + hex
	}
	if c, err := colorful.Hex(hex); err == nil {
		return lipgloss.Color(c.Hex())
	}
	return lipgloss.Color(fallback)
}

// Swatch renders a two-cell block filled with color.
func Swatch(color lipgloss.Color) string {
	return lipgloss.NewStyle().Background(color).Render("  ")
}
