// Package beadart renders the strand of beads shown above menus and reports.
package beadart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default strand colors, used when no bead colors are given.
var defaultColors = []lipgloss.Color{
	"#54A0FF", // Blue
	"#73F59F", // Green
	"#FECA57", // Yellow
	"#FF6B6B", // Red
	"#7D56F4", // Purple
}

var threadColor = lipgloss.Color("#CCCCCC")

// Bead pieces (rendered separately for coloring).
var (
	beadLines = []string{
		"╭───╮",
		"│   │",
		"╰───╯",
	}

	// Thread between beads, aligned with the bead's middle row
	threadLines = []string{
		"  ",
		"──",
		"  ",
	}

	// Broken thread with a gap, used for the empty catalog view
	brokenLines = []string{
		" ╲ ╱ ",
		"─   ─",
		" ╱ ╲ ",
	}
)

// Build constructs a strand with one bead per color. With no colors the
// default palette is used.
func Build(colors ...lipgloss.Color) string {
	if len(colors) == 0 {
		colors = defaultColors
	}
	threadStyle := lipgloss.NewStyle().Foreground(threadColor)

	pieces := make([]string, 0, 2*len(colors)+1)
	pieces = append(pieces, renderLines(threadLines, threadStyle))
	for _, c := range colors {
		pieces = append(pieces, renderLines(beadLines, lipgloss.NewStyle().Foreground(c)))
		pieces = append(pieces, renderLines(threadLines, threadStyle))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pieces...)
}

// BuildBroken constructs the default strand with the thread snapped in the
// middle.
func BuildBroken() string {
	threadStyle := lipgloss.NewStyle().Foreground(threadColor)
	half := len(defaultColors) / 2

	pieces := make([]string, 0, 2*len(defaultColors)+1)
	for i, c := range defaultColors {
		if i == half {
			pieces = append(pieces, renderLines(brokenLines, threadStyle))
		} else if i > 0 {
			pieces = append(pieces, renderLines(threadLines, threadStyle))
		}
		pieces = append(pieces, renderLines(beadLines, lipgloss.NewStyle().Foreground(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pieces...)
}

// renderLines joins lines with newlines and applies a style.
func renderLines(lines []string, style lipgloss.Style) string {
	return style.Render(strings.Join(lines, "\n"))
}
