package beadart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultPalette(t *testing.T) {
	art := ansi.Strip(Build())

	lines := strings.Split(art, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, len(defaultColors), strings.Count(lines[0], "╭───╮"))
}

func TestBuild_OneBeadPerColor(t *testing.T) {
	art := ansi.Strip(Build(lipgloss.Color("#FF0000"), lipgloss.Color("#00FF00")))

	lines := strings.Split(art, "\n")
	require.Equal(t, 2, strings.Count(lines[0], "╭───╮"))
	require.Equal(t, "──│   │──│   │──", lines[1])
}

func TestBuildBroken(t *testing.T) {
	art := ansi.Strip(BuildBroken())

	lines := strings.Split(art, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "╲ ╱")
	require.Equal(t, len(defaultColors), strings.Count(lines[2], "╰───╯"))
}
