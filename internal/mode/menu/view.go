package menu

import (
	"strings"

	"github.com/zjrosen/beadmatch/internal/ui/beadart"
	"github.com/zjrosen/beadmatch/internal/ui/styles"
)

// View renders the menu.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(beadart.Build())
	b.WriteString("\n\n")
	b.WriteString(styles.TitleStyle.Render("beadmatch"))
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render("1: cost of sprite"))
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render("2: convert bead color between brands"))
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render("3: exit"))
	b.WriteString("\n\n")

	if m.output != "" {
		if m.failed {
			b.WriteString(styles.ErrorStyle.Render(m.output))
		} else {
			b.WriteString(m.output)
		}
		b.WriteString("\n\n")
	}

	if m.notice != "" {
		b.WriteString(styles.ErrorStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(styles.SuccessStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.stage == stageWorking {
		b.WriteString(styles.MutedStyle.Render("working..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Italic(true).Render("esc: back to menu • ctrl+y: copy result • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}
