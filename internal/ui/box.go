package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledBox draws a bordered pane with its title embedded in the top
// border. Content lines beyond the box are dropped and long lines are cut.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}

	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	title = truncate(title, innerWidth-2)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Sep(" ") + bg.Render(title, titleStyle) + bg.Sep(" ") +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(bgColorStr)).
		Width(innerWidth).
		MaxWidth(innerWidth).
		Inline(true)

	contentLines := strings.Split(content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, topBorder)
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	rows = append(rows, bottomBorder)
	return strings.Join(rows, "\n")
}
