package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain lays out header, lookup pane, party pane, toasts and command bar.
func (m Model) renderMain() string {
	header := m.renderHeader()
	commandBar := m.renderCommandBar()
	toasts := m.renderToasts()

	used := lipgloss.Height(header) + lipgloss.Height(commandBar)
	if toasts != "" {
		used += lipgloss.Height(toasts)
	}
	bodyHeight := max(m.height-used, 6)

	var body string
	if m.width < 70 {
		// Stack panes on narrow terminals.
		cardHeight := max(bodyHeight*3/5, 4)
		partyHeight := max(bodyHeight-cardHeight, 4)
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderTitledBox("Lookup", strings.Join(m.renderCard(m.width, m.focus != PaneParty), "\n"),
				m.width, cardHeight, m.focus != PaneParty),
			m.renderTitledBox(m.partyTitle(), strings.Join(m.renderParty(m.width, m.focus == PaneParty), "\n"),
				m.width, partyHeight, m.focus == PaneParty),
		)
	} else {
		cardWidth := m.width * 3 / 5
		partyWidth := m.width - cardWidth
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderTitledBox("Lookup", strings.Join(m.renderCard(cardWidth, m.focus != PaneParty), "\n"),
				cardWidth, bodyHeight, m.focus != PaneParty),
			m.renderTitledBox(m.partyTitle(), strings.Join(m.renderParty(partyWidth, m.focus == PaneParty), "\n"),
				partyWidth, bodyHeight, m.focus == PaneParty),
		)
	}

	rows := []string{header, body}
	if toasts != "" {
		rows = append(rows, toasts)
	}
	rows = append(rows, commandBar)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
