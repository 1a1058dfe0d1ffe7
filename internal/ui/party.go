package ui

import (
	"fmt"
	"strings"

	"github.com/five82/pokedex/internal/state"
)

const emptyPartyText = "Captured Pokemon will appear here"

// renderParty lists the party in capture order. The slot number doubles as
// the release shortcut.
func (m Model) renderParty(width int, focused bool) []string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	if len(m.snapshot.Party) == 0 {
		return []string{bg.Render(emptyPartyText, styles.FaintText)}
	}

	inner := max(width-2, 1)
	lines := make([]string, 0, len(m.snapshot.Party))
	for i, e := range m.snapshot.Party {
		label := fmt.Sprintf("%d  %s #%d", i+1, titleCase(e.Creature.Name), e.Creature.ID)
		if len(e.Creature.Types) > 0 {
			label += "  " + strings.Join(e.Creature.Types, "/")
		}
		label = truncate(label, inner-1)

		if focused && i == m.cursor {
			lines = append(lines, styles.Selected.Width(inner).Render("›"+label))
			continue
		}
		lines = append(lines, bg.Render(" "+label, styles.Text))
	}
	return lines
}

func (m Model) partyTitle() string {
	return fmt.Sprintf("Party %d/%d", len(m.snapshot.Party), state.PartyCapacity)
}
