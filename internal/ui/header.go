package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("pokedex", styles.Logo)}

	switch {
	case m.snapshot.Loading:
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+
				bg.Render("Searching...", styles.WarningText.Bold(true)))
	case m.snapshot.Current != nil:
		parts = append(parts,
			bg.Render("Showing", styles.MutedText)+bg.Space()+
				bg.Render(m.snapshot.Current.Label(), styles.Text))
	default:
		parts = append(parts, bg.Render("Ready", styles.MutedText))
	}

	partyStyle := styles.Text
	if m.snapshot.PartyFull() {
		partyStyle = styles.WarningText.Bold(true)
	}
	parts = append(parts,
		bg.Render("Party:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", len(m.snapshot.Party), state.PartyCapacity), partyStyle))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxWidth(m.width).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints for the focused pane.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.focus {
	case PaneSearch:
		commands = []cmd{
			{"enter", "Look up"},
			{"esc", "Leave input"},
			{"tab", "Focus"},
		}
	case PaneParty:
		commands = []cmd{
			{"j/k", "Select"},
			{"x", "Release"},
			{"1-6", "Release slot"},
			{"c", "Capture"},
			{"/", "Search"},
			{"tab", "Focus"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"c", "Capture"},
			{"/", "Search"},
			{"L", "Activity"},
			{"tab", "Focus"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(strings.Join(segments, sep))
}
