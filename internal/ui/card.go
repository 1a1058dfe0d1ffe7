package ui

import (
	"fmt"
	"strings"

	"github.com/five82/pokedex/internal/pokeapi"
)

// cardStats are the stats shown on the result card, in display order.
var cardStats = []struct{ key, label string }{
	{"hp", "HP"},
	{"attack", "Attack"},
	{"defense", "Defense"},
	{"speed", "Speed"},
}

const emptyCardText = "Search for a Pokemon to begin"

// renderCard builds the lookup pane: the search input followed by the current
// result or the empty state.
func (m Model) renderCard(width int, focused bool) []string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	inner := max(width-2, 1)

	lines := []string{
		bg.Render("Search", styles.MutedText) + bg.Space() + m.input.View(),
		"",
	}

	c := m.snapshot.Current
	if c == nil {
		if m.snapshot.Loading {
			return append(lines, bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+
				bg.Render("Looking up "+truncate(pokeapi.NormalizeToken(m.snapshot.Query), inner-12), styles.MutedText))
		}
		return append(lines, bg.Render(emptyCardText, styles.FaintText))
	}

	name := bg.Render(titleCase(c.Name), styles.Name) + bg.Space() +
		bg.Render(fmt.Sprintf("#%d", c.ID), styles.MutedText)
	if m.snapshot.Loading {
		name += bg.Space() + bg.Render(m.spinner.View(), styles.AccentText)
	}
	lines = append(lines, name)

	badges := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		badges = append(badges, styles.TypeBadge(t).Render(strings.ToUpper(t)))
	}
	lines = append(lines, bg.Render("Type", styles.MutedText)+bg.Space()+strings.Join(badges, bg.Space()), "")

	stats := make([]string, 0, len(cardStats))
	for _, s := range cardStats {
		stats = append(stats,
			bg.Render(s.label, styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", c.Stat(s.key)), styles.Text.Bold(true)))
	}
	lines = append(lines, strings.Join(stats, bg.Spaces(3)))

	if c.ImageURL != "" {
		lines = append(lines, bg.Render("Sprite", styles.MutedText)+bg.Space()+
			bg.Render(truncateMiddle(c.ImageURL, inner-8), styles.FaintText))
	}

	lines = append(lines, "", m.renderCaptureButton(styles, bg))
	return lines
}

// renderCaptureButton shows the capture action, disabled once the party is full.
func (m Model) renderCaptureButton(styles Styles, bg BgStyle) string {
	if m.snapshot.PartyFull() {
		return styles.ButtonDisabled.Render("c Capture") + bg.Space() +
			bg.Render("Party is full", styles.WarningText)
	}
	return styles.Button.Render("c Capture")
}
