package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/state"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Main content panels
	SurfaceAlt string // Secondary surfaces
	FocusBg    string // Focused pane

	// Party selection
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Elemental type badge colors, keyed by lower-case type name.
	TypeColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Name: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),

		ButtonDisabled: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 1),

		typeColors: t.TypeColors,
		background: t.Background,
		muted:      t.Muted,
		severity: map[state.Severity]string{
			state.SeveritySuccess: t.Success,
			state.SeverityWarning: t.Warning,
			state.SeverityError:   t.Danger,
			state.SeverityInfo:    t.Info,
		},
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header         lipgloss.Style
	Logo           lipgloss.Style
	Name           lipgloss.Style
	Selected       lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	typeColors map[string]string
	background string
	muted      string
	severity   map[state.Severity]string
}

// TypeBadge returns a badge style for an elemental type.
func (s Styles) TypeBadge(typeName string) lipgloss.Style {
	color := s.typeColors[typeName]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// SeverityColor returns the accent color used for a notice of the given severity.
func (s Styles) SeverityColor(sev state.Severity) string {
	if c, ok := s.severity[sev]; ok && c != "" {
		return c
	}
	return s.muted
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Background = s.Background.Background(bg)
	out.Surface = s.Surface.Background(bg)
	out.SurfaceAlt = s.SurfaceAlt.Background(bg)
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Header = s.Header.Background(bg)
	out.Logo = s.Logo.Background(bg)
	out.Name = s.Name.Background(bg)
	return out
}

var themes = map[string]Theme{
	"Pokedex":  pokedexTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Pokedex", "Nightfox", "Slate"}

// GetTheme returns a theme by name, falling back to the Pokedex theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return pokedexTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// Badge colors follow the handheld games' type chart.
var typeColors = map[string]string{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

func pokedexTheme() Theme {
	// Handheld red shell with a dark screen.
	return Theme{
		Name: "Pokedex",

		Background: "#1b1b1f",
		Surface:    "#CE302A",
		SurfaceAlt: "#2a2a30",
		FocusBg:    "#34343c",

		SelectionBg:   "#CE302A",
		SelectionText: "#ffffff",

		Border:      "#822727",
		BorderFocus: "#ffd43b",

		Text:    "#f1f1f1",
		Muted:   "#b9b9c3",
		Faint:   "#7c7c88",
		Accent:  "#ffd43b",
		Success: "#69db7c",
		Warning: "#ffd43b",
		Danger:  "#ff6b6b",
		Info:    "#74c0fc",

		TypeColors: typeColors,
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf",
		Muted:   "#738091",
		Faint:   "#71839b",
		Accent:  "#719cd6",
		Success: "#81b29a",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
		Info:    "#63cdcf",

		TypeColors: typeColors,
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#0f172a",
		Surface:    "#1e293b",
		SurfaceAlt: "#273449",
		FocusBg:    "#334155",

		SelectionBg:   "#334155",
		SelectionText: "#f8fafc",

		Border:      "#475569",
		BorderFocus: "#38bdf8",

		Text:    "#e2e8f0",
		Muted:   "#94a3b8",
		Faint:   "#64748b",
		Accent:  "#38bdf8",
		Success: "#4ade80",
		Warning: "#facc15",
		Danger:  "#f87171",
		Info:    "#22d3ee",

		TypeColors: typeColors,
	}
}
