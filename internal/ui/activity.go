package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/logtail"
)

// activityLimit is how many trailing log entries the overlay reads.
const activityLimit = 200

// activityState holds the log overlay contents.
type activityState struct {
	entries []logtail.Entry
	err     error
	loaded  bool
}

var activityRefresh = key.NewBinding(
	key.WithKeys("r"),
	key.WithHelp("r", "Reload"),
)

func (m Model) openActivity() (tea.Model, tea.Cmd) {
	m.showActivity = true
	m.resizeActivity()
	if m.logPath == "" {
		m.activity = activityState{loaded: true}
		m.renderActivityContent()
		return m, nil
	}
	return m, readActivityCmd(m.logPath, activityLimit)
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ToggleLogs), key.Matches(msg, m.keys.Quit):
		m.showActivity = false
		return m, nil
	case key.Matches(msg, activityRefresh):
		if m.logPath == "" {
			return m, nil
		}
		return m, readActivityCmd(m.logPath, activityLimit)
	case key.Matches(msg, m.keys.Up):
		m.activityView.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.activityView.LineDown(1)
	default:
		var cmd tea.Cmd
		m.activityView, cmd = m.activityView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleActivity(msg activityMsg) {
	m.activity = activityState{entries: msg.entries, err: msg.err, loaded: true}
	m.renderActivityContent()
	m.activityView.GotoBottom()
}

func (m *Model) resizeActivity() {
	w, h := max(m.width-4, 10), max(m.height-4, 3)
	if m.activityView.Width == 0 {
		m.activityView = viewport.New(w, h)
	}
	m.activityView.Width = w
	m.activityView.Height = h
	m.activityView.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
}

// renderActivityContent formats the loaded entries into the viewport.
func (m *Model) renderActivityContent() {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	var lines []string
	switch {
	case m.logPath == "":
		lines = append(lines, bg.Render("File logging is disabled", styles.FaintText))
	case m.activity.err != nil:
		lines = append(lines, bg.Render(m.activity.err.Error(), styles.DangerText))
	case len(m.activity.entries) == 0:
		lines = append(lines, bg.Render("No activity yet", styles.FaintText))
	default:
		for _, e := range m.activity.entries {
			lines = append(lines, formatActivityLine(e, styles, bg))
		}
	}
	m.activityView.SetContent(strings.Join(lines, "\n"))
}

func formatActivityLine(e logtail.Entry, styles Styles, bg BgStyle) string {
	if e.Raw != "" {
		return bg.Render(e.Raw, styles.FaintText)
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(bg.Render(e.Time.Local().Format("15:04:05"), styles.FaintText))
		b.WriteString(bg.Space())
	}
	b.WriteString(bg.Render(fmt.Sprintf("%-5s", strings.ToUpper(e.Level)), levelStyle(e.Level, styles).Bold(true)))
	b.WriteString(bg.Space())
	b.WriteString(bg.Render(e.Message, styles.Text))
	for _, k := range e.FieldKeys() {
		b.WriteString(bg.Spaces(2))
		b.WriteString(bg.Render(k+"=", styles.MutedText))
		b.WriteString(bg.Render(e.Fields[k], styles.AccentText))
	}
	return b.String()
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToLower(level) {
	case "error", "dpanic", "panic", "fatal":
		return styles.DangerText
	case "warn":
		return styles.WarningText
	case "debug":
		return styles.FaintText
	default:
		return styles.InfoText
	}
}

// renderActivity renders the full-screen activity overlay.
func (m Model) renderActivity() string {
	title := "Activity"
	if m.logPath != "" {
		title += "  " + truncateMiddle(m.logPath, max(m.width/2, 10))
	}
	box := m.renderTitledBox(title, m.activityView.View(), m.width, m.height-1, true)
	return lipgloss.JoinVertical(lipgloss.Left, box, m.renderActivityBar())
}

func (m Model) renderActivityBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	colon := bg.Sep(":")
	segments := []string{
		bg.Render("j/k", styles.AccentText) + colon + bg.Render("Scroll", styles.MutedText),
		bg.Render(activityRefresh.Help().Key, styles.AccentText) + colon + bg.Render(activityRefresh.Help().Desc, styles.MutedText),
		bg.Render("esc", styles.AccentText) + colon + bg.Render("Close", styles.MutedText),
	}
	return styles.Header.Width(m.width).MaxWidth(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
