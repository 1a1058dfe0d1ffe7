package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/state"
)

// maxToasts bounds the visible stack; the oldest toast is dropped first.
const maxToasts = 4

type toast struct {
	id     int
	notice state.Notice
}

// drainNotices moves pending store notices onto the toast stack and returns
// one dismiss timer per new toast.
func (m *Model) drainNotices() []tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.store.Notices() {
		m.nextToastID++
		m.toasts = append(m.toasts, toast{id: m.nextToastID, notice: n})
		cmds = append(cmds, dismissCmd(m.nextToastID, n.Duration))
	}
	if over := len(m.toasts) - maxToasts; over > 0 {
		m.toasts = m.toasts[over:]
	}
	return cmds
}

func (m *Model) dismissToast(id int) {
	kept := make([]toast, 0, len(m.toasts))
	for _, t := range m.toasts {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// renderToasts draws the stack newest last, one line per toast.
func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		color := lipgloss.Color(styles.SeverityColor(t.notice.Severity))
		marker := lipgloss.NewStyle().Background(color).Render(" ")
		label := lipgloss.NewStyle().
			Foreground(color).
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Bold(true).
			Render(severityLabel(t.notice.Severity))

		parts := []string{marker, label, bg.Render(t.notice.Title, styles.Text.Bold(true))}
		if t.notice.Detail != "" {
			parts = append(parts, bg.Render(t.notice.Detail, styles.MutedText))
		}
		lines = append(lines, bg.FillLine(bg.Join(parts, " "), m.width))
	}
	return strings.Join(lines, "\n")
}

func severityLabel(sev state.Severity) string {
	switch sev {
	case state.SeveritySuccess:
		return "OK"
	case state.SeverityWarning:
		return "WARN"
	case state.SeverityError:
		return "ERROR"
	default:
		return "INFO"
	}
}
