package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pokedex/internal/prefs"
)

// handleKey routes keyboard input. Overlays take precedence, then the
// search input, then pane-specific bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showActivity {
		return m.handleActivityKey(msg)
	}

	if m.focus == PaneSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme(), nil

	case key.Matches(msg, m.keys.ToggleLogs):
		return m.openActivity()

	case key.Matches(msg, m.keys.FocusSearch):
		return m.setFocus(PaneSearch), textinput.Blink

	case key.Matches(msg, m.keys.Tab):
		return m.cycleFocus(1), nil

	case key.Matches(msg, m.keys.ShiftTab):
		return m.cycleFocus(-1), nil

	case key.Matches(msg, m.keys.Escape):
		return m.setFocus(PaneCard), nil

	case key.Matches(msg, m.keys.Capture):
		return m.capture()
	}

	if m.focus == PaneParty {
		return m.handlePartyKey(msg)
	}
	return m, nil
}

// handleSearchKey lets the text input consume everything except submit and
// focus changes.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitSearch()

	case key.Matches(msg, m.keys.Escape):
		return m.setFocus(PaneCard), nil

	case key.Matches(msg, m.keys.Tab):
		return m.cycleFocus(1), nil

	case key.Matches(msg, m.keys.ShiftTab):
		return m.cycleFocus(-1), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetQuery(m.input.Value())
	m.snapshot.Query = m.input.Value()
	return m, cmd
}

func (m Model) handlePartyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snapshot.Party)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Release):
		return m.release(m.cursor)

	case key.Matches(msg, m.keys.Slot):
		slot := int(msg.Runes[0] - '1')
		return m.release(slot)
	}
	return m, nil
}

func (m Model) setFocus(p Pane) Model {
	m.focus = p
	if p == PaneSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m Model) cycleFocus(delta int) Model {
	idx := 0
	for i, p := range paneOrder {
		if p == m.focus {
			idx = i
			break
		}
	}
	n := len(paneOrder)
	return m.setFocus(paneOrder[((idx+delta)%n+n)%n])
}

func (m Model) cycleTheme() Model {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn("save prefs", zap.String("path", m.prefsPath), zap.Error(err))
		}
	}
	m.log.Debug("theme changed", zap.String("theme", m.theme.Name))
	return m
}

// submitSearch issues a lookup for the current input. A blank input only
// surfaces the store's warning notice.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	wasLoading := m.snapshot.Loading
	req, err := m.store.BeginSearch(m.input.Value())
	m.refresh()

	cmds := m.drainNotices()
	if err == nil {
		cmds = append(cmds, fetchCmd(m.ctx, m.client, req))
		if !wasLoading {
			cmds = append(cmds, m.spinner.Tick)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if !m.store.CompleteSearch(msg.seq, msg.creature, msg.err) {
		return m, nil
	}
	m.refresh()
	return m, tea.Batch(m.drainNotices()...)
}

func (m Model) capture() (tea.Model, tea.Cmd) {
	_, err := m.store.Capture()
	m.refresh()
	if err == nil {
		m.cursor = len(m.snapshot.Party) - 1
	}
	return m, tea.Batch(m.drainNotices()...)
}

func (m Model) release(index int) (tea.Model, tea.Cmd) {
	if _, err := m.store.Release(index); err != nil {
		m.log.Debug("release ignored", zap.Int("position", index), zap.Error(err))
		return m, nil
	}
	m.refresh()
	return m, tea.Batch(m.drainNotices()...)
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snapshot.Party) {
		m.cursor = len(m.snapshot.Party) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
