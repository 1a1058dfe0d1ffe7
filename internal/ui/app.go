// Package ui provides the Bubble Tea interface for the Pokedex.
package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/state"
)

// Pane identifies the focused region of the screen.
type Pane int

const (
	PaneSearch Pane = iota
	PaneCard
	PaneParty
)

var paneOrder = []Pane{PaneSearch, PaneCard, PaneParty}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    pokeapi.Fetcher
	Store     *state.Store
	Logger    *zap.Logger
	LogPath   string // JSON log shown by the activity overlay; empty disables it
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    pokeapi.Fetcher
	store     *state.Store
	log       *zap.Logger
	logPath   string
	prefsPath string
	keys      keyMap

	// UI state
	theme  Theme
	focus  Pane
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot

	// Lookup
	input   textinput.Model
	spinner spinner.Model

	// Party selection
	cursor int

	// Notifications
	toasts      []toast
	nextToastID int

	// Overlays
	showHelp     bool
	showActivity bool
	activity     activityState
	activityView viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore(opts.Logger)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	input := textinput.New()
	input.Placeholder = "name/id"
	input.Prompt = "› "
	input.CharLimit = 64
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     store,
		log:       log,
		logPath:   opts.LogPath,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		focus:     PaneSearch,
		snapshot:  store.Snapshot(),
		input:     input,
		spinner:   spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeActivity()
		return m, nil

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case spinner.TickMsg:
		if !m.snapshot.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dismissToastMsg:
		m.dismissToast(msg.id)
		return m, nil

	case activityMsg:
		m.handleActivity(msg)
		return m, nil
	}

	if m.focus == PaneSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showActivity {
		return m.renderActivity()
	}

	return m.renderMain()
}

// refresh re-reads the store after a mutation.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	m.clampCursor()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Cancelled from outside, e.g. SIGTERM.
		return nil
	}
	return err
}
