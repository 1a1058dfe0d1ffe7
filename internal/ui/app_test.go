package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/five82/pokedex/internal/errors"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/state"
)

type mockFetcher struct {
	mock.Mock
}

func (f *mockFetcher) FetchCreature(ctx context.Context, token string) (*pokeapi.Creature, error) {
	args := f.Called(ctx, token)
	c, _ := args.Get(0).(*pokeapi.Creature)
	return c, args.Error(1)
}

func creature(id int, name, typ string) *pokeapi.Creature {
	return &pokeapi.Creature{
		ID:       id,
		Name:     name,
		ImageURL: "https://img.example/sprites/" + name + ".png",
		Types:    []string{typ},
		Stats: []pokeapi.BaseStat{
			{Name: "hp", Value: 35},
			{Name: "attack", Value: 55},
			{Name: "defense", Value: 40},
			{Name: "speed", Value: 90},
		},
	}
}

func newTestModel(t *testing.T, f pokeapi.Fetcher) Model {
	t.Helper()
	m := New(Options{Client: f, Store: state.NewStore(nil)})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

// submit types query into the search box, presses enter and runs the lookup
// the model issued, returning the undelivered result.
func submit(t *testing.T, m Model, query string) (Model, searchResultMsg) {
	t.Helper()
	m = m.setFocus(PaneSearch)
	m.input.SetValue(query)
	m, _ = press(t, m, "enter")

	snap := m.store.Snapshot()
	require.True(t, snap.Loading, "submit should leave a lookup in flight")
	req := state.Request{Seq: snap.Issued, Token: pokeapi.NormalizeToken(query)}
	msg := fetchCmd(context.Background(), m.client, req)()
	return m, msg.(searchResultMsg)
}

func deliver(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func lastToast(t *testing.T, m Model) state.Notice {
	t.Helper()
	require.NotEmpty(t, m.toasts)
	return m.toasts[len(m.toasts)-1].notice
}

func TestInitialView(t *testing.T) {
	m := New(Options{})
	assert.Equal(t, "Loading...", m.View())

	m = newTestModel(t, &mockFetcher{})
	view := m.View()
	assert.Contains(t, view, "name/id")
	assert.Contains(t, view, emptyCardText)
	assert.Contains(t, view, emptyPartyText)
	assert.Contains(t, view, "Party 0/6")
	assert.Equal(t, PaneSearch, m.focus)
}

func TestSearchShowsResult(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchCreature", mock.Anything, "pikachu").Return(creature(25, "pikachu", "electric"), nil).Once()

	m := newTestModel(t, f)
	m, msg := submit(t, m, "  PiKaChU ")
	assert.Contains(t, m.View(), "Searching...")

	m = deliver(t, m, msg)
	require.NotNil(t, m.snapshot.Current)
	assert.False(t, m.snapshot.Loading)
	assert.Empty(t, m.toasts)

	view := m.View()
	for _, want := range []string{"Pikachu", "#25", "ELECTRIC", "HP 35", "Attack 55", "Defense 40", "Speed 90", "Capture"} {
		assert.Contains(t, view, want)
	}
	f.AssertExpectations(t)
}

func TestBlankSearchWarnsWithoutFetching(t *testing.T) {
	f := &mockFetcher{}
	m := newTestModel(t, f)
	m.input.SetValue("   ")

	m, _ = press(t, m, "enter")

	assert.False(t, m.snapshot.Loading)
	assert.Equal(t, uint64(0), m.snapshot.Issued)
	n := lastToast(t, m)
	assert.Equal(t, state.SeverityWarning, n.Severity)
	assert.Equal(t, state.TitleEmptyQuery, n.Title)
	assert.Contains(t, m.View(), state.TitleEmptyQuery)
	f.AssertNotCalled(t, "FetchCreature", mock.Anything, mock.Anything)
}

func TestFailedSearchClearsResult(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchCreature", mock.Anything, "pikachu").Return(creature(25, "pikachu", "electric"), nil)
	f.On("FetchCreature", mock.Anything, "missingno").Return(nil, errors.NotFoundf("api returned status 404"))

	m := newTestModel(t, f)
	m, msg := submit(t, m, "pikachu")
	m = deliver(t, m, msg)
	require.NotNil(t, m.snapshot.Current)

	m, msg = submit(t, m, "missingno")
	m = deliver(t, m, msg)

	assert.Nil(t, m.snapshot.Current)
	n := lastToast(t, m)
	assert.Equal(t, state.SeverityError, n.Severity)
	assert.Equal(t, state.TitleNotFound, n.Title)
	assert.Equal(t, state.DetailNotFound, n.Detail)

	view := m.View()
	assert.Contains(t, view, emptyCardText)
	assert.Contains(t, view, state.DetailNotFound)
}

func TestOnlyNewestLookupApplies(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchCreature", mock.Anything, "bulbasaur").Return(creature(1, "bulbasaur", "grass"), nil)
	f.On("FetchCreature", mock.Anything, "pikachu").Return(creature(25, "pikachu", "electric"), nil)

	m := newTestModel(t, f)
	m, older := submit(t, m, "bulbasaur")
	m, newer := submit(t, m, "pikachu")

	m = deliver(t, m, newer)
	m = deliver(t, m, older)

	require.NotNil(t, m.snapshot.Current)
	assert.Equal(t, "pikachu", m.snapshot.Current.Name)
	assert.False(t, m.snapshot.Loading)
}

func TestStaleFailureIsIgnored(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchCreature", mock.Anything, "zzz").Return(nil, errors.NotFoundf("gone"))
	f.On("FetchCreature", mock.Anything, "pikachu").Return(creature(25, "pikachu", "electric"), nil)

	m := newTestModel(t, f)
	m, older := submit(t, m, "zzz")
	m, newer := submit(t, m, "pikachu")

	m = deliver(t, m, newer)
	m = deliver(t, m, older)

	require.NotNil(t, m.snapshot.Current)
	assert.Empty(t, m.toasts, "a discarded failure must not notify")
}

func TestCaptureAndRelease(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchCreature", mock.Anything, "pikachu").Return(creature(25, "pikachu", "electric"), nil)

	m := newTestModel(t, f)
	m, msg := submit(t, m, "pikachu")
	m = deliver(t, m, msg)

	m, _ = press(t, m, "esc", "c")
	require.Len(t, m.snapshot.Party, 1)
	assert.Equal(t, "pikachu captured!", lastToast(t, m).Title)
	assert.Equal(t, state.SeveritySuccess, lastToast(t, m).Severity)
	assert.Contains(t, m.View(), "Party 1/6")
	assert.Contains(t, m.View(), "Pikachu #25")

	m, _ = press(t, m, "tab")
	require.Equal(t, PaneParty, m.focus)
	m, _ = press(t, m, "x")

	assert.Empty(t, m.snapshot.Party)
	assert.Equal(t, "pikachu released", lastToast(t, m).Title)
	assert.Equal(t, state.SeverityInfo, lastToast(t, m).Severity)
	assert.Contains(t, m.View(), emptyPartyText)
	assert.NotNil(t, m.snapshot.Current, "release keeps the current result")
}

func TestCaptureWithoutResultIsSilent(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})
	m, _ = press(t, m, "esc", "c")

	assert.Empty(t, m.snapshot.Party)
	assert.Empty(t, m.toasts)
}

func TestCaptureBeyondCapacityWarns(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchCreature", mock.Anything, "eevee").Return(creature(133, "eevee", "normal"), nil)

	m := newTestModel(t, f)
	m, msg := submit(t, m, "eevee")
	m = deliver(t, m, msg)
	m, _ = press(t, m, "esc")

	for i := 0; i < state.PartyCapacity; i++ {
		m, _ = press(t, m, "c")
	}
	require.Len(t, m.snapshot.Party, state.PartyCapacity)
	assert.Contains(t, m.View(), "Party is full")

	m, _ = press(t, m, "c")
	assert.Len(t, m.snapshot.Party, state.PartyCapacity)
	n := lastToast(t, m)
	assert.Equal(t, state.SeverityWarning, n.Severity)
	assert.Equal(t, state.TitlePartyFull, n.Title)
	assert.Equal(t, state.DetailPartyFull, n.Detail)
	assert.LessOrEqual(t, len(m.toasts), maxToasts)
}

func TestPartySelectionAndSlotRelease(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchCreature", mock.Anything, "bulbasaur").Return(creature(1, "bulbasaur", "grass"), nil)
	f.On("FetchCreature", mock.Anything, "charmander").Return(creature(4, "charmander", "fire"), nil)
	f.On("FetchCreature", mock.Anything, "squirtle").Return(creature(7, "squirtle", "water"), nil)

	m := newTestModel(t, f)
	for _, name := range []string{"bulbasaur", "charmander", "squirtle"} {
		var msg searchResultMsg
		m, msg = submit(t, m, name)
		m = deliver(t, m, msg)
		m, _ = press(t, m, "esc", "c")
	}
	require.Len(t, m.snapshot.Party, 3)
	assert.Equal(t, 2, m.cursor, "capture selects the new entry")

	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "k", "k", "k")
	assert.Equal(t, 0, m.cursor)
	m, _ = press(t, m, "j")
	assert.Equal(t, 1, m.cursor)

	// Slot 2 is charmander; later entries shift down.
	m, _ = press(t, m, "2")
	names := make([]string, 0, len(m.snapshot.Party))
	for _, e := range m.snapshot.Party {
		names = append(names, e.Creature.Name)
	}
	assert.Equal(t, []string{"bulbasaur", "squirtle"}, names)

	// Out-of-range slots do nothing.
	before := len(m.toasts)
	m, _ = press(t, m, "6")
	assert.Len(t, m.snapshot.Party, 2)
	assert.Len(t, m.toasts, before)

	m, _ = press(t, m, "j", "x")
	assert.Len(t, m.snapshot.Party, 1)
	assert.Equal(t, 0, m.cursor, "cursor clamps after releasing the last entry")
}

func TestToastDismiss(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})
	m.input.SetValue("")
	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	require.Len(t, m.toasts, 1)

	m = deliver(t, m, dismissToastMsg{id: m.toasts[0].id + 100})
	assert.Len(t, m.toasts, 1)

	m = deliver(t, m, dismissToastMsg{id: m.toasts[0].id})
	assert.Empty(t, m.toasts)
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})
	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})
	assert.True(t, m.input.Focused())

	m, _ = press(t, m, "tab")
	assert.Equal(t, PaneCard, m.focus)
	assert.False(t, m.input.Focused())

	m, _ = press(t, m, "tab")
	assert.Equal(t, PaneParty, m.focus)

	m, _ = press(t, m, "tab")
	assert.Equal(t, PaneSearch, m.focus)

	m, _ = press(t, m, "esc", "/")
	assert.Equal(t, PaneSearch, m.focus)
	assert.True(t, m.input.Focused())
}

func TestTypingKeepsQueryInStore(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})
	m, _ = press(t, m, "m", "e", "w")
	assert.Equal(t, "mew", m.input.Value())
	assert.Equal(t, "mew", m.store.Query())
}

func TestQuitOutsideInput(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})

	typed, _ := press(t, m, "q")
	assert.Equal(t, "q", typed.input.Value(), "q is text while the input is focused")

	_, cmd := press(t, m, "esc", "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{Client: &mockFetcher{}, Store: state.NewStore(nil), PrefsPath: path})
	m = deliver(t, m, tea.WindowSizeMsg{Width: 90, Height: 24})

	m, _ = press(t, m, "esc", "T")
	assert.Equal(t, "Nightfox", m.theme.Name)
	assert.Contains(t, m.View(), "Nightfox")

	p, err := prefs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Nightfox", p.Theme)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})
	m, _ = press(t, m, "esc", "?")
	require.True(t, m.showHelp)
	view := m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Capture")

	m, _ = press(t, m, "c")
	assert.False(t, m.showHelp)
}

func TestActivityOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.log")
	lines := []string{
		`{"level":"info","ts":"2026-01-02T03:04:05Z","msg":"search issued","seq":1,"token":"pikachu"}`,
		`{"level":"warn","ts":"2026-01-02T03:04:06Z","msg":"search failed","seq":2,"token":"zzz"}`,
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	m := New(Options{Client: &mockFetcher{}, Store: state.NewStore(nil), LogPath: path})
	m = deliver(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	m, cmd := press(t, m, "esc", "L")
	require.True(t, m.showActivity)
	require.NotNil(t, cmd)
	m = deliver(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "search issued")
	assert.Contains(t, view, "token=zzz")
	assert.Contains(t, view, "WARN")

	m, _ = press(t, m, "esc")
	assert.False(t, m.showActivity)
}

func TestActivityOverlayWithoutLogFile(t *testing.T) {
	m := newTestModel(t, &mockFetcher{})
	m, cmd := press(t, m, "esc", "L")
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "File logging is disabled")
}
