package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pokedex/internal/errors"
	"github.com/five82/pokedex/internal/logtail"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/state"
)

// Messages

// searchResultMsg carries the outcome of one lookup back to Update.
type searchResultMsg struct {
	seq      uint64
	creature *pokeapi.Creature
	err      error
}

type dismissToastMsg struct {
	id int
}

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

// fetchCmd performs the lookup off the update loop. The request carries no
// deadline of its own; ctx cancellation on shutdown is the only bound.
func fetchCmd(ctx context.Context, client pokeapi.Fetcher, req state.Request) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return searchResultMsg{seq: req.Seq, err: errNoClient}
		}
		c, err := client.FetchCreature(ctx, req.Token)
		return searchResultMsg{seq: req.Seq, creature: c, err: err}
	}
}

func dismissCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return dismissToastMsg{id: id}
	})
}

func readActivityCmd(path string, maxLines int) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Read(path, maxLines)
		return activityMsg{entries: entries, err: err}
	}
}

var errNoClient = errors.Unavailablef("no lookup client configured")
