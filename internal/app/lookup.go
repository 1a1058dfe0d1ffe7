package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/pokedex/internal/errors"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/state"
)

var lookupStats = []struct{ key, label string }{
	{"hp", "HP"},
	{"attack", "Attack"},
	{"defense", "Defense"},
	{"speed", "Speed"},
}

// Lookup performs a single search for token and prints the record to w.
func Lookup(ctx context.Context, opts Options, token string, w io.Writer) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	return lookup(ctx, rt.client, state.NewStore(rt.log.Named("store")), token, w)
}

// lookup runs one search through the store so the CLI shares the TUI's
// validation and failure handling.
func lookup(ctx context.Context, client pokeapi.Fetcher, store *state.Store, token string, w io.Writer) error {
	req, err := store.BeginSearch(token)
	if err != nil {
		return noticeError(store, err)
	}

	creature, fetchErr := client.FetchCreature(ctx, req.Token)
	store.CompleteSearch(req.Seq, creature, fetchErr)

	current := store.Current()
	if current == nil {
		if fetchErr == nil {
			fetchErr = errors.Newf(errors.CodeInternal, "lookup %q returned no record", req.Token)
		}
		return noticeError(store, fetchErr)
	}
	return printCreature(w, current)
}

// noticeError folds the store's pending notice into err so the CLI prints the
// same message the TUI would show.
func noticeError(store *state.Store, err error) error {
	notices := store.Notices()
	if len(notices) == 0 {
		return err
	}
	n := notices[len(notices)-1]
	msg := n.Title
	if n.Detail != "" {
		msg += ". " + n.Detail
	}
	return errors.Wrap(err, msg).WithMeta("severity", string(n.Severity))
}

func printCreature(w io.Writer, c *pokeapi.Creature) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.Label())
	fmt.Fprintf(&b, "%-8s %s\n", "Types:", strings.Join(c.Types, ", "))
	for _, s := range lookupStats {
		fmt.Fprintf(&b, "%-8s %d\n", s.label+":", c.Stat(s.key))
	}
	if c.ImageURL != "" {
		fmt.Fprintf(&b, "%-8s %s\n", "Sprite:", c.ImageURL)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
