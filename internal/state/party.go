package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/five82/pokedex/internal/errors"
	"github.com/five82/pokedex/internal/pokeapi"
)

// PartyCapacity is the maximum number of captured entries.
const PartyCapacity = 6

// Entry is one captured creature. ID distinguishes repeated captures of the
// same species; positions shift on release and are not identities.
type Entry struct {
	ID         string
	Creature   pokeapi.Creature
	CapturedAt time.Time
}

// Party is an insertion-ordered, bounded list of entries.
type Party struct {
	entries []Entry
}

// Len returns the number of entries.
func (p *Party) Len() int {
	return len(p.entries)
}

// Full reports whether the party is at capacity.
func (p *Party) Full() bool {
	return len(p.entries) >= PartyCapacity
}

// Add appends an independent copy of c. The capacity check happens here
// and only here.
func (p *Party) Add(c *pokeapi.Creature) (Entry, error) {
	if c == nil {
		return Entry{}, errors.FailedPrecondition("no pokemon to capture")
	}
	if p.Full() {
		return Entry{}, errors.ResourceExhausted("party is full").
			WithMeta("capacity", PartyCapacity)
	}
	entry := Entry{
		ID:         uuid.NewString(),
		Creature:   *c.Clone(),
		CapturedAt: time.Now(),
	}
	p.entries = append(p.entries, entry)
	return entry, nil
}

// Remove deletes the entry at index; later entries shift down by one.
func (p *Party) Remove(index int) (Entry, error) {
	if index < 0 || index >= len(p.entries) {
		return Entry{}, errors.OutOfRangef("no party entry at position %d", index).
			WithMeta("len", len(p.entries))
	}
	removed := p.entries[index]
	p.entries = append(p.entries[:index:index], p.entries[index+1:]...)
	return removed, nil
}

// Entries returns a copy of the entries in order.
func (p *Party) Entries() []Entry {
	return cloneEntries(p.entries)
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	for i, e := range entries {
		dup[i] = e
		dup[i].Creature = *e.Creature.Clone()
	}
	return dup
}
