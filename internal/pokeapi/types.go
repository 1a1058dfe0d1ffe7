package pokeapi

import (
	"fmt"
	"strings"
)

// Pokemon mirrors the subset of /pokemon/{id} the widget reads. Every other
// field in the payload is ignored.
type Pokemon struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Sprites Sprites       `json:"sprites"`
	Types   []TypeSlot    `json:"types"`
	Stats   []StatPayload `json:"stats"`
}

// Sprites carries image references.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// TypeSlot is one entry of the types list.
type TypeSlot struct {
	Type NamedResource `json:"type"`
}

// StatPayload is one entry of the stats list.
type StatPayload struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// NamedResource is PokeAPI's {name, url} reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Creature is an immutable snapshot of one fetched result.
type Creature struct {
	ID       int
	Name     string
	ImageURL string
	Types    []string
	Stats    []BaseStat
}

// BaseStat is a named base stat value.
type BaseStat struct {
	Name  string
	Value int
}

// Creature validates the payload and converts it. Payloads without an id,
// name or at least one type are rejected so partial records never surface.
func (p Pokemon) Creature() (*Creature, error) {
	if p.ID <= 0 {
		return nil, fmt.Errorf("payload missing id")
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("payload missing name")
	}

	types := make([]string, 0, len(p.Types))
	for _, slot := range p.Types {
		if n := strings.TrimSpace(slot.Type.Name); n != "" {
			types = append(types, n)
		}
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("payload for %q has no types", name)
	}

	stats := make([]BaseStat, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, BaseStat{Name: s.Stat.Name, Value: max(s.BaseStat, 0)})
	}

	return &Creature{
		ID:       p.ID,
		Name:     strings.ToLower(name),
		ImageURL: p.Sprites.FrontDefault,
		Types:    types,
		Stats:    stats,
	}, nil
}

// Stat returns the named base stat, or 0 when the creature is nil or has no
// stat by that name.
func (c *Creature) Stat(name string) int {
	if c == nil {
		return 0
	}
	for _, s := range c.Stats {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}

// Clone returns a deep copy.
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	dup := *c
	dup.Types = append([]string(nil), c.Types...)
	dup.Stats = append([]BaseStat(nil), c.Stats...)
	return &dup
}

// Label formats the creature as "name #id".
func (c *Creature) Label() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s #%d", c.Name, c.ID)
}
