package pokeapi

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) Pokemon {
	t.Helper()
	raw, err := os.ReadFile("testdata/pikachu.json")
	require.NoError(t, err)
	var p Pokemon
	require.NoError(t, json.Unmarshal(raw, &p))
	return p
}

func TestPokemonCreature_KeepsAPIOrder(t *testing.T) {
	c, err := loadFixture(t).Creature()
	require.NoError(t, err)

	names := make([]string, 0, len(c.Stats))
	for _, s := range c.Stats {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}, names)
	assert.Equal(t, "pikachu #25", c.Label())
}

func TestPokemonCreature_RejectsPartialPayloads(t *testing.T) {
	tests := []struct {
		name string
		in   Pokemon
	}{
		{"missing id", Pokemon{Name: "x", Types: []TypeSlot{{Type: NamedResource{Name: "fire"}}}}},
		{"missing name", Pokemon{ID: 4, Types: []TypeSlot{{Type: NamedResource{Name: "fire"}}}}},
		{"missing types", Pokemon{ID: 4, Name: "charmander"}},
		{"blank type names", Pokemon{ID: 4, Name: "charmander", Types: []TypeSlot{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.in.Creature()
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestPokemonCreature_AllowsDuplicateTypes(t *testing.T) {
	p := Pokemon{ID: 1, Name: "Bulbasaur", Types: []TypeSlot{
		{Type: NamedResource{Name: "grass"}},
		{Type: NamedResource{Name: "grass"}},
	}}
	c, err := p.Creature()
	require.NoError(t, err)
	assert.Equal(t, "bulbasaur", c.Name)
	assert.Equal(t, []string{"grass", "grass"}, c.Types)
}

func TestCreatureStat_MissingResolvesToZero(t *testing.T) {
	c, err := loadFixture(t).Creature()
	require.NoError(t, err)

	assert.Equal(t, 55, c.Stat("attack"))
	assert.Equal(t, 55, c.Stat("attack"), "repeated lookups are stable")
	assert.Equal(t, 0, c.Stat("luck"))
	assert.Equal(t, 0, c.Stat("HP"), "names are matched exactly")

	var none *Creature
	assert.Equal(t, 0, none.Stat("hp"))
	assert.Equal(t, "", none.Label())
	assert.Nil(t, none.Clone())
}

func TestCreatureClone_IsIndependent(t *testing.T) {
	c, err := loadFixture(t).Creature()
	require.NoError(t, err)

	dup := c.Clone()
	dup.Types[0] = "ghost"
	dup.Stats[0].Value = 999

	assert.Equal(t, "electric", c.Types[0])
	assert.Equal(t, 35, c.Stat("hp"))
	assert.Equal(t, c.ID, dup.ID)
}
