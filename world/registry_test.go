package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry("world", "Lobby", "world_nether", " ")

	name, ok := r.Resolve("lobby")
	assert.True(t, ok)
	assert.Equal(t, "Lobby", name)

	_, ok = r.Resolve("the_end")
	assert.False(t, ok)

	assert.Equal(t, "world", r.Default())
	assert.Equal(t, []string{"Lobby", "world", "world_nether"}, r.Names())

	r.Remove("world")
	_, ok = r.Resolve("world")
	assert.True(t, ok, "default world stays registered")

	r.Remove("LOBBY")
	_, ok = r.Resolve("Lobby")
	assert.False(t, ok)
}

func TestRegistry_FirstWorldBecomesDefault(t *testing.T) {
	r := NewRegistry("")
	assert.Equal(t, "", r.Default())
	r.Add("alpha")
	r.Add("beta")
	assert.Equal(t, "alpha", r.Default())
}
