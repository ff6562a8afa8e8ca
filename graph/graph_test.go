package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/dinekit/core"
)

func TestRelationGraph_AddVertex(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		g := New()
		g.AddVertex("alice", KindUser)
		g.AddVertex("alice", KindUser)

		assert.Len(t, g.AllVertices(KindAny), 1)
	})

	t.Run("kind is not updated on a second call", func(t *testing.T) {
		g := New()
		g.AddVertex("alice", KindUser)
		g.AddVertex("alice", KindRestaurant)

		kind, ok := g.KindOf("alice")
		require.True(t, ok)
		assert.Equal(t, KindUser, kind)
		assert.Empty(t, g.AllVertices(KindRestaurant))
	})
}

func TestRelationGraph_AddEdge(t *testing.T) {
	t.Run("adjacency is mutual", func(t *testing.T) {
		g := New()
		g.AddVertex("alice", KindUser)
		g.AddVertex("Pizza Place", KindRestaurant)

		require.NoError(t, g.AddEdge("alice", "Pizza Place"))

		assert.True(t, g.AreAdjacent("alice", "Pizza Place"))
		assert.True(t, g.AreAdjacent("Pizza Place", "alice"))

		n, err := g.NeighboursOf("alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"Pizza Place"}, n)

		n, err = g.NeighboursOf("Pizza Place")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, n)
	})

	t.Run("idempotent on an existing edge", func(t *testing.T) {
		g := New()
		g.AddVertex("a", KindUser)
		g.AddVertex("b", KindUser)

		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))

		n, err := g.NeighboursOf("a")
		require.NoError(t, err)
		assert.Len(t, n, 1)
	})

	t.Run("unknown vertex fails without mutating", func(t *testing.T) {
		g := New()
		g.AddVertex("alice", KindUser)

		err := g.AddEdge("alice", "ghost")
		require.Error(t, err)
		assert.True(t, core.IsUnknownVertex(err))

		err = g.AddEdge("ghost", "alice")
		require.Error(t, err)
		assert.True(t, core.IsUnknownVertex(err))

		n, err := g.NeighboursOf("alice")
		require.NoError(t, err)
		assert.Empty(t, n)
		assert.Equal(t, []string{"alice"}, g.AllVertices(KindAny))
	})

	t.Run("self loop is rejected", func(t *testing.T) {
		g := New()
		g.AddVertex("alice", KindUser)

		err := g.AddEdge("alice", "alice")
		require.Error(t, err)
		assert.True(t, core.IsInvalidInput(err))
		assert.False(t, g.AreAdjacent("alice", "alice"))
	})
}

func TestRelationGraph_Queries(t *testing.T) {
	g := New()
	g.AddVertex("alice", KindUser)
	g.AddVertex("bob", KindUser)
	g.AddVertex("Taco Stand", KindRestaurant)
	g.AddVertex("Noodle Bar", KindRestaurant)
	require.NoError(t, g.AddEdge("alice", "Taco Stand"))
	require.NoError(t, g.AddEdge("alice", "Noodle Bar"))
	require.NoError(t, g.AddEdge("alice", "bob"))

	t.Run("are adjacent is false for absent ids", func(t *testing.T) {
		assert.False(t, g.AreAdjacent("alice", "ghost"))
		assert.False(t, g.AreAdjacent("ghost", "alice"))
		assert.False(t, g.AreAdjacent("bob", "Taco Stand"))
	})

	t.Run("neighbours of returns identifiers", func(t *testing.T) {
		n, err := g.NeighboursOf("alice")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Taco Stand", "Noodle Bar", "bob"}, n)
	})

	t.Run("neighbours of unknown vertex", func(t *testing.T) {
		_, err := g.NeighboursOf("ghost")
		require.Error(t, err)
		assert.True(t, core.IsUnknownVertex(err))
	})

	t.Run("all vertices filtered by kind", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"alice", "bob", "Taco Stand", "Noodle Bar"}, g.AllVertices(KindAny))
		assert.ElementsMatch(t, []string{"alice", "bob"}, g.AllVertices(KindUser))
		assert.ElementsMatch(t, []string{"Taco Stand", "Noodle Bar"}, g.AllVertices(KindRestaurant))
		assert.Equal(t, 4, g.Len())
	})
}
