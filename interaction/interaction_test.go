package interaction

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/store"
)

func TestLoadNames(t *testing.T) {
	names, err := LoadNames(strings.NewReader("Julie,F\nAmanda\n\n Ruffus ,M,extra\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Julie", "Amanda", "Ruffus"}, names)
}

func TestGenerate(t *testing.T) {
	records := []*core.Restaurant{
		{Name: "Luigi's", Categories: "Italian"},
		{Name: "Mario's", Categories: "Pizza, Italian"},
		{Name: "Olive", Categories: "Italian, Greek"},
		{Name: "Taco Truck", Categories: "Mexican"},
	}

	t.Run("users link to restaurants of one cuisine", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		got := Generate(rng, []string{"Julie", "Amanda"}, records, []string{"Italian"}, 3, 2)

		require.Len(t, got, 3)
		for _, in := range got {
			assert.Contains(t, []string{"Julie", "Amanda"}, in.User)
			assert.Equal(t, []string{"Luigi's", "Mario's"}, in.Restaurants)
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := Generate(rand.New(rand.NewPCG(7, 7)), []string{"a", "b", "c"}, records, DefaultCuisinePool, 10, 5)
		b := Generate(rand.New(rand.NewPCG(7, 7)), []string{"a", "b", "c"}, records, DefaultCuisinePool, 10, 5)
		assert.Equal(t, a, b)
	})

	t.Run("nothing to pick from", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		assert.Nil(t, Generate(rng, nil, records, DefaultCuisinePool, 3, 2))
		assert.Nil(t, Generate(rng, []string{"a"}, records, nil, 3, 2))
	})
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryStore(), "")

	_, err := repo.Load(ctx)
	require.Error(t, err)
	assert.True(t, core.IsStoreNotFound(err))

	calls := 0
	gen := func() []core.Interaction {
		calls++
		return []core.Interaction{{User: "Julie", Restaurants: []string{"Luigi's"}}}
	}

	got, generated, err := repo.LoadOrGenerate(ctx, gen)
	require.NoError(t, err)
	assert.True(t, generated)
	assert.Equal(t, "Julie", got[0].User)

	got, generated, err = repo.LoadOrGenerate(ctx, gen)
	require.NoError(t, err)
	assert.False(t, generated)
	assert.Equal(t, []core.Interaction{{User: "Julie", Restaurants: []string{"Luigi's"}}}, got)
	assert.Equal(t, 1, calls)
}
