package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/dinekit/config"
	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/render"
	"github.com/rushteam/dinekit/store"
)

func attrs(takeout string) map[string]string {
	return map[string]string{
		"RestaurantsTakeOut":         takeout,
		"Alcohol":                    "u'full_bar'",
		"WiFi":                       "u'free'",
		"BusinessAcceptsCreditCards": "True",
		"RestaurantsGoodForGroups":   "True",
		"RestaurantsPriceRange2":     "2",
	}
}

func fixture() ([]*core.Restaurant, []string, []core.Interaction) {
	records := []*core.Restaurant{
		{Name: "Luigi's", Latitude: 36.1600, Longitude: -86.7800, Stars: 4.5, Categories: "Restaurants, Italian", Attributes: attrs("True")},
		{Name: "Mario's", Latitude: 36.1610, Longitude: -86.7810, Stars: 4.0, Categories: "Italian, Pizza", Attributes: attrs("True")},
		{Name: "Noodle Bar", Latitude: 36.1620, Longitude: -86.7820, Stars: 3.5, Categories: "Thai", Attributes: attrs("False")},
		{Name: "Far Taqueria", Latitude: 40.0, Longitude: -70.0, Stars: 2.0, Categories: "Mexican", Attributes: attrs("False")},
	}
	interactions := []core.Interaction{
		{User: "bob", Restaurants: []string{"Noodle Bar", "Far Taqueria"}},
		{User: "carol", Restaurants: []string{"Mario's"}},
	}
	return records, []string{"Italian", "Thai", "Mexican"}, interactions
}

var italian = core.Preference{
	Cuisine: "Italian", Takeout: true, HighStar: true, Alcohol: true,
	WiFi: true, CreditCard: true, Groups: true, Price: 2,
}

func names(records []*core.Restaurant) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	records, cuisines, interactions := fixture()
	s, err := New(records, cuisines, interactions, nil, opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, 28, s.Trie.Len(), "9 nodes per row, Mario's shares 8 with Luigi's")
	assert.True(t, s.Graph.AreAdjacent("bob", "Noodle Bar"))
	assert.True(t, s.Graph.AreAdjacent("carol", "Mario's"))
	assert.False(t, s.Graph.AreAdjacent("bob", "carol"))
}

func TestSession_StepByStep(t *testing.T) {
	s := newSession(t)

	tree := s.DecisionTree(italian)
	assert.Equal(t, []string{"Luigi's", "Mario's"}, names(tree))

	nearby, err := s.Nearby(core.Location{Lat: 36.1627, Lon: -86.7816})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mario's", "Noodle Bar"}, names(nearby))

	require.NoError(t, s.Join("alice", tree))
	friendRestaurants, err := s.Befriend("alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"Noodle Bar", "Far Taqueria"}, names(friendRestaurants))

	markers, err := render.Markers(s.Graph, tree, core.CategoryDecisionTree)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "carol"}, markers[1].People)

	_, err = s.Befriend("alice", "ghost")
	require.Error(t, err)
	assert.True(t, core.IsUnknownVertex(err))
}

func TestSession_Recommend(t *testing.T) {
	s := newSession(t)

	res, err := s.Recommend(context.Background(), Query{
		User:       "alice",
		Friend:     "bob",
		Area:       "Downtown",
		Preference: italian,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RequestID)

	ids := make([]string, 0, len(res.Items))
	for _, it := range res.Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"Luigi's", "Mario's", "Noodle Bar", "Far Taqueria"}, ids)
	assert.Equal(t, []string{"alice", "carol"}, res.Items[1].Neighbours)

	require.Len(t, res.Markers, 4)
	got := make(map[string]render.Marker, len(res.Markers))
	for _, m := range res.Markers {
		got[m.Restaurant.Name] = m
	}
	assert.Equal(t, "orange", got["Luigi's"].Color)
	assert.Equal(t, "blue", got["Mario's"].Color)
	assert.Equal(t, "red", got["Noodle Bar"].Color)
	assert.Equal(t, "red", got["Far Taqueria"].Color)
	assert.Equal(t, core.CategoryFriend, res.Markers[3].Category)

	sink := &render.MemorySink{}
	require.NoError(t, s.Render(context.Background(), res, sink))
	assert.Len(t, sink.Markers(), 4)
}

func TestSession_RecommendErrors(t *testing.T) {
	t.Run("unknown area", func(t *testing.T) {
		s := newSession(t)
		_, err := s.Recommend(context.Background(), Query{User: "alice", Area: "Atlantis"})
		require.Error(t, err)
		assert.True(t, core.IsNotFound(err))
	})

	t.Run("unknown friend", func(t *testing.T) {
		s := newSession(t)
		_, err := s.Recommend(context.Background(), Query{User: "alice", Friend: "ghost", Preference: italian})
		require.Error(t, err)
		assert.True(t, core.IsUnknownVertex(err))
	})
}

func TestSession_ConfiguredPipeline(t *testing.T) {
	cfg, err := pipeline.ParseYAML([]byte(`
pipeline:
  nodes:
    - type: recall.decision_tree
    - type: filter
      config:
        filters:
          - type: blacklist
            key: blacklist:alice
    - type: postprocess.neighbours
`))
	require.NoError(t, err)

	st := store.NewMemoryStore()
	require.NoError(t, st.Set(context.Background(), "blacklist:alice", []byte(`["Luigi's"]`)))

	s := newSession(t, WithPipeline(cfg), WithStore(st))
	res, err := s.Recommend(context.Background(), Query{User: "alice", Preference: italian})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Mario's", res.Items[0].ID)

	bad, err := pipeline.ParseYAML([]byte("pipeline:\n  nodes:\n    - type: rank.lr\n"))
	require.NoError(t, err)
	_, err = New(nil, nil, nil, nil, WithPipeline(bad))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	businessPath := filepath.Join(dir, "business.json")
	require.NoError(t, os.WriteFile(businessPath, []byte(
		`{"name":"Luigi's","city":"Nashville","latitude":36.16,"longitude":-86.78,"stars":4.5,"categories":"Restaurants, Italian"}
{"name":"Memphis BBQ","city":"Memphis","latitude":35.1,"longitude":-90.0,"stars":4.0,"categories":"Restaurants, Barbeque"}
`), 0o644))
	cuisinesPath := filepath.Join(dir, "cuisines.txt")
	require.NoError(t, os.WriteFile(cuisinesPath, []byte("Italian\nBarbeque\n"), 0o644))
	namesPath := filepath.Join(dir, "names.csv")
	require.NoError(t, os.WriteFile(namesPath, []byte("Julie\nAmanda\n"), 0o644))

	dc := config.DatasetConfig{Path: businessPath, City: "Nashville", CuisinesFile: cuisinesPath}
	records, err := LoadRecords(dc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Luigi's"}, names(records))

	cuisines, err := LoadCuisines(dc, records)
	require.NoError(t, err)
	assert.Equal(t, []string{"Italian"}, cuisines)

	st := store.NewMemoryStore()
	uc := config.UsersConfig{NamesFile: namesPath, Count: 3, MaxPerUser: 5, Seed: 42}
	first, err := LoadInteractions(context.Background(), uc, st, records, nil)
	require.NoError(t, err)
	require.Len(t, first, 3)

	again, err := LoadInteractions(context.Background(), uc, st, records, nil)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	_, err = LoadRecords(config.DatasetConfig{Path: filepath.Join(dir, "missing.json")})
	assert.Error(t, err)
}
