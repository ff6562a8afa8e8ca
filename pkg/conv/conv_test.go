package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigGetters(t *testing.T) {
	cfg := map[string]any{
		"name":      "nearby",
		"limit":     5,
		"radius_km": 2,
		"ratio":     1.5,
		"dedup":     true,
		"ids":       []any{"a", 3.0, true},
		"sources":   []any{map[string]any{"type": "trie"}, "skip"},
	}

	assert.Equal(t, "nearby", ConfigGet(cfg, "name", ""))
	assert.Equal(t, "x", ConfigGet(cfg, "missing", "x"))
	assert.Equal(t, false, ConfigGet(cfg, "name", false))
	assert.Equal(t, true, ConfigGet(cfg, "dedup", false))

	assert.Equal(t, int64(5), ConfigGetInt64(cfg, "limit", 0))
	assert.Equal(t, int64(1), ConfigGetInt64(cfg, "ratio", 0))
	assert.Equal(t, int64(9), ConfigGetInt64(nil, "limit", 9))

	assert.Equal(t, 2.0, ConfigGetFloat64(cfg, "radius_km", 1))
	assert.Equal(t, 1.0, ConfigGetFloat64(cfg, "name", 1))

	assert.Equal(t, []string{"a", "3"}, SliceAnyToString(cfg["ids"]))
	assert.Nil(t, SliceAnyToString("nope"))
	assert.Equal(t, []map[string]any{{"type": "trie"}}, SliceAnyToMaps(cfg["sources"]))
}
