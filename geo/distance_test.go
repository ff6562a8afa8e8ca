package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/dinekit/core"
)

func TestDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		p := core.Location{Lat: 36.1627, Lon: -86.7816}
		assert.InDelta(t, 0.0, Distance(p, p), 1e-9)
	})

	t.Run("one degree of latitude near the equator", func(t *testing.T) {
		d := Distance(core.Location{Lat: 0, Lon: 0}, core.Location{Lat: 1, Lon: 0})
		assert.InDelta(t, 110.574389, d, 1e-3)
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		d := Distance(core.Location{Lat: 0, Lon: 0}, core.Location{Lat: 0, Lon: 1})
		assert.InDelta(t, 111.319491, d, 1e-3)
	})

	t.Run("short hop across downtown", func(t *testing.T) {
		a := core.Location{Lat: 36.1627, Lon: -86.7816}
		b := core.Location{Lat: 36.16, Lon: -86.78}
		assert.InDelta(t, 0.332393, Distance(a, b), 1e-3)
	})

	t.Run("long haul", func(t *testing.T) {
		a := core.Location{Lat: 36.16, Lon: -86.78}
		b := core.Location{Lat: 40.0, Lon: -70.0}
		assert.InDelta(t, 1529.998710, Distance(a, b), 1e-2)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := core.Location{Lat: 36.16, Lon: -86.78}
		b := core.Location{Lat: 40.0, Lon: -70.0}
		assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6)
	})

	t.Run("near antipodal points converge", func(t *testing.T) {
		a := core.Location{Lat: 0, Lon: 0}
		b := core.Location{Lat: 0.5, Lon: 179.7}
		d := Distance(a, b)
		assert.False(t, math.IsNaN(d))
		assert.Greater(t, d, 19900.0)
		assert.LessOrEqual(t, d, 20004.0)
	})
}

func TestWithin(t *testing.T) {
	downtown := core.Location{Lat: 36.1627, Lon: -86.7816}

	assert.True(t, Within(downtown, core.Location{Lat: 36.16, Lon: -86.78}, 1))
	assert.False(t, Within(downtown, core.Location{Lat: 40.0, Lon: -70.0}, 1))
	assert.True(t, Within(downtown, downtown, 0))
}

func TestLookupArea(t *testing.T) {
	loc, err := LookupArea("Downtown")
	require.NoError(t, err)
	assert.Equal(t, core.Location{Lat: 36.1627, Lon: -86.7816}, loc)

	_, err = LookupArea("Atlantis")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))

	names := AreaNames()
	assert.Len(t, names, len(Areas))
	assert.Equal(t, "12 South", names[0])
}
