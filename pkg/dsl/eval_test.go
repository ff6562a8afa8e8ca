package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/pkg/utils"
)

func TestProgram_Evaluate(t *testing.T) {
	item := core.NewRestaurantItem(&core.Restaurant{
		Name:       "Luigi's",
		Stars:      4.5,
		Categories: "Restaurants, Italian",
		Attributes: map[string]string{"RestaurantsPriceRange2": "2"},
	})
	item.PutLabel(utils.LabelRecallSource, utils.RecallLabel("nearby"))
	rctx := &core.RecommendContext{UserID: "alice"}

	tests := []struct {
		expr string
		want bool
	}{
		{expr: `item.stars >= 4.0`, want: true},
		{expr: `item.stars < 4.0`, want: false},
		{expr: `item.categories.contains("Italian")`, want: true},
		{expr: `item.attributes.RestaurantsPriceRange2 == "2"`, want: true},
		{expr: `"Alcohol" in item.attributes`, want: false},
		{expr: `label.recall_source == "nearby" && rctx.user_id == "alice"`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(tt.expr, item, rctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompile(t *testing.T) {
	t.Run("empty expression always passes", func(t *testing.T) {
		p, err := Compile("")
		require.NoError(t, err)
		ok, err := p.Evaluate(nil, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Compile(`item.stars >=`)
		assert.Error(t, err)
	})

	t.Run("non boolean result", func(t *testing.T) {
		p, err := Compile(`item.stars`)
		require.NoError(t, err)
		_, err = p.Evaluate(core.NewRestaurantItem(&core.Restaurant{Stars: 3}), nil)
		assert.Error(t, err)
	})
}
