package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/antennagen/params"
)

var testDefs = params.Defs{
	{Page: "Antenna", Name: "length", Unit: params.UnitMM, Default: 50.0, Min: 1, Max: 500},
	{Page: "Antenna", Name: "turns", Unit: params.UnitInteger, Default: 5, Min: 1, Max: 100},
	{Page: "Antenna", Name: "silk_margin", Unit: params.UnitMM, Default: 1.0, Min: -1, Max: 10},
	{Page: "Antenna", Name: "style", Unit: params.UnitInteger, Default: 0, Choices: []int{0, 1}},
	{Page: "Antenna", Name: "name", Unit: params.UnitString, Default: "rectangle"},
	{Page: "Pads", Name: "drill_size", Unit: params.UnitMM, Default: 0.35, Min: 0.1, Max: 2},
}

func TestDefKey(t *testing.T) {
	assert.Equal(t, "antenna.length", testDefs[0].Key())
	assert.Equal(t, "pads.drill_size", testDefs[5].Key())
}

func TestDefRange(t *testing.T) {
	assert.Equal(t, "[1, 500]", testDefs[0].Range())
	assert.Equal(t, "{0,1}", testDefs[3].Range())
	assert.Equal(t, "any", testDefs[4].Range())
}

func TestBuildDefaults(t *testing.T) {
	set, err := params.Build(testDefs, testDefs.Defaults())
	require.NoError(t, err)

	assert.Equal(t, 50.0, set.Float("antenna.length"))
	assert.Equal(t, 5, set.Int("antenna.turns"))
	assert.Equal(t, 5.0, set.Float("antenna.turns"))
	assert.Equal(t, "rectangle", set.String("antenna.name"))
	assert.Equal(t, 0.35, set.Float("pads.drill_size"))
	assert.True(t, set.Has("antenna.style"))
	assert.False(t, set.Has("antenna.width"))
	assert.Equal(t, []string{
		"antenna.length", "antenna.name", "antenna.silk_margin",
		"antenna.style", "antenna.turns", "pads.drill_size",
	}, set.Keys())
}

func TestBuildCoercion(t *testing.T) {
	raw := testDefs.Defaults()
	raw["antenna.length"] = 42        // int widened to length
	raw["antenna.turns"] = float64(3) // YAML/JSON decoders hand out float64
	raw["pads.drill_size"] = float32(0.5)

	set, err := params.Build(testDefs, raw)
	require.NoError(t, err)
	assert.Equal(t, 42.0, set.Float("antenna.length"))
	assert.Equal(t, 3, set.Int("antenna.turns"))
	assert.Equal(t, 0.5, set.Float("pads.drill_size"))
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		override map[string]any
		remove   []string
		expected []params.Error
	}{
		{
			name:     "below minimum",
			override: map[string]any{"antenna.length": 0.5},
			expected: []params.Error{{Param: "antenna.length", Detail: "0.5 out of range [1, 500]"}},
		},
		{
			name:     "above maximum",
			override: map[string]any{"antenna.turns": 101},
			expected: []params.Error{{Param: "antenna.turns", Detail: "101 out of range [1, 100]"}},
		},
		{
			name:     "inclusive bounds",
			override: map[string]any{"antenna.length": 500.0, "antenna.turns": 1, "antenna.silk_margin": -1.0},
			expected: nil,
		},
		{
			name:     "negative margin inside range",
			override: map[string]any{"antenna.silk_margin": -0.001},
			expected: nil,
		},
		{
			name:     "choice",
			override: map[string]any{"antenna.style": 2},
			expected: []params.Error{{Param: "antenna.style", Detail: "2 not in {0,1}"}},
		},
		{
			name:     "fractional count",
			override: map[string]any{"antenna.turns": 2.5},
			expected: []params.Error{{Param: "antenna.turns", Detail: "expected integer, got 2.5"}},
		},
		{
			name:     "wrong kind",
			override: map[string]any{"antenna.name": 3, "antenna.length": "long"},
			expected: []params.Error{
				{Param: "antenna.length", Detail: "expected number, got string"},
				{Param: "antenna.name", Detail: "expected string, got int"},
			},
		},
		{
			name:     "missing and unknown",
			override: map[string]any{"antenna.color": "red"},
			remove:   []string{"antenna.turns"},
			expected: []params.Error{
				{Param: "antenna.turns", Detail: "missing"},
				{Param: "antenna.color", Detail: "unknown parameter"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := testDefs.Defaults()
			for k, v := range tt.override {
				raw[k] = v
			}
			for _, k := range tt.remove {
				delete(raw, k)
			}

			_, err := params.Build(testDefs, raw)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var got []params.Error
			for _, p := range params.Problems(err) {
				got = append(got, *p)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSetIsImmutable(t *testing.T) {
	raw := testDefs.Defaults()
	set, err := params.Build(testDefs, raw)
	require.NoError(t, err)

	raw["antenna.length"] = 10.0
	copied := set.Raw()
	copied["antenna.length"] = 20.0

	assert.Equal(t, 50.0, set.Float("antenna.length"))
}

func TestRawRoundTrip(t *testing.T) {
	set, err := params.Build(testDefs, testDefs.Defaults())
	require.NoError(t, err)

	again, err := params.Build(testDefs, set.Raw())
	require.NoError(t, err)
	assert.Equal(t, set, again)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "invalid parameter antenna.turns: missing", params.Errorf("antenna.turns", "missing").Error())
	assert.Equal(t, "invalid parameters: boom", (&params.Error{Detail: "boom"}).Error())
	assert.Nil(t, params.Problems(nil))
}
