package hypotest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildFromYAML(t *testing.T) {
	doc := `
- name: one mean
  kind: mean
  x: [2, 1, 3, 4]
  null_value: 2.5
- name: welch
  kind: Mean
  x: [2, 1, 3, 4]
  y: [6, 5, 7, 9]
  alternative: left
- name: pooled
  kind: mean
  x: [2, 1, 3, 4]
  y: [6, 5, 7, 9]
  equal_variances: true
  significance: 0.01
- name: one variance
  kind: variance
  generate_x: {mean: 0, stddev: 2, n: 30, seed: 3}
  null_value: 4
  alternative: right
- name: one proportion
  kind: proportion
  p1: 0.43
  n1: 250
  null_value: 0.4
  alternative: greater
  power_at: [0.45, 0.5]
- name: two proportions
  kind: proportion
  p1: 0.43
  n1: 250
  p2: 0.5
  n2: 300
`
	var configs []TestConfig
	require.NoError(t, yaml.Unmarshal([]byte(doc), &configs))
	require.Len(t, configs, 6)

	descriptions := []string{
		"One sampling T two-tailed test.",
		"Two sampling T left one-tailed test.",
		"Two sampling T two-tailed test.",
		"Chi-squared right one-tailed test for variance.",
		"Z right one-tailed test for one proportion.",
		"Z two-tailed test for two proportions.",
	}
	nullValues := []float64{2.5, 0, 0, 4, 0.4, 0}
	for i, cfg := range configs {
		ht, err := Build(cfg, nil)
		require.NoError(t, err, cfg.Name)
		assert.Equal(t, descriptions[i], ht.Description(), cfg.Name)
		assert.Equal(t, nullValues[i], ht.NullValue(), cfg.Name)
	}

	pooled, err := Build(configs[2], nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{6}, pooled.DegreesOfFreedom())
	assert.Equal(t, 0.01, pooled.Significance())
	assert.Equal(t, []float64{0.45, 0.5}, configs[4].PowerAt)
}

func TestBuildUsesConfiguredNullValue(t *testing.T) {
	var cfg TestConfig
	require.NoError(t, yaml.Unmarshal([]byte("kind: mean\nx: [2, 1, 3, 4, 2, 3]\nnull_value: 2.5\n"), &cfg))
	require.NotNil(t, cfg.NullValue)

	ht, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.5, ht.NullValue())
	assert.InDelta(t, 0, ht.Statistic(), 1e-12)
	assert.Equal(t, 1.0, ht.PValue())

	var fromJSON TestConfig
	require.NoError(t, json.Unmarshal([]byte(`{"kind": "proportion", "p1": 0.43, "n1": 250, "null_value": 0.4}`), &fromJSON))
	ht, err = Build(fromJSON, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.4, ht.NullValue())
	assert.InDelta(t, 0.9682458365518533, ht.Statistic(), 1e-12)
}

func TestBuildConfigurationErrors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  TestConfig
	}{
		{"unknown kind", TestConfig{Kind: "median", X: []float64{1, 2}}},
		{"mean without x", TestConfig{Kind: "mean"}},
		{"x and generate_x", TestConfig{Kind: "mean", X: []float64{1, 2}, GenerateX: &SampleSpec{StdDev: 1, N: 5}}},
		{"y and generate_y", TestConfig{Kind: "variance", X: []float64{1, 2}, Y: []float64{1, 2}, GenerateY: &SampleSpec{StdDev: 1, N: 5}}},
		{"proportion inputs on mean", TestConfig{Kind: "mean", X: []float64{1, 2}, P1: ptr(0.5)}},
		{"equal variances on variance", TestConfig{Kind: "variance", X: []float64{1, 2}, EqualVariances: true}},
		{"equal variances without y", TestConfig{Kind: "mean", X: []float64{1, 2}, EqualVariances: true}},
		{"p2 without n2", TestConfig{Kind: "proportion", P1: ptr(0.4), N1: ptr(10), P2: ptr(0.5)}},
		{"n2 without p2", TestConfig{Kind: "proportion", P1: ptr(0.4), N1: ptr(10), N2: ptr(10)}},
		{"p1 without n1", TestConfig{Kind: "proportion", P1: ptr(0.4)}},
		{"samples on proportion", TestConfig{Kind: "proportion", P1: ptr(0.4), N1: ptr(10), X: []float64{1, 2}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ht, err := Build(tc.cfg, nil)
			assert.Nil(t, ht)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestBuildPassesThroughInvalidArguments(t *testing.T) {
	_, err := Build(TestConfig{Kind: "mean", X: []float64{1}}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Build(TestConfig{Kind: "mean", GenerateX: &SampleSpec{StdDev: 0, N: 5}}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Build(TestConfig{Kind: "proportion", P1: ptr(0.4), N1: ptr(10), Significance: ptr(2.0), NullValue: ptr(0.5)}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var cfg TestConfig
	assert.Error(t, yaml.Unmarshal([]byte("kind: mean\nalternative: sideways\n"), &cfg))
}
