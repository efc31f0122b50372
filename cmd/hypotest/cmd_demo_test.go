package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand_JSON(t *testing.T) {
	out, err := runRoot(t, "demo", "--format", "json")
	require.NoError(t, err)

	var results []testResult
	require.NoError(t, json.Unmarshal([]byte(out), &results), out)
	require.Len(t, results, len(demoScenarios()))

	descriptions := []string{
		"One sampling T two-tailed test.",
		"Two sampling T left one-tailed test.",
		"Chi-squared right one-tailed test for variance.",
		"F two-tailed test for two variances.",
		"Z right one-tailed test for one proportion.",
		"Z two-tailed test for two proportions.",
	}
	for i, r := range results {
		assert.Equal(t, descriptions[i], r.Description, r.Name)
		assert.Equal(t, r.PValue < r.Significance, r.Reject, r.Name)
	}
	assert.Len(t, results[0].Power, 4)
	assert.Equal(t, []float64{48}, results[1].DegreesOfFreedom)
	assert.Equal(t, []float64{24, 24}, results[3].DegreesOfFreedom)
}

func TestDemoCommand_Reproducible(t *testing.T) {
	first, err := runRoot(t, "demo")
	require.NoError(t, err)
	second, err := runRoot(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDemoCommand_RejectsArgs(t *testing.T) {
	_, err := runRoot(t, "demo", "extra")
	assert.Error(t, err)
}
