package cmd

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeValuesFile(t *testing.T, n int) string {
	t.Helper()
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(float64(i) / 20)
	}
	data, err := json.Marshal(values)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOptimizeCommand_EndToEnd(t *testing.T) {
	// GIVEN a 500-point series on disk
	input := writeValuesFile(t, 500)
	output := filepath.Join(t.TempDir(), "out.json")

	// WHEN the optimize command runs with a fixed line budget
	rootCmd.SetArgs([]string{"optimize", "--input", input, "--output", output, "--type", "line", "--threshold", "50"})
	require.NoError(t, rootCmd.Execute())

	// THEN the output holds exactly the budget
	points, err := LoadDataset(output)
	require.NoError(t, err)
	assert.Len(t, points, 50)
}

func TestForecastCommand_EndToEnd(t *testing.T) {
	// GIVEN a history on disk
	input := writeValuesFile(t, 60)
	output := filepath.Join(t.TempDir(), "forecast.json")

	// WHEN the forecast command projects 10 steps
	rootCmd.SetArgs([]string{"forecast", "--input", input, "--output", output, "--horizon", "10", "--method", "advanced"})
	require.NoError(t, rootCmd.Execute())

	// THEN 10 projected points come back, continuing the X sequence
	points, err := LoadDataset(output)
	require.NoError(t, err)
	require.Len(t, points, 10)
	assert.Equal(t, 60.0, points[0].X)
}
