package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SecTionXx/SaleOrderForecast-sub001/chartopt"
)

func history(values ...float64) []chartopt.Point {
	return chartopt.PointsFromValues(values)
}

func TestGenerate_Basic_ProjectsHistoricalMean(t *testing.T) {
	// GIVEN a history averaging 20
	h := history(10, 20, 30)

	// WHEN a basic forecast runs for 4 steps
	got, err := Generate(h, Parameters{Horizon: 4, Method: MethodBasic})
	require.NoError(t, err)

	// THEN every projected value is the mean and X continues the sequence
	require.Len(t, got.Points, 4)
	for i, p := range got.Points {
		assert.InDelta(t, 20, p.Y, 1e-9, "point %d", i)
		assert.Equal(t, float64(3+i), p.X, "point %d", i)
	}
	assert.Equal(t, "moving_average", got.Model)
}

func TestGenerate_Basic_EmptyHistory_ProjectsZeros(t *testing.T) {
	got, err := Generate(nil, Parameters{Horizon: 3})
	require.NoError(t, err)
	require.Len(t, got.Points, 3)
	for _, p := range got.Points {
		assert.Zero(t, p.Y)
	}
}

func TestGenerate_Advanced_ExtendsLinearTrend(t *testing.T) {
	// GIVEN a perfectly linear history y = 5x + 2
	h := make([]chartopt.Point, 10)
	for i := range h {
		h[i] = chartopt.Point{X: float64(i), Y: 5*float64(i) + 2}
	}

	// WHEN a trend forecast runs
	got, err := Generate(h, Parameters{Horizon: 3, Method: MethodAdvanced})
	require.NoError(t, err)

	// THEN the line continues exactly
	require.Len(t, got.Points, 3)
	for i, p := range got.Points {
		wantX := float64(10 + i)
		assert.InDelta(t, wantX, p.X, 1e-9)
		assert.InDelta(t, 5*wantX+2, p.Y, 1e-6, "point %d", i)
	}
	assert.Equal(t, "linear_regression", got.Model)
}

func TestGenerate_Advanced_ShortHistory_FallsBackToBasic(t *testing.T) {
	// GIVEN fewer than five history points
	got, err := Generate(history(4, 6), Parameters{Horizon: 2, Method: MethodAdvanced})
	require.NoError(t, err)

	// THEN the flat projection applies
	assert.Equal(t, "moving_average", got.Model)
	assert.InDelta(t, 5, got.Points[0].Y, 1e-9)
}

func TestGenerate_Advanced_ConfidenceBand(t *testing.T) {
	// GIVEN a noisy rising history
	h := []chartopt.Point{
		{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 5},
		{X: 4, Y: 4}, {X: 5, Y: 7}, {X: 6, Y: 6},
	}

	// WHEN a trend forecast with confidence runs
	got, err := Generate(h, Parameters{Horizon: 2, Method: MethodAdvanced, Confidence: true})
	require.NoError(t, err)

	// THEN a symmetric band surrounds every projected point
	require.Len(t, got.Lower, 2)
	require.Len(t, got.Upper, 2)
	for i := range got.Points {
		assert.Less(t, got.Lower[i].Y, got.Points[i].Y)
		assert.Greater(t, got.Upper[i].Y, got.Points[i].Y)
		assert.InDelta(t, got.Points[i].Y-got.Lower[i].Y, got.Upper[i].Y-got.Points[i].Y, 1e-9)
	}
}

func TestGenerate_Predictive_AliasesTrend(t *testing.T) {
	h := make([]chartopt.Point, 8)
	for i := range h {
		h[i] = chartopt.Point{X: float64(i), Y: float64(i)}
	}
	got, err := Generate(h, Parameters{Horizon: 1, Method: MethodPredictive})
	require.NoError(t, err)
	assert.Equal(t, "linear_regression", got.Model)
}

func TestGenerate_InvalidInputs(t *testing.T) {
	_, err := Generate(history(1, 2), Parameters{Horizon: 0})
	assert.Error(t, err)

	_, err = Generate(history(1, 2), Parameters{Horizon: 5, Method: "arima"})
	assert.Error(t, err)
}

func TestGenerate_NonUnitStep_Continued(t *testing.T) {
	// GIVEN weekly history (X stepping by 7)
	h := []chartopt.Point{{X: 0, Y: 1}, {X: 7, Y: 2}, {X: 14, Y: 3}}

	// WHEN projected
	got, err := Generate(h, Parameters{Horizon: 2, Method: MethodBasic})
	require.NoError(t, err)

	// THEN X continues in steps of 7
	assert.Equal(t, 21.0, got.Points[0].X)
	assert.Equal(t, 28.0, got.Points[1].X)
}
