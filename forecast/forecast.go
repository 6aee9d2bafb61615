// Package forecast projects a sales history forward: a flat moving-average
// projection, a least-squares trend projection with an optional confidence
// band, and a "predictive" method reserved for a future model (currently an
// alias of the trend projection).
package forecast

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/SecTionXx/SaleOrderForecast-sub001/chartopt"
)

// Forecast method names accepted by Generate.
const (
	MethodBasic      = "basic"
	MethodAdvanced   = "advanced"
	MethodPredictive = "predictive"
)

// ValidMethods is the set of recognized forecast method names.
var ValidMethods = map[string]bool{
	"":               true,
	MethodBasic:      true,
	MethodAdvanced:   true,
	MethodPredictive: true,
}

// IsValidMethod returns true if name is a recognized forecast method.
func IsValidMethod(name string) bool {
	return ValidMethods[name]
}

// minRegressionHistory is the smallest history the trend projection accepts
// before falling back to the flat projection.
const minRegressionHistory = 5

// zScore95 approximates the 95% two-sided normal quantile used for the
// confidence band.
const zScore95 = 1.96

// Parameters configures one forecast generation.
type Parameters struct {
	// Horizon is the number of future points to project (must be > 0).
	Horizon int
	// Method selects the projection ("basic", "advanced", "predictive";
	// empty defaults to basic).
	Method string
	// Confidence enables the ±band on trend projections when true.
	Confidence bool
}

// Result is one generated forecast.
type Result struct {
	// Points continues the input's X sequence for Horizon steps.
	Points []chartopt.Point
	// Lower and Upper bound the confidence band; nil unless requested and
	// supported by the method.
	Lower []chartopt.Point
	Upper []chartopt.Point
	// Model names the projection actually used (a trend request over a
	// short history degrades to "moving_average").
	Model string
}

// Generate projects history forward per the parameters.
func Generate(history []chartopt.Point, params Parameters) (*Result, error) {
	if params.Horizon <= 0 {
		return nil, fmt.Errorf("forecast horizon must be positive, got %d", params.Horizon)
	}
	if !IsValidMethod(params.Method) {
		return nil, fmt.Errorf("unknown forecast method %q", params.Method)
	}
	switch params.Method {
	case MethodAdvanced, MethodPredictive:
		return trendForecast(history, params)
	default: // "", "basic"
		return basicForecast(history, params), nil
	}
}

// basicForecast projects the historical mean flat across the horizon.
// An empty history projects zeros.
func basicForecast(history []chartopt.Point, params Parameters) *Result {
	mean := 0.0
	if len(history) > 0 {
		mean = stat.Mean(chartopt.Values(history), nil)
	}
	points := make([]chartopt.Point, params.Horizon)
	for i := range points {
		points[i] = chartopt.Point{X: nextX(history, i), Y: mean}
	}
	return &Result{Points: points, Model: "moving_average"}
}

// trendForecast fits a least-squares line to (x, y) and extends it across
// the horizon. Histories shorter than minRegressionHistory fall back to the
// flat projection.
func trendForecast(history []chartopt.Point, params Parameters) (*Result, error) {
	if len(history) < minRegressionHistory {
		return basicForecast(history, params), nil
	}

	xs := make([]float64, len(history))
	ys := chartopt.Values(history)
	for i, p := range history {
		xs[i] = p.X
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	result := &Result{Points: make([]chartopt.Point, params.Horizon), Model: "linear_regression"}
	for i := range result.Points {
		x := nextX(history, i)
		result.Points[i] = chartopt.Point{X: x, Y: intercept + slope*x}
	}

	if params.Confidence {
		residuals := make([]float64, len(history))
		for i := range history {
			residuals[i] = ys[i] - (intercept + slope*xs[i])
		}
		margin := zScore95 * stat.StdDev(residuals, nil)
		result.Lower = make([]chartopt.Point, params.Horizon)
		result.Upper = make([]chartopt.Point, params.Horizon)
		for i, p := range result.Points {
			result.Lower[i] = chartopt.Point{X: p.X, Y: p.Y - margin}
			result.Upper[i] = chartopt.Point{X: p.X, Y: p.Y + margin}
		}
	}
	return result, nil
}

// nextX continues the history's X sequence at its trailing step size.
// An empty history starts at 0 with unit steps.
func nextX(history []chartopt.Point, offset int) float64 {
	if len(history) == 0 {
		return float64(offset)
	}
	step := 1.0
	if len(history) > 1 {
		step = history[len(history)-1].X - history[len(history)-2].X
		if step <= 0 {
			step = 1.0
		}
	}
	return history[len(history)-1].X + step*float64(offset+1)
}
