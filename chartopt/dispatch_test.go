package chartopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReductionDispatcher_RoutingTable(t *testing.T) {
	d := NewReductionDispatcher(1)

	cases := []struct {
		chartType string
		reducer   string
	}{
		{ChartLine, ReducerLTTB},
		{ChartArea, ReducerLTTB},
		{ChartBar, ReducerBar},
		{ChartHorizontalBar, ReducerBar},
		{ChartScatter, ReducerScatter},
		{"pie", ReducerMinMax},
		{"doughnut", ReducerMinMax},
		{"", ReducerMinMax},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.reducer, d.ReducerFor(tc.chartType).Name(), "chart type %q", tc.chartType)
	}
}

func TestReductionDispatcher_ShortCircuitWithinBudget(t *testing.T) {
	// GIVEN a dataset within the threshold
	d := NewReductionDispatcher(1)
	points := PointsFromValues([]float64{1, 2, 3, 4})

	// WHEN dispatched for every chart type
	for _, chartType := range []string{ChartLine, ChartBar, ChartScatter, "radar"} {
		got := d.Dispatch(chartType, points, 10)

		// THEN the input comes back unchanged
		if len(got) != len(points) {
			t.Errorf("Dispatch(%q) within budget: got %d points, want %d", chartType, len(got), len(points))
		}
	}
}

func TestReductionDispatcher_OversizedLine_HitsBudget(t *testing.T) {
	// GIVEN an oversized ordered series
	d := NewReductionDispatcher(1)
	values := make([]float64, 400)
	for i := range values {
		values[i] = float64(i % 13)
	}

	// WHEN dispatched as a line chart
	got := d.Dispatch(ChartLine, PointsFromValues(values), 50)

	// THEN LTTB produces exactly the budget
	assert.Len(t, got, 50)
}

func TestReductionDispatcher_ScatterSeriesIsolation(t *testing.T) {
	// GIVEN two scatter series reduced through one dispatcher
	d := NewReductionDispatcher(9)
	points := scatterCloud(300)

	// WHEN each series is dispatched twice
	rev1 := d.DispatchSeries(ChartScatter, "revenue", points, 20)
	rev2 := d.DispatchSeries(ChartScatter, "revenue", points, 20)
	orders := d.DispatchSeries(ChartScatter, "orders", points, 20)

	// THEN the same series reproduces exactly, independent of call order
	assert.Equal(t, rev1, rev2)
	// AND sibling series draw from isolated streams
	assert.NotEqual(t, rev1, orders)
}

func TestNewReducer_ByName(t *testing.T) {
	for name, wantName := range map[string]string{
		ReducerLTTB:    ReducerLTTB,
		ReducerBar:     ReducerBar,
		ReducerScatter: ReducerScatter,
		ReducerMinMax:  ReducerMinMax,
		"":             ReducerMinMax,
	} {
		assert.Equal(t, wantName, NewReducer(name, 1).Name(), "NewReducer(%q)", name)
	}
}

func TestNewReducer_UnknownName_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewReducer with unknown name did not panic")
		}
	}()
	NewReducer("voronoi", 1)
}
