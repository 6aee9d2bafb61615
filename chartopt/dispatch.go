package chartopt

// Chart type strings recognized by the dispatcher. Anything else falls
// through to the min/max reducer.
const (
	ChartLine          = "line"
	ChartArea          = "area"
	ChartBar           = "bar"
	ChartHorizontalBar = "horizontalBar"
	ChartScatter       = "scatter"
)

// ReductionDispatcher routes a dataset to the reducer matching its chart
// type. It owns the shared size short-circuit: datasets already within the
// threshold pass through untouched, so callers never pay for a reduction
// they do not need.
type ReductionDispatcher struct {
	seed    int64
	lttb    *LTTBReducer
	bar     *BarAggregator
	scatter *ScatterClusterer
	minmax  *MinMaxReducer
}

// NewReductionDispatcher creates a dispatcher. The seed feeds the scatter
// clusterer's random source.
func NewReductionDispatcher(seed int64) *ReductionDispatcher {
	return &ReductionDispatcher{
		seed:    seed,
		lttb:    &LTTBReducer{},
		bar:     &BarAggregator{},
		scatter: NewScatterClusterer(seed),
		minmax:  &MinMaxReducer{},
	}
}

// ReducerFor returns the reducer handling the given chart type.
func (d *ReductionDispatcher) ReducerFor(chartType string) Reducer {
	switch chartType {
	case ChartLine, ChartArea:
		return d.lttb
	case ChartBar, ChartHorizontalBar:
		return d.bar
	case ChartScatter:
		return d.scatter
	default:
		return d.minmax
	}
}

// Dispatch reduces points with the reducer for chartType. Returns the input
// unchanged when it is already within the threshold.
func (d *ReductionDispatcher) Dispatch(chartType string, points []Point, threshold int) []Point {
	return d.DispatchSeries(chartType, "", points, threshold)
}

// DispatchSeries is Dispatch for one named series of a multi-series chart.
// Scatter datasets with a series label draw centroids from a stream derived
// per series, so sibling series in one chart stay independently
// reproducible regardless of iteration order.
func (d *ReductionDispatcher) DispatchSeries(chartType, series string, points []Point, threshold int) []Point {
	if len(points) <= threshold {
		return points
	}
	if chartType == ChartScatter && series != "" {
		c := NewScatterClustererFromRand(NewSamplingKey(d.seed, series).NewRand())
		return c.Reduce(points, threshold)
	}
	return d.ReducerFor(chartType).Reduce(points, threshold)
}
