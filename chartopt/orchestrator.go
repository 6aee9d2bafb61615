package chartopt

import "github.com/sirupsen/logrus"

// DefaultThreshold is the point budget used when a caller passes none.
const DefaultThreshold = 100

// Orchestrator is the top-level entry point of the engine: it walks a chart
// registry, sizes a budget, routes every oversized dataset through the
// dispatcher, writes the reduced points back, and signals a redraw.
//
// A malformed chart degrades to "skip and continue" with a warning; a batch
// pass never aborts over a single chart.
type Orchestrator struct {
	Registry   *ChartRegistry
	Dispatcher *ReductionDispatcher
	Profiler   *CapabilityProfiler
	Policy     *AdaptiveThresholdPolicy
	Trace      *OptimizationTrace
}

// NewOrchestrator wires an orchestrator over the given registry. A nil
// signal provider profiles the local host; the seed feeds scatter
// clustering.
func NewOrchestrator(registry *ChartRegistry, provider SignalProvider, seed int64) *Orchestrator {
	return &Orchestrator{
		Registry:   registry,
		Dispatcher: NewReductionDispatcher(seed),
		Profiler:   NewCapabilityProfiler(provider),
		Policy:     NewAdaptiveThresholdPolicy(),
	}
}

// OptimizeChartData reduces one dataset for one chart and returns the
// result without mutating the input or the chart. A non-positive threshold
// selects DefaultThreshold.
func (o *Orchestrator) OptimizeChartData(chart *ChartDescriptor, points []Point, threshold int) []Point {
	if chart == nil {
		logrus.Warn("optimizeChartData: nil chart, returning data unchanged")
		return points
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	out := o.Dispatcher.Dispatch(chart.Type, points, threshold)
	o.record(chart, "", threshold, points, out)
	return out
}

// OptimizeAllCharts reduces every registered dataset exceeding threshold in
// place and invokes each touched chart's redraw hook. A non-positive
// threshold selects DefaultThreshold.
func (o *Orchestrator) OptimizeAllCharts(threshold int) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	for _, entry := range o.Registry.Charts() {
		o.optimizeChart(entry, threshold)
	}
}

// AdaptiveOptimize sizes the budget from the host capability profile and
// the raw dataset size, then optimizes every registered chart with it.
func (o *Orchestrator) AdaptiveOptimize(rawDataSize int) {
	profile := o.Profiler.Profile()
	threshold := o.Policy.Threshold(profile, rawDataSize)
	logrus.Debugf("adaptive optimization: constrained=%v rawSize=%d threshold=%d",
		profile.IsConstrainedDevice, rawDataSize, threshold)
	o.OptimizeAllCharts(threshold)
}

// ShouldOptimize reports whether an optimization pass is worth running:
// either the host is constrained, or some registered dataset already
// exceeds the base budget.
func (o *Orchestrator) ShouldOptimize() bool {
	if o.Profiler.Profile().IsConstrainedDevice {
		return true
	}
	for _, entry := range o.Registry.Charts() {
		if entry.Chart == nil {
			continue
		}
		for _, ds := range entry.Chart.Datasets {
			if ds != nil && len(ds.Points) > BaseThreshold {
				return true
			}
		}
	}
	return false
}

// optimizeChart reduces one registered chart's datasets in place.
func (o *Orchestrator) optimizeChart(entry *RegisteredChart, threshold int) {
	if entry.Chart == nil || len(entry.Chart.Datasets) == 0 {
		logrus.Warnf("chart %q has no datasets, skipping optimization", entry.Name)
		return
	}
	touched := false
	for _, ds := range entry.Chart.Datasets {
		if ds == nil || len(ds.Points) == 0 {
			logrus.Warnf("chart %q has an empty dataset, skipping it", entry.Name)
			continue
		}
		reduced := o.Dispatcher.DispatchSeries(entry.Chart.Type, ds.Label, ds.Points, threshold)
		o.record(entry.Chart, ds.Label, threshold, ds.Points, reduced)
		if len(reduced) != len(ds.Points) {
			logrus.Debugf("chart %q series %q: %d -> %d points", entry.Name, ds.Label, len(ds.Points), len(reduced))
			ds.Points = reduced
			touched = true
		}
	}
	if touched && entry.Redraw != nil {
		entry.Redraw()
	}
}

func (o *Orchestrator) record(chart *ChartDescriptor, series string, threshold int, in, out []Point) {
	o.Trace.Record(ReductionRecord{
		ChartTitle: chart.Title,
		ChartType:  chart.Type,
		Series:     series,
		Reducer:    o.Dispatcher.ReducerFor(chart.Type).Name(),
		Threshold:  threshold,
		InputLen:   len(in),
		OutputLen:  len(out),
		Skipped:    len(in) <= threshold,
	})
}
