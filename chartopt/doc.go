// Package chartopt reduces large chart datasets to a bounded number of
// representative points before they reach the rendering layer.
//
// # Reading Guide
//
// Start with these three files to understand the reduction pipeline:
//   - point.go: Point, Dataset, and ChartDescriptor — the data the engine moves
//   - dispatch.go: chart-type to reducer routing and the size short-circuit
//   - orchestrator.go: the batch entry points and the chart registry
//
// # Architecture
//
// Each chart shape has its own reduction strategy behind the Reducer
// interface:
//   - LTTBReducer (lttb.go): largest-triangle-three-buckets for ordered series
//   - BarAggregator (bar.go): fixed-chunk averaging with composite labels
//   - ScatterClusterer (scatter.go): one-shot nearest-centroid clustering
//   - MinMaxReducer (minmax.go): per-bucket min/max fallback for anything else
//
// The point budget handed to a reducer comes from AdaptiveThresholdPolicy
// (threshold.go), which consults a CapabilityProfiler (capability.go) built
// on host signals. Signals arrive through the SignalProvider interface so
// non-browser deployments can supply synthetic or configuration-driven
// profiles instead of querying platform APIs.
//
// All reducers are pure, synchronous, and single-threaded: they operate on
// one in-memory slice at a time and hold no state across calls. Nothing in
// this package is goroutine-safe and nothing needs to be — each optimization
// pass owns its inputs for the duration of the call.
package chartopt
