package chartopt

// TraceLevel controls the verbosity of reduction tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures one record per dispatched dataset.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// ReductionRecord captures one dispatched reduction: which reducer ran for
// which chart, at what budget, and how much the dataset shrank.
type ReductionRecord struct {
	ChartTitle string
	ChartType  string
	Series     string
	Reducer    string
	Threshold  int
	InputLen   int
	OutputLen  int
	Skipped    bool // dataset was within budget, reducer never ran
}

// OptimizationTrace collects reduction records during an optimization pass.
type OptimizationTrace struct {
	Level   TraceLevel
	Records []ReductionRecord
}

// NewOptimizationTrace creates an OptimizationTrace ready for recording.
func NewOptimizationTrace(level TraceLevel) *OptimizationTrace {
	return &OptimizationTrace{Level: level, Records: make([]ReductionRecord, 0)}
}

// Record appends a reduction record. No-op at TraceLevelNone or on nil.
func (t *OptimizationTrace) Record(record ReductionRecord) {
	if t == nil || t.Level != TraceLevelDecisions {
		return
	}
	t.Records = append(t.Records, record)
}

// TraceSummary aggregates statistics from an OptimizationTrace.
type TraceSummary struct {
	TotalDatasets   int
	ReducedCount    int
	SkippedCount    int
	PointsIn        int
	PointsOut       int
	ReducerCounts   map[string]int // reducer name → datasets it handled
	MeanCompression float64        // PointsOut / PointsIn over reduced datasets
}

// Summarize computes aggregate statistics from an OptimizationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *OptimizationTrace) *TraceSummary {
	summary := &TraceSummary{ReducerCounts: make(map[string]int)}
	if t == nil {
		return summary
	}

	summary.TotalDatasets = len(t.Records)
	reducedIn, reducedOut := 0, 0
	for _, r := range t.Records {
		summary.PointsIn += r.InputLen
		summary.PointsOut += r.OutputLen
		if r.Skipped {
			summary.SkippedCount++
			continue
		}
		summary.ReducedCount++
		summary.ReducerCounts[r.Reducer]++
		reducedIn += r.InputLen
		reducedOut += r.OutputLen
	}
	if reducedIn > 0 {
		summary.MeanCompression = float64(reducedOut) / float64(reducedIn)
	}
	return summary
}
