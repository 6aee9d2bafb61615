package chartopt

import "math"

// Point is one datum of a chart series. X carries the ordinal position for
// ordered series and the horizontal coordinate for scatter data; Label
// carries the categorical name for bar charts (empty when unused).
type Point struct {
	X     float64
	Y     float64
	Label string
}

// Dataset is an ordered sequence of points belonging to one series.
// Order is significant for line/area reduction and irrelevant for scatter.
type Dataset struct {
	Label  string
	Points []Point
}

// ChartDescriptor is the engine's view of a chart owned by the rendering
// layer. The engine reads Type and rewrites each dataset's point slice;
// everything else about the chart belongs to the renderer.
type ChartDescriptor struct {
	Type     string
	Title    string
	Datasets []*Dataset
}

// PointsFromValues lifts a bare scalar series into points, using the slice
// index as X.
func PointsFromValues(values []float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: float64(i), Y: coerceY(v)}
	}
	return points
}

// Values extracts the Y column of a point slice.
func Values(points []Point) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Y
	}
	return values
}

// coerceY maps non-numeric input (NaN, ±Inf after upstream parsing) to 0 so
// a single bad cell degrades one point instead of poisoning an aggregate.
func coerceY(y float64) float64 {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0
	}
	return y
}

// chunkSize returns the bucket width ceil(n/threshold) shared by the
// bucketing reducers.
func chunkSize(n, threshold int) int {
	return int(math.Ceil(float64(n) / float64(threshold)))
}
