package chartopt

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// BarAggregator reduces categorical series by fixed-size chunk averaging:
// one representative bar per chunk, labeled "<first> - <last>" after the
// chunk's boundary categories. Aggregation is the arithmetic mean, not the
// sum — callers needing totals must pre-aggregate before invoking.
type BarAggregator struct{}

func (r *BarAggregator) Name() string { return ReducerBar }

// Reduce emits one point per chunk of size ceil(n/threshold), carrying the
// mean Y and a composite label. X is the index of the emitted bar.
func (r *BarAggregator) Reduce(points []Point, threshold int) []Point {
	if threshold <= 0 || len(points) <= threshold {
		return points
	}

	chunk := chunkSize(len(points), threshold)
	out := make([]Point, 0, threshold)
	for start := 0; start < len(points); start += chunk {
		end := start + chunk
		if end > len(points) {
			end = len(points)
		}
		ys := make([]float64, end-start)
		for i := start; i < end; i++ {
			ys[i-start] = coerceY(points[i].Y)
		}
		out = append(out, Point{
			X:     float64(len(out)),
			Y:     stat.Mean(ys, nil),
			Label: compositeLabel(points[start], points[end-1]),
		})
	}
	return out
}

// AggregateValues is the bare-scalar variant: chunked means over a numeric
// slice, no labels.
func (r *BarAggregator) AggregateValues(values []float64, threshold int) []float64 {
	if threshold <= 0 || len(values) <= threshold {
		return values
	}

	chunk := chunkSize(len(values), threshold)
	out := make([]float64, 0, threshold)
	for start := 0; start < len(values); start += chunk {
		end := start + chunk
		if end > len(values) {
			end = len(values)
		}
		ys := make([]float64, end-start)
		for i := start; i < end; i++ {
			ys[i-start] = coerceY(values[i])
		}
		out = append(out, stat.Mean(ys, nil))
	}
	return out
}

// compositeLabel joins the chunk's boundary labels. Unlabeled points fall
// back to their X position so bar charts over bare series stay readable.
func compositeLabel(first, last Point) string {
	fl := first.Label
	if fl == "" {
		fl = fmt.Sprintf("%g", first.X)
	}
	ll := last.Label
	if ll == "" {
		ll = fmt.Sprintf("%g", last.X)
	}
	if fl == ll {
		return fl
	}
	return fl + " - " + ll
}

var _ Reducer = (*BarAggregator)(nil)
