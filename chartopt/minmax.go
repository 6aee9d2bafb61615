package chartopt

// MinMaxReducer is the generic fallback strategy: partition the input into
// threshold contiguous buckets and keep each bucket's minimum and maximum
// Y point. Output length lands between threshold and 2*threshold, which
// preserves spikes in both directions at the cost of a looser budget than
// LTTB.
type MinMaxReducer struct{}

func (r *MinMaxReducer) Name() string { return ReducerMinMax }

// Reduce keeps the min-Y and max-Y point of each bucket, min first. When a
// bucket's extremes coincide only one point is emitted.
func (r *MinMaxReducer) Reduce(points []Point, threshold int) []Point {
	if threshold <= 0 || len(points) <= threshold {
		return points
	}

	bucket := chunkSize(len(points), threshold)
	out := make([]Point, 0, 2*threshold)
	for start := 0; start < len(points); start += bucket {
		end := start + bucket
		if end > len(points) {
			end = len(points)
		}

		minIdx, maxIdx := start, start
		for i := start + 1; i < end; i++ {
			if coerceY(points[i].Y) < coerceY(points[minIdx].Y) {
				minIdx = i
			}
			if coerceY(points[i].Y) > coerceY(points[maxIdx].Y) {
				maxIdx = i
			}
		}

		out = append(out, points[minIdx])
		if maxIdx != minIdx {
			out = append(out, points[maxIdx])
		}
	}
	return out
}

var _ Reducer = (*MinMaxReducer)(nil)
