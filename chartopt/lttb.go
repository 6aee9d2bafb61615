package chartopt

import "math"

// LTTBReducer downsamples an ordered series with the
// largest-triangle-three-buckets algorithm. The first and last input points
// are always kept (they anchor the visual range); each interior output slot
// picks the bucket candidate forming the largest triangle with the
// previously selected point and the average of the following bucket. This
// retains the visual trend shape far better than uniform sampling at the
// same budget.
type LTTBReducer struct{}

func (r *LTTBReducer) Name() string { return ReducerLTTB }

// Reduce returns exactly threshold points when len(points) > threshold.
// A threshold below 3 is clamped to 3: the algorithm needs the two anchors
// plus at least one interior slot.
func (r *LTTBReducer) Reduce(points []Point, threshold int) []Point {
	if threshold < 3 {
		threshold = 3
	}
	n := len(points)
	if n <= threshold {
		return points
	}

	sampled := make([]Point, 0, threshold)
	sampled = append(sampled, points[0])

	// Interior points [1, n-1) are split into threshold-2 equal buckets.
	every := float64(n-2) / float64(threshold-2)
	a := 0 // index of the previously selected point

	for i := 0; i < threshold-2; i++ {
		// Average of the next bucket, used only to weight the area term.
		avgStart := int(float64(i+1)*every) + 1
		avgEnd := int(float64(i+2)*every) + 1
		if avgEnd > n {
			avgEnd = n
		}
		var avgX, avgY float64
		for j := avgStart; j < avgEnd; j++ {
			avgX += points[j].X
			avgY += coerceY(points[j].Y)
		}
		avgX /= float64(avgEnd - avgStart)
		avgY /= float64(avgEnd - avgStart)

		bucketStart := int(float64(i)*every) + 1
		bucketEnd := int(float64(i+1)*every) + 1

		ax := points[a].X
		ay := coerceY(points[a].Y)

		// First candidate with the maximum area wins (stable scan order).
		maxArea := -1.0
		next := bucketStart
		for j := bucketStart; j < bucketEnd; j++ {
			cy := coerceY(points[j].Y)
			area := math.Abs((ax-avgX)*(cy-ay)-(ax-points[j].X)*(avgY-ay)) * 0.5
			if area > maxArea {
				maxArea = area
				next = j
			}
		}

		sampled = append(sampled, points[next])
		a = next
	}

	sampled = append(sampled, points[n-1])
	return sampled
}

var _ Reducer = (*LTTBReducer)(nil)
