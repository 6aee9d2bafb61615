package chartopt

import "math/rand"

// ScatterClusterer maps many unordered 2-D points onto at most k
// representative centroids: k distinct random input points seed the
// centroids, every point is assigned to its nearest seed by Euclidean
// distance in a single pass, and each non-empty cluster is replaced by the
// mean position of its members.
//
// This is deliberately NOT iterative k-means: there is no refinement loop,
// so the result is a one-shot approximation whose only contract is bounded
// output size. Downstream consumers depend on that output distribution;
// improving clustering quality here would change it.
type ScatterClusterer struct {
	rng *rand.Rand
}

// NewScatterClusterer creates a clusterer with a deterministic seed.
func NewScatterClusterer(seed int64) *ScatterClusterer {
	return &ScatterClusterer{rng: NewSamplingKey(seed, "").NewRand()}
}

// NewScatterClustererFromRand creates a clusterer over a caller-supplied
// random source, for callers that partition one seed across several series.
func NewScatterClustererFromRand(rng *rand.Rand) *ScatterClusterer {
	return &ScatterClusterer{rng: rng}
}

func (r *ScatterClusterer) Name() string { return ReducerScatter }

// Reduce returns at most k centroids. Empty clusters are dropped, so the
// output may be shorter than k.
func (r *ScatterClusterer) Reduce(points []Point, k int) []Point {
	if k <= 0 || len(points) <= k {
		return points
	}

	seedIdx := drawDistinctIndices(r.rng, len(points), k)
	sumX := make([]float64, len(seedIdx))
	sumY := make([]float64, len(seedIdx))
	count := make([]int, len(seedIdx))

	for _, p := range points {
		py := coerceY(p.Y)
		best := 0
		bestDist := sqDist(p.X, py, points[seedIdx[0]])
		for c := 1; c < len(seedIdx); c++ {
			if d := sqDist(p.X, py, points[seedIdx[c]]); d < bestDist {
				bestDist = d
				best = c
			}
		}
		sumX[best] += p.X
		sumY[best] += py
		count[best]++
	}

	out := make([]Point, 0, len(seedIdx))
	for c := range seedIdx {
		if count[c] == 0 {
			continue
		}
		out = append(out, Point{
			X: sumX[c] / float64(count[c]),
			Y: sumY[c] / float64(count[c]),
		})
	}
	return out
}

// sqDist is the squared Euclidean distance; the square root is monotone so
// nearest-centroid comparisons skip it.
func sqDist(x, y float64, p Point) float64 {
	dx := x - p.X
	dy := y - coerceY(p.Y)
	return dx*dx + dy*dy
}

var _ Reducer = (*ScatterClusterer)(nil)
