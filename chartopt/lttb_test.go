package chartopt

import (
	"math"
	"testing"
)

func TestLTTBReducer_SpecExample_ThresholdThree(t *testing.T) {
	// GIVEN the five-point series and a threshold of 3
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 1}, {X: 3, Y: 9}, {X: 4, Y: 2}}
	r := &LTTBReducer{}

	// WHEN Reduce is called
	got := r.Reduce(points, 3)

	// THEN output has exactly 3 points anchored at the input endpoints
	if len(got) != 3 {
		t.Fatalf("Reduce: got %d points, want 3", len(got))
	}
	if got[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("first point: got %+v, want {0 0}", got[0])
	}
	if got[2] != (Point{X: 4, Y: 2}) {
		t.Errorf("last point: got %+v, want {4 2}", got[2])
	}
}

func TestLTTBReducer_ExactCardinality(t *testing.T) {
	// GIVEN oversized ordered series at several thresholds
	points := make([]Point, 5000)
	for i := range points {
		points[i] = Point{X: float64(i), Y: math.Sin(float64(i) / 25)}
	}
	r := &LTTBReducer{}

	for _, threshold := range []int{3, 10, 100, 999, 4999} {
		// WHEN Reduce is called
		got := r.Reduce(points, threshold)

		// THEN output length equals the threshold exactly
		if len(got) != threshold {
			t.Errorf("Reduce(threshold=%d): got %d points, want %d", threshold, len(got), threshold)
		}
	}
}

func TestLTTBReducer_EndpointPreservation(t *testing.T) {
	// GIVEN an oversized ordered series
	points := make([]Point, 1200)
	for i := range points {
		points[i] = Point{X: float64(i), Y: float64(i % 37)}
	}
	r := &LTTBReducer{}

	// WHEN Reduce is called
	got := r.Reduce(points, 50)

	// THEN the first and last input points are preserved
	if got[0] != points[0] {
		t.Errorf("first point: got %+v, want %+v", got[0], points[0])
	}
	if got[len(got)-1] != points[len(points)-1] {
		t.Errorf("last point: got %+v, want %+v", got[len(got)-1], points[len(points)-1])
	}
}

func TestLTTBReducer_PreservesXOrder(t *testing.T) {
	// GIVEN an oversized ordered series
	points := make([]Point, 800)
	for i := range points {
		points[i] = Point{X: float64(i), Y: math.Cos(float64(i) / 7)}
	}
	r := &LTTBReducer{}

	// WHEN Reduce is called
	got := r.Reduce(points, 40)

	// THEN output X values are strictly increasing
	for i := 1; i < len(got); i++ {
		if got[i].X <= got[i-1].X {
			t.Fatalf("X order violated at %d: %f after %f", i, got[i].X, got[i-1].X)
		}
	}
}

func TestLTTBReducer_ThresholdBelowThree_Clamped(t *testing.T) {
	// GIVEN a degenerate threshold of 1
	points := make([]Point, 100)
	for i := range points {
		points[i] = Point{X: float64(i), Y: float64(i)}
	}
	r := &LTTBReducer{}

	// WHEN Reduce is called
	got := r.Reduce(points, 1)

	// THEN the threshold is clamped to the minimum of 3
	if len(got) != 3 {
		t.Errorf("Reduce(threshold=1): got %d points, want 3 (clamped)", len(got))
	}
}

func TestLTTBReducer_WithinBudget_ReturnsInputUnchanged(t *testing.T) {
	// GIVEN a series already within budget
	points := []Point{{X: 0, Y: 1}, {X: 1, Y: 2}}
	r := &LTTBReducer{}

	// WHEN Reduce is called
	got := r.Reduce(points, 10)

	// THEN the input comes back as-is
	if len(got) != 2 || got[0] != points[0] || got[1] != points[1] {
		t.Errorf("Reduce within budget: got %+v, want input unchanged", got)
	}
}

func TestLTTBReducer_NonFiniteY_CoercedToZero(t *testing.T) {
	// GIVEN a series containing a NaN sample
	points := make([]Point, 50)
	for i := range points {
		points[i] = Point{X: float64(i), Y: 1}
	}
	points[10].Y = math.NaN()
	r := &LTTBReducer{}

	// WHEN Reduce is called
	got := r.Reduce(points, 10)

	// THEN no NaN leaks into the area computation or blocks selection
	if len(got) != 10 {
		t.Fatalf("Reduce with NaN input: got %d points, want 10", len(got))
	}
}
