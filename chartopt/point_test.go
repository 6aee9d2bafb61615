package chartopt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsFromValues_IndexBecomesX(t *testing.T) {
	got := PointsFromValues([]float64{7, 8, 9})
	assert.Equal(t, []Point{{X: 0, Y: 7}, {X: 1, Y: 8}, {X: 2, Y: 9}}, got)
}

func TestPointsFromValues_CoercesNonFinite(t *testing.T) {
	got := PointsFromValues([]float64{1, math.NaN(), math.Inf(1), math.Inf(-1)})
	assert.Equal(t, 0.0, got[1].Y)
	assert.Equal(t, 0.0, got[2].Y)
	assert.Equal(t, 0.0, got[3].Y)
}

func TestValues_ExtractsYColumn(t *testing.T) {
	points := []Point{{X: 0, Y: 3}, {X: 1, Y: 4}}
	assert.Equal(t, []float64{3, 4}, Values(points))
}

func TestChunkSize(t *testing.T) {
	assert.Equal(t, 10, chunkSize(1000, 100))
	assert.Equal(t, 4, chunkSize(10, 3)) // ceil(10/3)
	assert.Equal(t, 1, chunkSize(5, 5))
}
