package napsack_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/edgecut/napsack"
	"github.com/stretchr/testify/assert"
)

// TestProjectAlreadyFeasible exercises spec.md §8 scenario 6: a unit
// knapsack that is already exactly satisfied at lambda=0.
func TestProjectAlreadyFeasible(t *testing.T) {
	a := []float64{1, 1, 1, 1}
	y := []float64{0.9, 0.8, 0.2, 0.1}
	x, lambda := napsack.Project(y, a, 2.0, 2.0, 0)

	assert.InDelta(t, 0, lambda, 1e-9)
	sum := 0.0
	for _, xi := range x {
		sum += xi
	}
	assert.InDelta(t, 2.0, sum, 1e-9)
	for k := range x {
		assert.InDelta(t, y[k], x[k], 1e-9)
	}
}

// TestProjectPushDown forces b(0) above hi and checks the projection is
// feasible and is the closest point in Euclidean distance among feasible
// points reachable by a single shared shift lambda.
func TestProjectPushDown(t *testing.T) {
	a := []float64{1, 1, 1, 1}
	y := []float64{0.9, 0.95, 0.8, 0.85} // sum = 3.5
	x, lambda := napsack.Project(y, a, 0.0, 2.0, 0)

	sum := 0.0
	for _, xi := range x {
		sum += xi
		assert.GreaterOrEqual(t, xi, 0.0)
		assert.LessOrEqual(t, xi, 1.0)
	}
	assert.InDelta(t, 2.0, sum, 1e-7)
	assert.Greater(t, lambda, 0.0)
}

// TestProjectPushUp forces b(0) below lo.
func TestProjectPushUp(t *testing.T) {
	a := []float64{1, 1, 1, 1}
	y := []float64{0.05, 0.1, 0.0, 0.2} // sum = 0.35
	x, lambda := napsack.Project(y, a, 2.0, 4.0, 0)

	sum := 0.0
	for _, xi := range x {
		sum += xi
		assert.GreaterOrEqual(t, xi, -1e-9)
		assert.LessOrEqual(t, xi, 1+1e-9)
	}
	assert.InDelta(t, 2.0, sum, 1e-7)
	assert.Less(t, lambda, 0.0)
}

// TestProjectUnequalWeights checks a non-unit weight vector still yields
// a feasible point.
func TestProjectUnequalWeights(t *testing.T) {
	a := []float64{1, 2, 3, 0.5}
	y := []float64{1, 1, 1, 1} // all saturate at 1 initially, b = sum(a) = 6.5
	x, _ := napsack.Project(y, a, 0, 3, 0)

	b := 0.0
	for k := range x {
		b += a[k] * x[k]
		assert.False(t, math.IsNaN(x[k]))
	}
	assert.InDelta(t, 3.0, b, 1e-7)
}

func TestProjectZeroWeightCoordinateUnaffected(t *testing.T) {
	a := []float64{1, 0, 1}
	y := []float64{0.9, 0.4, 0.9}
	x, _ := napsack.Project(y, a, 0, 1, 0)
	assert.InDelta(t, 0.4, x[1], 1e-9)
}
