package qp

import "github.com/katalvlaran/edgecut/cutgraph"

// bounds derives the knapsack interval [lo,hi] for a·x from the target
// split and its soft tolerance, per spec.md §3 ("lo, hi: current
// knapsack bounds, derived from W, targetSplit, softSplitTolerance").
func bounds(wsum, targetSplit, softSplitTolerance float64) (lo, hi float64) {
	lo = (targetSplit - softSplitTolerance) * wsum
	hi = (targetSplit + softSplitTolerance) * wsum
	if lo < 0 {
		lo = 0
	}
	if hi > wsum {
		hi = wsum
	}

	return lo, hi
}

// rowMax computes the majorant D[k] = max incident edge weight, used to
// keep the quadratic locally convex along each coordinate direction.
func rowMax(g *cutgraph.Graph) []float64 {
	d := make([]float64, g.N)
	for k := 0; k < g.N; k++ {
		var m float64
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			if g.X[pos] > m {
				m = g.X[pos]
			}
		}
		d[k] = m
	}

	return d
}

// Init performs Phase A (QPLinks, spec.md §4.9): classifies every
// coordinate of x0 into the FreeSet or a pinned bound, and computes the
// initial gradient, b = a.x, and ib.
//
// Complexity: O(n + nz).
func Init(g *cutgraph.Graph, x0 []float64, targetSplit, softSplitTolerance, lambda0 float64) *Delta {
	n := g.N
	d := &Delta{
		X:        make([]float64, n),
		Status:   make([]int8, n),
		FreePos:  make([]int, n),
		Gradient: make([]float64, n),
		D:        rowMax(g),
		Lambda:   lambda0,
	}
	copy(d.X, x0)
	for k := range d.FreePos {
		d.FreePos[k] = -1
	}

	d.Lo, d.Hi = bounds(g.WSum, targetSplit, softSplitTolerance)

	for k := 0; k < n; k++ {
		switch {
		case d.X[k] >= 1:
			d.Status[k] = 1
		case d.X[k] <= 0:
			d.Status[k] = -1
		default:
			d.Status[k] = 0
			d.addFree(k)
		}
	}

	for k := 0; k < n; k++ {
		var neighborSum float64
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			neighborSum += g.X[pos]
		}
		d.Gradient[k] = (0.5 - d.X[k]) * (d.D[k] + neighborSum)
	}

	var b float64
	for k := 0; k < n; k++ {
		b += g.W[k] * d.X[k]
	}
	d.B = b
	switch {
	case b <= d.Lo:
		d.IB = -1
	case b >= d.Hi:
		d.IB = 1
	default:
		d.IB = 0
	}

	return d
}
