package qp_test

import (
	"testing"

	"github.com/katalvlaran/edgecut/bheap"
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/options"
	"github.com/katalvlaran/edgecut/qp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildC4 builds the unweighted 4-cycle 0-1-2-3-0.
func buildC4(t *testing.T) *cutgraph.Graph {
	t.Helper()
	p := []int{0, 2, 4, 6, 8}
	i := []int{1, 3, 0, 2, 1, 3, 2, 0}
	x := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	w := []float64{1, 1, 1, 1}
	g, err := cutgraph.NewFromCSC(p, i, x, w, cutgraph.DefaultAllocator())
	require.NoError(t, err)

	return g
}

func TestInitClassifiesBounds(t *testing.T) {
	g := buildC4(t)
	x0 := []float64{1, 0, 0, 0}
	d := qp.Init(g, x0, 0.5, 0.01, 0)
	assert.Equal(t, int8(1), d.Status[0])
	assert.Equal(t, int8(-1), d.Status[1])
	assert.InDelta(t, 1.0, d.B, 1e-9)
}

func TestRunProducesFeasiblePartition(t *testing.T) {
	g := buildC4(t)
	opts := options.Default()
	x0 := []float64{1, 0, 0, 0}

	d := qp.Run(g, opts, x0, 0)
	for _, xi := range d.X {
		assert.GreaterOrEqual(t, xi, -1e-9)
		assert.LessOrEqual(t, xi, 1+1e-9)
	}
	assert.InDelta(t, g.WSum, g.W0+g.W1, 1e-9)
}

// TestRunReconcilesLoadedBoundaryHeaps exercises the rounding step of
// Run when g already carries live boundary heaps (the case
// waterdance.Dance hits in practice, since it calls fm.Run — which ends
// with bheap.Load — before qp.Run). Every rounding flip must move the
// vertex into its new side's heap rather than corrupting the other
// side's, so the heap-order and inverse-index invariants must still
// hold afterward (spec.md §8 invariant 6) and no flip may panic.
func TestRunReconcilesLoadedBoundaryHeaps(t *testing.T) {
	g := buildC4(t)
	g.Partition[0], g.Partition[1], g.Partition[2], g.Partition[3] = false, false, true, true
	bheap.Load(g, 0.5, 0.01)
	require.Empty(t, bheap.Verify(g))

	opts := options.Default()
	x0 := []float64{1, 0, 0, 0}

	require.NotPanics(t, func() {
		qp.Run(g, opts, x0, 0)
	})
	assert.Empty(t, bheap.Verify(g))
	assert.InDelta(t, g.WSum, g.W0+g.W1, 1e-9)
}
