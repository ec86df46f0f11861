package bheap_test

import (
	"testing"

	"github.com/katalvlaran/edgecut/bheap"
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath4 builds the unweighted path graph 0-1-2-3 used throughout
// spec.md §8's concrete scenarios.
func buildPath4(t *testing.T) *cutgraph.Graph {
	t.Helper()
	p := []int{0, 1, 3, 5, 6}
	i := []int{1, 0, 2, 1, 3, 2}
	x := []float64{1, 1, 1, 1, 1, 1}
	w := []float64{1, 1, 1, 1}
	g, err := cutgraph.NewFromCSC(p, i, x, w, nil)
	require.NoError(t, err)

	return g
}

func TestLoadComputesGainAndBoundary(t *testing.T) {
	g := buildPath4(t)
	// Partition {0,1} | {2,3}: only edge (1,2) crosses.
	g.Partition[0] = false
	g.Partition[1] = false
	g.Partition[2] = true
	g.Partition[3] = true

	bheap.Load(g, 0.5, 0.0)

	assert.Equal(t, float64(2), g.CutCost, "doubled cut cost: one crossing edge counted from both endpoints")
	assert.Equal(t, 1, g.ExternalDegree[1])
	assert.Equal(t, 1, g.ExternalDegree[2])
	assert.Equal(t, 0, g.ExternalDegree[0])
	assert.Equal(t, 0, g.ExternalDegree[3])
	assert.Equal(t, "", bheap.Verify(g))
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	g := buildPath4(t)
	bheap.Load(g, 0.5, 0.0)

	bheap.Remove(g, 1)
	assert.Equal(t, 0, g.BHIndex[1])
	assert.Equal(t, "", bheap.Verify(g))

	bheap.Insert(g, 1)
	assert.NotEqual(t, 0, g.BHIndex[1])
	assert.Equal(t, "", bheap.Verify(g))
}

func TestUpdateReordersHeap(t *testing.T) {
	// Star graph: center 0 connected to 1,2,3 with increasing weight;
	// center on side 0, leaves on side 1, so all are boundary: the leaves
	// share side 1's heap and the center is alone in side 0's.
	p := []int{0, 3, 4, 5, 6}
	i := []int{1, 2, 3, 0, 0, 0}
	x := []float64{1, 2, 3, 1, 2, 3}
	w := []float64{1, 1, 1, 1}
	g, err := cutgraph.NewFromCSC(p, i, x, w, nil)
	require.NoError(t, err)
	g.Partition[0] = false
	g.Partition[1] = true
	g.Partition[2] = true
	g.Partition[3] = true

	bheap.Load(g, 0.5, 0.0)
	assert.Equal(t, "", bheap.Verify(g))

	// Manually raise vertex 1's gain above the current root and re-sync.
	g.Gain[1] = 1000
	bheap.Update(g, 1)
	assert.Equal(t, "", bheap.Verify(g))
	top := bheap.Peek(g, g.Side(1), 1)
	require.Len(t, top, 1)
	assert.Equal(t, 1, top[0])
}

// buildTwoTrianglesBridge builds two K3 cliques {0,1,2} and {3,4,5}
// joined by a single bridge edge 2-3, the graph spec.md §8's concrete
// scenarios exercise for FM.
func buildTwoTrianglesBridge(t *testing.T) *cutgraph.Graph {
	t.Helper()
	edges := map[[2]int]float64{
		{0, 1}: 5, {0, 2}: 5, {1, 2}: 5,
		{3, 4}: 5, {3, 5}: 5, {4, 5}: 5,
		{2, 3}: 1,
	}
	n := 6
	adj := make(map[int]map[int]float64, n)
	for e, w := range edges {
		u, v := e[0], e[1]
		if adj[u] == nil {
			adj[u] = map[int]float64{}
		}
		if adj[v] == nil {
			adj[v] = map[int]float64{}
		}
		adj[u][v] = w
		adj[v][u] = w
	}
	p := []int{0}
	var i []int
	var x []float64
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			if w, ok := adj[k][j]; ok {
				i = append(i, j)
				x = append(x, w)
			}
		}
		p = append(p, len(i))
	}
	w := []float64{1, 1, 1, 1, 1, 1}
	g, err := cutgraph.NewFromCSC(p, i, x, w, nil)
	require.NoError(t, err)

	return g
}

// TestFlipMovesHeapedVertexToItsNewSide reproduces the bad-cut
// {0,1,3}|{2,4,5} split of the two-triangles-bridge graph: flipping
// vertex 3 (heaped on side 0 pre-flip) must evict it from side 0 and, if
// still a boundary vertex, insert it into side 1 — never touch an
// unrelated vertex in the opposite heap, and never leave 3 dangling in
// its old heap.
func TestFlipMovesHeapedVertexToItsNewSide(t *testing.T) {
	g := buildTwoTrianglesBridge(t)
	g.Partition[0], g.Partition[1], g.Partition[2] = false, false, true
	g.Partition[3], g.Partition[4], g.Partition[5] = false, true, true
	bheap.Load(g, 0.5, 0.0)
	require.Empty(t, bheap.Verify(g))
	require.NotEqual(t, 0, g.BHIndex[3], "vertex 3 must be heaped before the flip")

	bheap.Flip(g, 3)

	assert.Empty(t, bheap.Verify(g))
	assert.True(t, g.Partition[3], "vertex 3 must have moved to side 1")
	if g.ExternalDegree[3] > 0 {
		assert.Equal(t, 1, g.Side(3))
		assert.Contains(t, g.BHHeap[1], 3)
		assert.NotContains(t, g.BHHeap[0], 3)
	} else {
		assert.Equal(t, 0, g.BHIndex[3])
	}

	// Second flip must be the exact inverse (fm.Run's backtracking
	// relies on this).
	bheap.Flip(g, 3)
	assert.Empty(t, bheap.Verify(g))
	assert.False(t, g.Partition[3])
}

func TestClearEmptiesBothHeaps(t *testing.T) {
	g := buildPath4(t)
	bheap.Load(g, 0.5, 0.0)
	bheap.Clear(g)
	assert.Empty(t, g.BHHeap[0])
	assert.Empty(t, g.BHHeap[1])
	for v := 0; v < g.N; v++ {
		assert.Equal(t, 0, g.BHIndex[v])
	}
}
