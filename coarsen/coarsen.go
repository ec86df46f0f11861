package coarsen

import (
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/matching"
)

// Run builds the coarse graph implied by m over g: each coarse vertex
// absorbs the vertex weight of its (1-3) fine constituents, and parallel
// edges between two coarse vertices are summed into a single entry via
// a column-scatter against htable (spec.md §4.5), which also drops any
// edge whose two endpoints fell into the same cluster (a would-be
// self-loop).
//
// The returned graph's Gain is seeded to -sum(outgoing edge weight) per
// vertex (every vertex is assumed on one side until InitialGuess or
// bheap.Load establishes real partition-dependent gains) and
// ExternalDegree is left at zero.
//
// Complexity: O(nz) amortized (each fine edge visited once; htable
// lookups are O(1)).
func Run(g *cutgraph.Graph, m *matching.Matching, alloc cutgraph.Allocator) (*cutgraph.Graph, error) {
	cn := m.CoarseN
	cw := make([]float64, cn)

	for c := 0; c < cn; c++ {
		rep := m.CoarseRep[c]
		for _, v := range m.Members(rep) {
			cw[c] += g.W[v]
		}
	}

	// htable[dest] holds (position-in-current-row + 1) if dest has
	// already been seen while building the current coarse row, else 0.
	// Scratch row buffers are reused across coarse vertices.
	htable := make([]int, cn)
	var rowDest []int
	var rowWeight []float64

	cp := make([]int, cn+1)
	var ci []int
	var cx []float64

	for c := 0; c < cn; c++ {
		rowDest = rowDest[:0]
		rowWeight = rowWeight[:0]

		rep := m.CoarseRep[c]
		for _, v := range m.Members(rep) {
			for pos := g.P[v]; pos < g.P[v+1]; pos++ {
				dest := m.FineToCoarse[g.I[pos]]
				if dest == c {
					continue // would-be self-loop
				}
				if htable[dest] != 0 {
					rowWeight[htable[dest]-1] += g.X[pos]
					continue
				}
				rowDest = append(rowDest, dest)
				rowWeight = append(rowWeight, g.X[pos])
				htable[dest] = len(rowDest)
			}
		}
		for _, dest := range rowDest {
			htable[dest] = 0 // reset for next coarse vertex
		}

		if err := reserveCSC(alloc, len(rowDest)); err != nil {
			return nil, err
		}
		ci = append(ci, rowDest...)
		cx = append(cx, rowWeight...)
		cp[c+1] = cp[c] + len(rowDest)
	}

	cg, err := cutgraph.NewFromCSC(cp, ci, cx, cw, alloc)
	if err != nil {
		return nil, err
	}
	for c := 0; c < cn; c++ {
		var rowSum float64
		for pos := cg.P[c]; pos < cg.P[c+1]; pos++ {
			rowSum += cg.X[pos]
		}
		cg.Gain[c] = -rowSum
	}

	return cg, nil
}

func reserveCSC(alloc cutgraph.Allocator, n int) error {
	if n == 0 {
		return nil
	}

	return alloc.Reserve(n)
}
