package qp

import (
	"github.com/katalvlaran/edgecut/bheap"
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/options"
)

// Run performs one full QPRefiner pass over g starting from x0 (spec.md
// §4.9): Init, GradProj, Boundary, then GradProj+Boundary a second time
// (the "double dance" that kicks free variables out of local stalls),
// and finally rounds x to a discrete partition, flipping any vertex
// whose rounded side differs from g's current Partition so that Gain,
// ExternalDegree, the boundary heaps, and CutCost/HeuCost stay
// consistent.
//
// Complexity: O(2 * gradprojIterationLimit * (n+nz) log n).
func Run(g *cutgraph.Graph, opts options.Options, x0 []float64, lambda0 float64) *Delta {
	d := Init(g, x0, opts.TargetSplit, opts.SoftSplitTolerance, lambda0)

	GradProj(g, d, opts.GradprojIterationLimit, opts.GradProjTolerance)
	Boundary(g, d)
	GradProj(g, d, opts.GradprojIterationLimit, opts.GradProjTolerance)
	Boundary(g, d)

	for k := 0; k < g.N; k++ {
		roundedSide := d.X[k] > 0.5
		if roundedSide != g.Partition[k] {
			// CutCost is in the doubled form; flipping k changes it by
			// twice k's gain.
			g.CutCost -= 2 * g.Gain[k]
			bheap.Flip(g, k)
		}
	}
	g.RecomputeWeights()
	g.UpdateHeuCost(opts.TargetSplit, opts.SoftSplitTolerance)

	return d
}
