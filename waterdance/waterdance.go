package waterdance

import (
	"github.com/katalvlaran/edgecut/bheap"
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/fm"
	"github.com/katalvlaran/edgecut/matching"
	"github.com/katalvlaran/edgecut/options"
	"github.com/katalvlaran/edgecut/qp"
)

// Dance runs opts.NumDances alternations of FM then QP over g, each
// gated by its own enablement flag (spec.md §4.11). QP is warm-started
// from g's current discrete Partition at the start of every alternation.
//
// Complexity: O(numDances * (one FM pass + one QP pass)).
func Dance(g *cutgraph.Graph, opts options.Options) {
	for i := 0; i < opts.NumDances; i++ {
		if opts.UseFM {
			fm.Run(g, opts)
		}
		if opts.UseQPGradProj {
			x0 := make([]float64, g.N)
			for k := range x0 {
				if g.Partition[k] {
					x0[k] = 1
				}
			}
			qp.Run(g, opts, x0, 0)
		}
	}
}

// Project copies a coarse level's Partition down to its parent (spec.md
// §4.10): every fine constituent of a coarse vertex inherits that
// vertex's side. The parent's Gain, ExternalDegree, boundary heaps, and
// derived scalars are then rebuilt from scratch via bheap.Load, which is
// the same asymptotic cost (O(n+nz)) as the boundary-only incremental
// update spec.md describes and avoids needing a separate "was this
// coarse vertex on the boundary" bookkeeping pass (see DESIGN.md).
func Project(parent, child *cutgraph.Graph, m *matching.Matching, opts options.Options) {
	for c := 0; c < child.N; c++ {
		side := child.Partition[c]
		for _, v := range m.Members(m.CoarseRep[c]) {
			parent.Partition[v] = side
		}
	}
	bheap.Load(parent, opts.TargetSplit, opts.SoftSplitTolerance)
}
