package guess

import (
	"math/rand"

	"github.com/katalvlaran/edgecut/bheap"
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/options"
	"github.com/katalvlaran/edgecut/qp"
)

// Run sets g's Partition on the coarsest level per opts.GuessCutType
// and loads the boundary heap. For GuessQP it additionally seeds a
// fractional x (all zero except vertex 0) and runs one QPRefiner pass,
// which rounds and flips the graph's Partition back to discrete before
// returning.
//
// Complexity: O(n) for NaturalOrder/Random; one QP pass for GuessQP.
func Run(g *cutgraph.Graph, opts options.Options, rng *rand.Rand) {
	switch opts.GuessCutType {
	case options.GuessNaturalOrder:
		naturalOrder(g)
		bheap.Load(g, opts.TargetSplit, opts.SoftSplitTolerance)
	case options.GuessRandom:
		random(g, rng)
		bheap.Load(g, opts.TargetSplit, opts.SoftSplitTolerance)
	case options.GuessQP:
		x0 := make([]float64, g.N)
		if g.N > 0 {
			x0[0] = 1
		}
		for k := 1; k < g.N; k++ {
			g.Partition[k] = false
		}
		if g.N > 0 {
			g.Partition[0] = true
		}
		bheap.Load(g, opts.TargetSplit, opts.SoftSplitTolerance)
		qp.Run(g, opts, x0, 0)
	}
}

// naturalOrder assigns the first half of vertices (by index) to side 0
// and the remainder to side 1.
func naturalOrder(g *cutgraph.Graph) {
	half := g.N / 2
	for k := 0; k < g.N; k++ {
		g.Partition[k] = k >= half
	}
}

// random assigns each vertex an independent Bernoulli(1/2) side.
func random(g *cutgraph.Graph, rng *rand.Rand) {
	for k := 0; k < g.N; k++ {
		g.Partition[k] = rng.Intn(2) == 1
	}
}
