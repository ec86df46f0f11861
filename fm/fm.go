package fm

import (
	"math"

	"github.com/katalvlaran/edgecut/bheap"
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/options"
)

// Run executes FMRefiner (spec.md §4.7): an outer loop of bounded-depth
// inner passes, each of which greedily flips boundary vertices while
// tracking the best cost seen and backtracking any moves made after it.
// Never fails: it either improves g's HeuCost or leaves it unchanged.
//
// Complexity: O(fmMaxNumRefinements * fmSearchDepth * log n) plus one
// O(n+nz) rescan per pass.
func Run(g *cutgraph.Graph, opts options.Options) {
	if !opts.UseFM {
		return
	}
	for iter := 0; iter < opts.FMMaxNumRefinements; iter++ {
		if !innerPass(g, opts) {
			return
		}
	}
}

// innerPass runs one bounded-depth best-move-with-backtracking search
// and reports whether it strictly decreased HeuCost.
func innerPass(g *cutgraph.Graph, opts options.Options) bool {
	startCost := g.HeuCost
	workingCutCost := g.CutCost
	workingW0, workingW1 := g.W0, g.W1
	bestCost := startCost

	var stack []int
	head := 0
	steps := 0

	for steps < opts.FMSearchDepth {
		v, gain, ok := pickCandidate(g, opts, workingW0, workingW1)
		if !ok {
			break
		}

		newW0, newW1 := workingW0, workingW1
		if g.Partition[v] {
			newW1 -= g.W[v]
			newW0 += g.W[v]
		} else {
			newW0 -= g.W[v]
			newW1 += g.W[v]
		}
		// workingCutCost carries bheap.Load's doubled convention (each cut
		// edge counted from both endpoints) while gain is single-count
		// (spec.md §4.7.1: Σ_neighbor sign·w), so flipping v changes
		// workingCutCost by 2*gain, not gain.
		newCutCost := workingCutCost - 2*gain
		newImbalance := cutgraph.FoldImbalance(opts.TargetSplit, newW0/g.WSum)
		penalty := 0.0
		if newImbalance > opts.SoftSplitTolerance {
			penalty = newImbalance * g.H
		}
		newHeu := newCutCost + penalty

		g.Mark(v)
		bheap.Flip(g, v)
		stack = append(stack, v)
		workingCutCost, workingW0, workingW1 = newCutCost, newW0, newW1

		if newHeu < bestCost-1e-12 {
			bestCost = newHeu
			head = len(stack)
			steps = 0
		} else {
			steps++
		}
	}

	// Undo every move above head, in reverse order. Flip is its own
	// inverse against the graph's live state, so replaying it in reverse
	// chronological order restores the pre-pass state exactly.
	for i := len(stack) - 1; i >= head; i-- {
		bheap.Flip(g, stack[i])
	}
	g.ClearMarks()

	// Rescan from scratch: cheap relative to the heap-driven search
	// above and guarantees CutCost/W0/W1/HeuCost, Gain, ExternalDegree,
	// and heap membership (including reinserting any still-externally-
	// degreed vertex left out by a locked flip, spec.md §4.7 step 4) all
	// exactly match the committed set of moves.
	bheap.Load(g, opts.TargetSplit, opts.SoftSplitTolerance)

	return g.HeuCost < startCost-1e-12
}

// pickCandidate scans the top FMConsiderCount entries of each side's
// boundary heap, skips locked (marked) vertices, and returns the one
// whose flip would yield the lowest heuristic cost (spec.md §4.7 step
// 2). The working cut cost is identical across every candidate so only
// -2*gain+penalty needs comparing (gain counted twice to match the
// doubled CutCost, as in innerPass). The penalty applies only when the
// flip would raise the imbalance magnitude above SoftSplitTolerance.
func pickCandidate(g *cutgraph.Graph, opts options.Options, workingW0, workingW1 float64) (int, float64, bool) {
	best := -1
	bestHeu := math.Inf(1)
	var bestGain float64
	curImbalance := cutgraph.FoldImbalance(opts.TargetSplit, workingW0/g.WSum)

	for side := 0; side < 2; side++ {
		for _, v := range bheap.Peek(g, side, opts.FMConsiderCount) {
			if g.Marked(v) {
				continue
			}
			gain := g.Gain[v]

			newW0, newW1 := workingW0, workingW1
			if g.Partition[v] {
				newW1 -= g.W[v]
				newW0 += g.W[v]
			} else {
				newW0 -= g.W[v]
				newW1 += g.W[v]
			}
			newImbalance := cutgraph.FoldImbalance(opts.TargetSplit, newW0/g.WSum)
			penalty := 0.0
			if newImbalance > opts.SoftSplitTolerance && newImbalance > curImbalance {
				penalty = newImbalance * g.H
			}
			heu := -2*gain + penalty

			if heu < bestHeu {
				bestHeu = heu
				best = v
				bestGain = gain
			}
		}
	}

	return best, bestGain, best != -1
}
