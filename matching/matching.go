package matching

import (
	"math/rand"

	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/options"
)

// Run computes a Matching over g under opts.MatchingStrategy, runs
// cleanup (every still-unmatched vertex becomes its own orphan group),
// and numbers the resulting clusters into coarse vertex ids. rng is
// consulted only by the Random strategy (spec.md §4.4); every other
// strategy is a deterministic function of g and opts.
//
// Matching never fails (spec.md §4.4: "None fatal; matching always
// produces a valid cover after cleanup").
//
// Complexity: O(n + nz) for HEM/HEMSR/HEMSRdeg; O(n + nz) for Random.
func Run(g *cutgraph.Graph, opts options.Options, rng *rand.Rand) *Matching {
	pairs := make([]int, g.N)
	kind := make([]Kind, g.N)
	for v := range pairs {
		pairs[v] = v // every vertex starts as its own orphan
	}
	matched := make([]bool, g.N)

	switch opts.MatchingStrategy {
	case options.Random:
		matchRandom(g, pairs, matched, rng)
	case options.HEM:
		matchHEM(g, pairs, matched)
	case options.HEMSR:
		matchHEM(g, pairs, matched)
		matchPassiveAggressive(g, pairs, kind, matched, opts, false)
	case options.HEMSRdeg:
		matchHEM(g, pairs, matched)
		matchPassiveAggressive(g, pairs, kind, matched, opts, true)
	}
	// Cleanup: anything still unmatched is already its own orphan group
	// (pairs[v] == v), so there is nothing further to do here beyond
	// leaving Kind at its zero value (Orphan) for those vertices.

	return numberClusters(g, pairs, kind)
}

// matchRandom visits vertices in an RNG-permuted order and pairs each
// unmatched vertex with the first unmatched neighbor found in CSC order.
func matchRandom(g *cutgraph.Graph, pairs []int, matched []bool, rng *rand.Rand) {
	order := rng.Perm(g.N)
	for _, k := range order {
		if matched[k] {
			continue
		}
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			j := g.I[pos]
			if !matched[j] && j != k {
				pair(pairs, matched, k, j)

				break
			}
		}
	}
}

// matchHEM visits vertices in natural order and pairs each unmatched
// vertex with its unmatched neighbor of maximum edge weight, breaking
// ties by first occurrence in CSC order.
func matchHEM(g *cutgraph.Graph, pairs []int, matched []bool) {
	for k := 0; k < g.N; k++ {
		if matched[k] {
			continue
		}
		best, bestW := -1, -1.0
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			j := g.I[pos]
			if matched[j] || j == k {
				continue
			}
			if g.X[pos] > bestW {
				bestW = g.X[pos]
				best = j
			}
		}
		if best >= 0 {
			pair(pairs, matched, k, best)
		}
	}
}

// matchPassiveAggressive implements the HEMSR/HEMSRdeg second pass: for
// each vertex left unmatched by HEM, find its heaviest neighbor h and
// pair off h's remaining unmatched neighbors two at a time (Brotherly),
// folding a leftover single into a Community 3-group when allowed.
//
// When davis is true (HEMSRdeg), the second pass only triggers when k's
// degree is >= opts.HighDegreeThreshold * (nz/n), matching spec.md
// §4.4's Davis variant.
func matchPassiveAggressive(g *cutgraph.Graph, pairs []int, kind []Kind, matched []bool, opts options.Options, davis bool) {
	avgDegree := 0.0
	if g.N > 0 {
		avgDegree = float64(g.Nz) / float64(g.N)
	}
	visitedHeavy := make(map[int]bool)

	for k := 0; k < g.N; k++ {
		if matched[k] {
			continue
		}
		if davis {
			degree := g.P[k+1] - g.P[k]
			if float64(degree) < opts.HighDegreeThreshold*avgDegree {
				continue
			}
		}

		h, bestW := -1, -1.0
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			j := g.I[pos]
			if g.X[pos] > bestW {
				bestW = g.X[pos]
				h = j
			}
		}
		if h < 0 || visitedHeavy[h] {
			continue
		}
		visitedHeavy[h] = true

		var unmatched []int
		for pos := g.P[h]; pos < g.P[h+1]; pos++ {
			j := g.I[pos]
			if !matched[j] && j != h {
				unmatched = append(unmatched, j)
			}
		}

		i := 0
		for ; i+1 < len(unmatched); i += 2 {
			a, b := unmatched[i], unmatched[i+1]
			pair(pairs, matched, a, b)
			kind[a] = Brotherly
			kind[b] = Brotherly
		}
		if i < len(unmatched) {
			last := unmatched[i]
			if opts.DoCommunityMatching && matched[h] && pairs[pairs[h]] == h {
				// Fold last into h's existing pair to form a 3-cycle. A heavy
				// vertex already in a 3-cycle is left as it is.
				partner := pairs[h]
				pairs[h] = last
				pairs[last] = partner
				pairs[partner] = h
				matched[last] = true
				kind[h] = Community
				kind[last] = Community
				kind[partner] = Community
			}
			// Otherwise last stays an orphan (pairs[last] == last already).
		}
	}
}

// pair joins a and b into a 2-cycle and marks both matched.
func pair(pairs []int, matched []bool, a, b int) {
	pairs[a] = b
	pairs[b] = a
	matched[a] = true
	matched[b] = true
}

// numberClusters walks every vertex's Pairs cycle once, assigns each
// distinct cluster the next coarse id in visitation order, and records a
// representative fine vertex per coarse id.
func numberClusters(g *cutgraph.Graph, pairs []int, kind []Kind) *Matching {
	fineToCoarse := make([]int, g.N)
	for v := range fineToCoarse {
		fineToCoarse[v] = -1
	}
	var coarseRep []int

	for v := 0; v < g.N; v++ {
		if fineToCoarse[v] != -1 {
			continue
		}
		c := len(coarseRep)
		coarseRep = append(coarseRep, v)
		fineToCoarse[v] = c
		if kind[v] == Orphan && pairs[v] != v {
			// A 2-group the passive-aggressive pass did not tag was formed
			// by Random or HEM.
			kind[v] = Standard
			kind[pairs[v]] = Standard
		}
		cur := pairs[v]
		for cur != v {
			fineToCoarse[cur] = c
			cur = pairs[cur]
		}
	}

	return &Matching{
		Pairs:        pairs,
		Kind:         kind,
		FineToCoarse: fineToCoarse,
		CoarseRep:    coarseRep,
		CoarseN:      len(coarseRep),
	}
}
