package cutgraph

import "math"

// FoldImbalance returns the imbalance magnitude |t - min(side0Frac,
// 1-side0Frac)|, where t is targetSplit folded into [0, 0.5] (t =
// 1-targetSplit when targetSplit > 0.5), so the measure does not depend
// on which side holds the smaller share. This magnitude is what HeuCost
// and FM's balance penalty use; Graph.SignedImbalance gives a signed
// value.
func FoldImbalance(targetSplit, side0Frac float64) float64 {
	t := targetSplit
	if t > 0.5 {
		t = 1 - t
	}
	imb := t - math.Min(side0Frac, 1-side0Frac)
	if imb < 0 {
		imb = -imb
	}

	return imb
}

// RecomputeWeights recomputes W0 and W1 from scratch by scanning
// Partition and W. Used after bulk partition changes (initial guess,
// QP rounding) where incremental maintenance would be error-prone.
//
// Complexity: O(n).
func (g *Graph) RecomputeWeights() {
	var w0, w1 float64
	for k := 0; k < g.N; k++ {
		if g.Partition[k] {
			w1 += g.W[k]
		} else {
			w0 += g.W[k]
		}
	}
	g.W0 = w0
	g.W1 = w1
}

// SignedImbalance returns TargetSplit - W0/WSum, without folding: its
// sign tells whether side 0 holds less (positive) or more (negative)
// than the target share.
func (g *Graph) SignedImbalance(targetSplit float64) float64 {
	if g.WSum == 0 {
		return 0
	}

	return targetSplit - g.W0/g.WSum
}

// UpdateHeuCost recomputes Imbalance and HeuCost from the current
// CutCost, W0/W1, and targetSplit/softSplitTolerance, per spec.md §3:
//
//	heuCost = cutCost + (|imbalance| > softSplitTolerance ? |imbalance|*H : 0)
func (g *Graph) UpdateHeuCost(targetSplit, softSplitTolerance float64) {
	if g.WSum == 0 {
		g.Imbalance = 0
		g.HeuCost = g.CutCost

		return
	}
	side0Frac := g.W0 / g.WSum
	g.Imbalance = FoldImbalance(targetSplit, side0Frac)
	g.HeuCost = g.CutCost
	if g.Imbalance > softSplitTolerance {
		g.HeuCost += g.Imbalance * g.H
	}
}

// NormalizedCut returns CutCost*(1/W0 + 1/W1), the normalized-cut metric
// from spec.md §6. Returns +Inf if either side is empty.
func (g *Graph) NormalizedCut() float64 {
	if g.W0 == 0 || g.W1 == 0 {
		return math.Inf(1)
	}

	return g.CutCost * (1/g.W0 + 1/g.W1)
}

// VerifySymmetric scans the adjacency and reports whether, for every
// stored (u,v), the reverse (v,u) is also stored with an equal weight
// (within tol). Intended for tests (spec.md §8 invariant set), not the
// hot path: it builds a temporary map and costs O(nz log nz).
func VerifySymmetric(g *Graph, tol float64) bool {
	type key struct{ u, v int }
	weight := make(map[key]float64, g.Nz)
	for u := 0; u < g.N; u++ {
		for pos := g.P[u]; pos < g.P[u+1]; pos++ {
			weight[key{u, g.I[pos]}] = g.X[pos]
		}
	}
	for u := 0; u < g.N; u++ {
		for pos := g.P[u]; pos < g.P[u+1]; pos++ {
			v := g.I[pos]
			rv, ok := weight[key{v, u}]
			if !ok || math.Abs(rv-g.X[pos]) > tol {
				return false
			}
		}
	}

	return true
}

// Finalize converts the doubled internal CutCost into the
// externally-reported value and computes CutSize from ExternalDegree,
// per spec.md §4.12 step 8:
//
//	CutSize := (sum of ExternalDegree over boundary vertices) / 2
//	CutCost := CutCost / 2
//	Imbalance := |Imbalance|
//
// Call exactly once, after the top level has been fully refined.
//
// Complexity: O(n).
func (g *Graph) Finalize(targetSplit, softSplitTolerance float64) {
	sum := 0
	for k := 0; k < g.N; k++ {
		sum += g.ExternalDegree[k]
	}
	g.CutSize = sum / 2
	g.CutCost /= 2
	g.UpdateHeuCost(targetSplit, softSplitTolerance)
	if g.Imbalance < 0 {
		g.Imbalance = -g.Imbalance
	}
}

// VerifyExternalDegree recomputes ExternalDegree[k] from scratch for
// every vertex and compares it against the stored value, returning the
// first mismatching vertex (or -1 if all match). Used by tests to check
// spec.md §8 invariant 5.
func VerifyExternalDegree(g *Graph) int {
	for k := 0; k < g.N; k++ {
		want := 0
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			if g.Partition[g.I[pos]] != g.Partition[k] {
				want++
			}
		}
		if want != g.ExternalDegree[k] {
			return k
		}
	}

	return -1
}
