package bheap

import "github.com/katalvlaran/edgecut/cutgraph"

// Flip moves vertex v to the opposite side and restores every invariant
// that depends on it: its own Gain/ExternalDegree, each neighbor's
// Gain/ExternalDegree, and heap membership throughout (spec.md §4.7.1).
//
// Flip is shared by package fm (the inner local-search move) and
// package qp (rounding the relaxed solution back to a discrete
// partition, spec.md §4.9's "for every changed vertex, perform an
// FM-style flip").
//
// Complexity: O(degree(v) log n).
func Flip(g *cutgraph.Graph, v int) {
	// v's own heap membership must be settled against its side *before*
	// Partition[v] flips underneath it: Remove/Update both re-derive
	// "which heap" from g.Side(v), so once Partition[v] changes that
	// lookup answers for the new side while BHIndex[v] still holds a
	// position in the old side's array. Evict v from its old-side heap
	// here, while oldSide is still correct, and decide its new-side
	// membership only after everything else below is in place.
	oldSide := g.Side(v)
	if idx := g.BHIndex[v]; idx != 0 {
		removeAt(g, oldSide, idx-1)
	}

	g.Gain[v] = -g.Gain[v]
	g.Partition[v] = !g.Partition[v]

	newSide := g.Partition[v]
	ext := 0
	for pos := g.P[v]; pos < g.P[v+1]; pos++ {
		j := g.I[pos]
		if g.Partition[j] != newSide {
			ext++
		}
	}
	g.ExternalDegree[v] = ext

	for pos := g.P[v]; pos < g.P[v+1]; pos++ {
		u := g.I[pos]
		w := g.X[pos]
		sameSide := g.Partition[u] == g.Partition[v]
		if sameSide {
			g.Gain[u] -= 2 * w
			g.ExternalDegree[u]--
		} else {
			g.Gain[u] += 2 * w
			g.ExternalDegree[u]++
		}

		switch {
		case g.BHIndex[u] != 0 && g.ExternalDegree[u] == 0:
			Remove(g, u)
		case g.BHIndex[u] != 0:
			Update(g, u)
		case g.ExternalDegree[u] > 0 && !g.Marked(u):
			Insert(g, u)
		}
	}

	if g.ExternalDegree[v] > 0 && !g.Marked(v) {
		Insert(g, v)
	}
}
