package bheap

import "github.com/katalvlaran/edgecut/cutgraph"

// Load scans every vertex of g, recomputes Gain and ExternalDegree from
// scratch against the current Partition, inserts every boundary vertex
// (ExternalDegree > 0) into its side's heap, and recomputes CutCost,
// W0/W1, Imbalance, and HeuCost. Idempotent: calling Load twice in a row
// leaves g in the same state (spec.md §4.3).
//
// CutCost is left in its internal "doubled" form: each cut edge is
// counted once from each endpoint's adjacency. Package cutgraph's
// Finalize halves it once, at the very end of the pipeline.
//
// Complexity: O(n + nz) for the scan, plus O(b log b) to build the
// boundary heaps, where b is the number of boundary vertices.
func Load(g *cutgraph.Graph, targetSplit, softSplitTolerance float64) {
	Clear(g)

	var cutCost float64
	for k := 0; k < g.N; k++ {
		side := g.Partition[k]
		var gain float64
		ext := 0
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			j := g.I[pos]
			w := g.X[pos]
			if g.Partition[j] != side {
				gain += w
				ext++
				cutCost += w
			} else {
				gain -= w
			}
		}
		g.Gain[k] = gain
		g.ExternalDegree[k] = ext
		if ext > 0 {
			Insert(g, k)
		}
	}
	g.CutCost = cutCost
	g.RecomputeWeights()
	g.UpdateHeuCost(targetSplit, softSplitTolerance)
}

// Clear empties both heaps and zeroes BHIndex/ExternalDegree for every
// vertex that was heaped, per spec.md §4.3. It does not touch Gain or
// any vertex that was never heaped.
//
// Complexity: O(b) where b is the total number of heaped vertices.
func Clear(g *cutgraph.Graph) {
	for side := 0; side < 2; side++ {
		for _, v := range g.BHHeap[side] {
			g.BHIndex[v] = 0
			g.ExternalDegree[v] = 0
		}
		g.BHHeap[side] = g.BHHeap[side][:0]
	}
}

// Insert appends vertex v to the heap of its current side (g.Side(v))
// and sifts it up into place.
//
// Complexity: O(log n).
func Insert(g *cutgraph.Graph, v int) {
	side := g.Side(v)
	g.BHHeap[side] = append(g.BHHeap[side], v)
	pos := len(g.BHHeap[side]) - 1
	g.BHIndex[v] = pos + 1
	heapifyUp(g, side, pos)
}

// Remove deletes v from whichever heap it currently occupies. A no-op if
// v is not heaped (BHIndex[v] == 0).
//
// Complexity: O(log n).
func Remove(g *cutgraph.Graph, v int) {
	idx := g.BHIndex[v]
	if idx == 0 {
		return
	}
	removeAt(g, g.Side(v), idx-1)
}

// Update re-establishes heap order for an already-heaped vertex whose
// Gain changed (sift up, then down — at most one direction does work).
// A no-op if v is not heaped.
//
// Complexity: O(log n).
func Update(g *cutgraph.Graph, v int) {
	idx := g.BHIndex[v]
	if idx == 0 {
		return
	}
	side := g.Side(v)
	pos := idx - 1
	heapifyUp(g, side, pos)
	heapifyDown(g, side, pos)
}

// Peek returns up to k vertex indices from the front of side's heap
// array, the "top considerCount entries" spec.md §4.7's FM inner pass
// examines as flip candidates. These are not a guaranteed exact top-k by
// gain (only the root is guaranteed maximal) but the heap property
// ensures they are drawn from the highest-gain region of the array,
// matching the original ImproveFM's candidate scan.
//
// Complexity: O(k).
func Peek(g *cutgraph.Graph, side, k int) []int {
	h := g.BHHeap[side]
	if k > len(h) {
		k = len(h)
	}

	return h[:k]
}

// removeAt deletes the element at position pos of the given side's heap
// by swapping in the last element and sifting it into place.
func removeAt(g *cutgraph.Graph, side, pos int) {
	h := g.BHHeap[side]
	last := len(h) - 1
	v := h[pos]
	g.BHIndex[v] = 0
	if pos == last {
		g.BHHeap[side] = h[:last]

		return
	}
	h[pos] = h[last]
	g.BHIndex[h[pos]] = pos + 1
	g.BHHeap[side] = h[:last]
	heapifyUp(g, side, pos)
	heapifyDown(g, side, pos)
}

// heapifyUp sifts the element at pos toward the root while its gain
// exceeds its parent's, swapping and updating BHIndex at every step.
func heapifyUp(g *cutgraph.Graph, side, pos int) {
	h := g.BHHeap[side]
	for pos > 0 {
		parent := (pos - 1) / 2
		if g.Gain[h[parent]] >= g.Gain[h[pos]] {
			break
		}
		h[parent], h[pos] = h[pos], h[parent]
		g.BHIndex[h[parent]] = parent + 1
		g.BHIndex[h[pos]] = pos + 1
		pos = parent
	}
}

// heapifyDown sifts the element at pos toward the leaves while a child
// has greater gain, swapping and updating BHIndex at every step.
func heapifyDown(g *cutgraph.Graph, side, pos int) {
	h := g.BHHeap[side]
	n := len(h)
	for {
		left, right := 2*pos+1, 2*pos+2
		largest := pos
		if left < n && g.Gain[h[left]] > g.Gain[h[largest]] {
			largest = left
		}
		if right < n && g.Gain[h[right]] > g.Gain[h[largest]] {
			largest = right
		}
		if largest == pos {
			break
		}
		h[pos], h[largest] = h[largest], h[pos]
		g.BHIndex[h[pos]] = pos + 1
		g.BHIndex[h[largest]] = largest + 1
		pos = largest
	}
}

// Verify checks the heap-order property for both sides of g: for every
// internal node p, Gain[heap[p]] >= Gain[heap[2p+1]] and >=
// Gain[heap[2p+2]]; and BHIndex round-trips (BHHeap[side][BHIndex[v]-1]
// == v whenever BHIndex[v] > 0). Returns "" if g satisfies both, or a
// description of the first violation. Intended for tests (spec.md §8
// invariant 6).
func Verify(g *cutgraph.Graph) string {
	for v := 0; v < g.N; v++ {
		if g.BHIndex[v] == 0 {
			continue
		}
		side := g.Side(v)
		pos := g.BHIndex[v] - 1
		if pos < 0 || pos >= len(g.BHHeap[side]) || g.BHHeap[side][pos] != v {
			return "inverse index does not round-trip for a heaped vertex"
		}
	}
	for side := 0; side < 2; side++ {
		h := g.BHHeap[side]
		for p := 0; p < len(h); p++ {
			left, right := 2*p+1, 2*p+2
			if left < len(h) && g.Gain[h[p]] < g.Gain[h[left]] {
				return "heap-order violated against left child"
			}
			if right < len(h) && g.Gain[h[p]] < g.Gain[h[right]] {
				return "heap-order violated against right child"
			}
		}
	}

	return ""
}
