package cutgraph

import "math"

// Graph is one level of the multilevel hierarchy: an immutable CSC
// adjacency plus the mutable partition/refinement state that FM, QP, and
// the boundary heap all share by direct field access.
//
// Invariants (spec.md §4.2). NewFromCSC checks the self-loop and P
// bounds; symmetry is not checked at construction, only by
// VerifySymmetric in tests; the sums are set by initialize:
//
//   - For every stored (u,v) the reverse (v,u) is also stored with the
//     same weight.
//   - No self-loops: I[pos] == k never holds at column k.
//   - P[0] == 0, P[N] == Nz.
//   - WSum == sum(W), XSum == sum(X), H == 2*XSum.
type Graph struct {
	// N is the vertex count. Nz is the number of stored (directed)
	// adjacency entries (each undirected edge counted twice).
	N, Nz int

	// P has length N+1: column k's neighbors are I[P[k]:P[k+1]], with
	// matching weights at X[P[k]:P[k+1]].
	P []int
	I []int
	X []float64

	// W holds nonnegative vertex weights, length N.
	W []float64

	// WSum = sum(W), XSum = sum(X) (double-counts each undirected edge),
	// H = 2*XSum is the imbalance penalty scale used in HeuCost.
	WSum, XSum, H float64

	// WorstCaseRatio = max|x| / (eps + min|x|) over stored entries,
	// computed once by initialize and exposed as a statistic; nothing in
	// this module reads it (spec.md §3, SPEC_FULL.md §5.1).
	WorstCaseRatio float64

	// Partition[k] is the side of vertex k: false == side 0, true == side 1.
	Partition []bool

	// W0, W1 are the side weight sums; W0+W1 == WSum always.
	W0, W1 float64

	// CutCost is the sum of weights of edges crossing the partition,
	// maintained in "doubled" form internally (each cut edge contributes
	// from both endpoints' adjacency entries) and halved once by
	// Finalize. CutSize is the count of such edges; it is computed only
	// by Finalize.
	CutCost float64
	CutSize int

	// Imbalance = |t - min(W0,W1)/WSum| with t the TargetSplit folded
	// into [0, 0.5] (see FoldImbalance), set by UpdateHeuCost;
	// HeuCost = CutCost + penalty(Imbalance).
	Imbalance float64
	HeuCost   float64

	// Gain[k] is the FM gain of vertex k under the current Partition;
	// ExternalDegree[k] counts neighbors on the opposite side. A vertex
	// is "on the boundary" iff ExternalDegree[k] > 0.
	Gain           []float64
	ExternalDegree []int

	// BHHeap holds the two max-heaps (one per side) of boundary vertex
	// indices, keyed by Gain. BHIndex[v] is position+1 of v within its
	// side's heap, or 0 if v is not heaped. Package bheap owns the
	// operations that keep these in lockstep.
	BHHeap  [2][]int
	BHIndex []int

	// MarkArray/MarkValue implement the epoch-cleared lock array FM uses
	// to keep moved vertices from being reconsidered within one inner
	// pass. Clearing is O(1): increment MarkValue; only on overflow is
	// MarkArray actually zeroed.
	MarkArray []int
	MarkValue int

	alloc Allocator
}

// reserve consults the Graph's Allocator before making a slice of count
// elements, returning ErrOutOfMemory (or a wrapped allocator error) on
// failure.
func (g *Graph) reserve(count int) error {
	if g.alloc == nil {
		return nil
	}

	return g.alloc.Reserve(count)
}

// NewFromCSC constructs a Graph from a symmetric, diagonal-free CSC
// adjacency triple (p, i, x) of lengths n+1, nz, nz, plus a vertex-weight
// vector w of length n. It serves both spec.md §4.2's "create-from-CSC"
// entry point (external input, via package edgecut) and its
// "create-from-parent" entry point (coarse levels, via package coarsen,
// which builds p/i/x/w for the contracted graph and passes them here).
//
// alloc may be nil, in which case DefaultAllocator() is used.
//
// Validation order:
//  1. n == 0 -> ErrEmptyGraph.
//  2. len(p) != n+1, p[0] != 0, p[n] != len(i), or len(i) != len(x) ->
//     ErrBadCSC.
//  3. len(w) != n -> ErrBadCSC.
//  4. any w[k] < 0 -> ErrNegativeVertexWeight.
//  5. any x[pos] non-finite -> ErrNonFiniteWeight.
//  6. any i[pos] == k (self-loop at column k) -> ErrSelfLoop.
//
// Complexity: O(n + nz).
func NewFromCSC(p, i []int, x, w []float64, alloc Allocator) (*Graph, error) {
	n := len(p) - 1
	if n <= 0 {
		return nil, ErrEmptyGraph
	}
	nz := len(i)
	if p[0] != 0 || p[n] != nz || len(x) != nz {
		return nil, ErrBadCSC
	}
	if len(w) != n {
		return nil, ErrBadCSC
	}
	for k := 0; k < n; k++ {
		if w[k] < 0 {
			return nil, ErrNegativeVertexWeight
		}
	}
	for pos := 0; pos < nz; pos++ {
		if math.IsNaN(x[pos]) || math.IsInf(x[pos], 0) {
			return nil, ErrNonFiniteWeight
		}
	}
	for k := 0; k < n; k++ {
		for pos := p[k]; pos < p[k+1]; pos++ {
			if i[pos] == k {
				return nil, ErrSelfLoop
			}
		}
	}

	if alloc == nil {
		alloc = DefaultAllocator()
	}
	g := &Graph{
		N:     n,
		Nz:    nz,
		P:     p,
		I:     i,
		X:     x,
		W:     w,
		alloc: alloc,
	}
	if err := g.allocateState(); err != nil {
		return nil, err
	}
	g.initialize()

	return g, nil
}

// allocateState allocates every mutable-state slice sized to N, checking
// the Allocator before each one so OutOfMemory can be simulated and
// unwound deterministically (spec.md §5, §9).
func (g *Graph) allocateState() error {
	n := g.N
	if err := g.reserve(n); err != nil {
		return err
	}
	g.Partition = make([]bool, n)

	if err := g.reserve(n); err != nil {
		return err
	}
	g.Gain = make([]float64, n)

	if err := g.reserve(n); err != nil {
		return err
	}
	g.ExternalDegree = make([]int, n)

	if err := g.reserve(n); err != nil {
		return err
	}
	g.BHIndex = make([]int, n)

	if err := g.reserve(n); err != nil {
		return err
	}
	g.MarkArray = make([]int, n)
	g.MarkValue = 1

	if err := g.reserve(n); err != nil {
		return err
	}
	g.BHHeap[0] = make([]int, 0, n)
	if err := g.reserve(n); err != nil {
		return err
	}
	g.BHHeap[1] = make([]int, 0, n)

	return nil
}

// initialize computes the derived scalars WSum, XSum, H, and
// WorstCaseRatio from the adjacency and vertex weights. Called once by
// NewFromCSC; idempotent if called again (e.g. after coarsening mutates
// W/X in place, which it never does — each level gets a fresh Graph).
//
// Complexity: O(n + nz).
func (g *Graph) initialize() {
	var wsum, xsum float64
	for k := 0; k < g.N; k++ {
		wsum += g.W[k]
	}

	minAbs := math.Inf(1)
	maxAbs := 0.0
	for pos := 0; pos < g.Nz; pos++ {
		xsum += g.X[pos]
		a := math.Abs(g.X[pos])
		if a > maxAbs {
			maxAbs = a
		}
		if a < minAbs {
			minAbs = a
		}
	}
	if g.Nz == 0 {
		minAbs = 0
	}

	g.WSum = wsum
	g.XSum = xsum
	g.H = 2 * xsum
	const eps = 1e-12
	g.WorstCaseRatio = maxAbs / (eps + minAbs)
}

// Mark records vertex v as marked under the current epoch (MarkValue).
//
// Complexity: O(1).
func (g *Graph) Mark(v int) { g.MarkArray[v] = g.MarkValue }

// Marked reports whether vertex v carries the current epoch's mark.
//
// Complexity: O(1).
func (g *Graph) Marked(v int) bool { return g.MarkArray[v] == g.MarkValue }

// ClearMarks advances the epoch so every previously marked vertex is
// considered unmarked, in O(1) amortized time. On overflow of MarkValue
// the array is physically reset to zero and the epoch restarts at 1.
//
// Complexity: O(1) amortized, O(n) on the rare overflow reset.
func (g *Graph) ClearMarks() {
	if g.MarkValue == math.MaxInt {
		for idx := range g.MarkArray {
			g.MarkArray[idx] = 0
		}
		g.MarkValue = 0
	}
	g.MarkValue++
}

// Side returns 0 or 1 for vertex v's current partition.
//
// Complexity: O(1).
func (g *Graph) Side(v int) int {
	if g.Partition[v] {
		return 1
	}

	return 0
}
