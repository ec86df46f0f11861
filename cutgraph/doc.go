// Package cutgraph implements GraphStore: the adjacency and partition
// substrate shared by every other stage of the multilevel edge-separator
// pipeline (matching, coarsening, FM, and QP all read and write a
// *cutgraph.Graph directly).
//
// A Graph holds:
//
//   - Adjacency in compressed-sparse-column (CSC) form: for vertex k,
//     neighbors are P[k]..P[k+1]-1 in I, with weights at the same
//     positions in X. The representation is symmetric — both (u,v) and
//     (v,u) are stored — and self-loop free.
//   - Vertex weights W, and the derived scalars WSum = ΣW, XSum = ΣX,
//     H = 2*XSum (the imbalance penalty scale).
//   - Partition state: Partition[k] ∈ {false, true}, side weight sums
//     W0/W1, CutCost, CutSize, Imbalance, HeuCost.
//   - The FM gain model: Gain[k], ExternalDegree[k].
//   - Boundary-heap state: two max-heaps (one per side) keyed by gain,
//     with an inverse index for O(log n) membership/removal — see
//     package bheap, which operates directly on these fields.
//   - A mark array with an epoch counter, for O(1) amortized "clear all
//     marks" during FM's lock/unlock bookkeeping.
//
// Fields are exported because bheap, fm, and qp are not independent
// clients of Graph — they are its tightly-coupled collaborators, sharing
// its gain/externalDegree/heap/mark state by direct mutation, the same
// way the original Mongoose_BoundaryHeap.cpp and Mongoose_ImproveFM.cpp
// operate directly on an EdgeCutProblem's members.
//
// Ownership: each level of the multilevel hierarchy owns exactly one
// Graph. Coarsening allocates the next level's Graph; the level stack in
// package multilevel owns the stack and releases every level on unwind,
// including on early error return (spec.md §5, §9).
package cutgraph
