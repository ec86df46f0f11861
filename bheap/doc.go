// Package bheap implements BoundaryHeap: two max-heaps (one per
// partition side) of boundary vertices keyed by FM gain, each paired
// with an inverse index so any vertex can be located, updated, or
// removed in O(log n).
//
// bheap holds no state of its own — every operation takes a
// *cutgraph.Graph and mutates its BHHeap/BHIndex/Gain/ExternalDegree
// fields directly, the same way the original Mongoose_BoundaryHeap.cpp
// operates on an EdgeCutProblem pointer. This keeps the heap and the
// gain model it indexes from ever drifting out of sync.
//
// Ordering: both heaps are max-heaps; ties are broken by existing array
// order, matching spec.md §4.3 — there is no stability requirement
// beyond determinism for a fixed input and insertion sequence.
package bheap
