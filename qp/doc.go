// Package qp implements QPRefiner (spec.md §4.9): a continuous
// quadratic-programming relaxation of the 0/1 partition problem,
// minimized by gradient projection (Phase B, package napsack) and then
// pushed toward integrality by a four/five-stage boundary pass
// (Phase C), before rounding back to a discrete partition.
//
// Delta.FreeSet is represented as a dense slice (FreeList) plus an
// inverse position map (FreePos), per spec.md §3's "implementation
// freedom: ... O(1) insert/remove from the middle is required" — this
// mirrors bheap's BHHeap/BHIndex pairing rather than introducing a
// second data structure shape, and Status remains the sole source of
// truth (an index's presence in FreeList is always redundant with
// Status[k]==0; see DESIGN.md's Open Question resolution).
//
// Dot products and scaled vector adds are delegated to
// gonum.org/v1/gonum/floats, the one purely domain-numerical
// third-party dependency this module wires in (SPEC_FULL.md §3).
package qp
