// Package edgecut computes a balanced edge separator of an undirected
// weighted graph: a 2-way vertex partition minimizing the weight of
// edges crossing it, subject to a target split and tolerance.
//
// The algorithm is multilevel (spec.md §2): match and coarsen the input
// down to a small graph, produce an initial cut there, then refine
// while uncoarsening by alternating Fiduccia-Mattheyses local search
// (package fm) with a quadratic-programming relaxation (package qp,
// which projects onto its feasible set via package napsack), coupled
// through the shared boundary heaps of package bheap.
//
// Separate is the single external entry point; every other package in
// this module is an internal-style collaborator composed by package
// multilevel.
package edgecut
