// Package fm implements FMRefiner (spec.md §4.7): a bounded-depth,
// best-move-with-backtracking local search that repeatedly flips
// boundary vertices to reduce heuCost, using package bheap's boundary
// heaps and cutgraph's mark array to lock vertices already tried within
// a pass.
//
// Grounded on lvlath's iterative-improvement loop shape (bounded outer
// iteration count, early termination on no improvement) generalized to
// the tentative-move/backtrack structure spec.md §4.7 requires.
package fm
