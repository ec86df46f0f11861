// Package guess implements InitialGuess (spec.md §4.6): it sets the
// coarsest level's Partition by one of three strategies, then (for
// GuessQP) runs one full QPRefiner pass to relax and round a seed
// assignment before waterdance takes over.
package guess
