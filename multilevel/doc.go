// Package multilevel implements MultilevelDriver (spec.md §4.12): it
// validates options, builds the coarsening hierarchy, produces an
// initial guess on the coarsest level, refines while uncoarsening, and
// finalizes the result. This is the top of the dependency graph — every
// other package is a leaf this one composes.
package multilevel
