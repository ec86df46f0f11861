// Package waterdance implements the alternating FM/QP refinement loop
// (spec.md §4.11) run at every level of the hierarchy, and the
// coarse-to-parent projection step (spec.md §4.10) used while
// uncoarsening.
package waterdance
